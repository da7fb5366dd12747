package mocks

import (
	"sync"

	"github.com/user/termplay/pkg/ports"
)

// MediaProber is a mock implementation of ports.MediaProber.
type MediaProber struct {
	ProbeFunc func(path string) (ports.MediaInfo, error)

	mu         sync.Mutex
	ProbeCalls []string
}

func (m *MediaProber) Probe(path string) (ports.MediaInfo, error) {
	m.mu.Lock()
	m.ProbeCalls = append(m.ProbeCalls, path)
	m.mu.Unlock()
	if m.ProbeFunc != nil {
		return m.ProbeFunc(path)
	}
	return ports.MediaInfo{Path: path}, nil
}

var _ ports.MediaProber = (*MediaProber)(nil)

package mocks

import (
	"sync"
	"time"

	"github.com/user/termplay/pkg/ports"
)

// Clock is a mock implementation of ports.Clock with a scriptable
// position.
type Clock struct {
	mu     sync.Mutex
	Pos    time.Duration
	Sets   []time.Duration
	Resets int
}

func (m *Clock) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Pos
}

func (m *Clock) Reset() {
	m.mu.Lock()
	m.Pos = 0
	m.Resets++
	m.mu.Unlock()
}

func (m *Clock) Set(pos time.Duration) {
	m.mu.Lock()
	m.Pos = pos
	m.Sets = append(m.Sets, pos)
	m.mu.Unlock()
}

// Advance moves the clock forward, for tests that simulate time passing.
func (m *Clock) Advance(d time.Duration) {
	m.mu.Lock()
	m.Pos += d
	m.mu.Unlock()
}

var _ ports.Clock = (*Clock)(nil)

package mocks

import (
	"context"
	"sync"

	"github.com/user/termplay/pkg/ports"
)

// Fetcher is a mock implementation of ports.Fetcher.
type Fetcher struct {
	FetchFunc func(ctx context.Context, url string) (string, error)

	mu         sync.Mutex
	FetchCalls []string
}

func (m *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	m.mu.Lock()
	m.FetchCalls = append(m.FetchCalls, url)
	m.mu.Unlock()
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, url)
	}
	return "", nil
}

var _ ports.Fetcher = (*Fetcher)(nil)

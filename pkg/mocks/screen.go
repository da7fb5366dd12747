package mocks

import (
	"sync"

	"github.com/user/termplay/pkg/ports"
)

// Screen is a mock implementation of ports.Screen. Writes are recorded;
// key events can be injected through the Keys channel.
type Screen struct {
	SetupFunc    func() error
	RestoreFunc  func() error
	SizeFunc     func() (int, int, error)
	WriteFunc    func(frame []byte) error
	SetTitleFunc func(title string)

	Keys chan ports.KeyEvent

	mu       sync.Mutex
	Writes   [][]byte
	Titles   []string
	Setups   int
	Restores int
}

func (m *Screen) Setup() error {
	m.mu.Lock()
	m.Setups++
	m.mu.Unlock()
	if m.SetupFunc != nil {
		return m.SetupFunc()
	}
	return nil
}

func (m *Screen) Restore() error {
	m.mu.Lock()
	m.Restores++
	m.mu.Unlock()
	if m.RestoreFunc != nil {
		return m.RestoreFunc()
	}
	return nil
}

func (m *Screen) Size() (int, int, error) {
	if m.SizeFunc != nil {
		return m.SizeFunc()
	}
	return 80, 24, nil
}

func (m *Screen) Write(frame []byte) error {
	m.mu.Lock()
	cp := make([]byte, len(frame))
	copy(cp, frame)
	m.Writes = append(m.Writes, cp)
	m.mu.Unlock()
	if m.WriteFunc != nil {
		return m.WriteFunc(frame)
	}
	return nil
}

// WriteCount returns how many frames were written. Safe to call while
// playback is running.
func (m *Screen) WriteCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Writes)
}

func (m *Screen) Events() <-chan ports.KeyEvent {
	if m.Keys == nil {
		m.Keys = make(chan ports.KeyEvent, 16)
	}
	return m.Keys
}

func (m *Screen) SetTitle(title string) {
	m.mu.Lock()
	m.Titles = append(m.Titles, title)
	m.mu.Unlock()
	if m.SetTitleFunc != nil {
		m.SetTitleFunc(title)
	}
}

var _ ports.Screen = (*Screen)(nil)

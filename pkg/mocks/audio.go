// Package mocks provides mock implementations for testing.
package mocks

import (
	"sync"
	"time"

	"github.com/user/termplay/pkg/ports"
)

// AudioSink is a mock implementation of ports.AudioSink. Position
// returns the Pos field unless PositionFunc is set, so tests can script
// the audio clock directly.
type AudioSink struct {
	StartFunc    func() error
	EnqueueFunc  func(block [][2]float64) error
	PositionFunc func() time.Duration
	DrainedFunc  func() bool
	CloseFunc    func() error

	mu               sync.Mutex
	Pos              time.Duration
	Paused           bool
	Muted            bool
	Volume           float64
	Started          bool
	Closed           bool
	Flushes          int
	EnqueueCalls     int
	SetPositionCalls []time.Duration
}

func (m *AudioSink) Start() error {
	m.mu.Lock()
	m.Started = true
	m.mu.Unlock()
	if m.StartFunc != nil {
		return m.StartFunc()
	}
	return nil
}

func (m *AudioSink) Enqueue(block [][2]float64) error {
	m.mu.Lock()
	m.EnqueueCalls++
	m.mu.Unlock()
	if m.EnqueueFunc != nil {
		return m.EnqueueFunc(block)
	}
	return nil
}

func (m *AudioSink) Position() time.Duration {
	if m.PositionFunc != nil {
		return m.PositionFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Pos
}

func (m *AudioSink) SetPaused(paused bool) {
	m.mu.Lock()
	m.Paused = paused
	m.mu.Unlock()
}

func (m *AudioSink) SetMuted(muted bool) {
	m.mu.Lock()
	m.Muted = muted
	m.mu.Unlock()
}

func (m *AudioSink) SetVolume(volume float64) {
	m.mu.Lock()
	m.Volume = volume
	m.mu.Unlock()
}

func (m *AudioSink) Flush() {
	m.mu.Lock()
	m.Flushes++
	m.mu.Unlock()
}

func (m *AudioSink) SetPosition(pos time.Duration) {
	m.mu.Lock()
	m.Pos = pos
	m.SetPositionCalls = append(m.SetPositionCalls, pos)
	m.mu.Unlock()
}

func (m *AudioSink) Drained() bool {
	if m.DrainedFunc != nil {
		return m.DrainedFunc()
	}
	return true
}

func (m *AudioSink) Close() error {
	m.mu.Lock()
	m.Closed = true
	m.mu.Unlock()
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

var _ ports.AudioSink = (*AudioSink)(nil)

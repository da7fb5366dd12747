package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/user/termplay/pkg/ports"
)

// FrameSource is a mock implementation of ports.FrameSource. By default
// it reports no frames and a finished stream; tests script behavior
// through the Func fields or by preloading Frames.
type FrameSource struct {
	StartFunc    func(ctx context.Context) error
	NextFunc     func() (*ports.Frame, bool)
	FinishedFunc func() bool
	RewindFunc   func() error
	SeekFunc     func(pos time.Duration) error
	CloseFunc    func() error

	mu     sync.Mutex
	Frames []*ports.Frame
	next   int

	StartCalls  int
	RewindCalls int
	SeekCalls   []time.Duration
	CloseCalls  int
}

func (m *FrameSource) Start(ctx context.Context) error {
	m.mu.Lock()
	m.StartCalls++
	m.mu.Unlock()
	if m.StartFunc != nil {
		return m.StartFunc(ctx)
	}
	return nil
}

// Next pops the next preloaded frame unless NextFunc is set.
func (m *FrameSource) Next() (*ports.Frame, bool) {
	if m.NextFunc != nil {
		return m.NextFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.next >= len(m.Frames) {
		return nil, false
	}
	f := m.Frames[m.next]
	m.next++
	return f, true
}

// Finished reports whether all preloaded frames were consumed, unless
// FinishedFunc is set.
func (m *FrameSource) Finished() bool {
	if m.FinishedFunc != nil {
		return m.FinishedFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.next >= len(m.Frames)
}

// Rewind restarts the preloaded frames from the beginning unless
// RewindFunc is set.
func (m *FrameSource) Rewind() error {
	m.mu.Lock()
	m.RewindCalls++
	m.mu.Unlock()
	if m.RewindFunc != nil {
		return m.RewindFunc()
	}
	m.mu.Lock()
	m.next = 0
	m.mu.Unlock()
	return nil
}

// Seek records the target and skips preloaded frames up to it unless
// SeekFunc is set.
func (m *FrameSource) Seek(pos time.Duration) error {
	m.mu.Lock()
	m.SeekCalls = append(m.SeekCalls, pos)
	m.mu.Unlock()
	if m.SeekFunc != nil {
		return m.SeekFunc(pos)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next = 0
	for m.next < len(m.Frames) && m.Frames[m.next].PTS < pos {
		m.next++
	}
	return nil
}

func (m *FrameSource) Close() error {
	m.mu.Lock()
	m.CloseCalls++
	m.mu.Unlock()
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

var _ ports.FrameSource = (*FrameSource)(nil)

// SampleSource is a mock implementation of ports.SampleSource.
type SampleSource struct {
	SamplesFunc    func() <-chan [][2]float64
	SampleRateFunc func() int

	Ch   chan [][2]float64
	Rate int
}

func (m *SampleSource) Samples() <-chan [][2]float64 {
	if m.SamplesFunc != nil {
		return m.SamplesFunc()
	}
	return m.Ch
}

func (m *SampleSource) SampleRate() int {
	if m.SampleRateFunc != nil {
		return m.SampleRateFunc()
	}
	if m.Rate != 0 {
		return m.Rate
	}
	return 44100
}

var _ ports.SampleSource = (*SampleSource)(nil)

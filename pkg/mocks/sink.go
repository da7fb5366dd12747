package mocks

import (
	"sync"

	"github.com/user/termplay/pkg/ports"
)

// Sink is a mock implementation of ports.DebugSink that stores
// everything in memory.
type Sink struct {
	EnabledValue bool

	SaveGridTextFunc  func(index int, data []byte) error
	SaveGridImageFunc func(index int, grid *ports.Grid) error
	SaveProbeJSONFunc func(data []byte) error
	SaveSummaryFunc   func(data []byte) error

	mu         sync.Mutex
	GridTexts  map[int][]byte
	GridImages map[int]*ports.Grid
	Probes     [][]byte
	Summaries  [][]byte
}

func (m *Sink) Enabled() bool {
	return m.EnabledValue
}

func (m *Sink) SaveGridText(index int, data []byte) error {
	m.mu.Lock()
	if m.GridTexts == nil {
		m.GridTexts = make(map[int][]byte)
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	m.GridTexts[index] = cp
	m.mu.Unlock()
	if m.SaveGridTextFunc != nil {
		return m.SaveGridTextFunc(index, data)
	}
	return nil
}

func (m *Sink) SaveGridImage(index int, grid *ports.Grid) error {
	m.mu.Lock()
	if m.GridImages == nil {
		m.GridImages = make(map[int]*ports.Grid)
	}
	m.GridImages[index] = grid
	m.mu.Unlock()
	if m.SaveGridImageFunc != nil {
		return m.SaveGridImageFunc(index, grid)
	}
	return nil
}

func (m *Sink) SaveProbeJSON(data []byte) error {
	m.mu.Lock()
	cp := make([]byte, len(data))
	copy(cp, data)
	m.Probes = append(m.Probes, cp)
	m.mu.Unlock()
	if m.SaveProbeJSONFunc != nil {
		return m.SaveProbeJSONFunc(data)
	}
	return nil
}

func (m *Sink) SaveSummary(data []byte) error {
	m.mu.Lock()
	cp := make([]byte, len(data))
	copy(cp, data)
	m.Summaries = append(m.Summaries, cp)
	m.mu.Unlock()
	if m.SaveSummaryFunc != nil {
		return m.SaveSummaryFunc(data)
	}
	return nil
}

var _ ports.DebugSink = (*Sink)(nil)

package mocks

import (
	"sync"

	"github.com/user/termplay/pkg/ports"
)

// FrameRenderer is a mock implementation of ports.FrameRenderer. By
// default it returns an empty grid of the requested size.
type FrameRenderer struct {
	RenderFunc func(frame *ports.Frame, opts ports.RenderOptions) *ports.Grid

	mu          sync.Mutex
	RenderCalls []ports.RenderOptions
}

func (m *FrameRenderer) Render(frame *ports.Frame, opts ports.RenderOptions) *ports.Grid {
	m.mu.Lock()
	m.RenderCalls = append(m.RenderCalls, opts)
	m.mu.Unlock()
	if m.RenderFunc != nil {
		return m.RenderFunc(frame, opts)
	}
	w, h := opts.Width, opts.Height
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &ports.Grid{Width: w, Height: h, Cells: make([]ports.Cell, w*h)}
}

var _ ports.FrameRenderer = (*FrameRenderer)(nil)

// GridEncoder is a mock implementation of ports.GridEncoder.
type GridEncoder struct {
	EncodeFunc func(grid *ports.Grid) []byte

	mu          sync.Mutex
	EncodeCalls int
}

func (m *GridEncoder) Encode(grid *ports.Grid) []byte {
	m.mu.Lock()
	m.EncodeCalls++
	m.mu.Unlock()
	if m.EncodeFunc != nil {
		return m.EncodeFunc(grid)
	}
	return []byte{}
}

var _ ports.GridEncoder = (*GridEncoder)(nil)

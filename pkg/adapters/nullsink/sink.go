// Package nullsink provides a no-op debug sink implementation.
package nullsink

import (
	"github.com/user/termplay/pkg/ports"
)

// Sink is a no-op implementation of ports.DebugSink.
// It discards all debug output.
type Sink struct{}

// New creates a new NullSink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool {
	return false
}

// SaveGridText does nothing.
func (s *Sink) SaveGridText(index int, data []byte) error {
	return nil
}

// SaveGridImage does nothing.
func (s *Sink) SaveGridImage(index int, grid *ports.Grid) error {
	return nil
}

// SaveProbeJSON does nothing.
func (s *Sink) SaveProbeJSON(data []byte) error {
	return nil
}

// SaveSummary does nothing.
func (s *Sink) SaveSummary(data []byte) error {
	return nil
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)

package logger

import (
	"bytes"
	"io"
	"sync"
)

// Deferred is a writer that buffers while the terminal is in raw mode
// and passes through otherwise. Playback calls Hold before entering raw
// mode and Release after restoring the screen, so buffered log lines
// appear once the frames are gone instead of tearing through them.
type Deferred struct {
	mu      sync.Mutex
	target  io.Writer
	buf     bytes.Buffer
	holding bool
}

// NewDeferred creates a pass-through writer around target.
func NewDeferred(target io.Writer) *Deferred {
	return &Deferred{target: target}
}

// Hold starts buffering writes.
func (d *Deferred) Hold() {
	d.mu.Lock()
	d.holding = true
	d.mu.Unlock()
}

// Release flushes buffered writes to the target and resumes passing
// writes through.
func (d *Deferred) Release() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.holding = false
	if d.buf.Len() == 0 {
		return nil
	}
	_, err := d.target.Write(d.buf.Bytes())
	d.buf.Reset()
	return err
}

func (d *Deferred) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.holding {
		return d.buf.Write(p)
	}
	return d.target.Write(p)
}

package player

import (
	"sync"
	"time"

	"github.com/user/termplay/pkg/ports"
)

// MonotonicClock is the fallback playback clock used when no audio
// track is available to act as the timing reference. It counts from
// an anchor captured at construction and can be re-based for seeks.
type MonotonicClock struct {
	mu   sync.Mutex
	base time.Time
	off  time.Duration
}

func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{base: time.Now()}
}

var _ ports.Clock = (*MonotonicClock)(nil)

func (c *MonotonicClock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.off + time.Since(c.base)
}

func (c *MonotonicClock) Reset() {
	c.Set(0)
}

func (c *MonotonicClock) Set(pos time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.base = time.Now()
	c.off = pos
}

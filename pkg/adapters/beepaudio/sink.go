// Package beepaudio streams decoded PCM samples to the system audio
// device through the beep speaker and reports the playback position
// used as the synchronization clock.
package beepaudio

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/user/termplay/pkg/ports"
)

// ErrDeviceUnavailable indicates the audio output device could not be
// initialized. Playback continues video-only when this is returned.
var ErrDeviceUnavailable = errors.New("beepaudio: audio device unavailable")

const (
	// deviceBuffer is the speaker buffer passed to speaker.Init. The
	// reported position subtracts it, so the clock tracks what the
	// device has played rather than what it has been handed.
	deviceBuffer = 100 * time.Millisecond

	// queueSeconds bounds the sample queue. A full queue blocks Enqueue,
	// which backpressures the decode goroutine.
	queueSeconds = 1
)

// Sink plays interleaved stereo samples through the beep speaker.
// The speaker pulls from an internal queue on its own goroutine; all
// transport flags take effect at the next pull, never mid-sample.
type Sink struct {
	rate int

	mu      sync.Mutex
	slack   *sync.Cond
	queue   [][2]float64
	head    int
	pulled  int64 // samples consumed by the speaker
	base    time.Duration
	paused  bool
	muted   bool
	volume  float64
	started bool
	closed  bool
}

var _ ports.AudioSink = (*Sink)(nil)

// New creates a sink for the given sample rate.
func New(sampleRate int) *Sink {
	s := &Sink{rate: sampleRate, volume: 1.0}
	s.slack = sync.NewCond(&s.mu)
	return s
}

// Start initializes the speaker and begins pulling from the queue.
func (s *Sink) Start() error {
	sr := beep.SampleRate(s.rate)
	if err := speaker.Init(sr, sr.N(deviceBuffer)); err != nil {
		return fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
	}
	s.mu.Lock()
	s.started = true
	s.mu.Unlock()
	speaker.Play(beep.StreamerFunc(s.stream))
	return nil
}

// stream is the speaker callback. While paused it emits silence without
// consuming samples, so the position freezes. An empty queue also emits
// silence; the streamer never ends on starvation.
func (s *Sink) stream(out [][2]float64) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, false
	}

	n := 0
	if !s.paused {
		for n < len(out) && s.head < len(s.queue) {
			sample := s.queue[s.head]
			s.head++
			if s.muted {
				sample = [2]float64{}
			} else {
				sample[0] *= s.volume
				sample[1] *= s.volume
			}
			out[n] = sample
			n++
		}
		s.pulled += int64(n)
		if s.head > 0 && s.head == len(s.queue) {
			s.queue = s.queue[:0]
			s.head = 0
		}
		s.slack.Broadcast()
	}
	for i := n; i < len(out); i++ {
		out[i] = [2]float64{}
	}
	return len(out), true
}

// Enqueue appends a block of samples, blocking while the queue is full.
func (s *Sink) Enqueue(block [][2]float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return ErrDeviceUnavailable
	}
	for len(s.queue)-s.head >= queueSeconds*s.rate {
		if s.closed {
			return errors.New("beepaudio: sink closed")
		}
		s.slack.Wait()
	}
	if s.closed {
		return errors.New("beepaudio: sink closed")
	}
	s.queue = append(s.queue, block...)
	return nil
}

// Position reports how much audio has been rendered to hardware:
// consumed samples minus the device buffer still in flight.
func (s *Sink) Position() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	played := time.Duration(s.pulled) * time.Second / time.Duration(s.rate)
	played -= deviceBuffer
	if played < 0 {
		played = 0
	}
	return s.base + played
}

// SetPaused freezes or resumes consumption at the next pull.
func (s *Sink) SetPaused(paused bool) {
	s.mu.Lock()
	s.paused = paused
	s.mu.Unlock()
}

// SetMuted zeroes output while still consuming, so the clock advances.
func (s *Sink) SetMuted(muted bool) {
	s.mu.Lock()
	s.muted = muted
	s.mu.Unlock()
}

// SetVolume scales output samples, clamped to [0, 2].
func (s *Sink) SetVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 2 {
		volume = 2
	}
	s.mu.Lock()
	s.volume = volume
	s.mu.Unlock()
}

// Flush discards queued samples that have not reached the device.
func (s *Sink) Flush() {
	s.mu.Lock()
	s.queue = s.queue[:0]
	s.head = 0
	s.slack.Broadcast()
	s.mu.Unlock()
}

// SetPosition re-bases the clock after a seek or loop restart.
func (s *Sink) SetPosition(pos time.Duration) {
	s.mu.Lock()
	s.base = pos
	s.pulled = 0
	s.mu.Unlock()
}

// Drained reports whether every enqueued sample has been consumed.
func (s *Sink) Drained() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.head >= len(s.queue)
}

// Close stops the streamer and releases blocked producers.
func (s *Sink) Close() error {
	s.mu.Lock()
	s.closed = true
	s.queue = nil
	s.head = 0
	s.slack.Broadcast()
	started := s.started
	s.mu.Unlock()
	if started {
		speaker.Clear()
	}
	return nil
}

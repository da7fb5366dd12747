package ports

import "time"

// AudioSink streams decoded PCM samples to an output device and exposes
// the playback position as the authoritative clock for synchronization.
type AudioSink interface {
	// Start initializes the output device. When no device is available
	// the error is reported once and the session continues video-only.
	Start() error

	// Enqueue submits a block of samples in stream order. It blocks while
	// the sink's buffer is full, which backpressures the decode path.
	Enqueue(block [][2]float64) error

	// Position is a best-effort estimate of how much audio has actually
	// been rendered to hardware, not merely submitted.
	Position() time.Duration

	// SetPaused silences output without consuming samples. The position
	// freezes at its last value. Takes effect at the next buffer boundary.
	SetPaused(paused bool)

	// SetMuted zeroes output samples while still consuming them, so the
	// position keeps advancing. Takes effect at the next buffer boundary.
	SetMuted(muted bool)

	// SetVolume scales output samples. Values are clamped to [0, 2].
	SetVolume(volume float64)

	// Flush discards queued samples that have not reached the device.
	// Used on seek so stale audio never plays after the jump.
	Flush()

	// SetPosition re-bases the playback position after a seek or loop
	// restart.
	SetPosition(pos time.Duration)

	// Drained reports whether every enqueued sample has been played.
	Drained() bool

	// Close releases the output device.
	Close() error
}

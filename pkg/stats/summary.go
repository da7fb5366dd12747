// Package stats provides summary generation for playback sessions.
package stats

import "time"

// Summary contains all data collected during a playback session.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Media information
	Media MediaInfo

	// What actually happened during playback
	Playback PlaybackInfo

	// Playback settings
	Settings Settings
}

// MediaInfo describes the file that was played.
type MediaInfo struct {
	Path       string
	Kind       string // video, audio, image
	Format     string
	DurationMs int

	VideoCodec string
	Width      int
	Height     int
	FPS        float64

	AudioCodec string
	SampleRate int
	Channels   int
}

// PlaybackInfo contains playback measurements.
type PlaybackInfo struct {
	ElapsedMs      int
	FramesRendered int
	FramesDropped  int
	StarvedPolls   int
	Loops          int
	Seeks          int
	MaxLagMs       int
}

// Settings contains the playback configuration.
type Settings struct {
	CharMap       string
	Grayscale     bool
	Color         string // ansi256, truecolor, none
	WidthModifier int
	GridWidth     int
	GridHeight    int

	Loop      bool
	FrameSkip bool
	Audio     bool

	// Sync tolerances (ms)
	ToleranceEarlyMs    int
	ToleranceLateMs     int
	MaxConsecutiveDrops int
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithMedia sets media information.
func (b *Builder) WithMedia(media MediaInfo) *Builder {
	b.summary.Media = media
	return b
}

// WithPlayback sets playback measurements.
func (b *Builder) WithPlayback(playback PlaybackInfo) *Builder {
	b.summary.Playback = playback
	return b
}

// WithSettings sets playback settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}

// Package termplay provides a high-level API for terminal media
// playback. Library users build a Config and hand it to the CLI-level
// wiring or their own adapter set.
package termplay

import (
	"time"

	"github.com/user/termplay/pkg/player"
	"github.com/user/termplay/pkg/ports"
)

// ColorMode selects the terminal color encoding.
type ColorMode string

const (
	ColorAuto ColorMode = "auto" // truecolor when COLORTERM advertises it
	Color256  ColorMode = "256"
	ColorTrue ColorMode = "true"
	ColorNone ColorMode = "none"
)

// Config represents the playback configuration for termplay.
type Config struct {
	// Render
	CharMap       int       // character map index (0-9)
	Grayscale     bool      // render without color
	Color         ColorMode // terminal color encoding
	WidthModifier int       // terminal columns per grid cell (min: 1)
	Newlines      bool      // emit \r\n between rows

	// Sync
	ToleranceEarly      time.Duration // early frames beyond this wait
	ToleranceLate       time.Duration // late frames beyond this may drop
	MaxConsecutiveDrops int           // catch-up bound before a forced render
	AllowFrameSkip      bool          // permit dropping late frames

	// Playback
	Loop        bool          // restart from zero at end of stream
	FPSOverride float64       // fixed cadence instead of container timestamps
	SeekStep    time.Duration // arrow-key seek distance

	// Audio
	NoAudio bool    // decode and render video only
	Muted   bool    // start muted
	Volume  float64 // initial volume (0.0-2.0)
}

// DefaultConfig returns the default playback configuration.
func DefaultConfig() Config {
	sync := player.DefaultSyncConfig()
	return Config{
		Color:               ColorAuto,
		WidthModifier:       2,
		Newlines:            true,
		ToleranceEarly:      sync.ToleranceEarly,
		ToleranceLate:       sync.ToleranceLate,
		MaxConsecutiveDrops: sync.MaxConsecutiveDrops,
		AllowFrameSkip:      true,
		SeekStep:            5 * time.Second,
		Volume:              1.0,
	}
}

// ToPlayerConfig converts the public configuration into the player's,
// attaching the probed media info.
func (c Config) ToPlayerConfig(info ports.MediaInfo) player.Config {
	cfg := player.DefaultConfig()
	cfg.Info = info
	cfg.Sync = player.SyncConfig{
		ToleranceEarly:      c.ToleranceEarly,
		ToleranceLate:       c.ToleranceLate,
		MaxConsecutiveDrops: c.MaxConsecutiveDrops,
		AllowFrameSkip:      c.AllowFrameSkip,
		WakeEpsilon:         player.DefaultSyncConfig().WakeEpsilon,
		StarvationPoll:      player.DefaultSyncConfig().StarvationPoll,
	}
	cfg.Loop = c.Loop
	cfg.CharMap = c.CharMap
	cfg.Grayscale = c.Grayscale
	cfg.WidthModifier = c.WidthModifier
	cfg.Volume = c.Volume
	cfg.Muted = c.Muted
	cfg.SeekStep = c.SeekStep
	cfg.ColorMode = string(c.Color)
	return cfg
}

// ConfigBuilder provides a fluent interface for building a Config.
type ConfigBuilder struct {
	config Config
}

// NewConfigBuilder creates a builder seeded with the defaults.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{config: DefaultConfig()}
}

// WithCharMap sets the character map index (0-9, wrapped).
func (b *ConfigBuilder) WithCharMap(index int) *ConfigBuilder {
	b.config.CharMap = index
	return b
}

// WithGrayscale enables or disables grayscale rendering.
func (b *ConfigBuilder) WithGrayscale(gray bool) *ConfigBuilder {
	b.config.Grayscale = gray
	return b
}

// WithColor sets the terminal color encoding.
func (b *ConfigBuilder) WithColor(mode ColorMode) *ConfigBuilder {
	b.config.Color = mode
	return b
}

// WithWidthModifier sets how many terminal columns one grid cell spans.
func (b *ConfigBuilder) WithWidthModifier(mod int) *ConfigBuilder {
	if mod < 1 {
		mod = 1
	}
	b.config.WidthModifier = mod
	return b
}

// WithNewlines toggles \r\n separators between grid rows.
func (b *ConfigBuilder) WithNewlines(newlines bool) *ConfigBuilder {
	b.config.Newlines = newlines
	return b
}

// WithTolerances sets the drift window for the frame scheduler.
func (b *ConfigBuilder) WithTolerances(early, late time.Duration) *ConfigBuilder {
	b.config.ToleranceEarly = early
	b.config.ToleranceLate = late
	return b
}

// WithMaxConsecutiveDrops bounds the catch-up loop.
func (b *ConfigBuilder) WithMaxConsecutiveDrops(n int) *ConfigBuilder {
	b.config.MaxConsecutiveDrops = n
	return b
}

// WithFrameSkip permits or forbids dropping late frames.
func (b *ConfigBuilder) WithFrameSkip(allow bool) *ConfigBuilder {
	b.config.AllowFrameSkip = allow
	return b
}

// WithLoop enables looping playback.
func (b *ConfigBuilder) WithLoop(loop bool) *ConfigBuilder {
	b.config.Loop = loop
	return b
}

// WithFPSOverride forces a fixed frame cadence.
func (b *ConfigBuilder) WithFPSOverride(fps float64) *ConfigBuilder {
	b.config.FPSOverride = fps
	return b
}

// WithSeekStep sets the arrow-key seek distance.
func (b *ConfigBuilder) WithSeekStep(step time.Duration) *ConfigBuilder {
	b.config.SeekStep = step
	return b
}

// WithNoAudio disables the audio path entirely.
func (b *ConfigBuilder) WithNoAudio(noAudio bool) *ConfigBuilder {
	b.config.NoAudio = noAudio
	return b
}

// WithMuted starts playback muted.
func (b *ConfigBuilder) WithMuted(muted bool) *ConfigBuilder {
	b.config.Muted = muted
	return b
}

// WithVolume sets the initial volume, clamped to [0, 2].
func (b *ConfigBuilder) WithVolume(volume float64) *ConfigBuilder {
	if volume < 0 {
		volume = 0
	}
	if volume > 2 {
		volume = 2
	}
	b.config.Volume = volume
	return b
}

// Build returns the constructed Config.
func (b *ConfigBuilder) Build() Config {
	return b.config
}

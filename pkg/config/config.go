// Package config provides configuration loading and management.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for termplay.
type Config struct {
	// Render
	CharMap       int    `yaml:"char_map"`
	Grayscale     bool   `yaml:"grayscale"`
	Color         string `yaml:"color"` // auto, 256, true, none
	WidthModifier int    `yaml:"width_modifier"`
	Newlines      bool   `yaml:"newlines"`

	// Sync
	Sync SyncConfig `yaml:"sync"`

	// Playback
	Loop        bool    `yaml:"loop"`
	FPS         float64 `yaml:"fps"` // 0 uses the container's timestamps
	SeekStepSec int     `yaml:"seek_step_sec"`

	// Audio
	Audio AudioConfig `yaml:"audio"`

	// Summary
	SummaryPath string `yaml:"summary"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`

	// Logging
	LogLevel string `yaml:"log_level"`
	Quiet    bool   `yaml:"quiet"`
}

// SyncConfig represents the frame scheduling tolerances.
type SyncConfig struct {
	ToleranceEarlyMs    int  `yaml:"tolerance_early_ms"`
	ToleranceLateMs     int  `yaml:"tolerance_late_ms"`
	MaxConsecutiveDrops int  `yaml:"max_consecutive_drops"`
	AllowFrameSkip      bool `yaml:"allow_frame_skip"`
}

// AudioConfig represents the audio output settings.
type AudioConfig struct {
	Disabled bool    `yaml:"disabled"`
	Muted    bool    `yaml:"muted"`
	Volume   float64 `yaml:"volume"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		// Render
		Color:         "auto",
		WidthModifier: 2,
		Newlines:      true,

		// Sync
		Sync: SyncConfig{
			ToleranceEarlyMs:    100,
			ToleranceLateMs:     50,
			MaxConsecutiveDrops: 5,
			AllowFrameSkip:      true,
		},

		// Playback
		SeekStepSec: 5,

		// Audio
		Audio: AudioConfig{
			Volume: 1.0,
		},

		// Debug
		DebugDir: "./debug",

		// Logging
		LogLevel: "info",
	}
}

// LoadFromFile loads configuration from a YAML file on top of the
// defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Save writes the configuration to a YAML file.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

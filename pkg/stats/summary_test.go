package stats

import (
	"testing"
	"time"
)

func TestNewSummary(t *testing.T) {
	before := time.Now()
	summary := NewSummary()
	after := time.Now()

	if summary.GeneratedAt.Before(before) || summary.GeneratedAt.After(after) {
		t.Errorf("GeneratedAt should be between %v and %v, got %v",
			before, after, summary.GeneratedAt)
	}
}

func TestBuilder_WithMedia(t *testing.T) {
	summary := NewBuilder().
		WithMedia(MediaInfo{
			Path:   "/tmp/clip.mp4",
			Kind:   "video",
			Format: "mp4",
			Width:  1920,
			Height: 1080,
			FPS:    29.97,
		}).
		Build()

	if summary.Media.Path != "/tmp/clip.mp4" {
		t.Errorf("expected path '/tmp/clip.mp4', got '%s'", summary.Media.Path)
	}
	if summary.Media.Kind != "video" {
		t.Errorf("expected kind 'video', got '%s'", summary.Media.Kind)
	}
	if summary.Media.Width != 1920 || summary.Media.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", summary.Media.Width, summary.Media.Height)
	}
}

func TestBuilder_WithPlayback(t *testing.T) {
	summary := NewBuilder().
		WithPlayback(PlaybackInfo{
			ElapsedMs:      10000,
			FramesRendered: 300,
			FramesDropped:  5,
			MaxLagMs:       80,
		}).
		Build()

	if summary.Playback.FramesRendered != 300 {
		t.Errorf("expected 300 rendered, got %d", summary.Playback.FramesRendered)
	}
	if summary.Playback.FramesDropped != 5 {
		t.Errorf("expected 5 dropped, got %d", summary.Playback.FramesDropped)
	}
}

func TestBuilder_Chaining(t *testing.T) {
	summary := NewBuilder().
		WithMedia(MediaInfo{Path: "a.gif", Kind: "image"}).
		WithPlayback(PlaybackInfo{FramesRendered: 1}).
		WithSettings(Settings{CharMap: "blocks", WidthModifier: 2}).
		Build()

	if summary.Media.Kind != "image" {
		t.Errorf("expected kind 'image', got '%s'", summary.Media.Kind)
	}
	if summary.Settings.CharMap != "blocks" {
		t.Errorf("expected char map 'blocks', got '%s'", summary.Settings.CharMap)
	}
}

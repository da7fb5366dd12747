package stats

import (
	"strings"
	"testing"
)

func TestMarkdownFormatter_Format(t *testing.T) {
	result := NewMarkdownFormatter().Format(sampleSummary())

	checks := []string{
		"# Playback Summary",
		"## Media",
		"## Playback",
		"## Settings",
		"- Path: /videos/demo.mp4",
		"- Video: 1280x720 h264, 30.00 fps",
		"- Audio: 44100 Hz, 2 channels aac",
		"- Frames rendered: 3690",
		"- Frames dropped: 12",
		"- Max lag: 87 ms",
		"- Grid: 96x54 (width modifier 2)",
		"- Tolerances: early 100 ms, late 50 ms, max drops 5",
	}
	for _, want := range checks {
		if !strings.Contains(result, want) {
			t.Errorf("markdown output missing %q:\n%s", want, result)
		}
	}
}

func TestMarkdownFormatter_SkipsUnknownMedia(t *testing.T) {
	s := sampleSummary()
	s.Media.DurationMs = 0
	s.Media.Width = 0
	s.Media.SampleRate = 0

	result := NewMarkdownFormatter().Format(s)

	for _, unwanted := range []string{"- Duration:", "- Video:", "- Audio: 0 Hz"} {
		if strings.Contains(result, unwanted) {
			t.Errorf("markdown output should omit %q:\n%s", unwanted, result)
		}
	}
}

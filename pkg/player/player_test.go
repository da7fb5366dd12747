package player

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/user/termplay/pkg/adapters/logger"
	"github.com/user/termplay/pkg/mocks"
	"github.com/user/termplay/pkg/ports"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{-time.Second, "00:00"},
		{59 * time.Second, "00:59"},
		{61 * time.Second, "01:01"},
		{125 * time.Minute, "125:00"},
	}
	for _, tt := range tests {
		if got := formatClock(tt.d); got != tt.want {
			t.Errorf("formatClock(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestFormatProgress(t *testing.T) {
	line := formatProgress(30*time.Second, 60*time.Second, 40)
	if !strings.Contains(line, "00:30 / 01:00") {
		t.Errorf("missing position label: %q", line)
	}
	if !strings.HasPrefix(line, "[") {
		t.Errorf("missing bar: %q", line)
	}
	// cols 40, label 13 wide: bar width 23, half of it filled.
	if filled := strings.Count(line, "="); filled != 11 {
		t.Errorf("bar fill = %d, want 11: %q", filled, line)
	}

	// Too narrow for a bar: label only.
	if line := formatProgress(0, time.Minute, 12); strings.Contains(line, "[") {
		t.Errorf("narrow terminal should drop the bar: %q", line)
	}

	// Unknown duration: empty bar, no panic.
	if line := formatProgress(5*time.Second, 0, 40); strings.Count(line, "=") != 0 {
		t.Errorf("unknown duration should leave the bar empty: %q", line)
	}
}

func TestRun_AudioOnlyCompletesWhenDrained(t *testing.T) {
	source := &mocks.FrameSource{} // no frames, immediately finished
	audio := &mocks.AudioSink{Pos: 2 * time.Second}
	screen := &mocks.Screen{}
	cfg := Config{
		Info:         ports.MediaInfo{Path: "song.mp3", Type: ports.MediaTypeAudio, HasAudio: true, Duration: 2 * time.Second},
		Sync:         DefaultSyncConfig(),
		Volume:       1.0,
		SeekStep:     5 * time.Second,
		VolumeStep:   0.1,
		DrainTimeout: 100 * time.Millisecond,
		DrainPoll:    2 * time.Millisecond,
	}
	p := New(cfg, logger.NewNoop(), source, nil, audio, NewMonotonicClock(),
		&mocks.FrameRenderer{}, &mocks.GridEncoder{}, &mocks.GridEncoder{}, screen, &mocks.Sink{})

	summary, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if summary == nil {
		t.Fatal("Run() returned nil summary")
	}
	if screen.WriteCount() < 1 {
		t.Error("no progress line was written")
	}
	if !audio.Closed {
		t.Error("audio sink was not closed")
	}
}

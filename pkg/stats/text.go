package stats

import (
	"fmt"
	"strings"
)

// TextFormatter renders a Summary as plain text for the console.
type TextFormatter struct{}

// NewTextFormatter creates a new TextFormatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format converts the summary to an indented text block.
func (f *TextFormatter) Format(summary *Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Playback summary\n")
	fmt.Fprintf(&b, "  Media:     %s (%s", summary.Media.Path, summary.Media.Kind)
	if summary.Media.Format != "" {
		fmt.Fprintf(&b, ", %s", summary.Media.Format)
	}
	fmt.Fprintf(&b, ")\n")

	if summary.Media.Width > 0 {
		fmt.Fprintf(&b, "  Video:     %dx%d", summary.Media.Width, summary.Media.Height)
		if summary.Media.VideoCodec != "" {
			fmt.Fprintf(&b, " %s", summary.Media.VideoCodec)
		}
		if summary.Media.FPS > 0 {
			fmt.Fprintf(&b, " at %.2f fps", summary.Media.FPS)
		}
		fmt.Fprintf(&b, "\n")
	}
	if summary.Media.SampleRate > 0 {
		fmt.Fprintf(&b, "  Audio:     %d Hz, %d channels", summary.Media.SampleRate, summary.Media.Channels)
		if summary.Media.AudioCodec != "" {
			fmt.Fprintf(&b, " %s", summary.Media.AudioCodec)
		}
		fmt.Fprintf(&b, "\n")
	}
	if summary.Media.DurationMs > 0 {
		fmt.Fprintf(&b, "  Duration:  %s\n", FormatDuration(summary.Media.DurationMs))
	}

	fmt.Fprintf(&b, "  Elapsed:   %s\n", FormatDuration(summary.Playback.ElapsedMs))
	fmt.Fprintf(&b, "  Frames:    %d rendered, %d dropped%s\n",
		summary.Playback.FramesRendered, summary.Playback.FramesDropped,
		dropRate(summary.Playback))
	if fps := EffectiveFPS(summary.Playback); fps > 0 {
		fmt.Fprintf(&b, "  Effective: %.1f fps\n", fps)
	}
	if summary.Playback.MaxLagMs > 0 {
		fmt.Fprintf(&b, "  Max lag:   %d ms\n", summary.Playback.MaxLagMs)
	}
	if summary.Playback.Loops > 0 {
		fmt.Fprintf(&b, "  Loops:     %d\n", summary.Playback.Loops)
	}
	if summary.Playback.Seeks > 0 {
		fmt.Fprintf(&b, "  Seeks:     %d\n", summary.Playback.Seeks)
	}

	fmt.Fprintf(&b, "  Char map:  %s%s\n", summary.Settings.CharMap, graySuffix(summary.Settings))
	fmt.Fprintf(&b, "  Grid:      %dx%d (width modifier %d, %s)\n",
		summary.Settings.GridWidth, summary.Settings.GridHeight,
		summary.Settings.WidthModifier, summary.Settings.Color)
	fmt.Fprintf(&b, "  Sync:      early %d ms, late %d ms, max drops %d\n",
		summary.Settings.ToleranceEarlyMs, summary.Settings.ToleranceLateMs,
		summary.Settings.MaxConsecutiveDrops)

	return b.String()
}

func dropRate(p PlaybackInfo) string {
	total := p.FramesRendered + p.FramesDropped
	if total == 0 || p.FramesDropped == 0 {
		return ""
	}
	return fmt.Sprintf(" (%.1f%%)", float64(p.FramesDropped)/float64(total)*100)
}

func graySuffix(s Settings) string {
	if s.Grayscale {
		return " (grayscale)"
	}
	return ""
}

// EffectiveFPS derives the achieved frame rate from the playback info.
func EffectiveFPS(p PlaybackInfo) float64 {
	if p.ElapsedMs <= 0 {
		return 0
	}
	return float64(p.FramesRendered) * 1000 / float64(p.ElapsedMs)
}

// FormatDuration renders milliseconds as mm:ss or h:mm:ss.
func FormatDuration(ms int) string {
	if ms < 0 {
		ms = 0
	}
	totalSec := ms / 1000
	h := totalSec / 3600
	m := (totalSec % 3600) / 60
	s := totalSec % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

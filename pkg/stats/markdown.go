package stats

import (
	"fmt"
	"strings"
)

// MarkdownFormatter renders a Summary as a markdown report, for saving
// alongside debug artifacts.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format converts the summary to markdown.
func (f *MarkdownFormatter) Format(summary *Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Playback Summary\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", summary.GeneratedAt.Format("2006-01-02 15:04:05"))

	fmt.Fprintf(&b, "## Media\n\n")
	fmt.Fprintf(&b, "- Path: %s\n", summary.Media.Path)
	fmt.Fprintf(&b, "- Kind: %s\n", summary.Media.Kind)
	if summary.Media.Format != "" {
		fmt.Fprintf(&b, "- Format: %s\n", summary.Media.Format)
	}
	if summary.Media.DurationMs > 0 {
		fmt.Fprintf(&b, "- Duration: %s\n", FormatDuration(summary.Media.DurationMs))
	}
	if summary.Media.Width > 0 {
		fmt.Fprintf(&b, "- Video: %dx%d %s, %.2f fps\n",
			summary.Media.Width, summary.Media.Height,
			summary.Media.VideoCodec, summary.Media.FPS)
	}
	if summary.Media.SampleRate > 0 {
		fmt.Fprintf(&b, "- Audio: %d Hz, %d channels %s\n",
			summary.Media.SampleRate, summary.Media.Channels, summary.Media.AudioCodec)
	}

	fmt.Fprintf(&b, "\n## Playback\n\n")
	fmt.Fprintf(&b, "- Elapsed: %s\n", FormatDuration(summary.Playback.ElapsedMs))
	fmt.Fprintf(&b, "- Frames rendered: %d\n", summary.Playback.FramesRendered)
	fmt.Fprintf(&b, "- Frames dropped: %d%s\n", summary.Playback.FramesDropped, dropRate(summary.Playback))
	if fps := EffectiveFPS(summary.Playback); fps > 0 {
		fmt.Fprintf(&b, "- Effective frame rate: %.1f fps\n", fps)
	}
	fmt.Fprintf(&b, "- Max lag: %d ms\n", summary.Playback.MaxLagMs)
	fmt.Fprintf(&b, "- Starvation polls: %d\n", summary.Playback.StarvedPolls)
	fmt.Fprintf(&b, "- Loops: %d\n", summary.Playback.Loops)
	fmt.Fprintf(&b, "- Seeks: %d\n", summary.Playback.Seeks)

	fmt.Fprintf(&b, "\n## Settings\n\n")
	fmt.Fprintf(&b, "- Character map: %s\n", summary.Settings.CharMap)
	fmt.Fprintf(&b, "- Grayscale: %t\n", summary.Settings.Grayscale)
	fmt.Fprintf(&b, "- Color: %s\n", summary.Settings.Color)
	fmt.Fprintf(&b, "- Grid: %dx%d (width modifier %d)\n",
		summary.Settings.GridWidth, summary.Settings.GridHeight, summary.Settings.WidthModifier)
	fmt.Fprintf(&b, "- Loop: %t\n", summary.Settings.Loop)
	fmt.Fprintf(&b, "- Frame skip: %t\n", summary.Settings.FrameSkip)
	fmt.Fprintf(&b, "- Audio: %t\n", summary.Settings.Audio)
	fmt.Fprintf(&b, "- Tolerances: early %d ms, late %d ms, max drops %d\n",
		summary.Settings.ToleranceEarlyMs, summary.Settings.ToleranceLateMs,
		summary.Settings.MaxConsecutiveDrops)

	return b.String()
}

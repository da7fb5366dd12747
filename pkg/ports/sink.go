package ports

// DebugSink receives intermediate playback artifacts for inspection.
// Implementations must be safe to call from the scheduler thread; when
// Enabled returns false all Save methods are skipped by callers.
type DebugSink interface {
	// Enabled reports whether debug output is active.
	Enabled() bool

	// SaveGridText stores the encoded terminal bytes of a rendered frame.
	SaveGridText(index int, data []byte) error

	// SaveGridImage stores a raster preview of a rendered grid.
	SaveGridImage(index int, grid *Grid) error

	// SaveProbeJSON stores the media metadata gathered before playback.
	SaveProbeJSON(data []byte) error

	// SaveSummary stores the formatted end-of-session summary.
	SaveSummary(data []byte) error
}

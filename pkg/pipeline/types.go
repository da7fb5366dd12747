package pipeline

import (
	"github.com/user/termplay/pkg/ports"
)

// =============================================================================
// Fetch Stage Types
// =============================================================================

// FetchInput names a remote media resource.
type FetchInput struct {
	URL string
}

// FetchResult is the local materialization of a fetched resource.
type FetchResult struct {
	// Path is a playable local file.
	Path string
	// Temp reports that Path is a downloaded temporary file owned by
	// the session; it is removed when the session ends.
	Temp bool
}

// =============================================================================
// Probe Stage Types
// =============================================================================

// ProbeInput names a local media file to inspect.
type ProbeInput struct {
	Path string
}

// ProbeResult carries the metadata gathered before playback starts.
type ProbeResult struct {
	Info ports.MediaInfo
}

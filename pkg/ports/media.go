package ports

import (
	"context"
	"image"
	"time"
)

// MediaType classifies the primary content of a media file.
type MediaType int

const (
	MediaTypeUnknown MediaType = iota
	MediaTypeVideo
	MediaTypeAudio
	MediaTypeImage
)

// String returns the string representation of the media type.
func (t MediaType) String() string {
	switch t {
	case MediaTypeVideo:
		return "video"
	case MediaTypeAudio:
		return "audio"
	case MediaTypeImage:
		return "image"
	default:
		return "unknown"
	}
}

// MediaInfo describes a media file as reported by a prober.
type MediaInfo struct {
	Path     string
	Type     MediaType
	Format   string // container or image format name
	Duration time.Duration

	HasVideo   bool
	Width      int
	Height     int
	FPS        float64 // 0 when unknown
	VideoCodec string

	HasAudio   bool
	SampleRate int
	Channels   int
	AudioCodec string
}

// Frame is a decoded video frame tagged with its presentation timestamp.
// Frames are immutable once produced.
type Frame struct {
	Image image.Image
	PTS   time.Duration // offset from stream start
	Index int
}

// FrameSource delivers an ordered sequence of decoded frames with
// monotonically increasing presentation timestamps. Production runs ahead
// of consumption up to a bounded look-ahead buffer; a full buffer pauses
// decoding and an empty one must never block the consumer.
type FrameSource interface {
	// Start begins decoding into the look-ahead buffer. Returns an error
	// when the container cannot be opened or read.
	Start(ctx context.Context) error

	// Next returns the next pending frame without blocking. The second
	// return value is false when no frame is ready yet.
	Next() (*Frame, bool)

	// Finished reports whether the stream reached its end and the
	// look-ahead buffer is drained.
	Finished() bool

	// Rewind restarts the stream from position zero. The next frame
	// returned by Next carries the stream's start timestamp.
	Rewind() error

	// Seek discards buffered frames and repositions the stream so that
	// subsequent frames have timestamps at or after pos.
	Seek(pos time.Duration) error

	// Close releases decoder resources.
	Close() error
}

// SampleSource exposes the decoded audio path of a media source. Sample
// blocks are interleaved stereo pairs in stream order. The channel closes
// when the audio stream ends.
type SampleSource interface {
	Samples() <-chan [][2]float64
	SampleRate() int
}

// MediaProber inspects a media file and reports its metadata without
// starting playback.
type MediaProber interface {
	Probe(path string) (MediaInfo, error)
}

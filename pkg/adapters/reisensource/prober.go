package reisensource

import (
	"fmt"

	"github.com/zergon321/reisen"

	"github.com/user/termplay/pkg/ports"
)

// Prober reads container metadata through reisen without decoding.
// It is the generic fallback behind the format-specific probes.
type Prober struct{}

var _ ports.MediaProber = (*Prober)(nil)

func NewProber() *Prober {
	return &Prober{}
}

// Probe opens the container and reports its streams.
func (p *Prober) Probe(path string) (ports.MediaInfo, error) {
	media, err := reisen.NewMedia(path)
	if err != nil {
		return ports.MediaInfo{}, fmt.Errorf("reisensource: probe %s: %w", path, err)
	}
	defer media.Close()

	info := ports.MediaInfo{
		Path:   path,
		Format: media.FormatName(),
	}
	if dur, err := media.Duration(); err == nil {
		info.Duration = dur
	}

	if streams := media.VideoStreams(); len(streams) > 0 {
		v := streams[0]
		info.HasVideo = true
		info.Width = v.Width()
		info.Height = v.Height()
		info.VideoCodec = v.CodecName()
		if num, den := v.FrameRate(); num > 0 && den > 0 {
			info.FPS = float64(num) / float64(den)
		}
	}
	if streams := media.AudioStreams(); len(streams) > 0 {
		a := streams[0]
		info.HasAudio = true
		info.SampleRate = a.SampleRate()
		info.Channels = a.ChannelCount()
		info.AudioCodec = a.CodecName()
	}

	switch {
	case info.HasVideo:
		info.Type = ports.MediaTypeVideo
	case info.HasAudio:
		info.Type = ports.MediaTypeAudio
	default:
		info.Type = ports.MediaTypeUnknown
	}
	return info, nil
}

// Package mp4probe reads MP4 metadata directly from the container
// boxes. It avoids spinning up the full decoder just to answer what a
// file contains.
package mp4probe

import (
	"fmt"
	"os"
	"time"

	"github.com/Eyevinn/mp4ff/mp4"

	"github.com/user/termplay/pkg/ports"
)

// Prober implements ports.MediaProber for MP4 family containers.
type Prober struct{}

var _ ports.MediaProber = (*Prober)(nil)

func New() *Prober {
	return &Prober{}
}

// Probe parses the box structure and reports the file's tracks.
func (p *Prober) Probe(path string) (ports.MediaInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return ports.MediaInfo{}, fmt.Errorf("mp4probe: open %s: %w", path, err)
	}
	defer f.Close()

	mp4File, err := mp4.DecodeFile(f)
	if err != nil {
		return ports.MediaInfo{}, fmt.Errorf("mp4probe: decode %s: %w", path, err)
	}

	moov := mp4File.Moov
	if moov == nil && mp4File.Init != nil {
		moov = mp4File.Init.Moov
	}
	if moov == nil {
		return ports.MediaInfo{}, fmt.Errorf("mp4probe: %s: no moov box", path)
	}

	info := ports.MediaInfo{Path: path, Format: "mp4"}
	if moov.Mvhd != nil && moov.Mvhd.Timescale > 0 {
		info.Duration = time.Duration(moov.Mvhd.Duration) * time.Second / time.Duration(moov.Mvhd.Timescale)
	}

	for _, trak := range moov.Traks {
		describeTrack(trak, &info)
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

// describeTrack folds one trak box into the media info.
func describeTrack(trak *mp4.TrakBox, info *ports.MediaInfo) {
	if trak.Mdia == nil || trak.Mdia.Hdlr == nil {
		return
	}

	switch trak.Mdia.Hdlr.HandlerType {
	case "vide":
		if info.HasVideo {
			return
		}
		info.HasVideo = true
		if trak.Tkhd != nil {
			// Width and height are 16.16 fixed point.
			info.Width = int(trak.Tkhd.Width >> 16)
			info.Height = int(trak.Tkhd.Height >> 16)
		}
		info.VideoCodec = codecName(trak)
		info.FPS = trackFPS(trak)

	case "soun":
		if info.HasAudio {
			return
		}
		info.HasAudio = true
		info.AudioCodec = codecName(trak)
		if entry := audioEntry(trak); entry != nil {
			info.Channels = int(entry.ChannelCount)
			info.SampleRate = int(entry.SampleRate)
		}
	}
}

// codecName maps the sample description box type to a codec name.
func codecName(trak *mp4.TrakBox) string {
	stsd := sampleDescriptions(trak)
	if stsd == nil {
		return ""
	}
	for _, child := range stsd.Children {
		switch child.Type() {
		case "avc1", "avc3":
			return "h264"
		case "hvc1", "hev1":
			return "hevc"
		case "av01":
			return "av1"
		case "vp09":
			return "vp9"
		case "mp4a":
			return "aac"
		case "ac-3":
			return "ac3"
		case "Opus":
			return "opus"
		}
	}
	return ""
}

// trackFPS derives the average frame rate from sample count and track
// duration in the media timescale.
func trackFPS(trak *mp4.TrakBox) float64 {
	if trak.Mdia.Mdhd == nil || trak.Mdia.Mdhd.Timescale == 0 || trak.Mdia.Mdhd.Duration == 0 {
		return 0
	}
	if trak.Mdia.Minf == nil || trak.Mdia.Minf.Stbl == nil || trak.Mdia.Minf.Stbl.Stsz == nil {
		return 0
	}
	samples := trak.Mdia.Minf.Stbl.Stsz.SampleNumber
	if samples == 0 {
		return 0
	}
	seconds := float64(trak.Mdia.Mdhd.Duration) / float64(trak.Mdia.Mdhd.Timescale)
	if seconds <= 0 {
		return 0
	}
	return float64(samples) / seconds
}

func sampleDescriptions(trak *mp4.TrakBox) *mp4.StsdBox {
	if trak.Mdia.Minf == nil || trak.Mdia.Minf.Stbl == nil {
		return nil
	}
	return trak.Mdia.Minf.Stbl.Stsd
}

func audioEntry(trak *mp4.TrakBox) *mp4.AudioSampleEntryBox {
	stsd := sampleDescriptions(trak)
	if stsd == nil {
		return nil
	}
	for _, child := range stsd.Children {
		if entry, ok := child.(*mp4.AudioSampleEntryBox); ok {
			return entry
		}
	}
	return nil
}

// Handles reports whether path looks like an MP4 family file.
func Handles(ext string) bool {
	switch ext {
	case ".mp4", ".m4v", ".m4a", ".mov":
		return true
	}
	return false
}

// Package smartprobe selects the right metadata probe for an input
// file: the image decoder for pictures, the box walker for MP4 family
// containers, and the generic ffmpeg probe for everything else.
package smartprobe

import (
	"path/filepath"
	"strings"

	"github.com/user/termplay/pkg/adapters/imagesource"
	"github.com/user/termplay/pkg/adapters/mp4probe"
	"github.com/user/termplay/pkg/adapters/reisensource"
	"github.com/user/termplay/pkg/ports"
)

// Prober dispatches by file extension, falling back to the generic
// probe when the fast path fails or no extension matches.
type Prober struct {
	image   ports.MediaProber
	mp4     ports.MediaProber
	generic ports.MediaProber
	log     ports.Logger
}

var _ ports.MediaProber = (*Prober)(nil)

func New(log ports.Logger) *Prober {
	return &Prober{
		image:   imagesource.NewProber(),
		mp4:     mp4probe.New(),
		generic: reisensource.NewProber(),
		log:     log.WithComponent("probe"),
	}
}

// Probe inspects path and reports its media metadata.
func (p *Prober) Probe(path string) (ports.MediaInfo, error) {
	ext := strings.ToLower(filepath.Ext(path))

	if isImageExt(ext) {
		info, err := p.image.Probe(path)
		if err == nil {
			return info, nil
		}
		p.log.Debug("Image probe failed, trying generic: %s", err)
		return p.generic.Probe(path)
	}

	if mp4probe.Handles(ext) {
		info, err := p.mp4.Probe(path)
		if err == nil {
			return info, nil
		}
		p.log.Debug("MP4 probe failed, trying generic: %s", err)
	}

	return p.generic.Probe(path)
}

func isImageExt(ext string) bool {
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tiff", ".tif", ".webp":
		return true
	}
	return false
}

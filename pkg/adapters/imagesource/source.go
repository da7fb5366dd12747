// Package imagesource serves still images through the FrameSource
// contract: one frame at timestamp zero, then a finished stream. The
// scheduler's hold path keeps the frame on screen and re-renders it
// when display settings change.
package imagesource

import (
	"context"
	"fmt"
	"image"
	"os"
	"sync"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/user/termplay/pkg/ports"
)

// Source yields a single decoded image as frame zero.
type Source struct {
	path string

	mu      sync.Mutex
	img     image.Image
	emitted bool
}

var _ ports.FrameSource = (*Source)(nil)

func New(path string) *Source {
	return &Source{path: path}
}

// Start decodes the image. A file that cannot be decoded is a
// stream-level failure.
func (s *Source) Start(ctx context.Context) error {
	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("imagesource: open %s: %w", s.path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("imagesource: decode %s: %w", s.path, err)
	}

	s.mu.Lock()
	s.img = img
	s.emitted = false
	s.mu.Unlock()
	return nil
}

func (s *Source) Next() (*ports.Frame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.img == nil || s.emitted {
		return nil, false
	}
	s.emitted = true
	return &ports.Frame{Image: s.img, PTS: 0, Index: 0}, true
}

func (s *Source) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.img == nil || s.emitted
}

func (s *Source) Rewind() error {
	s.mu.Lock()
	s.emitted = false
	s.mu.Unlock()
	return nil
}

// Seek is a no-op: a still image has a single instant.
func (s *Source) Seek(pos time.Duration) error {
	return nil
}

func (s *Source) Close() error {
	s.mu.Lock()
	s.img = nil
	s.mu.Unlock()
	return nil
}

// Prober reports image metadata from the encoded header without
// decoding the pixels.
type Prober struct{}

var _ ports.MediaProber = (*Prober)(nil)

func NewProber() *Prober {
	return &Prober{}
}

func (p *Prober) Probe(path string) (ports.MediaInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return ports.MediaInfo{}, fmt.Errorf("imagesource: open %s: %w", path, err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return ports.MediaInfo{}, fmt.Errorf("imagesource: probe %s: %w", path, err)
	}
	return ports.MediaInfo{
		Path:     path,
		Type:     ports.MediaTypeImage,
		Format:   format,
		HasVideo: true,
		Width:    cfg.Width,
		Height:   cfg.Height,
	}, nil
}

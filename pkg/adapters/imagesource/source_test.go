package imagesource

import (
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/user/termplay/pkg/ports"
)

func writeTestPNG(t *testing.T, w, h int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create test image: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	return path
}

func TestSourceSingleFrame(t *testing.T) {
	s := New(writeTestPNG(t, 4, 3))
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	frame, ok := s.Next()
	if !ok {
		t.Fatal("no frame after Start")
	}
	if frame.PTS != 0 || frame.Index != 0 {
		t.Errorf("frame PTS=%v Index=%d, want zero values", frame.PTS, frame.Index)
	}
	if b := frame.Image.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("frame bounds = %v, want 4x3", b)
	}

	if _, ok := s.Next(); ok {
		t.Error("second Next produced a frame")
	}
	if !s.Finished() {
		t.Error("source not finished after the single frame")
	}
}

func TestSourceRewind(t *testing.T) {
	s := New(writeTestPNG(t, 2, 2))
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	s.Next()

	if err := s.Rewind(); err != nil {
		t.Fatalf("Rewind failed: %v", err)
	}
	if _, ok := s.Next(); !ok {
		t.Error("no frame after Rewind")
	}
}

func TestSourceStartErrors(t *testing.T) {
	if err := New("/nonexistent/file.png").Start(context.Background()); err == nil {
		t.Error("expected error for a missing file")
	}

	path := filepath.Join(t.TempDir(), "junk.png")
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := New(path).Start(context.Background()); err == nil {
		t.Error("expected error for an undecodable file")
	}
}

func TestProbe(t *testing.T) {
	path := writeTestPNG(t, 16, 9)
	info, err := NewProber().Probe(path)
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}
	if info.Type != ports.MediaTypeImage {
		t.Errorf("type = %v, want image", info.Type)
	}
	if info.Format != "png" {
		t.Errorf("format = %q, want png", info.Format)
	}
	if info.Width != 16 || info.Height != 9 {
		t.Errorf("size = %dx%d, want 16x9", info.Width, info.Height)
	}
}

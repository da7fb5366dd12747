package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/user/termplay/pkg/ports"
)

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestRenderGridSize(t *testing.T) {
	r := NewRenderer()
	frame := &ports.Frame{Image: solidImage(120, 60, color.RGBA{R: 128, G: 128, B: 128, A: 255})}

	grid := r.Render(frame, ports.RenderOptions{Width: 40, Height: 20})

	if grid.Width != 40 || grid.Height != 20 {
		t.Errorf("grid size = %dx%d, want 40x20", grid.Width, grid.Height)
	}
	if len(grid.Cells) != 40*20 {
		t.Errorf("cells = %d, want %d", len(grid.Cells), 40*20)
	}
}

func TestRenderZeroSizeClamped(t *testing.T) {
	r := NewRenderer()
	frame := &ports.Frame{Image: solidImage(10, 10, color.RGBA{A: 255})}

	grid := r.Render(frame, ports.RenderOptions{Width: 0, Height: -3})

	if grid.Width != 1 || grid.Height != 1 {
		t.Errorf("grid size = %dx%d, want 1x1", grid.Width, grid.Height)
	}
}

func TestRenderDarkAndBright(t *testing.T) {
	r := NewRenderer()

	dark := r.Render(&ports.Frame{Image: solidImage(16, 16, color.RGBA{A: 255})}, ports.RenderOptions{Width: 4, Height: 2})
	for i, c := range dark.Cells {
		if c.Ch != ' ' {
			t.Fatalf("dark cell %d = %q, want space", i, c.Ch)
		}
	}

	bright := r.Render(&ports.Frame{Image: solidImage(16, 16, color.RGBA{R: 255, G: 255, B: 255, A: 255})}, ports.RenderOptions{Width: 4, Height: 2})
	for i, c := range bright.Cells {
		if c.Ch != '@' {
			t.Fatalf("bright cell %d = %q, want @", i, c.Ch)
		}
	}
}

func TestRenderKeepsColor(t *testing.T) {
	r := NewRenderer()
	frame := &ports.Frame{Image: solidImage(32, 32, color.RGBA{R: 200, G: 10, B: 10, A: 255})}

	grid := r.Render(frame, ports.RenderOptions{Width: 8, Height: 4})

	c := grid.At(3, 2)
	if c.R < 190 || c.G > 20 || c.B > 20 {
		t.Errorf("cell color = %d,%d,%d, want red dominant", c.R, c.G, c.B)
	}
}

func TestLuminance(t *testing.T) {
	if l := Luminance(0, 0, 0); l != 0 {
		t.Errorf("black = %d, want 0", l)
	}
	if l := Luminance(255, 255, 255); l < 254 {
		t.Errorf("white = %d, want >= 254", l)
	}

	r := Luminance(255, 0, 0)
	g := Luminance(0, 255, 0)
	b := Luminance(0, 0, 255)
	if !(g > r && r > b) {
		t.Errorf("channel weights: g=%d r=%d b=%d, want g > r > b", g, r, b)
	}
}

func TestTargetSize(t *testing.T) {
	tests := []struct {
		cols, rows, mod  int
		wantW, wantH     int
	}{
		{80, 24, 2, 40, 24},
		{80, 24, 1, 80, 24},
		{3, 24, 4, 1, 24},
		{0, 0, 0, 1, 1},
	}
	for _, tt := range tests {
		w, h := TargetSize(tt.cols, tt.rows, tt.mod)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("TargetSize(%d, %d, %d) = %d,%d, want %d,%d",
				tt.cols, tt.rows, tt.mod, w, h, tt.wantW, tt.wantH)
		}
	}
}

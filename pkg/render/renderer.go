package render

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/user/termplay/pkg/charmap"
	"github.com/user/termplay/pkg/ports"
)

// Renderer converts decoded frames into character grids. The frame is
// scaled to the grid size with a Catmull-Rom kernel, then each pixel is
// mapped to a character by luminance while keeping its color.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

var _ ports.FrameRenderer = (*Renderer)(nil)

func (r *Renderer) Render(frame *ports.Frame, opts ports.RenderOptions) *ports.Grid {
	w, h := opts.Width, opts.Height
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), frame.Image, frame.Image.Bounds(), xdraw.Src, nil)

	m := charmap.Get(opts.CharMapIndex)
	grid := &ports.Grid{
		Width:  w,
		Height: h,
		Cells:  make([]ports.Cell, w*h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := dst.PixOffset(x, y)
			pr, pg, pb := dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2]
			grid.Cells[y*w+x] = ports.Cell{
				Ch: charmap.FromLuminance(Luminance(pr, pg, pb), m),
				R:  pr,
				G:  pg,
				B:  pb,
			}
		}
	}
	return grid
}

// Luminance computes perceived brightness using the BT.709 weights.
func Luminance(r, g, b uint8) uint8 {
	l := 0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)
	if l > 255 {
		l = 255
	}
	return uint8(l)
}

// TargetSize derives the grid size from the terminal size. Character
// cells are roughly twice as tall as they are wide, so the width is
// divided by widthModifier to keep the aspect usable.
func TargetSize(cols, rows, widthModifier int) (int, int) {
	if widthModifier < 1 {
		widthModifier = 1
	}
	w := cols / widthModifier
	if w < 1 {
		w = 1
	}
	if rows < 1 {
		rows = 1
	}
	return w, rows
}

// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/user/termplay/pkg/ports"
)

// cellSize is the pixel size of one grid cell in the PNG previews.
const cellSize = 8

// Sink saves playback debug artifacts under a base directory: the raw
// terminal bytes of each rendered frame, a raster preview of the grid,
// the probe metadata and the session summary.
type Sink struct {
	baseDir string
	fs      ports.FileSystem
}

var _ ports.DebugSink = (*Sink)(nil)

// New creates a file sink rooted at baseDir.
func New(baseDir string, fs ports.FileSystem) *Sink {
	return &Sink{baseDir: baseDir, fs: fs}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveGridText saves the encoded terminal bytes of a rendered frame.
func (s *Sink) SaveGridText(index int, data []byte) error {
	dir := filepath.Join(s.baseDir, "frames", "text")
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	path := filepath.Join(dir, fmt.Sprintf("frame-%04d.txt", index))
	return s.fs.WriteFile(path, data)
}

// SaveGridImage renders the grid as a PNG mosaic: one darkened square
// per cell with its character drawn on top in the cell's color.
func (s *Sink) SaveGridImage(index int, grid *ports.Grid) error {
	dir := filepath.Join(s.baseDir, "frames", "png")
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}

	dc := gg.NewContext(grid.Width*cellSize, grid.Height*cellSize)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			cell := grid.At(x, y)
			dc.SetRGB255(int(cell.R)/3, int(cell.G)/3, int(cell.B)/3)
			dc.DrawRectangle(float64(x*cellSize), float64(y*cellSize), cellSize, cellSize)
			dc.Fill()
			dc.SetRGB255(int(cell.R), int(cell.G), int(cell.B))
			dc.DrawStringAnchored(string(cell.Ch),
				float64(x*cellSize)+cellSize/2, float64(y*cellSize)+cellSize/2, 0.5, 0.5)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return fmt.Errorf("encode frame png: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("frame-%04d.png", index))
	return s.fs.WriteFile(path, buf.Bytes())
}

// SaveProbeJSON saves the media metadata gathered before playback.
func (s *Sink) SaveProbeJSON(data []byte) error {
	if err := s.fs.MkdirAll(s.baseDir); err != nil {
		return err
	}
	return s.fs.WriteFile(filepath.Join(s.baseDir, "probe.json"), data)
}

// SaveSummary saves the formatted end-of-session summary.
func (s *Sink) SaveSummary(data []byte) error {
	if err := s.fs.MkdirAll(s.baseDir); err != nil {
		return err
	}
	return s.fs.WriteFile(filepath.Join(s.baseDir, "summary.txt"), data)
}

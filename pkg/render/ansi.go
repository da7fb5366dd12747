package render

import (
	"bytes"
	"strconv"

	"github.com/user/termplay/pkg/ports"
)

const (
	cursorHome = "\x1b[H"
	colorReset = "\x1b[0m"
)

// Ansi256Encoder encodes a grid using the xterm 256-color palette.
// Colors map onto the 6x6x6 cube (codes 16-231); in grayscale mode the
// 24-step ramp (codes 232-255) is used instead.
type Ansi256Encoder struct {
	Grayscale bool
	Newlines  bool
}

var _ ports.GridEncoder = (*Ansi256Encoder)(nil)

func (e *Ansi256Encoder) Encode(grid *ports.Grid) []byte {
	var buf bytes.Buffer
	buf.Grow(grid.Width*grid.Height*12 + 16)
	buf.WriteString(cursorHome)

	last := -1
	for y := 0; y < grid.Height; y++ {
		if y > 0 && e.Newlines {
			buf.WriteString("\r\n")
		}
		for x := 0; x < grid.Width; x++ {
			c := grid.Cells[y*grid.Width+x]
			code := xtermColor(c.R, c.G, c.B)
			if e.Grayscale {
				code = xtermGray(c.R, c.G, c.B)
			}
			if code != last {
				buf.WriteString("\x1b[38;5;")
				buf.WriteString(strconv.Itoa(code))
				buf.WriteByte('m')
				last = code
			}
			buf.WriteRune(c.Ch)
		}
	}
	buf.WriteString(colorReset)
	return buf.Bytes()
}

// xtermColor maps 8-bit RGB onto the 6x6x6 cube, codes 16 through 231.
func xtermColor(r, g, b uint8) int {
	return 36*(5*int(r)/255) + 6*(5*int(g)/255) + (5 * int(b) / 255) + 16
}

// xtermGray maps 8-bit RGB onto the grayscale ramp, codes 232 through 255.
func xtermGray(r, g, b uint8) int {
	return 232 + 23*(int(r)+int(g)+int(b))/(3*255)
}

// TrueColorEncoder encodes a grid with 24-bit SGR sequences for
// terminals that support them.
type TrueColorEncoder struct {
	Grayscale bool
	Newlines  bool
}

var _ ports.GridEncoder = (*TrueColorEncoder)(nil)

func (e *TrueColorEncoder) Encode(grid *ports.Grid) []byte {
	var buf bytes.Buffer
	buf.Grow(grid.Width*grid.Height*20 + 16)
	buf.WriteString(cursorHome)

	last := -1
	for y := 0; y < grid.Height; y++ {
		if y > 0 && e.Newlines {
			buf.WriteString("\r\n")
		}
		for x := 0; x < grid.Width; x++ {
			c := grid.Cells[y*grid.Width+x]
			r, g, b := c.R, c.G, c.B
			if e.Grayscale {
				l := Luminance(r, g, b)
				r, g, b = l, l, l
			}
			packed := int(r)<<16 | int(g)<<8 | int(b)
			if packed != last {
				buf.WriteString("\x1b[38;2;")
				buf.WriteString(strconv.Itoa(int(r)))
				buf.WriteByte(';')
				buf.WriteString(strconv.Itoa(int(g)))
				buf.WriteByte(';')
				buf.WriteString(strconv.Itoa(int(b)))
				buf.WriteByte('m')
				last = packed
			}
			buf.WriteRune(c.Ch)
		}
	}
	buf.WriteString(colorReset)
	return buf.Bytes()
}

// PlainEncoder emits characters without color, for terminals where SGR
// sequences are unwanted. The cursor is still homed so frames repaint
// in place.
type PlainEncoder struct {
	Newlines bool
}

var _ ports.GridEncoder = (*PlainEncoder)(nil)

func (e *PlainEncoder) Encode(grid *ports.Grid) []byte {
	var buf bytes.Buffer
	buf.Grow(grid.Width*grid.Height*3 + 8)
	buf.WriteString(cursorHome)

	for y := 0; y < grid.Height; y++ {
		if y > 0 && e.Newlines {
			buf.WriteString("\r\n")
		}
		for x := 0; x < grid.Width; x++ {
			buf.WriteRune(grid.Cells[y*grid.Width+x].Ch)
		}
	}
	return buf.Bytes()
}

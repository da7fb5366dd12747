package ports

// Cell is one character cell of a rendered grid with its source color.
type Cell struct {
	Ch      rune
	R, G, B uint8
}

// Grid is a rendered frame: a dense row-major matrix of character cells.
type Grid struct {
	Width  int
	Height int
	Cells  []Cell
}

// At returns the cell at column x, row y.
func (g *Grid) At(x, y int) Cell {
	return g.Cells[y*g.Width+x]
}

// RenderOptions controls how a frame maps onto a character grid.
type RenderOptions struct {
	Width        int // target grid width in cells
	Height       int // target grid height in cells
	CharMapIndex int // character map selection (0-9)
}

// FrameRenderer converts a decoded frame into a character grid. The
// conversion cost is bounded by the grid size; it never blocks on I/O.
type FrameRenderer interface {
	Render(frame *Frame, opts RenderOptions) *Grid
}

// GridEncoder serializes a grid into the bytes written to the terminal,
// including any color escape sequences.
type GridEncoder interface {
	Encode(grid *Grid) []byte
}

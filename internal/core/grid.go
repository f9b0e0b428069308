package core

// ByteGrid stores a rectangular window of byte-sized cell values in row-major
// order. X and Y locate the window's top-left cell in the unbounded pattern.
type ByteGrid struct {
	X, Y int
	W, H int
	data []uint8
}

// NewByteGrid allocates a window of w*h cells anchored at (x, y). Negative
// dimensions are treated as empty.
func NewByteGrid(x, y, w, h int) *ByteGrid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &ByteGrid{X: x, Y: y, W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for window-relative coordinates.
func (g *ByteGrid) Index(col, row int) int { return row*g.W + col }

// At returns the value at window-relative coordinates.
func (g *ByteGrid) At(col, row int) uint8 { return g.data[g.Index(col, row)] }

// Row returns the window-relative row as a subslice of the backing store.
func (g *ByteGrid) Row(row int) []uint8 {
	start := row * g.W
	return g.data[start : start+g.W]
}

// Rows returns the window as a [height][width] slice of freshly copied rows.
func (g *ByteGrid) Rows() [][]uint8 {
	out := make([][]uint8, g.H)
	for i := range out {
		out[i] = append([]uint8(nil), g.Row(i)...)
	}
	return out
}

// Empty reports whether the window covers no cells.
func (g *ByteGrid) Empty() bool { return g.W == 0 || g.H == 0 }

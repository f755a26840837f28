package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
// Unlike a fixed simulation buffer it can be resized in place while keeping the
// values of cells that exist in both the old and the new shape.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions. Negative dimensions
// are treated as zero so an empty grid is always representable.
func NewByteGrid(w, h int) *ByteGrid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// In reports whether (x, y) addresses an existing cell.
func (g *ByteGrid) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// At returns the value at (x, y). Out of range coordinates read as zero.
func (g *ByteGrid) At(x, y int) uint8 {
	if !g.In(x, y) {
		return 0
	}
	return g.data[g.Index(x, y)]
}

// Set stores v at (x, y) and reports whether the cell exists.
func (g *ByteGrid) Set(x, y int, v uint8) bool {
	if !g.In(x, y) {
		return false
	}
	g.data[g.Index(x, y)] = v
	return true
}

// Resize reshapes the grid to w*h. Values inside the overlap of the old and
// new bounds are kept, new cells start at zero and cells outside the new
// bounds are dropped.
func (g *ByteGrid) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if w == g.W && h == g.H {
		return
	}
	next := make([]uint8, w*h)
	cw := min(w, g.W)
	ch := min(h, g.H)
	for y := 0; y < ch; y++ {
		copy(next[y*w:y*w+cw], g.data[y*g.W:y*g.W+cw])
	}
	g.W, g.H, g.data = w, h, next
}

// Count returns how many cells hold v.
func (g *ByteGrid) Count(v uint8) int {
	n := 0
	for _, c := range g.data {
		if c == v {
			n++
		}
	}
	return n
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

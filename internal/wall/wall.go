// Package wall implements the pixel wall: a grid of two-state cells, the
// letterboxed layout that places it inside a container, pointer hit testing
// and the drag gesture that paints cells.
package wall

import (
	"image/color"

	"github.com/pkg/errors"

	"pixel-wall/internal/core"
	"pixel-wall/internal/palette"
)

// ErrInvalidArgument reports a request the wall cannot honor, such as a
// negative dimension.
var ErrInvalidArgument = errors.New("invalid argument")

// State is the logical state of a cell.
type State uint8

const (
	// Secondary is the default, inactive state.
	Secondary State = iota
	// Primary is the active, painted state.
	Primary
)

func (s State) String() string {
	if s == Primary {
		return "primary"
	}
	return "secondary"
}

// Toggled returns the opposite state.
func (s State) Toggled() State {
	if s == Primary {
		return Secondary
	}
	return Primary
}

// Shape selects how cells are drawn and hit tested.
type Shape uint8

const (
	// ShapeCircle draws cells as circles inscribed in their square.
	ShapeCircle Shape = iota
	// ShapeRect draws cells as full squares.
	ShapeRect
)

func (s Shape) String() string {
	if s == ShapeRect {
		return "rect"
	}
	return "circle"
}

// ParseShape converts "circle" or "rect" into a Shape.
func ParseShape(s string) (Shape, error) {
	switch s {
	case "circle":
		return ShapeCircle, nil
	case "rect", "square":
		return ShapeRect, nil
	}
	return ShapeCircle, errors.Wrapf(ErrInvalidArgument, "unknown shape %q", s)
}

// Cell addresses one position on the wall.
type Cell struct {
	Row, Col int
}

// Palette holds the two colors a cell can render with.
type Palette struct {
	Primary   color.RGBA
	Secondary color.RGBA
}

// DefaultPalette returns the stock colors.
func DefaultPalette() Palette {
	return Palette{Primary: palette.DefaultPrimary, Secondary: palette.DefaultSecondary}
}

// Of returns the color used for cells in state s.
func (p Palette) Of(s State) color.RGBA {
	if s == Primary {
		return p.Primary
	}
	return p.Secondary
}

// Wall owns every piece of wall state. The cell grid is the source of truth;
// rendered colors are derived from it and the palette.
type Wall struct {
	cells   *core.ByteGrid
	palette Palette
	shape   Shape

	container core.Rect
	geom      Geometry

	streams  map[StreamID]*gesture
	onToggle func(Cell, State)
}

// New returns an empty wall using the default palette and circular cells.
func New() *Wall {
	return &Wall{
		cells:   core.NewByteGrid(0, 0),
		palette: DefaultPalette(),
		shape:   ShapeCircle,
		streams: map[StreamID]*gesture{},
	}
}

// OnToggle registers a hook that runs after every cell toggle.
func (w *Wall) OnToggle(fn func(Cell, State)) { w.onToggle = fn }

// Rows returns the number of rows.
func (w *Wall) Rows() int { return w.cells.H }

// Columns returns the number of columns.
func (w *Wall) Columns() int { return w.cells.W }

// Cells exposes the row-major cell states. Callers must not modify it.
func (w *Wall) Cells() []uint8 { return w.cells.Cells() }

// Palette returns the current colors.
func (w *Wall) Palette() Palette { return w.palette }

// Shape returns the current cell shape.
func (w *Wall) Shape() Shape { return w.shape }

// In reports whether c addresses an existing cell.
func (w *Wall) In(c Cell) bool { return w.cells.In(c.Col, c.Row) }

// State returns the state of cell c. Missing cells read as Secondary.
func (w *Wall) State(c Cell) State { return State(w.cells.At(c.Col, c.Row)) }

// Color returns the rendered color of cell c.
func (w *Wall) Color(c Cell) color.RGBA { return w.palette.Of(w.State(c)) }

// Count returns how many cells are in state s.
func (w *Wall) Count(s State) int { return w.cells.Count(uint8(s)) }

// SetDimensions resizes the wall to rows x columns. Cells present before and
// after keep their state, new cells start as Secondary. The layout is
// recomputed against the last known container.
func (w *Wall) SetDimensions(rows, columns int) error {
	if rows < 0 || columns < 0 {
		return errors.Wrapf(ErrInvalidArgument, "dimensions %dx%d", rows, columns)
	}
	w.cells.Resize(columns, rows)
	for _, g := range w.streams {
		if g.last != nil && !w.In(*g.last) {
			g.last = nil
		}
	}
	w.relayout()
	return nil
}

// SetPrimaryColor changes the color of active cells.
func (w *Wall) SetPrimaryColor(c color.RGBA) { w.palette.Primary = c }

// SetSecondaryColor changes the color of inactive cells.
func (w *Wall) SetSecondaryColor(c color.RGBA) { w.palette.Secondary = c }

// SetShape sets the cell shape.
func (w *Wall) SetShape(s Shape) { w.shape = s }

// ToggleShape flips between circular and rectangular cells.
func (w *Wall) ToggleShape() {
	if w.shape == ShapeCircle {
		w.shape = ShapeRect
		return
	}
	w.shape = ShapeCircle
}

// Reset returns every cell to Secondary.
func (w *Wall) Reset() { w.cells.Clear() }

// Toggle flips the state of c and reports the new state. Toggling a missing
// cell does nothing.
func (w *Wall) Toggle(c Cell) (State, bool) {
	if !w.In(c) {
		return Secondary, false
	}
	next := w.State(c).Toggled()
	w.cells.Set(c.Col, c.Row, uint8(next))
	if w.onToggle != nil {
		w.onToggle(c, next)
	}
	return next, true
}

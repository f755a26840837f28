package wall

import "pixel-wall/internal/core"

// Geometry places the grid inside its container. All values are in screen
// pixels; cells are square.
type Geometry struct {
	X0, Y0   float64
	CellSize float64
	Width    float64
	Height   float64
}

// Empty reports whether nothing can be drawn or hit.
func (g Geometry) Empty() bool { return g.CellSize <= 0 }

// Bounds returns the painted area as a rectangle.
func (g Geometry) Bounds() core.Rect {
	return core.Rect{X: g.X0, Y: g.Y0, W: g.Width, H: g.Height}
}

// CellBounds returns the square occupied by the cell at row, col.
func (g Geometry) CellBounds(row, col int) core.Rect {
	return core.Rect{
		X: g.X0 + float64(col)*g.CellSize,
		Y: g.Y0 + float64(row)*g.CellSize,
		W: g.CellSize,
		H: g.CellSize,
	}
}

// CellCenter returns the center of the cell at row, col.
func (g Geometry) CellCenter(row, col int) (float64, float64) {
	return g.X0 + (float64(col)+0.5)*g.CellSize, g.Y0 + (float64(row)+0.5)*g.CellSize
}

// Letterbox fits a rows x columns grid of square cells into container,
// centered on the axis with spare room. Empty grids or containers produce the
// zero Geometry.
func Letterbox(container core.Rect, rows, columns int) Geometry {
	if rows <= 0 || columns <= 0 || container.Empty() {
		return Geometry{}
	}
	targetRatio := float64(columns) / float64(rows)
	containerRatio := container.W / container.H
	if containerRatio > targetRatio {
		width := container.H * targetRatio
		return Geometry{
			X0:       container.X + (container.W-width)/2,
			Y0:       container.Y,
			CellSize: container.H / float64(rows),
			Width:    width,
			Height:   container.H,
		}
	}
	height := container.W / targetRatio
	return Geometry{
		X0:       container.X,
		Y0:       container.Y + (container.H-height)/2,
		CellSize: container.W / float64(columns),
		Width:    container.W,
		Height:   height,
	}
}

// SetContainer records the container the wall is laid out in and recomputes
// the geometry.
func (w *Wall) SetContainer(r core.Rect) {
	w.container = r
	w.relayout()
}

// Container returns the last container passed to SetContainer.
func (w *Wall) Container() core.Rect { return w.container }

// Geometry returns the current layout.
func (w *Wall) Geometry() Geometry { return w.geom }

func (w *Wall) relayout() {
	w.geom = Letterbox(w.container, w.Rows(), w.Columns())
}

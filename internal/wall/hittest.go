package wall

// HitTest maps a screen point to the cell under it. Circular cells only
// accept points inside their inscribed circle; rectangular cells accept the
// whole square.
func (w *Wall) HitTest(x, y float64) (Cell, bool) {
	return hitTest(w.geom, w.Rows(), w.Columns(), w.shape, x, y)
}

func hitTest(g Geometry, rows, columns int, shape Shape, x, y float64) (Cell, bool) {
	if g.Empty() || rows <= 0 || columns <= 0 {
		return Cell{}, false
	}
	// Compare before converting so NaN and coordinates too large for an int
	// miss instead of wrapping around.
	fx := (x - g.X0) / g.CellSize
	fy := (y - g.Y0) / g.CellSize
	if !(fx >= 0 && fx < float64(columns)) || !(fy >= 0 && fy < float64(rows)) {
		return Cell{}, false
	}
	i, j := int(fx), int(fy)
	if shape == ShapeCircle {
		cx, cy := g.CellCenter(j, i)
		dx, dy := x-cx, y-cy
		r := g.CellSize / 2
		if dx*dx+dy*dy > r*r {
			return Cell{}, false
		}
	}
	return Cell{Row: j, Col: i}, true
}

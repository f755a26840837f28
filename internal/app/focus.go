package app

import "pixel-wall/internal/wall"

// moveFocus shifts c by (dr, dc), clamped to a rows x cols wall.
func moveFocus(c wall.Cell, dr, dc, rows, cols int) wall.Cell {
	if rows <= 0 || cols <= 0 {
		return wall.Cell{}
	}
	c.Row = clamp(c.Row+dr, 0, rows-1)
	c.Col = clamp(c.Col+dc, 0, cols-1)
	return c
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

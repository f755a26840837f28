package render

import "image/color"

// fillStateRGBA converts two-state cell data into RGBA pixels in buf. Cells
// holding a non-zero value use on, the rest use off.
func fillStateRGBA(buf []byte, cells []uint8, on, off color.RGBA) {
	for i, c := range cells {
		base := i * 4
		col := off
		if c != 0 {
			col = on
		}
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// cellInset returns the gap between neighbouring cells for a cell of the
// given size. Small cells get no gap so they stay visible.
func cellInset(size float64) float64 {
	if size < 6 {
		return 0
	}
	inset := size * 0.06
	if inset > 3 {
		inset = 3
	}
	return inset
}

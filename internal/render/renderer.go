//go:build ebiten

package render

import (
	"image/color"

	"pixel-wall/internal/wall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// WallPainter draws a wall onto the screen. Square cells are uploaded into a
// one-pixel-per-cell image and scaled up; circular cells are drawn as vector
// circles.
type WallPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewWallPainter returns a painter with no backing image yet.
func NewWallPainter() *WallPainter { return &WallPainter{} }

// Draw renders every cell of wl using its current geometry and palette.
// background is used for the gaps between square cells.
func (p *WallPainter) Draw(dst *ebiten.Image, wl *wall.Wall, background color.RGBA) {
	g := wl.Geometry()
	if g.Empty() {
		return
	}
	pal := wl.Palette()
	if wl.Shape() == wall.ShapeRect {
		p.blit(dst, wl, g, pal)
		p.drawGaps(dst, wl, g, background)
		return
	}
	r := float32(g.CellSize/2 - cellInset(g.CellSize)/2)
	rows, cols := wl.Rows(), wl.Columns()
	cells := wl.Cells()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cx, cy := g.CellCenter(row, col)
			c := pal.Of(wall.State(cells[row*cols+col]))
			vector.DrawFilledCircle(dst, float32(cx), float32(cy), r, c, true)
		}
	}
}

func (p *WallPainter) blit(dst *ebiten.Image, wl *wall.Wall, g wall.Geometry, pal wall.Palette) {
	cols, rows := wl.Columns(), wl.Rows()
	if p.img == nil || p.w != cols || p.h != rows {
		if p.img != nil {
			p.img.Deallocate()
		}
		p.w, p.h = cols, rows
		p.img = ebiten.NewImage(cols, rows)
		p.buf = make([]byte, 4*cols*rows)
	}
	fillStateRGBA(p.buf, wl.Cells(), pal.Primary, pal.Secondary)
	p.img.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.CellSize, g.CellSize)
	op.GeoM.Translate(g.X0, g.Y0)
	dst.DrawImage(p.img, op)
}

func (p *WallPainter) drawGaps(dst *ebiten.Image, wl *wall.Wall, g wall.Geometry, background color.RGBA) {
	inset := float32(cellInset(g.CellSize))
	if inset <= 0 {
		return
	}
	x0, y0 := float32(g.X0), float32(g.Y0)
	x1, y1 := float32(g.X0+g.Width), float32(g.Y0+g.Height)
	for col := 1; col < wl.Columns(); col++ {
		x := x0 + float32(float64(col)*g.CellSize)
		vector.StrokeLine(dst, x, y0, x, y1, inset, background, false)
	}
	for row := 1; row < wl.Rows(); row++ {
		y := y0 + float32(float64(row)*g.CellSize)
		vector.StrokeLine(dst, x0, y, x1, y, inset, background, false)
	}
}

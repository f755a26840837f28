//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"pixel-wall/internal/palette"
	"pixel-wall/internal/wall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws the keyboard focus ring and, when enabled, debugging visuals
// for the layout and hit testing.
type Overlay struct {
	wall *wall.Wall

	showDebug bool
	cursorX   int
	cursorY   int

	focus        wall.Cell
	focusVisible bool
}

// NewOverlay constructs an overlay for w.
func NewOverlay(w *wall.Wall, debug bool) *Overlay {
	return &Overlay{wall: w, showDebug: debug}
}

// ToggleDebug shows or hides the debugging visuals.
func (o *Overlay) ToggleDebug() { o.showDebug = !o.showDebug }

// SetFocus moves the keyboard focus ring.
func (o *Overlay) SetFocus(c wall.Cell, visible bool) {
	o.focus = c
	o.focusVisible = visible
}

// Update records the pointer position used by the hit-test preview.
func (o *Overlay) Update(cursorX, cursorY int) {
	o.cursorX, o.cursorY = cursorX, cursorY
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	g := o.wall.Geometry()
	if g.Empty() {
		if o.showDebug {
			ebitenutil.DebugPrintAt(screen, "empty wall", 8, 8)
		}
		return
	}
	pal := o.wall.Palette()

	if o.focusVisible && o.wall.In(o.focus) {
		ring := palette.Blend(pal.Primary, color.RGBA{A: 0xff}, 0.4)
		o.drawCell(screen, g, o.focus, 2, ring)
	}

	if !o.showDebug {
		return
	}
	b := g.Bounds()
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, color.RGBA{R: 40, G: 90, B: 200, A: 255}, false)

	x, y := float64(o.cursorX), float64(o.cursorY)
	status := fmt.Sprintf("origin (%.1f, %.1f)  cell %.2fpx  %dx%d %s", g.X0, g.Y0, g.CellSize, o.wall.Columns(), o.wall.Rows(), o.wall.Shape())
	if c, ok := o.wall.HitTest(x, y); ok {
		o.drawCell(screen, g, c, 1, color.RGBA{R: 40, G: 200, B: 90, A: 255})
		status += fmt.Sprintf("\ncursor (%d, %d) -> row %d col %d %s", o.cursorX, o.cursorY, c.Row, c.Col, o.wall.State(c))
	} else {
		status += fmt.Sprintf("\ncursor (%d, %d) -> none", o.cursorX, o.cursorY)
	}
	ebitenutil.DebugPrintAt(screen, status, 8, 8)
}

func (o *Overlay) drawCell(screen *ebiten.Image, g wall.Geometry, c wall.Cell, width float32, col color.RGBA) {
	if o.wall.Shape() == wall.ShapeCircle {
		cx, cy := g.CellCenter(c.Row, c.Col)
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(g.CellSize/2), width, col, true)
		return
	}
	r := g.CellBounds(c.Row, c.Col)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), width, col, false)
}

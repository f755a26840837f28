//go:build ebiten

package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Draw paints the toolbar strip, its buttons and the status text.
func (t *Toolbar) Draw(screen *ebiten.Image) {
	if t.bar.Empty() {
		return
	}
	fillRect(screen, t.bar, panelBG)
	for _, b := range t.buttons {
		drawButton(screen, b.rect, b.label, b.onClick != nil)
	}
	if t.status == "" {
		return
	}
	face := basicfont.Face7x13
	bounds := text.BoundString(face, t.status)
	x := t.bar.Max.X - toolbarPadding - bounds.Dx()
	y := t.bar.Min.Y + (t.bar.Dy()+bounds.Dy())/2
	text.Draw(screen, t.status, face, x, y, mutedColor)
}

//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	panelBG      = color.RGBA{R: 16, G: 16, B: 20, A: 235}
	titleColor   = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonBG     = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonFG     = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	disabledBG   = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	disabledFG   = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	buttonBorder = color.RGBA{R: 90, G: 92, B: 104, A: 255}
)

func fillRect(dst *ebiten.Image, r image.Rectangle, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
}

func drawButton(dst *ebiten.Image, rect image.Rectangle, label string, enabled bool) {
	bg, fg := buttonBG, buttonFG
	if !enabled {
		bg, fg = disabledBG, disabledFG
	}
	fillRect(dst, rect, bg)
	vector.StrokeRect(dst, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), 1, buttonBorder, false)
	drawCentered(dst, rect, label, fg)
}

func drawCentered(dst *ebiten.Image, rect image.Rectangle, label string, fg color.Color) {
	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(dst, label, face, x, y, fg)
}

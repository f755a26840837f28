//go:build ebiten

package ui

import (
	"image/color"

	"pixel-wall/internal/core"
	"pixel-wall/internal/palette"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Draw paints the panel when it is open.
func (s *Settings) Draw(screen *ebiten.Image) {
	if !s.open || s.panel.Empty() {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{A: 96}, false)
	fillRect(screen, s.panel, panelBG)

	face := basicfont.Face7x13
	text.Draw(screen, "Settings", face, s.panel.Min.X+panelPadding, s.panel.Min.Y+panelPadding+headerBaseline, titleColor)

	for i := range s.controls {
		st := &s.controls[i]
		labelY := st.top + labelBaseline
		text.Draw(screen, st.control.Label, face, s.panel.Min.X+panelPadding, labelY, labelColor)
		if !st.found {
			text.Draw(screen, "--", face, s.panel.Max.X-panelPadding-14, labelY, mutedColor)
			continue
		}
		switch st.control.Type {
		case core.ParamTypeInt:
			value := st.param.Value
			bounds := text.BoundString(face, value)
			text.Draw(screen, value, face, st.minusRect.Min.X-buttonGap-bounds.Dx(), labelY, labelColor)
			drawButton(screen, st.minusRect, "-", s.canAdjust(st, -1))
			drawButton(screen, st.plusRect, "+", s.canAdjust(st, 1))
		case core.ParamTypeColor:
			fillRect(screen, st.valueRect, st.param.Color)
			r := st.valueRect
			vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, buttonBorder, false)
			drawCentered(screen, r, palette.Hex(st.param.Color), palette.Contrast(st.param.Color))
		case core.ParamTypeToggle:
			drawButton(screen, st.valueRect, st.param.Value, s.toggleSetter != nil)
		}
	}

	drawButton(screen, s.backRect, "Back", true)
}

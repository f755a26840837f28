package ui

import "image"

// ToolbarHeight is the height of the strip along the bottom of the window.
const ToolbarHeight = 44

// Toolbar is the strip of buttons under the wall.
type Toolbar struct {
	buttons []toolbarButton
	bar     image.Rectangle
	status  string
}

type toolbarButton struct {
	label   string
	onClick func()
	rect    image.Rectangle
}

// NewToolbar returns a toolbar with Reset and Settings buttons.
func NewToolbar(onReset, onSettings func()) *Toolbar {
	return &Toolbar{buttons: []toolbarButton{
		{label: "Reset", onClick: onReset},
		{label: "Settings", onClick: onSettings},
	}}
}

// Layout anchors the toolbar to the bottom of a screen of the given size.
func (t *Toolbar) Layout(screenW, screenH int) {
	top := screenH - ToolbarHeight
	if top < 0 {
		top = 0
	}
	t.bar = image.Rect(0, top, screenW, screenH)
	x := toolbarPadding
	y := top + (ToolbarHeight-buttonHeight)/2
	for i := range t.buttons {
		w := toolbarButtonWidth
		t.buttons[i].rect = image.Rect(x, y, x+w, y+buttonHeight)
		x += w + toolbarPadding
	}
}

// Bounds returns the area covered by the toolbar.
func (t *Toolbar) Bounds() image.Rectangle { return t.bar }

// SetStatus sets the text shown at the right end of the toolbar.
func (t *Toolbar) SetStatus(s string) { t.status = s }

// HandleClick runs the button under (x, y) and reports whether the click
// landed on the toolbar at all.
func (t *Toolbar) HandleClick(x, y int) bool {
	if !pointInRect(x, y, t.bar) {
		return false
	}
	for _, b := range t.buttons {
		if pointInRect(x, y, b.rect) && b.onClick != nil {
			b.onClick()
			break
		}
	}
	return true
}

const (
	toolbarPadding     = 8
	toolbarButtonWidth = 88
)

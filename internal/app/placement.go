package app

import (
	"pixel-wall/internal/core"
	"pixel-wall/internal/ui"
	"pixel-wall/internal/wall"
)

const containerPadding = 8

// wallContainer is the area left for the wall on a screen of the given size
// once the toolbar and padding are taken out.
func wallContainer(screenW, screenH int) core.Rect {
	return core.Rect{
		X: containerPadding,
		Y: containerPadding,
		W: float64(screenW - 2*containerPadding),
		H: float64(screenH - ui.ToolbarHeight - 2*containerPadding),
	}
}

// placeWall lays the wall out in container. The first usable container is
// applied at once so the first frame has a layout; everything else goes
// through the controller's throttle.
func placeWall(ctrl *wall.Controller, container core.Rect) {
	w := ctrl.Wall()
	if w.Container().Empty() && !container.Empty() {
		w.SetContainer(container)
		return
	}
	ctrl.Resize(container)
}

// dragMouse continues the mouse gesture at (x, y). Losing focus ends every
// gesture; leaving the screen ends the mouse gesture.
func dragMouse(w *wall.Wall, screen core.Rect, focused bool, x, y float64) {
	if !focused {
		w.ReleaseAll()
		return
	}
	if !w.Pressing(wall.MouseStream) {
		return
	}
	if !screen.Contains(x, y) {
		w.Release(wall.MouseStream)
		return
	}
	w.Move(wall.MouseStream, x, y)
}

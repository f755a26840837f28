package ui

import (
	"image"
	"image/color"

	"pixel-wall/internal/core"
)

// ColorPicker asks the user for a color on behalf of the settings panel.
// The answer arrives later through the picker's own channel.
type ColorPicker interface {
	PickColor(key, title string, initial color.RGBA)
}

// Settings is the modal panel listing the wall settings. Layout and click
// handling live here; drawing is in settings_draw.go.
type Settings struct {
	provider     core.ParameterControlsProvider
	intSetter    core.IntParameterSetter
	toggleSetter core.ToggleParameterSetter
	picker       ColorPicker

	controls []controlState
	snapshot core.ParameterSnapshot

	open     bool
	panel    image.Rectangle
	backRect image.Rectangle
	screenW  int
	screenH  int
}

type controlState struct {
	control core.ParameterControl
	param   core.Parameter
	found   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
	valueRect image.Rectangle
}

// NewSettings builds a panel for provider. Setters are discovered from the
// provider the same way the parameter interfaces are declared in core.
func NewSettings(provider core.ParameterControlsProvider, picker ColorPicker) *Settings {
	s := &Settings{provider: provider, picker: picker}
	if setter, ok := provider.(core.IntParameterSetter); ok {
		s.intSetter = setter
	}
	if setter, ok := provider.(core.ToggleParameterSetter); ok {
		s.toggleSetter = setter
	}
	controls := provider.ParameterControls()
	s.controls = make([]controlState, len(controls))
	for i, ctrl := range controls {
		s.controls[i] = controlState{control: ctrl}
	}
	return s
}

// IsOpen reports whether the panel is visible.
func (s *Settings) IsOpen() bool { return s.open }

// Open shows the panel.
func (s *Settings) Open() {
	s.open = true
	s.Refresh()
}

// Close hides the panel.
func (s *Settings) Close() { s.open = false }

// Toggle shows or hides the panel.
func (s *Settings) Toggle() {
	if s.open {
		s.Close()
		return
	}
	s.Open()
}

// Layout positions the panel in the middle of a screen of the given size.
func (s *Settings) Layout(screenW, screenH int) {
	if screenW == s.screenW && screenH == s.screenH && !s.panel.Empty() {
		return
	}
	s.screenW, s.screenH = screenW, screenH

	height := controlsTop + len(s.controls)*lineHeight + buttonHeight + 2*panelPadding
	x := (screenW - panelWidth) / 2
	y := (screenH - height) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	s.panel = image.Rect(x, y, x+panelWidth, y+height)

	for i := range s.controls {
		top := y + controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		right := s.panel.Max.X - panelPadding
		st := &s.controls[i]
		st.top = top
		switch st.control.Type {
		case core.ParamTypeInt:
			st.plusRect = image.Rect(right-buttonSize, buttonY, right, buttonY+buttonSize)
			st.minusRect = image.Rect(st.plusRect.Min.X-buttonGap-buttonSize, buttonY, st.plusRect.Min.X-buttonGap, buttonY+buttonSize)
			st.valueRect = image.Rectangle{}
		default:
			st.valueRect = image.Rect(right-valueButtonWidth, buttonY, right, buttonY+buttonSize)
			st.minusRect = image.Rectangle{}
			st.plusRect = image.Rectangle{}
		}
	}

	backW := 96
	backY := s.panel.Max.Y - panelPadding - buttonHeight
	backX := s.panel.Min.X + (panelWidth-backW)/2
	s.backRect = image.Rect(backX, backY, backX+backW, backY+buttonHeight)
}

// Refresh pulls current values from the provider.
func (s *Settings) Refresh() {
	s.snapshot = s.provider.Parameters()
	for i := range s.controls {
		st := &s.controls[i]
		st.param, st.found = s.snapshot.Lookup(st.control.Key)
	}
}

// HandleClick routes a click at (x, y). While the panel is open it is modal
// and consumes every click.
func (s *Settings) HandleClick(x, y int) bool {
	if !s.open {
		return false
	}
	if pointInRect(x, y, s.backRect) {
		s.Close()
		return true
	}
	if !pointInRect(x, y, s.panel) {
		return true
	}
	for i := range s.controls {
		st := &s.controls[i]
		if !st.found {
			continue
		}
		switch st.control.Type {
		case core.ParamTypeInt:
			if pointInRect(x, y, st.minusRect) {
				s.adjust(st, -1)
				return true
			}
			if pointInRect(x, y, st.plusRect) {
				s.adjust(st, 1)
				return true
			}
		case core.ParamTypeColor:
			if pointInRect(x, y, st.valueRect) && s.picker != nil {
				s.picker.PickColor(st.control.Key, st.control.Label, st.param.Color)
				return true
			}
		case core.ParamTypeToggle:
			if pointInRect(x, y, st.valueRect) && s.toggleSetter != nil {
				s.toggleSetter.ToggleParameter(st.control.Key)
				s.Refresh()
				return true
			}
		}
	}
	return true
}

func (s *Settings) adjust(st *controlState, direction int) {
	if s.intSetter == nil {
		return
	}
	step := st.control.Step
	if step <= 0 {
		step = 1
	}
	target := st.control.Clamp(st.param.Int + direction*step)
	if target == st.param.Int {
		return
	}
	if s.intSetter.SetIntParameter(st.control.Key, target) {
		s.Refresh()
	}
}

func (s *Settings) canAdjust(st *controlState, direction int) bool {
	if s.intSetter == nil || !st.found {
		return false
	}
	step := st.control.Step
	if step <= 0 {
		step = 1
	}
	return st.control.Clamp(st.param.Int+direction*step) != st.param.Int
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelWidth       = 320
	panelPadding     = 12
	lineHeight       = 36
	buttonSize       = 24
	buttonGap        = 6
	buttonHeight     = 28
	valueButtonWidth = 88
	headerBaseline   = 18
	labelBaseline    = 24
	controlsTop      = panelPadding + headerBaseline + 14
)

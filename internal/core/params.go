package core

import "image/color"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters adjusted with a stepper.
	ParamTypeInt ParamType = "int"
	// ParamTypeColor denotes color parameters edited through a picker.
	ParamTypeColor ParamType = "color"
	// ParamTypeToggle denotes two-valued parameters flipped with one click.
	ParamTypeToggle ParamType = "toggle"
)

// Parameter is the current value of a single setting.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string

	Int   int
	Color color.RGBA
}

// ParameterSnapshot captures the current set of settings.
type ParameterSnapshot struct {
	Params []Parameter
}

// Lookup returns the parameter stored under key.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, p := range s.Params {
		if p.Key == key {
			return p, true
		}
	}
	return Parameter{}, false
}

// ParameterControl describes an adjustable setting shown on the settings
// panel. Bounds only apply to ParamTypeInt.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step int
	Min  int
	Max  int
}

// Clamp limits v to the control bounds. Controls with Max < Min are unbounded.
func (c ParameterControl) Clamp(v int) int {
	if c.Max < c.Min {
		return v
	}
	if v < c.Min {
		return c.Min
	}
	if v > c.Max {
		return c.Max
	}
	return v
}

// ParameterControlsProvider exposes the list of panel-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
	Parameters() ParameterSnapshot
}

// IntParameterSetter allows panel interactions to update integer settings.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// ColorParameterSetter allows panel interactions to update color settings.
type ColorParameterSetter interface {
	SetColorParameter(key string, value color.RGBA) bool
}

// ToggleParameterSetter flips a two-valued setting.
type ToggleParameterSetter interface {
	ToggleParameter(key string) bool
}

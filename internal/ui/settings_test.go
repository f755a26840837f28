package ui

import (
	"image"
	"image/color"
	"strconv"
	"testing"

	"pixel-wall/internal/core"
)

type fakeProvider struct {
	width  int
	shape  string
	color  color.RGBA
	setErr bool
}

func (f *fakeProvider) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "width", Label: "Width", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 3},
		{Key: "primary", Label: "Active color", Type: core.ParamTypeColor},
		{Key: "shape", Label: "Pixel shape", Type: core.ParamTypeToggle},
	}
}

func (f *fakeProvider) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Params: []core.Parameter{
		{Key: "width", Type: core.ParamTypeInt, Int: f.width, Value: strconv.Itoa(f.width)},
		{Key: "primary", Type: core.ParamTypeColor, Color: f.color},
		{Key: "shape", Type: core.ParamTypeToggle, Value: f.shape},
	}}
}

func (f *fakeProvider) SetIntParameter(key string, v int) bool {
	if key != "width" || f.setErr {
		return false
	}
	f.width = v
	return true
}

func (f *fakeProvider) ToggleParameter(key string) bool {
	if key != "shape" {
		return false
	}
	if f.shape == "circle" {
		f.shape = "rect"
	} else {
		f.shape = "circle"
	}
	return true
}

type fakePicker struct {
	key     string
	initial color.RGBA
	calls   int
}

func (p *fakePicker) PickColor(key, _ string, initial color.RGBA) {
	p.key = key
	p.initial = initial
	p.calls++
}

func center(r image.Rectangle) (int, int) {
	return (r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2
}

func openSettings(t *testing.T, f *fakeProvider, p ColorPicker) *Settings {
	t.Helper()
	s := NewSettings(f, p)
	s.Layout(800, 600)
	s.Open()
	return s
}

func TestSettingsClosedIgnoresClicks(t *testing.T) {
	f := &fakeProvider{width: 2, shape: "circle"}
	s := NewSettings(f, nil)
	s.Layout(800, 600)
	if s.HandleClick(400, 300) {
		t.Fatal("closed panel must not consume clicks")
	}
}

func TestSettingsStepperClamps(t *testing.T) {
	f := &fakeProvider{width: 2, shape: "circle"}
	s := openSettings(t, f, nil)
	plus := s.controls[0].plusRect
	minus := s.controls[0].minusRect

	for i := 0; i < 3; i++ {
		s.HandleClick(center(plus))
	}
	if f.width != 3 {
		t.Fatalf("width = %d after pressing plus, expected clamp at 3", f.width)
	}
	if s.canAdjust(&s.controls[0], 1) {
		t.Fatal("plus should be disabled at the maximum")
	}
	for i := 0; i < 5; i++ {
		s.HandleClick(center(minus))
	}
	if f.width != 1 {
		t.Fatalf("width = %d after pressing minus, expected clamp at 1", f.width)
	}
}

func TestSettingsColorOpensPicker(t *testing.T) {
	red := color.RGBA{R: 0xff, A: 0xff}
	f := &fakeProvider{width: 2, shape: "circle", color: red}
	picker := &fakePicker{}
	s := openSettings(t, f, picker)

	s.HandleClick(center(s.controls[1].valueRect))
	if picker.calls != 1 || picker.key != "primary" || picker.initial != red {
		t.Fatalf("picker = %+v, expected one call for primary starting at red", picker)
	}
}

func TestSettingsToggle(t *testing.T) {
	f := &fakeProvider{width: 2, shape: "circle"}
	s := openSettings(t, f, nil)
	s.HandleClick(center(s.controls[2].valueRect))
	if f.shape != "rect" {
		t.Fatalf("shape = %s, expected rect", f.shape)
	}
	if s.controls[2].param.Value != "rect" {
		t.Fatal("panel should refresh after toggling")
	}
}

func TestSettingsModalAndBack(t *testing.T) {
	f := &fakeProvider{width: 2, shape: "circle"}
	s := openSettings(t, f, nil)

	if !s.HandleClick(2, 2) {
		t.Fatal("open panel should swallow clicks outside it")
	}
	if !s.IsOpen() {
		t.Fatal("clicking outside must not close the panel")
	}
	if !s.HandleClick(center(s.backRect)) || s.IsOpen() {
		t.Fatal("Back should close the panel")
	}
	s.Toggle()
	if !s.IsOpen() {
		t.Fatal("Toggle should reopen the panel")
	}
}

func TestToolbarButtons(t *testing.T) {
	resets, settings := 0, 0
	tb := NewToolbar(func() { resets++ }, func() { settings++ })
	tb.Layout(640, 480)

	if tb.Bounds().Min.Y != 480-ToolbarHeight {
		t.Fatalf("toolbar top = %d", tb.Bounds().Min.Y)
	}
	if !tb.HandleClick(center(tb.buttons[0].rect)) || resets != 1 {
		t.Fatal("Reset button did not fire")
	}
	if !tb.HandleClick(center(tb.buttons[1].rect)) || settings != 1 {
		t.Fatal("Settings button did not fire")
	}
	if !tb.HandleClick(600, 470) {
		t.Fatal("click on empty toolbar area should still be consumed")
	}
	if tb.HandleClick(100, 100) {
		t.Fatal("click above the toolbar should pass through")
	}
}

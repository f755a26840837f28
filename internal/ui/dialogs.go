package ui

import (
	"image/color"

	"github.com/ncruces/zenity"
	"github.com/pkg/errors"

	"pixel-wall/internal/palette"
)

// DialogKind tells which dialog produced a result.
type DialogKind int

const (
	// DialogColor is the answer of a color picker.
	DialogColor DialogKind = iota
	// DialogConfirmReset is the answer of the reset confirmation.
	DialogConfirmReset
)

// DialogResult is delivered once a native dialog closes.
type DialogResult struct {
	Kind      DialogKind
	Key       string
	Color     color.RGBA
	Confirmed bool
	Err       error
}

// Dialogs runs native dialogs off the game loop. Results are queued and
// picked up by Drain on the next update, so callers only ever touch wall
// state from the update goroutine.
type Dialogs struct {
	results chan DialogResult
	busy    bool

	selectColor func(title string, initial color.Color) (color.Color, error)
	question    func(text, title string) error
}

// NewDialogs returns dialogs backed by zenity.
func NewDialogs() *Dialogs {
	return &Dialogs{
		results: make(chan DialogResult, 4),
		selectColor: func(title string, initial color.Color) (color.Color, error) {
			return zenity.SelectColor(zenity.Title(title), zenity.Color(initial), zenity.ShowPalette())
		},
		question: func(text, title string) error {
			return zenity.Question(text, zenity.Title(title), zenity.OKLabel("Reset"), zenity.CancelLabel("Cancel"))
		},
	}
}

// Busy reports whether a dialog is currently open.
func (d *Dialogs) Busy() bool { return d.busy }

// PickColor opens a color picker. Requests made while another dialog is open
// are ignored.
func (d *Dialogs) PickColor(key, title string, initial color.RGBA) {
	if d.busy {
		return
	}
	d.busy = true
	go func() {
		res := DialogResult{Kind: DialogColor, Key: key}
		c, err := d.selectColor(title, initial)
		switch {
		case errors.Is(err, zenity.ErrCanceled):
		case err != nil:
			res.Err = errors.Wrapf(err, "pick %s color", key)
		default:
			res.Color = palette.FromColor(c)
			res.Confirmed = true
		}
		d.results <- res
	}()
}

// ConfirmReset asks whether every pixel should be reset.
func (d *Dialogs) ConfirmReset() {
	if d.busy {
		return
	}
	d.busy = true
	go func() {
		res := DialogResult{Kind: DialogConfirmReset}
		err := d.question("Reset all pixels?", "Reset")
		switch {
		case errors.Is(err, zenity.ErrCanceled):
		case err != nil:
			res.Err = errors.Wrap(err, "confirm reset")
		default:
			res.Confirmed = true
		}
		d.results <- res
	}()
}

// Drain returns every result that arrived since the last call.
func (d *Dialogs) Drain() []DialogResult {
	var out []DialogResult
	for {
		select {
		case res := <-d.results:
			d.busy = false
			out = append(out, res)
		default:
			return out
		}
	}
}

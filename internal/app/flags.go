package app

import (
	"flag"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"pixel-wall/internal/palette"
	"pixel-wall/internal/wall"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width  int
	Height int

	Primary    string
	Secondary  string
	Background string
	Shape      string

	Throttle time.Duration
	TPS      int
	Window   string

	Sound  bool
	Volume float64
	Debug  bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:      wall.DefaultColumns,
		Height:     wall.DefaultRows,
		Primary:    palette.DefaultPrimaryHex,
		Secondary:  palette.DefaultSecondaryHex,
		Background: palette.DefaultBackgroundHex,
		Shape:      wall.ShapeCircle.String(),
		Throttle:   wall.DefaultThrottle,
		TPS:        60,
		Window:     "640x704",
		Volume:     -2,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "wall width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "wall height in cells")
	fs.StringVar(&c.Primary, "primary", c.Primary, "color of painted cells")
	fs.StringVar(&c.Secondary, "secondary", c.Secondary, "color of unpainted cells")
	fs.StringVar(&c.Background, "background", c.Background, "window background color")
	fs.StringVar(&c.Shape, "shape", c.Shape, "cell shape: circle or rect")
	fs.DurationVar(&c.Throttle, "throttle", c.Throttle, "window for collapsing resize and dimension changes")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.StringVar(&c.Window, "window", c.Window, "initial window size as WxH")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "play a click when a cell toggles")
	fs.Float64Var(&c.Volume, "volume", c.Volume, "click volume as a power of two")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "start with the hit-test overlay visible")
}

// Resolved holds the parsed form of a Config.
type Resolved struct {
	Palette    wall.Palette
	Background color.RGBA
	Shape      wall.Shape
	WindowW    int
	WindowH    int
}

// Resolve validates the configuration and parses its string fields.
func (c *Config) Resolve() (Resolved, error) {
	var r Resolved
	if c.Width < wall.MinDimension || c.Width > wall.MaxDimension {
		return r, errors.Wrapf(wall.ErrInvalidArgument, "width %d outside [%d,%d]", c.Width, wall.MinDimension, wall.MaxDimension)
	}
	if c.Height < wall.MinDimension || c.Height > wall.MaxDimension {
		return r, errors.Wrapf(wall.ErrInvalidArgument, "height %d outside [%d,%d]", c.Height, wall.MinDimension, wall.MaxDimension)
	}
	if c.Throttle < 0 {
		return r, errors.Wrapf(wall.ErrInvalidArgument, "throttle %s", c.Throttle)
	}
	if c.TPS <= 0 {
		return r, errors.Wrapf(wall.ErrInvalidArgument, "tps %d", c.TPS)
	}

	var err error
	if r.Palette.Primary, err = palette.Parse(c.Primary); err != nil {
		return r, errors.Wrap(err, "primary")
	}
	if r.Palette.Secondary, err = palette.Parse(c.Secondary); err != nil {
		return r, errors.Wrap(err, "secondary")
	}
	if r.Background, err = palette.Parse(c.Background); err != nil {
		return r, errors.Wrap(err, "background")
	}
	if r.Shape, err = wall.ParseShape(c.Shape); err != nil {
		return r, err
	}
	if r.WindowW, r.WindowH, err = ParseSize(c.Window); err != nil {
		return r, errors.Wrap(err, "window")
	}
	return r, nil
}

// ParseSize parses "WxH" into positive integers.
func ParseSize(s string) (int, int, error) {
	parts := strings.SplitN(strings.ToLower(strings.TrimSpace(s)), "x", 2)
	if len(parts) != 2 {
		return 0, 0, errors.Wrapf(wall.ErrInvalidArgument, "size %q is not WxH", s)
	}
	w, errW := strconv.Atoi(parts[0])
	h, errH := strconv.Atoi(parts[1])
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, 0, errors.Wrapf(wall.ErrInvalidArgument, "size %q is not WxH", s)
	}
	return w, h, nil
}

// Title returns the window title for the wall size.
func Title(cols, rows int) string {
	return fmt.Sprintf("pixel-wall - %dx%d", cols, rows)
}

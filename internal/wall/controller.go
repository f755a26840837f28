package wall

import (
	"image/color"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"pixel-wall/internal/core"
	"pixel-wall/internal/palette"
)

// Parameter keys exposed to the settings panel.
const (
	ParamWidth     = "width"
	ParamHeight    = "height"
	ParamPrimary   = "primary"
	ParamSecondary = "secondary"
	ParamShape     = "shape"
)

// Controller is the wall's public surface for the UI. Dimension and container
// changes are throttled; palette, shape and reset apply immediately.
type Controller struct {
	wall *Wall

	width     *core.Throttle[int]
	height    *core.Throttle[int]
	container *core.Throttle[core.Rect]
}

// NewController wraps w. Each throttled setter collapses bursts shorter than
// delay into a single update.
func NewController(w *Wall, delay time.Duration) *Controller {
	c := &Controller{wall: w}
	c.width = core.NewThrottle(delay, func(cols int) {
		_ = c.wall.SetDimensions(c.wall.Rows(), cols)
	})
	c.height = core.NewThrottle(delay, func(rows int) {
		_ = c.wall.SetDimensions(rows, c.wall.Columns())
	})
	c.container = core.NewThrottle(delay, c.wall.SetContainer)
	return c
}

// SetClock replaces the time source of every throttle.
func (c *Controller) SetClock(now func() time.Time) {
	c.width.SetClock(now)
	c.height.SetClock(now)
	c.container.SetClock(now)
}

// Wall returns the controlled wall.
func (c *Controller) Wall() *Wall { return c.wall }

// Tick applies throttled calls whose window has elapsed and reports whether
// anything changed. Call it once per update.
func (c *Controller) Tick() bool {
	changed := c.width.Poll()
	if c.height.Poll() {
		changed = true
	}
	if c.container.Poll() {
		changed = true
	}
	return changed
}

// Flush applies every pending throttled call now.
func (c *Controller) Flush() {
	c.width.Flush()
	c.height.Flush()
	c.container.Flush()
}

// SetWallWidth schedules a change of the column count.
func (c *Controller) SetWallWidth(columns int) error {
	if columns < 0 {
		return errors.Wrapf(ErrInvalidArgument, "width %d", columns)
	}
	c.width.Call(columns)
	return nil
}

// SetWallHeight schedules a change of the row count.
func (c *Controller) SetWallHeight(rows int) error {
	if rows < 0 {
		return errors.Wrapf(ErrInvalidArgument, "height %d", rows)
	}
	c.height.Call(rows)
	return nil
}

// Resize schedules a relayout for a new container rectangle. A container
// identical to the current one with nothing pending is ignored.
func (c *Controller) Resize(r core.Rect) {
	pending, ok := c.container.Pending()
	if ok && pending == r {
		return
	}
	if !ok && c.wall.Container() == r {
		return
	}
	c.container.Call(r)
}

// SetPrimaryColor repaints active cells.
func (c *Controller) SetPrimaryColor(col color.RGBA) { c.wall.SetPrimaryColor(col) }

// SetSecondaryColor repaints inactive cells.
func (c *Controller) SetSecondaryColor(col color.RGBA) { c.wall.SetSecondaryColor(col) }

// TogglePixelShape flips between circles and squares.
func (c *Controller) TogglePixelShape() { c.wall.ToggleShape() }

// ResetPixels returns every cell to the secondary color.
func (c *Controller) ResetPixels() { c.wall.Reset() }

// ParameterControls lists the settings shown on the panel.
func (c *Controller) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: ParamWidth, Label: "Width", Type: core.ParamTypeInt, Step: 1, Min: MinDimension, Max: MaxDimension},
		{Key: ParamHeight, Label: "Height", Type: core.ParamTypeInt, Step: 1, Min: MinDimension, Max: MaxDimension},
		{Key: ParamPrimary, Label: "Active color", Type: core.ParamTypeColor},
		{Key: ParamSecondary, Label: "Default color", Type: core.ParamTypeColor},
		{Key: ParamShape, Label: "Pixel shape", Type: core.ParamTypeToggle},
	}
}

// Parameters reports current settings. Dimensions waiting on a throttle are
// reported with their requested value so steppers do not lag behind clicks.
func (c *Controller) Parameters() core.ParameterSnapshot {
	cols := c.wall.Columns()
	if v, ok := c.width.Pending(); ok {
		cols = v
	}
	rows := c.wall.Rows()
	if v, ok := c.height.Pending(); ok {
		rows = v
	}
	p := c.wall.Palette()
	return core.ParameterSnapshot{Params: []core.Parameter{
		{Key: ParamWidth, Label: "Width", Type: core.ParamTypeInt, Int: cols, Value: strconv.Itoa(cols)},
		{Key: ParamHeight, Label: "Height", Type: core.ParamTypeInt, Int: rows, Value: strconv.Itoa(rows)},
		{Key: ParamPrimary, Label: "Active color", Type: core.ParamTypeColor, Color: p.Primary, Value: palette.Hex(p.Primary)},
		{Key: ParamSecondary, Label: "Default color", Type: core.ParamTypeColor, Color: p.Secondary, Value: palette.Hex(p.Secondary)},
		{Key: ParamShape, Label: "Pixel shape", Type: core.ParamTypeToggle, Value: c.wall.Shape().String()},
	}}
}

// SetIntParameter updates width or height.
func (c *Controller) SetIntParameter(key string, value int) bool {
	switch key {
	case ParamWidth:
		return c.SetWallWidth(value) == nil
	case ParamHeight:
		return c.SetWallHeight(value) == nil
	}
	return false
}

// SetColorParameter updates one of the palette colors.
func (c *Controller) SetColorParameter(key string, value color.RGBA) bool {
	switch key {
	case ParamPrimary:
		c.SetPrimaryColor(value)
	case ParamSecondary:
		c.SetSecondaryColor(value)
	default:
		return false
	}
	return true
}

// ToggleParameter flips the pixel shape.
func (c *Controller) ToggleParameter(key string) bool {
	if key != ParamShape {
		return false
	}
	c.TogglePixelShape()
	return true
}

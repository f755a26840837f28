// Package palette parses and formats the colors used by the wall.
package palette

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Default colors for a fresh wall.
const (
	DefaultPrimaryHex    = "#CC1144"
	DefaultSecondaryHex  = "#CCCCCC"
	DefaultBackgroundHex = "#BBBBBB"
)

// ErrInvalidColor is returned when a color string cannot be parsed.
var ErrInvalidColor = errors.New("invalid color")

var (
	// DefaultPrimary is the color of an active cell.
	DefaultPrimary = MustParse(DefaultPrimaryHex)
	// DefaultSecondary is the color of a cell in its initial state.
	DefaultSecondary = MustParse(DefaultSecondaryHex)
	// DefaultBackground fills the window behind the wall.
	DefaultBackground = MustParse(DefaultBackgroundHex)
)

// Parse converts "#rrggbb" or "#rgb" (the leading '#' is optional) into an
// opaque RGBA color.
func Parse(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.RGBA{}, errors.Wrap(ErrInvalidColor, "empty color")
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) == 4 {
		s = "#" + string([]byte{s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, errors.Wrapf(ErrInvalidColor, "%q: %v", s, err)
	}
	return ToRGBA(c), nil
}

// MustParse is like Parse but panics on malformed input. It is meant for
// package-level defaults.
func MustParse(s string) color.RGBA {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats c as an upper-case "#RRGGBB" string.
func Hex(c color.Color) string {
	cf, _ := colorful.MakeColor(opaque(c))
	return strings.ToUpper(cf.Hex())
}

// FromColor converts any color.Color into an opaque RGBA value. Colors with
// zero alpha come back black.
func FromColor(c color.Color) color.RGBA {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return color.RGBA{A: 0xff}
	}
	return ToRGBA(cf)
}

// ToRGBA converts a colorful.Color into an opaque RGBA value.
func ToRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Blend mixes a towards b by t in Lab space, which keeps highlight tints
// perceptually even across palettes.
func Blend(a, b color.Color, t float64) color.RGBA {
	ca, okA := colorful.MakeColor(opaque(a))
	cb, okB := colorful.MakeColor(opaque(b))
	if !okA || !okB {
		return FromColor(a)
	}
	return ToRGBA(ca.BlendLab(cb, t))
}

// Contrast picks black or white, whichever reads better on top of c.
func Contrast(c color.Color) color.RGBA {
	cf, ok := colorful.MakeColor(opaque(c))
	if !ok {
		return color.RGBA{A: 0xff}
	}
	l, _, _ := cf.Lab()
	if l > 0.6 {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
}

func opaque(c color.Color) color.Color {
	r, g, b, _ := c.RGBA()
	return color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: 0xffff}
}

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"pixel-wall/internal/app"
	"pixel-wall/internal/core"
	"pixel-wall/internal/wall"
)

type point struct {
	X, Y float64
}

type pointList []point

func (l *pointList) String() string {
	parts := make([]string, len(*l))
	for i, p := range *l {
		parts[i] = fmt.Sprintf("%g,%g", p.X, p.Y)
	}
	return strings.Join(parts, " ")
}

func (l *pointList) Set(value string) error {
	p, err := parsePoint(value)
	if err != nil {
		return err
	}
	*l = append(*l, p)
	return nil
}

func parsePoint(s string) (point, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ",", 2)
	if len(parts) != 2 {
		return point{}, errors.Wrapf(wall.ErrInvalidArgument, "point %q is not x,y", s)
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errX != nil || errY != nil {
		return point{}, errors.Wrapf(wall.ErrInvalidArgument, "point %q is not x,y", s)
	}
	return point{X: x, Y: y}, nil
}

// parseContainer accepts WxH with an optional +L+T offset.
func parseContainer(s string) (core.Rect, error) {
	size, offset := s, ""
	if i := strings.IndexByte(s, '+'); i >= 0 {
		size, offset = s[:i], s[i+1:]
	}
	w, h, err := app.ParseSize(size)
	if err != nil {
		return core.Rect{}, err
	}
	r := core.Rect{W: float64(w), H: float64(h)}
	if offset == "" {
		return r, nil
	}
	parts := strings.Split(offset, "+")
	if len(parts) != 2 {
		return core.Rect{}, errors.Wrapf(wall.ErrInvalidArgument, "container %q offset is not +L+T", s)
	}
	left, errL := strconv.ParseFloat(parts[0], 64)
	top, errT := strconv.ParseFloat(parts[1], 64)
	if errL != nil || errT != nil {
		return core.Rect{}, errors.Wrapf(wall.ErrInvalidArgument, "container %q offset is not +L+T", s)
	}
	r.X, r.Y = left, top
	return r, nil
}

type probe struct {
	rows, cols int
	container  core.Rect
	shape      wall.Shape
	points     []point
	drag       bool
}

func (p probe) run(out io.Writer) error {
	w := wall.New()
	w.SetShape(p.shape)
	if err := w.SetDimensions(p.rows, p.cols); err != nil {
		return err
	}
	w.SetContainer(p.container)

	g := w.Geometry()
	fmt.Fprintf(out, "wall %dx%d %s in %gx%g+%g+%g\n", p.cols, p.rows, p.shape, p.container.W, p.container.H, p.container.X, p.container.Y)
	if g.Empty() {
		fmt.Fprintln(out, "geometry: empty")
	} else {
		fmt.Fprintf(out, "geometry: origin (%.2f, %.2f) cell %.2f size %.2fx%.2f\n", g.X0, g.Y0, g.CellSize, g.Width, g.Height)
	}

	for i, pt := range p.points {
		c, hit := w.HitTest(pt.X, pt.Y)
		if p.drag {
			if i == 0 {
				w.Press(wall.MouseStream, pt.X, pt.Y)
			} else {
				w.Move(wall.MouseStream, pt.X, pt.Y)
			}
		}
		if !hit {
			fmt.Fprintf(out, "  (%g, %g) -> miss\n", pt.X, pt.Y)
			continue
		}
		fmt.Fprintf(out, "  (%g, %g) -> row %d col %d\n", pt.X, pt.Y, c.Row, c.Col)
	}

	if !p.drag {
		return nil
	}
	w.Release(wall.MouseStream)
	fmt.Fprintf(out, "painted %d\n", w.Count(wall.Primary))
	for r := 0; r < w.Rows(); r++ {
		var b strings.Builder
		for c := 0; c < w.Columns(); c++ {
			if w.State(wall.Cell{Row: r, Col: c}) == wall.Primary {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		fmt.Fprintln(out, b.String())
	}
	return nil
}

package main

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"pixel-wall/internal/core"
	"pixel-wall/internal/wall"
)

func TestParseContainer(t *testing.T) {
	r, err := parseContainer("640x480")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if r != (core.Rect{W: 640, H: 480}) {
		t.Fatalf("unexpected rect %+v", r)
	}

	r, err = parseContainer("200x100+10+20")
	if err != nil {
		t.Fatalf("parse with offset: %v", err)
	}
	if r != (core.Rect{X: 10, Y: 20, W: 200, H: 100}) {
		t.Fatalf("unexpected rect %+v", r)
	}

	for _, bad := range []string{"", "640", "640x480+10", "640x480+a+b", "0x10"} {
		if _, err := parseContainer(bad); !errors.Is(err, wall.ErrInvalidArgument) {
			t.Fatalf("%q: expected ErrInvalidArgument, got %v", bad, err)
		}
	}
}

func TestPointListSet(t *testing.T) {
	var l pointList
	if err := l.Set("1.5, 2"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := l.Set("3,4"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if len(l) != 2 || l[0] != (point{1.5, 2}) || l[1] != (point{3, 4}) {
		t.Fatalf("unexpected points %v", l)
	}
	if err := l.Set("nope"); err == nil {
		t.Fatalf("expected error for malformed point")
	}
}

func TestProbeReportsHits(t *testing.T) {
	p := probe{
		rows:      2,
		cols:      2,
		container: core.Rect{W: 40, H: 40},
		shape:     wall.ShapeCircle,
		points:    []point{{10, 10}, {1, 1}},
	}
	var out bytes.Buffer
	if err := p.run(&out); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "(10, 10) -> row 0 col 0") {
		t.Fatalf("missing hit in output:\n%s", got)
	}
	if !strings.Contains(got, "(1, 1) -> miss") {
		t.Fatalf("missing miss in output:\n%s", got)
	}
}

func TestProbeDragPaintsEachCellOnce(t *testing.T) {
	p := probe{
		rows:      1,
		cols:      3,
		container: core.Rect{W: 60, H: 20},
		shape:     wall.ShapeRect,
		points:    []point{{5, 5}, {8, 8}, {25, 5}, {45, 5}, {48, 5}},
		drag:      true,
	}
	var out bytes.Buffer
	if err := p.run(&out); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "painted 3\n###\n") {
		t.Fatalf("unexpected drag output:\n%s", got)
	}
}

func TestProbeNonFinitePointsMiss(t *testing.T) {
	p := probe{
		rows:      4,
		cols:      4,
		container: core.Rect{W: 80, H: 80},
		shape:     wall.ShapeRect,
		points:    []point{{math.Inf(1), 5}, {1e300, 5}, {math.NaN(), 5}},
	}
	var out bytes.Buffer
	if err := p.run(&out); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	if strings.Contains(got, "-> row") {
		t.Fatalf("non-finite points must not resolve to a cell:\n%s", got)
	}
	if n := strings.Count(got, "-> miss"); n != 3 {
		t.Fatalf("expected 3 misses, got %d:\n%s", n, got)
	}
}

package wall

import (
	"image/color"
	"testing"

	"github.com/pkg/errors"

	"pixel-wall/internal/core"
)

func newSizedWall(t *testing.T, rows, cols int) *Wall {
	t.Helper()
	w := New()
	if err := w.SetDimensions(rows, cols); err != nil {
		t.Fatalf("SetDimensions(%d, %d): %v", rows, cols, err)
	}
	return w
}

func TestSetDimensionsExactCellCount(t *testing.T) {
	w := New()
	for _, dims := range [][2]int{{16, 16}, {3, 7}, {50, 1}, {0, 4}, {2, 2}} {
		rows, cols := dims[0], dims[1]
		if err := w.SetDimensions(rows, cols); err != nil {
			t.Fatalf("SetDimensions(%d, %d): %v", rows, cols, err)
		}
		if w.Rows() != rows || w.Columns() != cols {
			t.Fatalf("wall is %dx%d, expected %dx%d", w.Rows(), w.Columns(), rows, cols)
		}
		if len(w.Cells()) != rows*cols {
			t.Fatalf("wall has %d cells, expected %d", len(w.Cells()), rows*cols)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if !w.In(Cell{Row: r, Col: c}) {
					t.Fatalf("cell (%d,%d) not addressable on %dx%d wall", r, c, rows, cols)
				}
			}
		}
		if w.In(Cell{Row: rows, Col: 0}) || w.In(Cell{Row: 0, Col: cols}) {
			t.Fatalf("cells beyond %dx%d must not be addressable", rows, cols)
		}
	}
}

func TestSetDimensionsRejectsNegative(t *testing.T) {
	w := newSizedWall(t, 4, 4)
	w.Toggle(Cell{Row: 1, Col: 2})

	for _, dims := range [][2]int{{-1, 4}, {4, -1}} {
		err := w.SetDimensions(dims[0], dims[1])
		if !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("SetDimensions(%d, %d) error = %v, expected ErrInvalidArgument", dims[0], dims[1], err)
		}
	}
	if w.Rows() != 4 || w.Columns() != 4 || w.State(Cell{Row: 1, Col: 2}) != Primary {
		t.Fatal("rejected resize must leave the wall untouched")
	}
}

func TestResizePreservesOverlap(t *testing.T) {
	w := newSizedWall(t, 4, 4)
	w.Toggle(Cell{Row: 1, Col: 1})
	w.Toggle(Cell{Row: 3, Col: 3})

	if err := w.SetDimensions(2, 2); err != nil {
		t.Fatal(err)
	}
	if err := w.SetDimensions(4, 4); err != nil {
		t.Fatal(err)
	}

	if got := w.State(Cell{Row: 1, Col: 1}); got != Primary {
		t.Fatalf("cell (1,1) = %v after shrink and regrow, expected primary", got)
	}
	if got := w.State(Cell{Row: 3, Col: 3}); got != Secondary {
		t.Fatalf("cell (3,3) = %v after shrink and regrow, expected secondary", got)
	}
}

func TestResizeColumnsOnlyKeepsRows(t *testing.T) {
	w := newSizedWall(t, 3, 3)
	w.Toggle(Cell{Row: 2, Col: 0})
	w.Toggle(Cell{Row: 0, Col: 2})

	if err := w.SetDimensions(3, 5); err != nil {
		t.Fatal(err)
	}
	if w.State(Cell{Row: 2, Col: 0}) != Primary || w.State(Cell{Row: 0, Col: 2}) != Primary {
		t.Fatal("widening must keep existing cells in their rows")
	}
	if w.Count(Primary) != 2 {
		t.Fatalf("expected 2 primary cells, got %d", w.Count(Primary))
	}
}

func TestPaletteRepaintKeepsState(t *testing.T) {
	w := newSizedWall(t, 2, 2)
	c := Cell{Row: 0, Col: 1}
	w.Toggle(c)

	teal := color.RGBA{R: 0x11, G: 0x88, B: 0x88, A: 0xff}
	w.SetPrimaryColor(teal)
	if got := w.Color(c); got != teal {
		t.Fatalf("primary cell color = %v, expected %v", got, teal)
	}
	if got := w.Color(Cell{}); got != DefaultPalette().Secondary {
		t.Fatalf("secondary cell color changed to %v", got)
	}
	if w.State(c) != Primary {
		t.Fatal("recoloring must not change logical state")
	}

	if next, _ := w.Toggle(c); next != Secondary {
		t.Fatalf("toggle after recolor went to %v, expected secondary", next)
	}

	grey := color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	w.SetSecondaryColor(grey)
	for r := 0; r < 2; r++ {
		for col := 0; col < 2; col++ {
			if got := w.Color(Cell{Row: r, Col: col}); got != grey {
				t.Fatalf("cell (%d,%d) color = %v, expected %v", r, col, got, grey)
			}
		}
	}
}

func TestResetIsIdempotent(t *testing.T) {
	w := newSizedWall(t, 3, 3)
	w.Toggle(Cell{Row: 0, Col: 0})
	w.Toggle(Cell{Row: 2, Col: 1})

	w.Reset()
	first := append([]uint8(nil), w.Cells()...)
	w.Reset()

	if w.Count(Secondary) != 9 {
		t.Fatalf("expected all 9 cells secondary, got %d", w.Count(Secondary))
	}
	for i, v := range w.Cells() {
		if v != first[i] {
			t.Fatal("second reset changed the wall")
		}
	}
}

func TestToggleShapeKeepsCells(t *testing.T) {
	w := newSizedWall(t, 2, 2)
	w.Toggle(Cell{Row: 1, Col: 1})

	if w.Shape() != ShapeCircle {
		t.Fatalf("default shape = %v, expected circle", w.Shape())
	}
	w.ToggleShape()
	if w.Shape() != ShapeRect {
		t.Fatalf("shape after toggle = %v, expected rect", w.Shape())
	}
	w.ToggleShape()
	if w.Shape() != ShapeCircle {
		t.Fatalf("shape after second toggle = %v, expected circle", w.Shape())
	}
	if w.State(Cell{Row: 1, Col: 1}) != Primary {
		t.Fatal("shape changes must not touch cell state")
	}
}

func TestToggleHook(t *testing.T) {
	w := newSizedWall(t, 2, 2)
	var seen []State
	w.OnToggle(func(_ Cell, s State) { seen = append(seen, s) })

	w.Toggle(Cell{Row: 0, Col: 0})
	w.Toggle(Cell{Row: 0, Col: 0})
	if _, ok := w.Toggle(Cell{Row: 5, Col: 5}); ok {
		t.Fatal("toggling a missing cell should report false")
	}
	if len(seen) != 2 || seen[0] != Primary || seen[1] != Secondary {
		t.Fatalf("hook saw %v, expected [primary secondary]", seen)
	}
}

func TestParseShape(t *testing.T) {
	if s, err := ParseShape("rect"); err != nil || s != ShapeRect {
		t.Fatalf("ParseShape(rect) = %v, %v", s, err)
	}
	if s, err := ParseShape("circle"); err != nil || s != ShapeCircle {
		t.Fatalf("ParseShape(circle) = %v, %v", s, err)
	}
	if _, err := ParseShape("hexagon"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("ParseShape(hexagon) error = %v", err)
	}
}

func TestEmptyWallIsInert(t *testing.T) {
	w := New()
	w.SetContainer(core.Rect{W: 100, H: 100})
	if !w.Geometry().Empty() {
		t.Fatalf("empty wall geometry = %+v, expected zero", w.Geometry())
	}
	if _, ok := w.HitTest(50, 50); ok {
		t.Fatal("empty wall must never hit")
	}
	if _, ok := w.Press(MouseStream, 50, 50); ok {
		t.Fatal("pressing an empty wall must not toggle")
	}
	w.Reset()
}

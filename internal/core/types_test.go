package core

import "testing"

func TestRectContainsExcludesFarEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	if !r.Contains(10, 20) {
		t.Fatal("top-left corner should be inside")
	}
	if !r.Contains(39.5, 59.5) {
		t.Fatal("point just inside the bottom-right corner should be inside")
	}
	if r.Contains(40, 30) || r.Contains(20, 60) {
		t.Fatal("right and bottom edges are exclusive")
	}
	if r.Contains(9, 30) || r.Contains(20, 19) {
		t.Fatal("points left of or above the rect should be outside")
	}
}

func TestRectEmpty(t *testing.T) {
	if !(Rect{W: 0, H: 10}).Empty() || !(Rect{W: 10, H: -1}).Empty() {
		t.Fatal("rects without area should be empty")
	}
	if (Rect{W: 1, H: 1}).Empty() {
		t.Fatal("unit rect should not be empty")
	}
}

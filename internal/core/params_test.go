package core

import "testing"

func TestParameterControlClamp(t *testing.T) {
	ctrl := ParameterControl{Key: "width", Type: ParamTypeInt, Step: 1, Min: 1, Max: 50}
	cases := map[int]int{-3: 1, 0: 1, 1: 1, 25: 25, 50: 50, 51: 50}
	for in, want := range cases {
		if got := ctrl.Clamp(in); got != want {
			t.Fatalf("Clamp(%d) = %d, expected %d", in, got, want)
		}
	}

	unbounded := ParameterControl{Min: 1, Max: 0}
	if got := unbounded.Clamp(1000); got != 1000 {
		t.Fatalf("unbounded clamp changed value to %d", got)
	}
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Params: []Parameter{
		{Key: "width", Type: ParamTypeInt, Int: 16, Value: "16"},
		{Key: "shape", Type: ParamTypeToggle, Value: "circle"},
	}}
	p, ok := snap.Lookup("shape")
	if !ok || p.Value != "circle" {
		t.Fatalf("lookup shape = %+v,%v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("lookup of unknown key should fail")
	}
}

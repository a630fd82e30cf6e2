package common

import (
	"errors"
	"math"
	"testing"
)

func TestRemap(t *testing.T) {
	cases := []struct {
		name           string
		value          float64
		oldMin, oldMax float64
		newMin, newMax float64
		want           float64
	}{
		{"low_edge", 0, 0, 90, 2, -3, 2},
		{"high_edge", 90, 0, 90, 2, -3, -3},
		{"midpoint", 45, 0, 90, 2, -3, -0.5},
		{"beyond_range_not_clamped", 180, 0, 90, 1, 0, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Remap(c.value, c.oldMin, c.oldMax, c.newMin, c.newMax)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-c.want) > 1e-9 {
				t.Fatalf("Remap(%v) = %v, want %v", c.value, got, c.want)
			}
		})
	}
}

func TestRemapDegenerateRange(t *testing.T) {
	got, err := Remap(10, 5, 5, 0, 1)
	if !errors.Is(err, ErrDegenerateRange) {
		t.Fatalf("expected ErrDegenerateRange, got %v", err)
	}
	if got != 0 {
		t.Fatalf("expected zero term on degenerate range, got %v", got)
	}
}

func TestWrapDegrees(t *testing.T) {
	cases := map[float64]float64{
		0:    0,
		359:  359,
		360:  0,
		370:  10,
		-10:  350,
		-720: 0,
	}
	for in, want := range cases {
		if got := WrapDegrees(in); math.Abs(got-want) > 1e-9 {
			t.Errorf("WrapDegrees(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestForwardFacesDownhillAt180(t *testing.T) {
	f := Forward(DownhillHeading)
	if math.Abs(f.X) > 1e-9 || math.Abs(f.Z-1) > 1e-9 {
		t.Fatalf("Forward(180) = %+v, want (0,0,1)", f)
	}
	right := Forward(270)
	if right.X < 0.99 {
		t.Fatalf("Forward(270) should point to +X, got %+v", right)
	}
}

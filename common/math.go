package common

import (
	"errors"
	"math"
)

// ErrDegenerateRange is returned by Remap when the source range is empty.
var ErrDegenerateRange = errors.New("common: degenerate remap range")

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Remap maps value from [oldMin, oldMax] into [newMin, newMax] linearly.
// The result is not clamped.
func Remap(value, oldMin, oldMax, newMin, newMax float64) (float64, error) {
	oldRange := oldMax - oldMin
	if oldRange == 0 || math.IsNaN(oldRange) {
		return 0, ErrDegenerateRange
	}
	return ((value-oldMin)*(newMax-newMin))/oldRange + newMin, nil
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WrapDegrees folds an angle into [0, 360).
func WrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

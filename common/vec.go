package common

import "math"

// Vec3 is a world-space vector. X is lateral, Y is up and Z points downhill.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Forward returns the horizontal unit vector for a yaw heading in degrees.
// A heading of 180 faces straight downhill (+Z); headings above 180 swing
// toward +X.
func Forward(headingDeg float64) Vec3 {
	rad := headingDeg * math.Pi / 180
	return Vec3{X: -math.Sin(rad), Y: 0, Z: -math.Cos(rad)}
}

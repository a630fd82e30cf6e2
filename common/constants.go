package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// DownhillHeading is the yaw that faces straight down the fall line.
	DownhillHeading = 180.0
)

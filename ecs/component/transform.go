package component

// Transform places an entity on the slope. X is lateral, Y is height and Z
// runs downhill. Heading is the yaw in degrees; 180 faces straight down.
type Transform struct {
	X       float64
	Y       float64
	Z       float64
	Heading float64
}

var TransformComponent = NewComponent[Transform]()

package component

// Velocity is the linear velocity handed to the physics adapter. The
// movement integrator owns X and Z; Y belongs to the physics side.
type Velocity struct {
	X float64
	Y float64
	Z float64
}

var VelocityComponent = NewComponent[Velocity]()

package component

// Input stores per-tick external feeds for an entity.
type Input struct {
	// Steering is the normalized axis, -1 full left to 1 full right.
	Steering float64
	// Grounded comes from the physics adapter's ground probe.
	Grounded bool
}

var InputComponent = NewComponent[Input]()

package component

// Zone is the trigger footprint of a gate or finish line on the slope
// plane, centered on the entity's transform.
type Zone struct {
	Width float64
	Depth float64
}

var ZoneComponent = NewComponent[Zone]()

package component

import "time"

// Boost is the temporary additive speed bonus. Magnitude is remembered so
// expiry subtracts exactly what was added.
type Boost struct {
	Active    bool
	ExpiresAt time.Time
	Magnitude float64
}

var BoostComponent = NewComponent[Boost]()

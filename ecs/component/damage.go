package component

import "time"

// Damage tracks the hurt/recovering state. RecoverAt is only meaningful
// while Hurt is set.
type Damage struct {
	Hurt      bool
	RecoverAt time.Time
}

var DamageComponent = NewComponent[Damage]()

// KnockbackRequest is a transient component asking the physics side to
// apply a backward and an upward impulse, then remove the request.
type KnockbackRequest struct {
	Back float64
	Up   float64
}

var KnockbackRequestComponent = NewComponent[KnockbackRequest]()

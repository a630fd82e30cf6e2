package component

// Skier is the tunable-free part of the player's state. Limits and rates
// live in the tuning record.
type Skier struct {
	Speed  float64
	Moving bool
	Health float64
	Score  int
}

var SkierComponent = NewComponent[Skier]()

// SpeedReadout is what the animation layer reads each tick.
type SpeedReadout struct {
	Speed float64
}

var SpeedReadoutComponent = NewComponent[SpeedReadout]()

package component

// Obstacle is a solid course object that knocks the player back on contact.
type Obstacle struct {
	Tag         string
	Radius      float64
	Removable   bool
	HealthDelta float64
}

var ObstacleComponent = NewComponent[Obstacle]()

package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// RaceTag marks the singleton entity that owns the race clock.
type RaceTag struct{}

var RaceTagComponent = NewComponent[RaceTag]()

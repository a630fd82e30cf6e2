package entity

import (
	"github.com/milk9111/slalom/ecs"
	"github.com/milk9111/slalom/ecs/component"
	"github.com/milk9111/slalom/prefabs"
)

func NewGate(w *ecs.World, spec prefabs.GateSpec) (ecs.Entity, error) {
	return build(w, "gate", componentSet{
		with(component.GateComponent, component.Gate{Kind: spec.GateKind()}),
		with(component.TransformComponent, component.Transform{X: spec.X, Z: spec.Z}),
		with(component.ZoneComponent, component.Zone{Width: spec.Width, Depth: spec.Depth}),
		with(component.PhysicsBodyComponent, component.PhysicsBody{Static: true}),
	})
}

func NewObstacle(w *ecs.World, spec prefabs.ObstacleSpec) (ecs.Entity, error) {
	return build(w, "obstacle", componentSet{
		with(component.ObstacleComponent, component.Obstacle{
			Tag:         spec.Tag,
			Radius:      spec.Radius,
			Removable:   spec.Removable,
			HealthDelta: spec.HealthDelta,
		}),
		with(component.TransformComponent, component.Transform{X: spec.X, Z: spec.Z}),
		with(component.PhysicsBodyComponent, component.PhysicsBody{Static: true, Radius: spec.Radius}),
	})
}

// NewRace builds the singleton that owns the race clock.
func NewRace(w *ecs.World) (ecs.Entity, error) {
	return build(w, "race", componentSet{
		with(component.RaceTagComponent, component.RaceTag{}),
		with(component.RaceClockComponent, component.RaceClock{}),
	})
}

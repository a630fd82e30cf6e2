package entity

import (
	"github.com/milk9111/slalom/ecs"
	"github.com/milk9111/slalom/ecs/component"
	"github.com/milk9111/slalom/prefabs"
)

// NewSkier builds the player at the course spawn point.
func NewSkier(w *ecs.World, spawn prefabs.SpawnSpec, tuning *prefabs.Tuning) (ecs.Entity, error) {
	return build(w, "skier", componentSet{
		with(component.PlayerTagComponent, component.PlayerTag{}),
		with(component.TransformComponent, SpawnTransform(spawn)),
		with(component.SkierComponent, component.Skier{
			Speed:  tuning.StartSpeed,
			Moving: true,
			Health: tuning.StartHealth,
		}),
		with(component.SpeedReadoutComponent, component.SpeedReadout{Speed: tuning.StartSpeed}),
		with(component.InputComponent, component.Input{Grounded: true}),
		with(component.VelocityComponent, component.Velocity{}),
		with(component.DamageComponent, component.Damage{}),
		with(component.BoostComponent, component.Boost{}),
		with(component.PhysicsBodyComponent, component.PhysicsBody{
			Radius: tuning.BodyRadius(),
			Mass:   tuning.BodyMass(),
		}),
	})
}

func SpawnTransform(spawn prefabs.SpawnSpec) component.Transform {
	return component.Transform{X: spawn.X, Y: spawn.Y, Z: spawn.Z, Heading: spawn.Heading}
}

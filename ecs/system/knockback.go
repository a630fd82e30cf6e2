package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/slalom/common"
	"github.com/milk9111/slalom/ecs"
	"github.com/milk9111/slalom/ecs/component"
	"github.com/milk9111/slalom/prefabs"
)

// KnockbackSystem consumes KnockbackRequest components. With a cp body the
// backward impulse goes through Chipmunk; without one it becomes a plain
// velocity change of impulse/mass.
type KnockbackSystem struct {
	tuning *prefabs.Tuning
}

func NewKnockbackSystem(tuning *prefabs.Tuning) *KnockbackSystem {
	return &KnockbackSystem{tuning: tuning}
}

func (s *KnockbackSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, e := range w.Query(component.KnockbackRequestComponent) {
		req, ok := ecs.Get(w, e, component.KnockbackRequestComponent)
		if !ok {
			continue
		}
		s.apply(w, e, *req)
		ecs.Remove(w, e, component.KnockbackRequestComponent)
	}
}

func (s *KnockbackSystem) apply(w *ecs.World, e ecs.Entity, req component.KnockbackRequest) {
	vel, ok := ecs.Get(w, e, component.VelocityComponent)
	if !ok {
		return
	}
	heading := common.DownhillHeading
	if t, ok := ecs.Get(w, e, component.TransformComponent); ok {
		heading = t.Heading
	}
	back := common.Forward(heading).Scale(-req.Back)

	mass := 1.0
	if s.tuning != nil {
		mass = s.tuning.BodyMass()
	}

	if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent); ok && pb.Body != nil {
		pb.Body.SetVelocityVector(cp.Vector{X: vel.X, Y: vel.Z})
		pb.Body.ApplyImpulseAtWorldPoint(cp.Vector{X: back.X, Y: back.Z}, pb.Body.Position())
		v := pb.Body.Velocity()
		vel.X = v.X
		vel.Z = v.Y
	} else {
		vel.X += back.X / mass
		vel.Z += back.Z / mass
	}
	vel.Y += req.Up / mass
}

package system

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/slalom/ecs"
	"github.com/milk9111/slalom/ecs/component"
	"github.com/milk9111/slalom/prefabs"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeZone
	collisionTypeObstacle
)

// PhysicsSystem runs the horizontal slope plane through Chipmunk2D and a
// simple ballistic channel for height. cp X is world X and cp Y is world Z.
// Zone and obstacle contacts become ZoneEntry events on the world queue.
type PhysicsSystem struct {
	tuning        *prefabs.Tuning
	space         *cp.Space
	handlersReady bool

	entities     map[ecs.Entity]*bodyInfo
	playerShapes map[*cp.Shape]ecs.Entity
	targetShapes map[*cp.Shape]ecs.Entity

	// entries collected by collision callbacks during a step
	pending []ecs.ZoneEntry
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool

	// last position read back from the body; anything else is a teleport
	lastX, lastZ float64
}

func NewPhysicsSystem(tuning *prefabs.Tuning) *PhysicsSystem {
	ps := &PhysicsSystem{
		tuning:       tuning,
		entities:     make(map[ecs.Entity]*bodyInfo),
		playerShapes: make(map[*cp.Shape]ecs.Entity),
		targetShapes: make(map[*cp.Shape]ecs.Entity),
	}
	ps.space = ps.newSpace()
	return ps
}

func (ps *PhysicsSystem) newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})
	if ps.tuning != nil && ps.tuning.Damping > 0 {
		space.SetDamping(ps.tuning.Damping)
	}
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil || ps.tuning == nil {
		return
	}
	if ps.space == nil {
		ps.space = ps.newSpace()
		ps.handlersReady = false
	}

	ps.ensureHandlers()
	ps.cleanupEntities(w)
	ps.syncEntities(w)
	ps.pushBodies(w)

	ps.pending = ps.pending[:0]
	ps.space.Step(ps.tuning.Dt())
	for _, entry := range ps.pending {
		w.Events().Push(ecs.Event{Type: ecs.EventZoneEntered, Data: entry})
	}

	ps.pullBodies(w)
	ps.integrateHeight(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}
	for _, target := range []cp.CollisionType{collisionTypeZone, collisionTypeObstacle} {
		handler := ps.space.NewCollisionHandler(collisionTypePlayer, target)
		handler.UserData = ps
		handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
			sys, ok := userData.(*PhysicsSystem)
			if !ok || sys == nil {
				return true
			}
			shapeA, shapeB := arb.Shapes()
			player, okA := sys.playerShapes[shapeA]
			zone, okB := sys.targetShapes[shapeB]
			if !okA || !okB {
				player, okA = sys.playerShapes[shapeB]
				zone, okB = sys.targetShapes[shapeA]
			}
			if okA && okB {
				sys.pending = append(sys.pending, ecs.ZoneEntry{Player: player, Zone: zone})
			}
			return true
		}
	}
	ps.handlersReady = true
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	for _, e := range w.Query(component.PhysicsBodyComponent, component.TransformComponent) {
		if _, ok := ps.entities[e]; ok {
			continue
		}
		pb, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
		t, _ := ecs.Get(w, e, component.TransformComponent)

		var info *bodyInfo
		switch {
		case ecs.Has(w, e, component.PlayerTagComponent):
			info = ps.addPlayer(e, pb, t)
		case ecs.Has(w, e, component.ZoneComponent):
			zone, _ := ecs.Get(w, e, component.ZoneComponent)
			info = ps.addZone(e, zone, t)
		case ecs.Has(w, e, component.ObstacleComponent):
			obstacle, _ := ecs.Get(w, e, component.ObstacleComponent)
			info = ps.addObstacle(e, obstacle, t)
		default:
			log.Printf("physics: %s has a body but nothing to shape it from", e)
			continue
		}

		pb.Body = info.body
		pb.Shape = info.shape
		pb.Static = info.static
		ps.entities[e] = info
	}
}

func (ps *PhysicsSystem) addPlayer(e ecs.Entity, pb *component.PhysicsBody, t *component.Transform) *bodyInfo {
	radius := pb.Radius
	if radius <= 0 {
		radius = ps.tuning.BodyRadius()
	}
	mass := pb.Mass
	if mass <= 0 {
		mass = ps.tuning.BodyMass()
	}
	pb.Radius, pb.Mass = radius, mass

	// infinite moment keeps the skier from spinning off contacts
	body := ps.space.AddBody(cp.NewBody(mass, math.Inf(1)))
	body.SetPosition(cp.Vector{X: t.X, Y: t.Z})

	shape := ps.space.AddShape(cp.NewCircle(body, radius, cp.Vector{}))
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionTypePlayer)
	ps.playerShapes[shape] = e

	return &bodyInfo{body: body, shape: shape, lastX: t.X, lastZ: t.Z}
}

func (ps *PhysicsSystem) addZone(e ecs.Entity, zone *component.Zone, t *component.Transform) *bodyInfo {
	hw, hd := zone.Width/2, zone.Depth/2
	bb := cp.BB{L: t.X - hw, B: t.Z - hd, R: t.X + hw, T: t.Z + hd}
	shape := ps.space.AddShape(cp.NewBox2(ps.space.StaticBody, bb, 0))
	shape.SetSensor(true)
	shape.SetCollisionType(collisionTypeZone)
	ps.targetShapes[shape] = e
	return &bodyInfo{body: ps.space.StaticBody, shape: shape, static: true}
}

func (ps *PhysicsSystem) addObstacle(e ecs.Entity, obstacle *component.Obstacle, t *component.Transform) *bodyInfo {
	shape := ps.space.AddShape(cp.NewCircle(ps.space.StaticBody, obstacle.Radius, cp.Vector{X: t.X, Y: t.Z}))
	shape.SetFriction(0)
	shape.SetElasticity(0.2)
	shape.SetCollisionType(collisionTypeObstacle)
	ps.targetShapes[shape] = e
	return &bodyInfo{body: ps.space.StaticBody, shape: shape, static: true}
}

// pushBodies hands the integrator's velocity to Chipmunk. Position stays
// with cp unless the transform was moved from outside, e.g. a respawn.
func (ps *PhysicsSystem) pushBodies(w *ecs.World) {
	for e, info := range ps.entities {
		if info.static {
			continue
		}
		if t, ok := ecs.Get(w, e, component.TransformComponent); ok && (t.X != info.lastX || t.Z != info.lastZ) {
			info.body.SetPosition(cp.Vector{X: t.X, Y: t.Z})
			info.lastX, info.lastZ = t.X, t.Z
		}
		if vel, ok := ecs.Get(w, e, component.VelocityComponent); ok {
			info.body.SetVelocityVector(clipToContacts(info.body, cp.Vector{X: vel.X, Y: vel.Z}))
		}
	}
}

// clipToContacts removes the part of v pointing into shapes the body is
// already touching. cp integrates positions before it solves contacts, so
// an unclipped approach velocity would sink the skier into obstacles.
func clipToContacts(body *cp.Body, v cp.Vector) cp.Vector {
	body.EachArbiter(func(arb *cp.Arbiter) {
		n := arb.Normal()
		if d := v.Dot(n); d > 0 {
			v = v.Sub(n.Mult(d))
		}
	})
	return v
}

func (ps *PhysicsSystem) pullBodies(w *ecs.World) {
	for e, info := range ps.entities {
		if info.static || !w.IsAlive(e) {
			continue
		}
		if t, ok := ecs.Get(w, e, component.TransformComponent); ok {
			pos := info.body.Position()
			t.X, t.Z = pos.X, pos.Y
			info.lastX, info.lastZ = pos.X, pos.Y
		}
		if vel, ok := ecs.Get(w, e, component.VelocityComponent); ok {
			v := info.body.Velocity()
			vel.X, vel.Z = v.X, v.Y
		}
	}
}

// integrateHeight is the vertical channel: knock-ups arc back down onto the
// snow and the grounded flag falls out of the height.
func (ps *PhysicsSystem) integrateHeight(w *ecs.World) {
	dt := ps.tuning.Dt()
	for _, e := range w.Query(component.PlayerTagComponent, component.TransformComponent) {
		t, _ := ecs.Get(w, e, component.TransformComponent)
		if vel, ok := ecs.Get(w, e, component.VelocityComponent); ok {
			vel.Y -= ps.tuning.Gravity * dt
			t.Y += vel.Y * dt
			if t.Y <= 0 {
				t.Y = 0
				if vel.Y < 0 {
					vel.Y = 0
				}
			}
		}
		if input, ok := ecs.Get(w, e, component.InputComponent); ok {
			input.Grounded = t.Y <= ps.tuning.GroundEpsilon
		}
	}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent) {
			continue
		}
		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
			delete(ps.playerShapes, info.shape)
			delete(ps.targetShapes, info.shape)
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}

// Reset drops every body so the next Update rebuilds the space from the
// world. Used when a course is reloaded.
func (ps *PhysicsSystem) Reset() {
	ps.space = nil
	ps.handlersReady = false
	ps.entities = make(map[ecs.Entity]*bodyInfo)
	ps.playerShapes = make(map[*cp.Shape]ecs.Entity)
	ps.targetShapes = make(map[*cp.Shape]ecs.Entity)
	ps.pending = nil
}

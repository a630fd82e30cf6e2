package race

import (
	"time"

	"github.com/milk9111/slalom/ecs"
	"github.com/milk9111/slalom/ecs/component"
	"github.com/milk9111/slalom/ecs/system"
)

// Snapshot is a read-only copy of what the host draws each frame.
type Snapshot struct {
	Tick     uint64
	X, Y, Z  float64
	Heading  float64
	Speed    float64
	Elapsed  time.Duration
	Clock    component.ClockState
	Hurt     bool
	Boosting bool
	Grounded bool
	Score    int
	Health   float64

	Gates     []GateView
	Obstacles []ObstacleView
}

type GateView struct {
	Entity ecs.Entity
	Kind   component.GateKind
	X, Z   float64
	Width  float64
	Depth  float64
	Judged bool
	Signal component.Signal
}

type ObstacleView struct {
	Entity ecs.Entity
	Tag    string
	X, Z   float64
	Radius float64
}

func (s *Session) Snapshot() Snapshot {
	w := s.world
	snap := Snapshot{Tick: s.tick}

	p := s.entities.Player
	if t, ok := ecs.Get(w, p, component.TransformComponent); ok {
		snap.X, snap.Y, snap.Z, snap.Heading = t.X, t.Y, t.Z, t.Heading
	}
	if r, ok := ecs.Get(w, p, component.SpeedReadoutComponent); ok {
		snap.Speed = r.Speed
	}
	if sk, ok := ecs.Get(w, p, component.SkierComponent); ok {
		snap.Score = sk.Score
		snap.Health = sk.Health
	}
	if d, ok := ecs.Get(w, p, component.DamageComponent); ok {
		snap.Hurt = d.Hurt
	}
	if b, ok := ecs.Get(w, p, component.BoostComponent); ok {
		snap.Boosting = b.Active
	}
	if in, ok := ecs.Get(w, p, component.InputComponent); ok {
		snap.Grounded = in.Grounded
	}
	if clock, ok := system.RaceClock(w); ok {
		snap.Clock = clock.State
		snap.Elapsed = clock.Elapsed(w.Now())
	}

	for _, e := range s.entities.Gates {
		gate, ok := ecs.Get(w, e, component.GateComponent)
		if !ok {
			continue
		}
		view := GateView{Entity: e, Kind: gate.Kind, Judged: gate.Judged, Signal: gate.Signal}
		if t, ok := ecs.Get(w, e, component.TransformComponent); ok {
			view.X, view.Z = t.X, t.Z
		}
		if z, ok := ecs.Get(w, e, component.ZoneComponent); ok {
			view.Width, view.Depth = z.Width, z.Depth
		}
		snap.Gates = append(snap.Gates, view)
	}

	for _, e := range s.entities.Obstacles {
		o, ok := ecs.Get(w, e, component.ObstacleComponent)
		if !ok {
			continue
		}
		view := ObstacleView{Entity: e, Tag: o.Tag, Radius: o.Radius}
		if t, ok := ecs.Get(w, e, component.TransformComponent); ok {
			view.X, view.Z = t.X, t.Z
		}
		snap.Obstacles = append(snap.Obstacles, view)
	}
	return snap
}

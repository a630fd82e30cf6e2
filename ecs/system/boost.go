package system

import (
	"github.com/milk9111/slalom/ecs"
	"github.com/milk9111/slalom/ecs/component"
	"github.com/milk9111/slalom/prefabs"
)

// BoostSystem adds a timed speed bonus when a boost gate is passed and
// removes exactly that bonus when it expires.
type BoostSystem struct {
	subscriptions
	tuning *prefabs.Tuning
}

func NewBoostSystem(tuning *prefabs.Tuning) *BoostSystem {
	return &BoostSystem{tuning: tuning}
}

func (s *BoostSystem) Attach(w *ecs.World) {
	s.track(w.Bus().Subscribe(ecs.EventCorrectPass, func(evt ecs.Event) {
		pass, ok := evt.Data.(ecs.PassEvent)
		if !ok || pass.Kind != component.GateBoost {
			return
		}
		s.Start(w, pass.Player)
	}))
}

// Start begins a boost unless one is already running or boosts are disabled.
func (s *BoostSystem) Start(w *ecs.World, player ecs.Entity) bool {
	if s.tuning == nil {
		return false
	}
	window := s.tuning.BoostWindow()
	if window <= 0 {
		return false
	}
	player, ok := playerOf(w, player)
	if !ok {
		return false
	}
	skier, ok := ecs.Get(w, player, component.SkierComponent)
	if !ok {
		return false
	}
	boost, ok := ecs.Get(w, player, component.BoostComponent)
	if !ok {
		boost = &component.Boost{}
		if err := ecs.Add(w, player, component.BoostComponent, boost); err != nil {
			return false
		}
	}
	if boost.Active {
		return false
	}

	boost.Active = true
	boost.Magnitude = s.tuning.BoostIncrement
	boost.ExpiresAt = w.Now().Add(window)
	skier.Speed += boost.Magnitude
	return true
}

func (s *BoostSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	now := w.Now()
	ecs.ForEach(w, component.BoostComponent, func(e ecs.Entity, boost *component.Boost) {
		if !boost.Active || now.Before(boost.ExpiresAt) {
			return
		}
		if skier, ok := ecs.Get(w, e, component.SkierComponent); ok {
			skier.Speed -= boost.Magnitude
		}
		*boost = component.Boost{}
	})
}

// Cancel drops an active boost, taking its bonus back off the speed.
func (s *BoostSystem) Cancel(w *ecs.World, player ecs.Entity) {
	boost, ok := ecs.Get(w, player, component.BoostComponent)
	if !ok || !boost.Active {
		return
	}
	if skier, ok := ecs.Get(w, player, component.SkierComponent); ok {
		skier.Speed -= boost.Magnitude
	}
	*boost = component.Boost{}
}

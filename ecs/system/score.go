package system

import (
	"github.com/milk9111/slalom/ecs"
	"github.com/milk9111/slalom/ecs/component"
	"github.com/milk9111/slalom/prefabs"
)

// ScoreSystem awards points for correct passes. It has no per-tick work.
type ScoreSystem struct {
	subscriptions
	tuning *prefabs.Tuning
}

func NewScoreSystem(tuning *prefabs.Tuning) *ScoreSystem {
	return &ScoreSystem{tuning: tuning}
}

func (s *ScoreSystem) Attach(w *ecs.World) {
	s.track(w.Bus().Subscribe(ecs.EventCorrectPass, func(evt ecs.Event) {
		pass, _ := evt.Data.(ecs.PassEvent)
		player, ok := playerOf(w, pass.Player)
		if !ok || s.tuning == nil {
			return
		}
		if skier, ok := ecs.Get(w, player, component.SkierComponent); ok {
			skier.Score += s.tuning.ScorePerPass
		}
	}))
}

func (s *ScoreSystem) Update(*ecs.World) {}

package system

import (
	"log"

	"github.com/milk9111/slalom/ecs"
	"github.com/milk9111/slalom/ecs/component"
)

// GateSystem judges gate crossings. Entries are fed in by TriggerSystem;
// Update runs the bypass check for players who skipped a zone entirely.
type GateSystem struct{}

func NewGateSystem() *GateSystem { return &GateSystem{} }

// judgeEntry decides what entering a gate zone means.
func judgeEntry(kind component.GateKind, gate, player component.Transform) component.Verdict {
	switch kind {
	case component.GateBlue:
		if player.X > gate.X {
			return component.VerdictCorrect
		}
		return component.VerdictIncorrect
	case component.GatePink:
		if player.X < gate.X {
			return component.VerdictCorrect
		}
		return component.VerdictIncorrect
	case component.GatePass, component.GateBoost:
		return component.VerdictCorrect
	case component.GateStart:
		return component.VerdictRaceStart
	case component.GateFinish:
		return component.VerdictRaceOver
	default:
		return component.VerdictNone
	}
}

// bypassed reports whether a player has gone past a gate that must be
// entered. Only start and checkpoint gates have this rule.
func bypassed(kind component.GateKind, gate, player component.Transform) bool {
	switch kind {
	case component.GateStart, component.GatePass:
		return player.Z > gate.Z
	default:
		return false
	}
}

// Enter judges a zone entry. It returns false when the gate was already
// judged this race.
func (s *GateSystem) Enter(w *ecs.World, player, gateEntity ecs.Entity) bool {
	gate, ok := ecs.Get(w, gateEntity, component.GateComponent)
	if !ok || gate.Judged {
		return false
	}
	gt, ok := ecs.Get(w, gateEntity, component.TransformComponent)
	if !ok {
		return false
	}
	pt, ok := ecs.Get(w, player, component.TransformComponent)
	if !ok {
		return false
	}
	s.latch(w, player, gateEntity, gate, judgeEntry(gate.Kind, *gt, *pt))
	return true
}

func (s *GateSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	players := w.Query(component.PlayerTagComponent, component.TransformComponent)
	if len(players) == 0 {
		return
	}
	ecs.ForEach(w, component.GateComponent, func(e ecs.Entity, gate *component.Gate) {
		if gate.Judged {
			return
		}
		gt, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			return
		}
		for _, p := range players {
			pt, ok := ecs.Get(w, p, component.TransformComponent)
			if !ok || !bypassed(gate.Kind, *gt, *pt) {
				continue
			}
			log.Printf("gate: %s gate %s bypassed", gate.Kind, e)
			s.latch(w, p, e, gate, component.VerdictIncorrect)
			return
		}
	})
}

// latch records the verdict before publishing so a handler that re-enters
// the judge cannot fire the same gate twice.
func (s *GateSystem) latch(w *ecs.World, player, gateEntity ecs.Entity, gate *component.Gate, verdict component.Verdict) {
	if verdict == component.VerdictNone {
		return
	}
	gate.Judged = true
	gate.Verdict = verdict

	payload := ecs.PassEvent{Player: player, Gate: gateEntity, Kind: gate.Kind}
	switch verdict {
	case component.VerdictCorrect:
		gate.Signal = component.SignalSuccess
		w.Bus().Publish(ecs.Event{Type: ecs.EventCorrectPass, Data: payload})
	case component.VerdictIncorrect:
		gate.Signal = component.SignalFailure
		w.Bus().Publish(ecs.Event{Type: ecs.EventIncorrectPass, Data: payload})
	case component.VerdictRaceStart:
		w.Bus().Publish(ecs.Event{Type: ecs.EventRaceStart, Data: payload})
	case component.VerdictRaceOver:
		log.Printf("gate: race finished at %s", gateEntity)
		w.Bus().Publish(ecs.Event{Type: ecs.EventRaceOver, Data: payload})
	}
}

// ResetGates clears every latch for a new race.
func ResetGates(w *ecs.World) {
	ecs.ForEach(w, component.GateComponent, func(_ ecs.Entity, gate *component.Gate) {
		gate.Reset()
	})
}

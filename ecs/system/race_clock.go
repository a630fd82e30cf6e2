package system

import (
	"log"

	"github.com/milk9111/slalom/ecs"
	"github.com/milk9111/slalom/ecs/component"
	"github.com/milk9111/slalom/prefabs"
)

// RaceClockSystem drives the race clock from the bus and keeps its
// high-water mark current once per tick.
type RaceClockSystem struct {
	subscriptions
	tuning *prefabs.Tuning
}

func NewRaceClockSystem(tuning *prefabs.Tuning) *RaceClockSystem {
	return &RaceClockSystem{tuning: tuning}
}

func (s *RaceClockSystem) Attach(w *ecs.World) {
	s.track(
		w.Bus().Subscribe(ecs.EventRaceStart, func(ecs.Event) {
			if clock, ok := RaceClock(w); ok {
				clock.Start(w.Now())
				log.Printf("race: started")
			}
		}),
		w.Bus().Subscribe(ecs.EventRaceOver, func(ecs.Event) {
			clock, ok := RaceClock(w)
			if !ok || clock.State == component.ClockStopped {
				return
			}
			clock.Stop(w.Now())
			log.Printf("race: finished in %.2fs", clock.Final.Seconds())
		}),
		w.Bus().Subscribe(ecs.EventIncorrectPass, func(ecs.Event) {
			clock, ok := RaceClock(w)
			if !ok || s.tuning == nil {
				return
			}
			penalty := s.tuning.PenaltyDuration()
			clock.AddPenalty(penalty)
			log.Printf("race: %.0fs penalty", penalty.Seconds())
		}),
	)
}

func (s *RaceClockSystem) Update(w *ecs.World) {
	if clock, ok := RaceClock(w); ok {
		clock.Elapsed(w.Now())
	}
}

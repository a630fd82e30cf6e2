package system

import (
	"github.com/milk9111/slalom/ecs"
	"github.com/milk9111/slalom/ecs/component"
)

// playerOf resolves the player an event refers to, falling back to the
// first tagged player when the payload does not name a live one.
func playerOf(w *ecs.World, e ecs.Entity) (ecs.Entity, bool) {
	if w.IsAlive(e) && ecs.Has(w, e, component.PlayerTagComponent) {
		return e, true
	}
	return w.First(component.PlayerTagComponent)
}

// RaceClock returns the race clock component, if the world has one.
func RaceClock(w *ecs.World) (*component.RaceClock, bool) {
	e, ok := w.First(component.RaceTagComponent, component.RaceClockComponent)
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.RaceClockComponent)
}

// subscriptions is embedded by systems that react to the bus.
type subscriptions struct {
	subs []*ecs.Subscription
}

func (s *subscriptions) track(sub ...*ecs.Subscription) {
	s.subs = append(s.subs, sub...)
}

// Detach unsubscribes every handler the system registered.
func (s *subscriptions) Detach() {
	for _, sub := range s.subs {
		sub.Close()
	}
	s.subs = nil
}

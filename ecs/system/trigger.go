package system

import (
	"log"

	"github.com/milk9111/slalom/ecs"
	"github.com/milk9111/slalom/ecs/component"
)

// TriggerSystem drains the zone-entry feed and routes each entry to the
// gate judge or turns it into a PlayerHit notification.
type TriggerSystem struct {
	gates *GateSystem
}

func NewTriggerSystem(gates *GateSystem) *TriggerSystem {
	if gates == nil {
		gates = NewGateSystem()
	}
	return &TriggerSystem{gates: gates}
}

func (s *TriggerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range w.Events().Drain() {
		entry, ok := evt.Data.(ecs.ZoneEntry)
		if evt.Type != ecs.EventZoneEntered || !ok {
			log.Printf("trigger: dropping unexpected %s event", evt.Type)
			continue
		}
		if !w.IsAlive(entry.Zone) {
			continue
		}
		player, ok := playerOf(w, entry.Player)
		if !ok {
			continue
		}

		if ecs.Has(w, entry.Zone, component.GateComponent) {
			s.gates.Enter(w, player, entry.Zone)
			continue
		}

		if obstacle, ok := ecs.Get(w, entry.Zone, component.ObstacleComponent); ok {
			hit := ecs.HitEvent{
				Player:      player,
				Obstacle:    entry.Zone,
				Tag:         obstacle.Tag,
				HealthDelta: obstacle.HealthDelta,
			}
			removable := obstacle.Removable
			w.Bus().Publish(ecs.Event{Type: ecs.EventPlayerHit, Data: hit})
			if removable {
				w.DestroyEntity(entry.Zone)
			}
		}
	}
}

package system

import (
	"testing"

	"github.com/milk9111/slalom/ecs"
	"github.com/milk9111/slalom/ecs/entity"
	"github.com/milk9111/slalom/prefabs"
)

func TestTriggerRoutesObstacleHits(t *testing.T) {
	tests := []struct {
		name      string
		spec      prefabs.ObstacleSpec
		wantAlive bool
	}{
		{"tree_stays", prefabs.ObstacleSpec{Tag: "Tree", Radius: 1}, true},
		{"snowball_removed", prefabs.ObstacleSpec{Tag: "Snowball", Radius: 1, Removable: true, HealthDelta: -5}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, nil)
			o, err := entity.NewObstacle(f.w, tc.spec)
			if err != nil {
				t.Fatal(err)
			}
			var got []ecs.HitEvent
			f.w.Bus().Subscribe(ecs.EventPlayerHit, func(evt ecs.Event) {
				got = append(got, evt.Data.(ecs.HitEvent))
			})

			f.w.Events().Push(ecs.Event{Type: ecs.EventZoneEntered, Data: ecs.ZoneEntry{Player: f.player, Zone: o}})
			NewTriggerSystem(nil).Update(f.w)

			if len(got) != 1 || got[0].Tag != tc.spec.Tag || got[0].HealthDelta != tc.spec.HealthDelta || got[0].Player != f.player {
				t.Fatalf("unexpected hits %+v", got)
			}
			if f.w.IsAlive(o) != tc.wantAlive {
				t.Fatalf("expected alive=%v", tc.wantAlive)
			}
		})
	}
}

func TestTriggerIgnoresDeadZonesAndForeignEvents(t *testing.T) {
	f := newFixture(t, nil)
	g := f.gate(t, "pass", 0, 10)
	f.w.DestroyEntity(g)
	seen := listen(f.w, ecs.EventCorrectPass, ecs.EventPlayerHit)

	f.w.Events().Push(ecs.Event{Type: ecs.EventZoneEntered, Data: ecs.ZoneEntry{Player: f.player, Zone: g}})
	f.w.Events().Push(ecs.Event{Type: ecs.EventRaceStart})
	NewTriggerSystem(nil).Update(f.w)

	if len(seen) != 0 || f.w.Events().Len() != 0 {
		t.Fatalf("expected nothing published and queue drained, got %v", seen)
	}
}

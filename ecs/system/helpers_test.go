package system

import (
	"testing"
	"time"

	"github.com/milk9111/slalom/ecs"
	"github.com/milk9111/slalom/ecs/component"
	"github.com/milk9111/slalom/ecs/entity"
	"github.com/milk9111/slalom/prefabs"
)

var testEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

type fixture struct {
	w      *ecs.World
	clock  *ecs.ManualClock
	tuning *prefabs.Tuning
	player ecs.Entity
}

func newFixture(t *testing.T, tune func(*prefabs.Tuning)) *fixture {
	t.Helper()
	tuning := prefabs.DefaultTuning()
	if tune != nil {
		tune(&tuning)
	}
	f := &fixture{
		w:      ecs.NewWorld(),
		clock:  ecs.NewManualClock(testEpoch),
		tuning: &tuning,
	}
	f.w.SetTimeSource(f.clock)
	if _, err := entity.NewRace(f.w); err != nil {
		t.Fatalf("race: %v", err)
	}
	player, err := entity.NewSkier(f.w, prefabs.SpawnSpec{Heading: 180}, f.tuning)
	if err != nil {
		t.Fatalf("skier: %v", err)
	}
	f.player = player
	return f
}

func (f *fixture) gate(t *testing.T, kind string, x, z float64) ecs.Entity {
	t.Helper()
	e, err := entity.NewGate(f.w, prefabs.GateSpec{Kind: kind, X: x, Z: z, Width: 4, Depth: 1})
	if err != nil {
		t.Fatalf("gate: %v", err)
	}
	return e
}

func (f *fixture) moveTo(x, z float64) {
	tr, _ := ecs.Get(f.w, f.player, component.TransformComponent)
	tr.X, tr.Z = x, z
}

func (f *fixture) skier() *component.Skier {
	s, _ := ecs.Get(f.w, f.player, component.SkierComponent)
	return s
}

func (f *fixture) transform() *component.Transform {
	tr, _ := ecs.Get(f.w, f.player, component.TransformComponent)
	return tr
}

// counter records how often each topic was published.
type counter map[ecs.EventType]int

func listen(w *ecs.World, topics ...ecs.EventType) counter {
	c := counter{}
	for _, topic := range topics {
		topic := topic
		w.Bus().Subscribe(topic, func(ecs.Event) { c[topic]++ })
	}
	return c
}

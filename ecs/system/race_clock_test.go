package system

import (
	"testing"
	"time"

	"github.com/milk9111/slalom/ecs"
	"github.com/milk9111/slalom/ecs/component"
)

func publish(w *ecs.World, topic ecs.EventType) {
	w.Bus().Publish(ecs.Event{Type: topic})
}

func runRace(t *testing.T, penalties int) time.Duration {
	t.Helper()
	f := newFixture(t, nil)
	s := NewRaceClockSystem(f.tuning)
	s.Attach(f.w)
	defer s.Detach()

	publish(f.w, ecs.EventRaceStart)
	for i := 0; i < 10; i++ {
		f.clock.Advance(f.tuning.TickDuration())
		if i < penalties {
			publish(f.w, ecs.EventIncorrectPass)
		}
		s.Update(f.w)
	}
	publish(f.w, ecs.EventRaceOver)
	clock, _ := RaceClock(f.w)
	return clock.Elapsed(f.w.Now())
}

func TestPenaltiesAddExactly(t *testing.T) {
	base := runRace(t, 0)
	penalized := runRace(t, 2)
	if got := penalized - base; got != 6*time.Second {
		t.Fatalf("expected +6s, got %v", got)
	}
}

func TestRaceClockLifecycle(t *testing.T) {
	f := newFixture(t, nil)
	s := NewRaceClockSystem(f.tuning)
	s.Attach(f.w)
	defer s.Detach()
	clock, _ := RaceClock(f.w)

	// penalties before the start are wiped by it
	publish(f.w, ecs.EventIncorrectPass)
	if clock.State != component.ClockIdle || clock.Elapsed(f.w.Now()) != 3*time.Second {
		t.Fatalf("expected idle clock holding 3s, got %v %v", clock.State, clock.Elapsed(f.w.Now()))
	}

	publish(f.w, ecs.EventRaceStart)
	if clock.State != component.ClockRunning || clock.Penalty != 0 {
		t.Fatalf("expected running clock with no penalty")
	}

	var last time.Duration
	for i := 0; i < 50; i++ {
		f.clock.Advance(20 * time.Millisecond)
		if i == 25 {
			publish(f.w, ecs.EventIncorrectPass)
		}
		now := clock.Elapsed(f.w.Now())
		if now < last {
			t.Fatalf("clock went backward: %v after %v", now, last)
		}
		last = now
	}

	publish(f.w, ecs.EventRaceOver)
	frozen := clock.Elapsed(f.w.Now())
	if clock.State != component.ClockStopped || frozen != time.Second+3*time.Second {
		t.Fatalf("expected stopped at 4s, got %v %v", clock.State, frozen)
	}

	f.clock.Advance(time.Minute)
	publish(f.w, ecs.EventRaceOver)
	if got := clock.Elapsed(f.w.Now()); got != frozen {
		t.Fatalf("stopped clock moved to %v", got)
	}

	publish(f.w, ecs.EventIncorrectPass)
	if got := clock.Elapsed(f.w.Now()); got != frozen+3*time.Second {
		t.Fatalf("late penalty should still count, got %v", got)
	}
}

func TestRaceOverWhileIdleFreezesPenalties(t *testing.T) {
	f := newFixture(t, nil)
	s := NewRaceClockSystem(f.tuning)
	s.Attach(f.w)
	defer s.Detach()

	publish(f.w, ecs.EventIncorrectPass)
	publish(f.w, ecs.EventRaceOver)
	clock, _ := RaceClock(f.w)
	if clock.State != component.ClockStopped || clock.Final != 3*time.Second {
		t.Fatalf("expected stopped at 3s, got %v %v", clock.State, clock.Final)
	}
}

func TestRaceStartWhileRunningRestarts(t *testing.T) {
	f := newFixture(t, nil)
	s := NewRaceClockSystem(f.tuning)
	s.Attach(f.w)
	defer s.Detach()

	publish(f.w, ecs.EventRaceStart)
	f.clock.Advance(5 * time.Second)
	publish(f.w, ecs.EventIncorrectPass)
	publish(f.w, ecs.EventRaceStart)
	clock, _ := RaceClock(f.w)
	if got := clock.Elapsed(f.w.Now()); got != 0 {
		t.Fatalf("expected a fresh clock, got %v", got)
	}
}

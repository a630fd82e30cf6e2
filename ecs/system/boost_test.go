package system

import (
	"testing"
	"time"

	"github.com/milk9111/slalom/ecs"
	"github.com/milk9111/slalom/ecs/component"
	"github.com/milk9111/slalom/prefabs"
)

func pass(w *ecs.World, player ecs.Entity, kind component.GateKind) {
	w.Bus().Publish(ecs.Event{Type: ecs.EventCorrectPass, Data: ecs.PassEvent{Player: player, Kind: kind}})
}

func TestBoostRoundTrip(t *testing.T) {
	f := newFixture(t, nil)
	b := NewBoostSystem(f.tuning)
	b.Attach(f.w)
	defer b.Detach()
	f.skier().Speed = 500

	pass(f.w, f.player, component.GateBoost)
	boost, _ := ecs.Get(f.w, f.player, component.BoostComponent)
	if !boost.Active || f.skier().Speed != 750 {
		t.Fatalf("expected active boost at 750, got active=%v speed=%v", boost.Active, f.skier().Speed)
	}

	// a second boost gate while boosting does not stack
	pass(f.w, f.player, component.GateBoost)
	if f.skier().Speed != 750 {
		t.Fatalf("boosts must not stack, got %v", f.skier().Speed)
	}

	f.clock.Advance(1999 * time.Millisecond)
	b.Update(f.w)
	if !boost.Active {
		t.Fatalf("boost expired early")
	}
	f.clock.Advance(time.Millisecond)
	b.Update(f.w)
	if boost.Active || f.skier().Speed != 500 {
		t.Fatalf("expected speed back at 500, got active=%v speed=%v", boost.Active, f.skier().Speed)
	}
}

func TestBoostIgnoresOtherGatesAndDisabledWindow(t *testing.T) {
	tests := []struct {
		name string
		tune func(*prefabs.Tuning)
		kind component.GateKind
	}{
		{"blue_gate", nil, component.GateBlue},
		{"pass_gate", nil, component.GatePass},
		{"zero_duration", func(tu *prefabs.Tuning) { tu.BoostDuration = 0 }, component.GateBoost},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, tc.tune)
			b := NewBoostSystem(f.tuning)
			b.Attach(f.w)
			defer b.Detach()
			f.skier().Speed = 500

			pass(f.w, f.player, tc.kind)
			boost, _ := ecs.Get(f.w, f.player, component.BoostComponent)
			if boost.Active || f.skier().Speed != 500 {
				t.Fatalf("expected no boost, got active=%v speed=%v", boost.Active, f.skier().Speed)
			}
		})
	}
}

func TestBoostSubtractsStoredMagnitude(t *testing.T) {
	f := newFixture(t, nil)
	b := NewBoostSystem(f.tuning)
	f.skier().Speed = 500
	b.Start(f.w, f.player)

	// the increment changes mid-boost; expiry still removes what was added
	f.tuning.BoostIncrement = 1000
	f.clock.Advance(f.tuning.BoostWindow())
	b.Update(f.w)
	if f.skier().Speed != 500 {
		t.Fatalf("expected 500, got %v", f.skier().Speed)
	}
}

func TestBoostCancel(t *testing.T) {
	f := newFixture(t, nil)
	b := NewBoostSystem(f.tuning)
	f.skier().Speed = 500
	b.Start(f.w, f.player)
	b.Cancel(f.w, f.player)
	b.Cancel(f.w, f.player)
	boost, _ := ecs.Get(f.w, f.player, component.BoostComponent)
	if boost.Active || f.skier().Speed != 500 {
		t.Fatalf("expected cancelled boost, got active=%v speed=%v", boost.Active, f.skier().Speed)
	}
}

package system

import (
	"testing"

	"github.com/milk9111/slalom/ecs/component"
)

func TestScorePerCorrectPass(t *testing.T) {
	f := newFixture(t, nil)
	s := NewScoreSystem(f.tuning)
	s.Attach(f.w)

	pass(f.w, f.player, component.GateBlue)
	pass(f.w, 0, component.GatePass)
	if got := f.skier().Score; got != 2*f.tuning.ScorePerPass {
		t.Fatalf("expected %d, got %d", 2*f.tuning.ScorePerPass, got)
	}

	s.Detach()
	pass(f.w, f.player, component.GateBlue)
	if got := f.skier().Score; got != 2*f.tuning.ScorePerPass {
		t.Fatalf("detached score system still counting: %d", got)
	}
}

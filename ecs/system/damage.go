package system

import (
	"log"

	"github.com/milk9111/slalom/ecs"
	"github.com/milk9111/slalom/ecs/component"
	"github.com/milk9111/slalom/prefabs"
)

// DamageSystem reacts to PlayerHit and polls the recovery deadline.
type DamageSystem struct {
	subscriptions
	tuning *prefabs.Tuning
}

func NewDamageSystem(tuning *prefabs.Tuning) *DamageSystem {
	return &DamageSystem{tuning: tuning}
}

func (s *DamageSystem) Attach(w *ecs.World) {
	s.track(w.Bus().Subscribe(ecs.EventPlayerHit, func(evt ecs.Event) {
		hit, _ := evt.Data.(ecs.HitEvent)
		s.Hit(w, hit)
	}))
}

// Hit applies a hit to the player named in the payload. Hits taken while
// hurt are ignored. It reports whether the hit landed.
func (s *DamageSystem) Hit(w *ecs.World, hit ecs.HitEvent) bool {
	player, ok := playerOf(w, hit.Player)
	if !ok || s.tuning == nil {
		return false
	}
	damage, ok := ecs.Get(w, player, component.DamageComponent)
	if !ok {
		damage = &component.Damage{}
		if err := ecs.Add(w, player, component.DamageComponent, damage); err != nil {
			log.Printf("damage: add state to %s: %v", player, err)
			return false
		}
	}
	if damage.Hurt {
		return false
	}

	if vel, ok := ecs.Get(w, player, component.VelocityComponent); ok {
		*vel = component.Velocity{}
	}
	if err := ecs.Add(w, player, component.KnockbackRequestComponent, &component.KnockbackRequest{
		Back: s.tuning.KnockbackForce,
		Up:   s.tuning.KnockupForce,
	}); err != nil {
		log.Printf("damage: knockback request for %s: %v", player, err)
	}
	if skier, ok := ecs.Get(w, player, component.SkierComponent); ok {
		skier.Health += hit.HealthDelta
	}

	if recovery := s.tuning.RecoveryDuration(); recovery > 0 {
		damage.Hurt = true
		damage.RecoverAt = w.Now().Add(recovery)
	}
	log.Printf("damage: %s hit %q", player, hit.Tag)
	return true
}

func (s *DamageSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	now := w.Now()
	ecs.ForEach(w, component.DamageComponent, func(e ecs.Entity, damage *component.Damage) {
		if damage.Hurt && !now.Before(damage.RecoverAt) {
			damage.Hurt = false
			damage.RecoverAt = now
		}
	})
}

// Package race drives one course: it owns the world, the bus subscribers
// and the fixed tick order.
package race

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/milk9111/slalom/ecs"
	"github.com/milk9111/slalom/ecs/component"
	"github.com/milk9111/slalom/ecs/entity"
	"github.com/milk9111/slalom/ecs/system"
	"github.com/milk9111/slalom/prefabs"
)

// epoch is where a session's simulated clock starts.
var epoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// advancer is implemented by time sources the session can step.
type advancer interface {
	Advance(d time.Duration)
}

type attachable interface {
	Attach(w *ecs.World)
	Detach()
}

type Option func(*Session)

// WithTimeSource replaces the simulated step clock. A source that cannot be
// advanced is read as-is, so timers follow it instead of the tick count.
func WithTimeSource(ts ecs.TimeSource) Option {
	return func(s *Session) {
		if ts != nil {
			s.clock = ts
		}
	}
}

// WithoutPhysics leaves out the cp adapter. Zone entries then only come
// from InjectZoneEntry and the grounded flag is whatever the caller sets.
func WithoutPhysics() Option {
	return func(s *Session) {
		s.physicsEnabled = false
	}
}

type Session struct {
	tuning *prefabs.Tuning
	course prefabs.CourseSpec

	world     *ecs.World
	clock     ecs.TimeSource
	scheduler *ecs.Scheduler
	entities  *entity.Course

	gates   *system.GateSystem
	boost   *system.BoostSystem
	physics *system.PhysicsSystem

	attached       []attachable
	physicsEnabled bool
	tick           uint64
	closed         bool
}

// NewSession builds the course and wires every system. Tuning problems are
// logged, not returned; the affected features fall back to safe no-ops.
func NewSession(course prefabs.CourseSpec, tuning prefabs.Tuning, opts ...Option) (*Session, error) {
	if err := tuning.Validate(); err != nil {
		logConfigErrors(err)
	}

	s := &Session{
		tuning:         &tuning,
		course:         course,
		world:          ecs.NewWorld(),
		clock:          ecs.NewManualClock(epoch),
		physicsEnabled: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.world.SetTimeSource(s.clock)

	var err error
	if s.entities, err = entity.BuildCourse(s.world, &s.course, s.tuning); err != nil {
		return nil, fmt.Errorf("race: build course %q: %w", course.Name, err)
	}

	s.gates = system.NewGateSystem()
	s.boost = system.NewBoostSystem(s.tuning)
	damage := system.NewDamageSystem(s.tuning)
	raceClock := system.NewRaceClockSystem(s.tuning)
	score := system.NewScoreSystem(s.tuning)

	s.scheduler = ecs.NewScheduler(
		damage,
		s.boost,
		system.NewMovementSystem(s.tuning),
		system.NewKnockbackSystem(s.tuning),
	)
	if s.physicsEnabled {
		s.physics = system.NewPhysicsSystem(s.tuning)
		s.scheduler.Add(s.physics)
	}
	s.scheduler.Add(system.NewTriggerSystem(s.gates))
	s.scheduler.Add(s.gates)
	s.scheduler.Add(score)
	s.scheduler.Add(raceClock)

	for _, a := range []attachable{raceClock, damage, s.boost, score} {
		a.Attach(s.world)
		s.attached = append(s.attached, a)
	}

	log.Printf("race: course %q ready, %d gates, %d obstacles", s.course.Name, len(s.entities.Gates), len(s.entities.Obstacles))
	return s, nil
}

func logConfigErrors(err error) {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		for _, e := range joined.Unwrap() {
			log.Printf("race: tuning: %v", e)
		}
		return
	}
	log.Printf("race: tuning: %v", err)
}

// Step runs one fixed tick with the given steering axis.
func (s *Session) Step(steering float64) {
	if s == nil || s.closed {
		return
	}
	if input, ok := ecs.Get(s.world, s.entities.Player, component.InputComponent); ok {
		input.Steering = steering
	}
	if adv, ok := s.clock.(advancer); ok {
		adv.Advance(s.tuning.TickDuration())
	}
	s.scheduler.Update(s.world)
	s.tick++
}

// InjectZoneEntry queues an entry for the next tick, as if the player had
// overlapped the zone.
func (s *Session) InjectZoneEntry(zone ecs.Entity) {
	s.world.Events().Push(ecs.Event{
		Type: ecs.EventZoneEntered,
		Data: ecs.ZoneEntry{Player: s.entities.Player, Zone: zone},
	})
}

// Restart puts the skier back on the spawn, clears every gate latch,
// rebuilds removed obstacles and returns the clock to idle.
func (s *Session) Restart() {
	if s == nil || s.closed {
		return
	}
	w := s.world
	w.Events().Drain()

	p := s.entities.Player
	s.boost.Cancel(w, p)
	if t, ok := ecs.Get(w, p, component.TransformComponent); ok {
		*t = entity.SpawnTransform(s.course.Spawn)
	}
	if skier, ok := ecs.Get(w, p, component.SkierComponent); ok {
		*skier = component.Skier{Speed: s.tuning.StartSpeed, Moving: true, Health: s.tuning.StartHealth}
	}
	if r, ok := ecs.Get(w, p, component.SpeedReadoutComponent); ok {
		r.Speed = s.tuning.StartSpeed
	}
	if v, ok := ecs.Get(w, p, component.VelocityComponent); ok {
		*v = component.Velocity{}
	}
	if d, ok := ecs.Get(w, p, component.DamageComponent); ok {
		*d = component.Damage{}
	}
	ecs.Remove(w, p, component.KnockbackRequestComponent)

	system.ResetGates(w)
	if clock, ok := system.RaceClock(w); ok {
		*clock = component.RaceClock{}
	}

	for _, e := range s.entities.Obstacles {
		w.DestroyEntity(e)
	}
	s.entities.Obstacles = s.entities.Obstacles[:0]
	for _, spec := range s.course.Obstacles {
		e, err := entity.NewObstacle(w, spec)
		if err != nil {
			log.Printf("race: restart: %v", err)
			continue
		}
		s.entities.Obstacles = append(s.entities.Obstacles, e)
	}
	log.Printf("race: restarted %q", s.course.Name)
}

// ApplyTuning swaps in a reloaded tuning record between ticks.
func (s *Session) ApplyTuning(t prefabs.Tuning) {
	if err := t.Validate(); err != nil {
		logConfigErrors(err)
	}
	*s.tuning = t
	if s.physics != nil {
		s.physics.Reset()
	}
}

// Close detaches every bus subscription the session made. It is safe to
// call more than once.
func (s *Session) Close() {
	if s == nil || s.closed {
		return
	}
	for _, a := range s.attached {
		a.Detach()
	}
	s.attached = nil
	if s.physics != nil {
		s.physics.Reset()
	}
	s.closed = true
}

func (s *Session) World() *ecs.World          { return s.world }
func (s *Session) Bus() *ecs.Bus              { return s.world.Bus() }
func (s *Session) Player() ecs.Entity         { return s.entities.Player }
func (s *Session) Gates() []ecs.Entity        { return append([]ecs.Entity(nil), s.entities.Gates...) }
func (s *Session) Tuning() prefabs.Tuning     { return *s.tuning }
func (s *Session) Course() prefabs.CourseSpec { return s.course }
func (s *Session) Now() time.Time             { return s.world.Now() }

// Elapsed is the race clock reading for the HUD.
func (s *Session) Elapsed() time.Duration {
	clock, ok := system.RaceClock(s.world)
	if !ok {
		return 0
	}
	return clock.Elapsed(s.world.Now())
}

package race

import (
	"testing"
	"time"

	"github.com/milk9111/slalom/ecs"
	"github.com/milk9111/slalom/ecs/component"
	"github.com/milk9111/slalom/prefabs"
)

func testCourse() prefabs.CourseSpec {
	return prefabs.CourseSpec{
		Name:  "test",
		Spawn: prefabs.SpawnSpec{Z: -5, Heading: 180},
		Gates: []prefabs.GateSpec{
			{Kind: "start", Z: 0, Width: 12, Depth: 1},
			{Kind: "blue", X: 10, Z: 20, Width: 4, Depth: 1},
			{Kind: "boost", Z: 30, Width: 4, Depth: 1},
			{Kind: "pass", Z: 40, Width: 4, Depth: 1},
			{Kind: "finish", Z: 60, Width: 30, Depth: 2},
		},
		Obstacles: []prefabs.ObstacleSpec{
			{Tag: "Snowball", X: 20, Z: 10, Radius: 1, Removable: true, HealthDelta: -5},
		},
	}
}

func newTestSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	s, err := NewSession(testCourse(), prefabs.DefaultTuning(), opts...)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	t.Cleanup(s.Close)
	return s
}

func (s *Session) teleport(x, z float64) {
	tr, _ := ecs.Get(s.world, s.entities.Player, component.TransformComponent)
	tr.X, tr.Z = x, z
}

func TestSessionWithoutPhysics(t *testing.T) {
	s := newTestSession(t, WithoutPhysics())
	gates := s.Gates()
	var topics []ecs.EventType
	for _, topic := range []ecs.EventType{ecs.EventRaceStart, ecs.EventCorrectPass, ecs.EventIncorrectPass, ecs.EventRaceOver} {
		topic := topic
		s.Bus().Subscribe(topic, func(ecs.Event) { topics = append(topics, topic) })
	}

	s.teleport(0, 0)
	s.InjectZoneEntry(gates[0])
	s.Step(0)
	if snap := s.Snapshot(); snap.Clock != component.ClockRunning {
		t.Fatalf("expected running clock, got %v", snap.Clock)
	}

	s.teleport(5, 20) // left of a blue gate
	s.InjectZoneEntry(gates[1])
	s.Step(0)

	s.teleport(0, 30)
	s.InjectZoneEntry(gates[2])
	s.Step(0)
	if snap := s.Snapshot(); !snap.Boosting {
		t.Fatalf("expected boost after the boost gate")
	}

	// skip the checkpoint entirely
	s.teleport(0, 45)
	s.Step(0)

	s.teleport(0, 60)
	s.InjectZoneEntry(gates[4])
	s.Step(0)

	want := []ecs.EventType{ecs.EventRaceStart, ecs.EventIncorrectPass, ecs.EventCorrectPass, ecs.EventIncorrectPass, ecs.EventRaceOver}
	if len(topics) != len(want) {
		t.Fatalf("expected %v, got %v", want, topics)
	}
	for i := range want {
		if topics[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, topics)
		}
	}

	snap := s.Snapshot()
	tickLen := s.Tuning().TickDuration()
	if snap.Clock != component.ClockStopped || snap.Elapsed != 4*tickLen+6*time.Second {
		t.Fatalf("expected stopped clock at 4 ticks + 6s, got %v %v", snap.Clock, snap.Elapsed)
	}
	if snap.Score != s.Tuning().ScorePerPass {
		t.Fatalf("expected one scored pass, got %d", snap.Score)
	}

	// movement is frozen once the race is over
	before := s.Snapshot()
	s.Step(1)
	if after := s.Snapshot(); after.Heading != before.Heading || after.Speed != before.Speed {
		t.Fatalf("movement ran after the finish")
	}
}

func TestSessionRestart(t *testing.T) {
	s := newTestSession(t, WithoutPhysics())
	gates := s.Gates()

	s.teleport(0, 0)
	s.InjectZoneEntry(gates[0])
	s.Step(0)
	s.teleport(0, 45)
	s.Step(0)

	s.Restart()
	snap := s.Snapshot()
	if snap.Clock != component.ClockIdle || snap.Elapsed != 0 {
		t.Fatalf("expected idle clock, got %v %v", snap.Clock, snap.Elapsed)
	}
	if snap.Z != -5 || snap.Heading != 180 || snap.Speed != s.Tuning().StartSpeed {
		t.Fatalf("expected respawn, got %+v", snap)
	}
	for _, g := range snap.Gates {
		if g.Judged {
			t.Fatalf("gate %s still judged after restart", g.Entity)
		}
	}

	count := 0
	s.Bus().Subscribe(ecs.EventRaceStart, func(ecs.Event) { count++ })
	s.teleport(0, 0)
	s.InjectZoneEntry(gates[0])
	s.Step(0)
	if count != 1 {
		t.Fatalf("expected the start gate to fire again, got %d", count)
	}
}

func TestSessionCloseDetaches(t *testing.T) {
	s := newTestSession(t, WithoutPhysics())
	s.Close()
	s.Close()
	for _, topic := range []ecs.EventType{ecs.EventRaceStart, ecs.EventRaceOver, ecs.EventIncorrectPass, ecs.EventPlayerHit, ecs.EventCorrectPass} {
		if n := s.Bus().HandlerCount(topic); n != 0 {
			t.Fatalf("%s still has %d handlers", topic, n)
		}
	}
	tick := s.Snapshot().Tick
	s.Step(0)
	if s.Snapshot().Tick != tick {
		t.Fatalf("closed session kept stepping")
	}
}

func TestSessionHitAndRecover(t *testing.T) {
	s := newTestSession(t, WithoutPhysics())
	obstacle := s.entities.Obstacles[0]

	s.InjectZoneEntry(obstacle)
	s.Step(0)
	snap := s.Snapshot()
	if !snap.Hurt || snap.Health != s.Tuning().StartHealth-5 {
		t.Fatalf("expected hurt skier with -5 health, got %+v", snap)
	}
	if len(snap.Obstacles) != 0 {
		t.Fatalf("removable obstacle should be gone")
	}

	recovery := s.Tuning().RecoveryDuration()
	ticks := int(recovery / s.Tuning().TickDuration())
	for i := 0; i < ticks; i++ {
		s.Step(0)
	}
	if s.Snapshot().Hurt {
		t.Fatalf("expected recovery after %d ticks", ticks)
	}

	s.Restart()
	if len(s.Snapshot().Obstacles) != 1 {
		t.Fatalf("restart should rebuild removed obstacles")
	}
}

func TestSessionRunsCourseWithPhysics(t *testing.T) {
	course, err := prefabs.LoadCourse("courses/slalom.yaml")
	if err != nil {
		t.Fatalf("load course: %v", err)
	}
	s, err := NewSession(course, prefabs.DefaultTuning())
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	started, finished := 0, 0
	s.Bus().Subscribe(ecs.EventRaceStart, func(ecs.Event) { started++ })
	s.Bus().Subscribe(ecs.EventRaceOver, func(ecs.Event) { finished++ })

	// straight down the fall line; a minute of simulated time is plenty
	for i := 0; i < 60*s.Tuning().TickRate && finished == 0; i++ {
		s.Step(0)
	}

	snap := s.Snapshot()
	if started != 1 || finished != 1 {
		t.Fatalf("expected one start and one finish, got %d/%d at z=%v", started, finished, snap.Z)
	}
	if snap.Clock != component.ClockStopped || snap.Elapsed <= 0 {
		t.Fatalf("expected a stopped clock with time on it, got %v %v", snap.Clock, snap.Elapsed)
	}
	// the fall line crosses the start, boost and checkpoint zones but
	// misses every offset colored gate, which have no bypass rule
	for _, g := range snap.Gates {
		switch g.Kind {
		case component.GateStart, component.GateBoost, component.GatePass:
			if !g.Judged || g.Signal == component.SignalFailure {
				t.Fatalf("%s gate at z=%v not passed: %+v", g.Kind, g.Z, g)
			}
		case component.GateBlue, component.GatePink:
			if g.Judged {
				t.Fatalf("%s gate at x=%v should have been missed", g.Kind, g.X)
			}
		}
	}
	if snap.Score != 2*s.Tuning().ScorePerPass {
		t.Fatalf("expected boost and checkpoint to score, got %d", snap.Score)
	}
}

func TestWithTimeSource(t *testing.T) {
	clock := ecs.NewManualClock(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	s := newTestSession(t, WithoutPhysics(), WithTimeSource(clock))
	s.Step(0)
	if !s.Now().Equal(clock.Now()) || s.Now().Year() != 2020 {
		t.Fatalf("session should read the injected clock")
	}
}

package system

import (
	"errors"
	"log"
	"math"

	"github.com/milk9111/slalom/common"
	"github.com/milk9111/slalom/ecs"
	"github.com/milk9111/slalom/ecs/component"
	"github.com/milk9111/slalom/prefabs"
)

const (
	steerDeadZone = 0.01
	// Heading locks keep the skier facing the downhill half.
	headingMin = 91.0
	headingMax = 269.0
)

// MovementSystem is the fixed-step speed and heading integrator.
type MovementSystem struct {
	tuning *prefabs.Tuning

	remapWarned bool
}

func NewMovementSystem(tuning *prefabs.Tuning) *MovementSystem {
	return &MovementSystem{tuning: tuning}
}

func (s *MovementSystem) Update(w *ecs.World) {
	if w == nil || s.tuning == nil {
		return
	}
	if clock, ok := RaceClock(w); ok && clock.State == component.ClockStopped {
		return
	}

	dt := s.tuning.Dt()
	for _, e := range w.Query(component.SkierComponent, component.TransformComponent) {
		skier, _ := ecs.Get(w, e, component.SkierComponent)
		transform, _ := ecs.Get(w, e, component.TransformComponent)

		boosting := false
		if boost, ok := ecs.Get(w, e, component.BoostComponent); ok {
			boosting = boost.Active
		}
		hurt := false
		if damage, ok := ecs.Get(w, e, component.DamageComponent); ok {
			hurt = damage.Hurt
		}
		var steering float64
		grounded := false
		if input, ok := ecs.Get(w, e, component.InputComponent); ok {
			steering = input.Steering
			grounded = input.Grounded
		}

		if !boosting {
			skier.Speed = common.Clamp(skier.Speed, s.tuning.MinSpeed, s.tuning.MaxSpeed)
		}

		if skier.Moving && !hurt {
			if grounded {
				transform.Heading = steer(transform.Heading, steering, s.tuning.TurnSpeed*dt)
			}
			skier.Speed += s.turnTerm(transform.Heading)

			if vel, ok := ecs.Get(w, e, component.VelocityComponent); ok {
				fwd := common.Forward(transform.Heading).Scale(skier.Speed * dt)
				vel.X = fwd.X
				vel.Z = fwd.Z
			}
		}

		if readout, ok := ecs.Get(w, e, component.SpeedReadoutComponent); ok {
			readout.Speed = skier.Speed
		}
	}
}

// steer turns heading by step degrees in the direction of the input. A turn
// only moves heading toward its own lock and never past it.
func steer(heading, steering, step float64) float64 {
	switch {
	case steering > steerDeadZone && heading < headingMax:
		return math.Min(heading+step, headingMax)
	case steering < -steerDeadZone && heading > headingMin:
		return math.Max(heading-step, headingMin)
	default:
		return heading
	}
}

// turnTerm accelerates a skier facing downhill and brakes one facing across
// the slope.
func (s *MovementSystem) turnTerm(heading float64) float64 {
	turnAngle := math.Abs(common.DownhillHeading - heading)
	term, err := common.Remap(turnAngle, 0, s.tuning.SidewaysAngle, s.tuning.TurnAcceleration, -s.tuning.TurnDeceleration)
	if err != nil {
		if errors.Is(err, common.ErrDegenerateRange) && !s.remapWarned {
			log.Printf("movement: turn acceleration disabled: %v", err)
			s.remapWarned = true
		}
		return 0
	}
	return term
}

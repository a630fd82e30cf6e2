package prefabs

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultTuningFile is the embedded tuning prefab.
const DefaultTuningFile = "tuning.yaml"

// Tuning is the designer-tunable parameter record. It is loaded once and
// handed to the systems by pointer; nothing mutates it after load.
// Durations are in seconds; turn rates are degrees per second; the turn
// acceleration terms are applied once per tick.
type Tuning struct {
	MaxSpeed         float64 `yaml:"max_speed"`
	MinSpeed         float64 `yaml:"min_speed"`
	StartSpeed       float64 `yaml:"start_speed"`
	TurnSpeed        float64 `yaml:"turn_speed"`
	TurnAcceleration float64 `yaml:"turn_acceleration"`
	TurnDeceleration float64 `yaml:"turn_deceleration"`
	SidewaysAngle    float64 `yaml:"sideways_angle"`
	KnockbackForce   float64 `yaml:"knockback_force"`
	KnockupForce     float64 `yaml:"knockup_force"`
	RecoveryTime     float64 `yaml:"recovery_time"`
	TimePenalty      float64 `yaml:"time_penalty"`
	BoostIncrement   float64 `yaml:"boost_increment"`
	BoostDuration    float64 `yaml:"boost_duration"`
	TickRate         int     `yaml:"tick_rate"`
	Mass             float64 `yaml:"mass"`
	Radius           float64 `yaml:"radius"`
	Gravity          float64 `yaml:"gravity"`
	Damping          float64 `yaml:"damping"`
	GroundEpsilon    float64 `yaml:"ground_epsilon"`
	ScorePerPass     int     `yaml:"score_per_pass"`
	StartHealth      float64 `yaml:"start_health"`
}

func DefaultTuning() Tuning {
	return Tuning{
		MaxSpeed:         1500,
		MinSpeed:         300,
		StartSpeed:       500,
		TurnSpeed:        90,
		TurnAcceleration: 3,
		TurnDeceleration: 6,
		SidewaysAngle:    90,
		KnockbackForce:   8,
		KnockupForce:     5,
		RecoveryTime:     1.5,
		TimePenalty:      3,
		BoostIncrement:   250,
		BoostDuration:    2,
		TickRate:         50,
		Mass:             1,
		Radius:           0.5,
		Gravity:          9.81,
		Damping:          0.9,
		GroundEpsilon:    0.05,
		ScorePerPass:     100,
		StartHealth:      100,
	}
}

// LoadTuning reads a tuning prefab on top of the defaults, so a file only
// has to name the values it changes.
func LoadTuning(name string) (Tuning, error) {
	data, err := Load(name)
	if err != nil {
		return Tuning{}, fmt.Errorf("prefabs: load %s: %w", name, err)
	}
	return ParseTuning(data)
}

func ParseTuning(data []byte) (Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("prefabs: unmarshal tuning: %w", err)
	}
	return t, nil
}

// Validate reports every configuration problem at once. Each one maps to a
// safe fallback in the systems, so callers usually log and continue.
func (t *Tuning) Validate() error {
	var errs []error
	for field, v := range map[string]float64{
		"max_speed": t.MaxSpeed, "min_speed": t.MinSpeed, "turn_speed": t.TurnSpeed,
		"recovery_time": t.RecoveryTime, "boost_duration": t.BoostDuration, "mass": t.Mass,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			errs = append(errs, configErr(field, "must be finite"))
		}
	}
	if t.MinSpeed > t.MaxSpeed {
		errs = append(errs, configErr("min_speed", "%.2f exceeds max_speed %.2f", t.MinSpeed, t.MaxSpeed))
	}
	if t.SidewaysAngle == 0 {
		errs = append(errs, configErr("sideways_angle", "degenerate remap domain, turn acceleration disabled"))
	}
	if t.TickRate <= 0 {
		errs = append(errs, configErr("tick_rate", "must be positive, got %d", t.TickRate))
	}
	if t.RecoveryTime <= 0 {
		errs = append(errs, configErr("recovery_time", "non-positive, recovery is instantaneous"))
	}
	if t.BoostIncrement != 0 && t.BoostDuration <= 0 {
		errs = append(errs, configErr("boost_duration", "non-positive, boost gates disabled"))
	}
	if t.TimePenalty < 0 {
		errs = append(errs, configErr("time_penalty", "negative penalty ignored"))
	}
	if t.Mass <= 0 {
		errs = append(errs, configErr("mass", "must be positive, using 1"))
	}
	if t.Radius <= 0 {
		errs = append(errs, configErr("radius", "must be positive, using 0.5"))
	}
	return errors.Join(errs...)
}

// Dt is the fixed tick length in seconds.
func (t Tuning) Dt() float64 {
	if t.TickRate <= 0 {
		return 1.0 / float64(DefaultTuning().TickRate)
	}
	return 1.0 / float64(t.TickRate)
}

func (t Tuning) TickDuration() time.Duration {
	return seconds(t.Dt())
}

func (t Tuning) RecoveryDuration() time.Duration {
	return seconds(t.RecoveryTime)
}

func (t Tuning) PenaltyDuration() time.Duration {
	if t.TimePenalty < 0 {
		return 0
	}
	return seconds(t.TimePenalty)
}

func (t Tuning) BoostWindow() time.Duration {
	return seconds(t.BoostDuration)
}

// BodyMass is Mass with the validation fallback applied.
func (t Tuning) BodyMass() float64 {
	if t.Mass <= 0 {
		return 1
	}
	return t.Mass
}

// BodyRadius is Radius with the validation fallback applied.
func (t Tuning) BodyRadius() float64 {
	if t.Radius <= 0 {
		return 0.5
	}
	return t.Radius
}

func seconds(s float64) time.Duration {
	if s <= 0 || math.IsNaN(s) {
		return 0
	}
	return time.Duration(math.Round(s * float64(time.Second)))
}

package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/milk9111/slalom/ecs/component"
	"gopkg.in/yaml.v3"
)

const (
	defaultZoneWidth      = 4.0
	defaultZoneDepth      = 1.0
	defaultObstacleRadius = 0.75
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// DecodeSpec converts a loosely typed value (a script result, a yaml
// fragment) into a spec struct by round-tripping through yaml.
func DecodeSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type CourseSpec struct {
	Name      string               `yaml:"name"`
	Spawn     SpawnSpec            `yaml:"spawn"`
	Gates     []GateSpec           `yaml:"gates"`
	Obstacles []ObstacleSpec       `yaml:"obstacles"`
	Palette   map[string]YAMLColor `yaml:"palette"`
}

type SpawnSpec struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Z       float64 `yaml:"z"`
	Heading float64 `yaml:"heading"`
}

type GateSpec struct {
	Kind  string  `yaml:"kind"`
	X     float64 `yaml:"x"`
	Z     float64 `yaml:"z"`
	Width float64 `yaml:"width"`
	Depth float64 `yaml:"depth"`
}

type ObstacleSpec struct {
	Tag         string  `yaml:"tag"`
	X           float64 `yaml:"x"`
	Z           float64 `yaml:"z"`
	Radius      float64 `yaml:"radius"`
	Removable   bool    `yaml:"removable"`
	HealthDelta float64 `yaml:"health_delta"`
}

// LoadCourse loads a course from a yaml prefab or a tengo generator script.
func LoadCourse(name string) (CourseSpec, error) {
	var (
		course CourseSpec
		err    error
	)
	if isScriptFile(name) {
		var src []byte
		src, err = LoadScript(name)
		if err != nil {
			return CourseSpec{}, fmt.Errorf("prefabs: load %s: %w", name, err)
		}
		course, err = RunCourseScript(src)
		if err != nil {
			return CourseSpec{}, fmt.Errorf("prefabs: run %s: %w", name, err)
		}
	} else {
		course, err = LoadSpec[CourseSpec](name)
		if err != nil {
			return CourseSpec{}, err
		}
	}
	if course.Name == "" {
		course.Name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	}
	course.applyDefaults()
	return course, course.Validate()
}

func (c *CourseSpec) applyDefaults() {
	if c.Spawn.Heading == 0 {
		c.Spawn.Heading = 180
	}
	for i := range c.Gates {
		if c.Gates[i].Width <= 0 {
			c.Gates[i].Width = defaultZoneWidth
		}
		if c.Gates[i].Depth <= 0 {
			c.Gates[i].Depth = defaultZoneDepth
		}
	}
	for i := range c.Obstacles {
		if c.Obstacles[i].Radius <= 0 {
			c.Obstacles[i].Radius = defaultObstacleRadius
		}
	}
}

// Validate checks gate kinds and spawn heading. A course without a finish
// zone is legal but the race clock will never stop.
func (c *CourseSpec) Validate() error {
	var errs []error
	if c.Spawn.Heading < 91 || c.Spawn.Heading > 269 {
		errs = append(errs, configErr("spawn.heading", "%.1f is outside the downhill half [91, 269]", c.Spawn.Heading))
	}
	for i, g := range c.Gates {
		if _, err := component.ParseGateKind(g.Kind); err != nil {
			errs = append(errs, configErr(fmt.Sprintf("gates[%d].kind", i), "%v", err))
		}
	}
	return errors.Join(errs...)
}

// GateKind resolves the course file's kind name. Validate has already rejected
// unknown names, so the fallback is never used for a validated course.
func (g GateSpec) GateKind() component.GateKind {
	k, err := component.ParseGateKind(g.Kind)
	if err != nil {
		return component.GatePass
	}
	return k
}

type YAMLColor struct {
	color.Color
}

func (c YAMLColor) MarshalYAML() (any, error) {
	if c.Color == nil {
		return "", nil
	}
	r, g, b, a := c.Color.RGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", r>>8, g>>8, b>>8, a>>8), nil
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

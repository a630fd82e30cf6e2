package prefabs

import (
	"errors"
	"testing"

	"github.com/milk9111/slalom/ecs/component"
	"gopkg.in/yaml.v3"
)

func countKinds(c CourseSpec) map[component.GateKind]int {
	out := make(map[component.GateKind]int)
	for _, g := range c.Gates {
		out[g.GateKind()]++
	}
	return out
}

func TestLoadCourse(t *testing.T) {
	tests := []struct {
		file      string
		name      string
		gates     int
		obstacles int
		boosts    int
	}{
		{"courses/slalom.yaml", "slalom", 10, 6, 1},
		{"prefabs/courses/slalom.yaml", "slalom", 10, 6, 1},
		{"scripts/giant_slalom.tengo", "giant_slalom_12", 17, 12, 3},
	}
	for _, tc := range tests {
		t.Run(tc.file, func(t *testing.T) {
			c, err := LoadCourse(tc.file)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if c.Name != tc.name || len(c.Gates) != tc.gates || len(c.Obstacles) != tc.obstacles {
				t.Fatalf("unexpected course %q with %d gates, %d obstacles", c.Name, len(c.Gates), len(c.Obstacles))
			}
			kinds := countKinds(c)
			if kinds[component.GateStart] != 1 || kinds[component.GateFinish] != 1 || kinds[component.GateBoost] != tc.boosts {
				t.Fatalf("unexpected gate mix %v", kinds)
			}
			if c.Spawn.Heading != 180 {
				t.Fatalf("expected downhill spawn, got %v", c.Spawn.Heading)
			}
			for i, g := range c.Gates {
				if g.Width <= 0 || g.Depth <= 0 {
					t.Fatalf("gate %d missing defaults: %+v", i, g)
				}
			}
		})
	}
}

func TestLoadCourseMissingFile(t *testing.T) {
	if _, err := LoadCourse("courses/nope.yaml"); err == nil {
		t.Fatalf("expected an error")
	}
}

func TestCourseValidate(t *testing.T) {
	c := CourseSpec{
		Spawn: SpawnSpec{Heading: 45},
		Gates: []GateSpec{{Kind: "green"}},
	}
	err := c.Validate()
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if c.Gates[0].GateKind() != component.GatePass {
		t.Fatalf("unknown kinds fall back to a checkpoint")
	}
}

func TestRunCourseScript(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr bool
	}{
		{"minimal", `course = {gates: [{kind: "finish", x: 1.5, z: 10}]}`, false},
		{"multiline", "course = {\n\tname: \"multi\",\n\tgates: [{kind: \"finish\", x: 1.5, z: 10}]\n}", false},
		{"not_a_map", `course = 4`, true},
		{"syntax_error", `course = {`, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := RunCourseScript([]byte(tc.src))
			if (err != nil) != tc.wantErr {
				t.Fatalf("wantErr=%v, got %v", tc.wantErr, err)
			}
			if !tc.wantErr && (len(c.Gates) != 1 || c.Gates[0].X != 1.5) {
				t.Fatalf("unexpected course %+v", c)
			}
		})
	}
}

func TestYAMLColor(t *testing.T) {
	var c YAMLColor
	if err := yaml.Unmarshal([]byte(`"#1e90ff"`), &c); err != nil {
		t.Fatal(err)
	}
	r, g, b, a := c.RGBA()
	if r>>8 != 0x1e || g>>8 != 0x90 || b>>8 != 0xff || a>>8 != 0xff {
		t.Fatalf("unexpected color %v", c.Color)
	}
	if err := yaml.Unmarshal([]byte(`"#12"`), &c); err == nil {
		t.Fatalf("expected a format error")
	}
}

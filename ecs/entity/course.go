package entity

import (
	"fmt"

	"github.com/milk9111/slalom/ecs"
	"github.com/milk9111/slalom/prefabs"
)

// Course lists the entities built for one course.
type Course struct {
	Player    ecs.Entity
	Race      ecs.Entity
	Gates     []ecs.Entity
	Obstacles []ecs.Entity
}

// BuildCourse populates w from a course spec. Gates and obstacles keep the
// order they have in the course file.
func BuildCourse(w *ecs.World, spec *prefabs.CourseSpec, tuning *prefabs.Tuning) (*Course, error) {
	if spec == nil || tuning == nil {
		return nil, fmt.Errorf("entity: build course: missing spec or tuning")
	}
	var (
		c   Course
		err error
	)
	if c.Race, err = NewRace(w); err != nil {
		return nil, err
	}
	for i, g := range spec.Gates {
		e, err := NewGate(w, g)
		if err != nil {
			return nil, fmt.Errorf("entity: gate %d: %w", i, err)
		}
		c.Gates = append(c.Gates, e)
	}
	for i, o := range spec.Obstacles {
		e, err := NewObstacle(w, o)
		if err != nil {
			return nil, fmt.Errorf("entity: obstacle %d: %w", i, err)
		}
		c.Obstacles = append(c.Obstacles, e)
	}
	if c.Player, err = NewSkier(w, spec.Spawn, tuning); err != nil {
		return nil, err
	}
	return &c, nil
}

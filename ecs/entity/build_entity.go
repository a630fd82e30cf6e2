package entity

import (
	"errors"
	"fmt"

	"github.com/milk9111/slalom/ecs"
	"github.com/milk9111/slalom/ecs/component"
)

// componentSet is a list of add calls applied in order to one entity.
type componentSet []func(w *ecs.World, e ecs.Entity) error

func with[T any](handle component.ComponentHandle[T], value T) func(w *ecs.World, e ecs.Entity) error {
	return func(w *ecs.World, e ecs.Entity) error {
		v := value
		return ecs.Add(w, e, handle, &v)
	}
}

// build creates an entity and attaches every component. On failure the
// half-built entity is destroyed.
func build(w *ecs.World, kind string, set componentSet) (ecs.Entity, error) {
	if w == nil {
		return 0, errors.New("entity: nil world")
	}
	e := w.CreateEntity()
	for _, add := range set {
		if err := add(w, e); err != nil {
			w.DestroyEntity(e)
			return 0, fmt.Errorf("entity: build %s: %w", kind, err)
		}
	}
	return e, nil
}

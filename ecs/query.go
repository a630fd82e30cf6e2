package ecs

import "github.com/milk9111/slalom/ecs/component"

// Query returns the entities holding every listed component kind.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		set := w.store(k.ID(), false)
		if set == nil || set.Len() == 0 {
			return nil
		}
		sets = append(sets, set)
	}

	// iterate smallest set
	smallest := 0
	for i, set := range sets {
		if set.Len() < sets[smallest].Len() {
			smallest = i
		}
	}

	out := make([]Entity, 0, sets[smallest].Len())
	for _, e := range sets[smallest].Entities() {
		hasAll := true
		for i, set := range sets {
			if i != smallest && !set.Has(e) {
				hasAll = false
				break
			}
		}
		if hasAll {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first entity holding every listed component kind.
func (w *World) First(kinds ...component.Kind) (Entity, bool) {
	found := w.Query(kinds...)
	if len(found) == 0 {
		return 0, false
	}
	return found[0], true
}

package ecs

import (
	"time"

	"github.com/milk9111/slalom/ecs/component"
)

// World owns entities, component storage, the zone-entry queue, the race
// notification bus and the time source that every timer polls.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
	bus      *Bus
	clock    TimeSource
}

// NewWorld creates an empty ECS world backed by the wall clock.
func NewWorld() *World {
	return &World{
		stores: make(map[component.ComponentID]*SparseSet),
		bus:    NewBus(),
		clock:  WallClock{},
	}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its id.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, set := range w.stores {
		set.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	set := w.stores[id]
	if set == nil && create {
		set = &SparseSet{}
		w.stores[id] = set
	}
	return set
}

// AddComponent inserts or replaces the component stored under id.
func (w *World) AddComponent(e Entity, id component.ComponentID, value any) error {
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	if id == 0 {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	w.store(id, true).Set(e, value)
	return nil
}

// RemoveComponent deletes the component stored under id.
func (w *World) RemoveComponent(e Entity, id component.ComponentID) bool {
	if w == nil {
		return false
	}
	return w.store(id, false).Remove(e)
}

// HasComponent reports whether e has a component stored under id.
func (w *World) HasComponent(e Entity, id component.ComponentID) bool {
	if w == nil {
		return false
	}
	return w.store(id, false).Has(e)
}

// GetComponent returns the raw component stored under id.
func (w *World) GetComponent(e Entity, id component.ComponentID) (any, bool) {
	if w == nil {
		return nil, false
	}
	set := w.store(id, false)
	if !set.Has(e) {
		return nil, false
	}
	return set.Get(e), true
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Bus returns the race notification bus.
func (w *World) Bus() *Bus {
	if w == nil {
		return nil
	}
	return w.bus
}

// SetTimeSource swaps the clock that timers and the race clock poll.
func (w *World) SetTimeSource(ts TimeSource) {
	if w == nil || ts == nil {
		return
	}
	w.clock = ts
}

// Now returns the current instant of the world's time source.
func (w *World) Now() time.Time {
	if w == nil || w.clock == nil {
		return time.Now()
	}
	return w.clock.Now()
}

package ecs

import "github.com/milk9111/slalom/ecs/component"

// EventType names both queued feed events and bus topics.
type EventType string

const (
	// EventZoneEntered is queued by the trigger feed and drained once per tick.
	EventZoneEntered EventType = "zone_entered"

	EventRaceStart     EventType = "race_start"
	EventRaceOver      EventType = "race_over"
	EventCorrectPass   EventType = "correct_pass"
	EventIncorrectPass EventType = "incorrect_pass"
	EventPlayerHit     EventType = "player_hit"
)

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Data any
}

// ZoneEntry reports that a player overlapped a gate, finish or obstacle zone.
type ZoneEntry struct {
	Player Entity
	Zone   Entity
}

// PassEvent is the payload of CorrectPass, IncorrectPass, RaceStart and RaceOver.
type PassEvent struct {
	Player Entity
	Gate   Entity
	Kind   component.GateKind
}

// HitEvent is the payload of PlayerHit.
type HitEvent struct {
	Player      Entity
	Obstacle    Entity
	Tag         string
	HealthDelta float64
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len reports how many events are waiting.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

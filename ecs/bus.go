package ecs

import (
	"log"
	"runtime/debug"
)

// Handler reacts to a published event. The payload is shared with every
// other handler and must be treated as read-only.
type Handler func(evt Event)

type subscriber struct {
	id      uint64
	handler Handler
	active  bool
}

// Bus is a synchronous publish/subscribe channel for race notifications.
//
// Publish runs the handlers of a topic in subscription order on the calling
// goroutine and returns once all of them have finished. A handler that
// panics is logged and skipped; the remaining handlers still run.
type Bus struct {
	nextID uint64
	topics map[EventType][]*subscriber
}

func NewBus() *Bus {
	return &Bus{topics: make(map[EventType][]*subscriber)}
}

// Subscription detaches its handler when closed. Close is idempotent.
type Subscription struct {
	bus   *Bus
	topic EventType
	sub   *subscriber
}

func (s *Subscription) Close() {
	if s == nil || s.bus == nil {
		return
	}
	s.bus.Unsubscribe(s)
}

// Subscribe registers handler for topic.
func (b *Bus) Subscribe(topic EventType, handler Handler) *Subscription {
	if b == nil || handler == nil {
		return &Subscription{}
	}
	if b.topics == nil {
		b.topics = make(map[EventType][]*subscriber)
	}
	b.nextID++
	sub := &subscriber{id: b.nextID, handler: handler, active: true}
	b.topics[topic] = append(b.topics[topic], sub)
	return &Subscription{bus: b, topic: topic, sub: sub}
}

// Unsubscribe removes the handler behind s. A handler removed while a
// publish is in flight is not called for the rest of that publish.
func (b *Bus) Unsubscribe(s *Subscription) {
	if b == nil || s == nil || s.sub == nil || !s.sub.active {
		return
	}
	s.sub.active = false
	subs := b.topics[s.topic]
	kept := make([]*subscriber, 0, len(subs))
	for _, sub := range subs {
		if sub != s.sub {
			kept = append(kept, sub)
		}
	}
	if len(kept) == 0 {
		delete(b.topics, s.topic)
		return
	}
	b.topics[s.topic] = kept
}

// Publish delivers evt to the handlers subscribed to evt.Type when the call
// starts.
func (b *Bus) Publish(evt Event) {
	if b == nil {
		return
	}
	subs := b.topics[evt.Type]
	if len(subs) == 0 {
		return
	}
	snapshot := append([]*subscriber(nil), subs...)
	for _, sub := range snapshot {
		if !sub.active {
			continue
		}
		b.invoke(sub, evt)
	}
}

func (b *Bus) invoke(sub *subscriber, evt Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("bus: handler %d for %s panicked: %v\n%s", sub.id, evt.Type, r, debug.Stack())
		}
	}()
	sub.handler(evt)
}

// HandlerCount returns the number of live handlers for topic.
func (b *Bus) HandlerCount(topic EventType) int {
	if b == nil {
		return 0
	}
	return len(b.topics[topic])
}

package feedback

import (
	"github.com/milk9111/slalom/ecs"
)

var topics = []ecs.EventType{
	ecs.EventRaceStart,
	ecs.EventRaceOver,
	ecs.EventCorrectPass,
	ecs.EventIncorrectPass,
	ecs.EventPlayerHit,
}

// Recorder buffers cues between host frames. It lives on the simulation
// goroutine, like everything else on the bus.
type Recorder struct {
	subs    []*ecs.Subscription
	pending []Cue
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Attach subscribes to every race topic on bus.
func (r *Recorder) Attach(bus *ecs.Bus) {
	if bus == nil {
		return
	}
	for _, topic := range topics {
		r.subs = append(r.subs, bus.Subscribe(topic, r.record))
	}
}

func (r *Recorder) record(evt ecs.Event) {
	if cue := CueFor(evt); cue != CueNone {
		r.pending = append(r.pending, cue)
	}
}

// Drain returns the cues recorded since the last call, oldest first.
func (r *Recorder) Drain() []Cue {
	out := r.pending
	r.pending = nil
	return out
}

func (r *Recorder) Detach() {
	for _, sub := range r.subs {
		sub.Close()
	}
	r.subs = nil
	r.pending = nil
}

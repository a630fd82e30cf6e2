package component

import "time"

// ClockState is the race clock's lifecycle.
type ClockState int

const (
	ClockIdle ClockState = iota
	ClockRunning
	ClockStopped
)

func (s ClockState) String() string {
	switch s {
	case ClockIdle:
		return "idle"
	case ClockRunning:
		return "running"
	case ClockStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// RaceClock accumulates elapsed race time plus penalty offsets.
type RaceClock struct {
	State     ClockState
	StartedAt time.Time
	Penalty   time.Duration
	// Final is the frozen reading once stopped.
	Final time.Duration
	// Last is the highest value ever reported; readings never go below it.
	Last time.Duration
}

// Start resets penalties and starts timing from now.
func (c *RaceClock) Start(now time.Time) {
	c.State = ClockRunning
	c.StartedAt = now
	c.Penalty = 0
	c.Final = 0
	c.Last = 0
}

// Stop freezes the reading. Stopping an idle clock freezes the penalties
// alone; stopping a stopped clock changes nothing.
func (c *RaceClock) Stop(now time.Time) {
	switch c.State {
	case ClockRunning:
		c.Final = c.Elapsed(now)
	case ClockIdle:
		c.Final = c.Penalty
	default:
		return
	}
	c.State = ClockStopped
}

// AddPenalty is valid in every state.
func (c *RaceClock) AddPenalty(d time.Duration) {
	if d <= 0 {
		return
	}
	c.Penalty += d
	if c.State == ClockStopped {
		c.Final += d
	}
}

// Elapsed is the time to show: live while running, frozen otherwise.
func (c *RaceClock) Elapsed(now time.Time) time.Duration {
	var v time.Duration
	switch c.State {
	case ClockRunning:
		delta := now.Sub(c.StartedAt)
		if delta < 0 {
			delta = 0
		}
		v = delta + c.Penalty
	case ClockStopped:
		v = c.Final
	default:
		v = c.Penalty
	}
	if v < c.Last {
		return c.Last
	}
	c.Last = v
	return v
}

var RaceClockComponent = NewComponent[RaceClock]()

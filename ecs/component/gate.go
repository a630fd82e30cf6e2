package component

import "fmt"

// GateKind selects the judging rule for a course zone.
type GateKind int

const (
	GateBlue GateKind = iota + 1
	GatePink
	GateStart
	GateFinish
	GatePass
	GateBoost
)

var gateKindNames = map[GateKind]string{
	GateBlue:   "blue",
	GatePink:   "pink",
	GateStart:  "start",
	GateFinish: "finish",
	GatePass:   "pass",
	GateBoost:  "boost",
}

func (k GateKind) String() string {
	if name, ok := gateKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("gate(%d)", int(k))
}

// ParseGateKind accepts the names used in course specs.
func ParseGateKind(s string) (GateKind, error) {
	for k, name := range gateKindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown gate kind %q", s)
}

// Verdict is the latched outcome of a gate.
type Verdict int

const (
	VerdictNone Verdict = iota
	VerdictCorrect
	VerdictIncorrect
	VerdictRaceStart
	VerdictRaceOver
)

// Signal is the visual feedback the host applies to a judged gate.
type Signal int

const (
	SignalIdle Signal = iota
	SignalSuccess
	SignalFailure
)

// Gate is a course checkpoint. Judged latches after the first judgment so
// each gate fires at most once per race.
type Gate struct {
	Kind    GateKind
	Judged  bool
	Verdict Verdict
	Signal  Signal
}

// Reset clears the latch for a new race.
func (g *Gate) Reset() {
	g.Judged = false
	g.Verdict = VerdictNone
	g.Signal = SignalIdle
}

var GateComponent = NewComponent[Gate]()

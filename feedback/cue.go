// Package feedback turns race notifications into audio/visual cues. It
// has no rendering or audio dependencies; the host decides how a cue sounds.
package feedback

import (
	"strings"

	"github.com/milk9111/slalom/ecs"
)

type Cue int

const (
	CueNone Cue = iota
	CueStart
	CueSuccess
	CueFailure
	CueFinish
	CueHitTree
	CueHitBorder
	CueHitSnow
	CueHitObstacle
)

func (c Cue) String() string {
	switch c {
	case CueStart:
		return "start"
	case CueSuccess:
		return "success"
	case CueFailure:
		return "failure"
	case CueFinish:
		return "finish"
	case CueHitTree:
		return "hit_tree"
	case CueHitBorder:
		return "hit_border"
	case CueHitSnow:
		return "hit_snow"
	case CueHitObstacle:
		return "hit_obstacle"
	default:
		return "none"
	}
}

// CueFor maps one bus event to its cue.
func CueFor(evt ecs.Event) Cue {
	switch evt.Type {
	case ecs.EventRaceStart:
		return CueStart
	case ecs.EventCorrectPass:
		return CueSuccess
	case ecs.EventIncorrectPass:
		return CueFailure
	case ecs.EventRaceOver:
		return CueFinish
	case ecs.EventPlayerHit:
		hit, _ := evt.Data.(ecs.HitEvent)
		return hitCue(hit.Tag)
	default:
		return CueNone
	}
}

func hitCue(tag string) Cue {
	switch strings.ToLower(tag) {
	case "tree":
		return CueHitTree
	case "border":
		return CueHitBorder
	case "snowman", "snowball":
		return CueHitSnow
	default:
		return CueHitObstacle
	}
}

package main

import (
	"fmt"
	"log"
	"math"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/slalom/common"
	"github.com/milk9111/slalom/ecs/component"
	"github.com/milk9111/slalom/feedback"
	"github.com/milk9111/slalom/prefabs"
	"github.com/milk9111/slalom/race"
)

type Options struct {
	Course string
	Tuning string
	Watch  bool
	Debug  bool
	Mute   bool
}

type Game struct {
	opts Options

	session *race.Session
	cues    *feedback.Recorder
	sounds  *soundBank
	overlay *Overlay
	watcher *prefabs.Watcher
	palette palette

	paused bool
	frames int
}

func NewGame(opts Options) (*Game, error) {
	tuning, err := prefabs.LoadTuning(opts.Tuning)
	if err != nil {
		log.Printf("game: %v, using default tuning", err)
		tuning = prefabs.DefaultTuning()
	}

	g := &Game{opts: opts, cues: feedback.NewRecorder()}
	if err := g.loadCourse(tuning); err != nil {
		return nil, err
	}
	if !opts.Mute {
		g.sounds = newSoundBank()
	}
	g.overlay = NewOverlay(g)
	ebiten.SetTPS(ticksPerSecond(tuning))

	if opts.Watch {
		w, err := prefabs.NewWatcher(filepath.Join("prefabs"), filepath.Join("prefabs", "courses"), filepath.Join("prefabs", "scripts"))
		if err != nil {
			log.Printf("game: watch prefabs: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// loadCourse builds a fresh session for the configured course, replacing
// the current one only once the new one is ready.
func (g *Game) loadCourse(tuning prefabs.Tuning) error {
	course, err := prefabs.LoadCourse(g.opts.Course)
	if err != nil {
		return fmt.Errorf("game: course %s: %w", g.opts.Course, err)
	}
	session, err := race.NewSession(course, tuning)
	if err != nil {
		return err
	}

	if g.session != nil {
		g.cues.Detach()
		g.session.Close()
	}
	g.session = session
	g.cues.Attach(session.Bus())
	g.palette = newPalette(course.Palette)
	return nil
}

func (g *Game) Update() error {
	g.frames++
	g.applyReloads()

	snap := g.session.Snapshot()
	finished := snap.Clock == component.ClockStopped

	if restartPressed() {
		g.restart()
		return nil
	}
	if pausePressed() && !finished {
		g.paused = !g.paused
	}

	if g.paused || finished {
		g.overlay.Update(snap, g.paused)
	}
	if g.paused {
		return nil
	}

	g.session.Step(readSteering())
	g.playCues()
	return nil
}

func (g *Game) restart() {
	g.paused = false
	g.session.Restart()
	g.cues.Drain()
}

func (g *Game) playCues() {
	for _, cue := range g.cues.Drain() {
		if g.opts.Debug {
			log.Printf("game: cue %s", cue)
		}
		if g.sounds != nil {
			g.sounds.Play(cue)
		}
	}
}

// applyReloads picks up prefab edits between ticks. Tuning applies in
// place; a course edit rebuilds the session.
func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(path)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("game: watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reload(path string) {
	switch {
	case prefabs.IsTuningFile(path):
		tuning, err := prefabs.LoadTuning(path)
		if err != nil {
			log.Printf("game: reload %s: %v", path, err)
			return
		}
		g.session.ApplyTuning(tuning)
		ebiten.SetTPS(ticksPerSecond(tuning))
		log.Printf("game: tuning reloaded from %s", path)
	case filepath.Base(path) == filepath.Base(g.opts.Course):
		if err := g.loadCourse(g.session.Tuning()); err != nil {
			log.Printf("game: reload %s: %v", path, err)
			return
		}
		g.paused = false
		log.Printf("game: course reloaded from %s", path)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()
	drawCourse(screen, snap, g.palette, g.opts.Debug)
	drawHUD(screen, snap, g.session.Course().Name, g.opts.Debug)

	if g.paused || snap.Clock == component.ClockStopped {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	if g.sounds != nil {
		g.sounds.Close()
	}
	g.cues.Detach()
	g.session.Close()
}

// ticksPerSecond follows Tuning.Dt so an invalid tick_rate falls back the
// same way in the loop and in the simulation.
func ticksPerSecond(t prefabs.Tuning) int {
	return int(math.Round(1 / t.Dt()))
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

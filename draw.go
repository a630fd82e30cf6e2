package main

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/slalom/common"
	"github.com/milk9111/slalom/ecs/component"
	"github.com/milk9111/slalom/prefabs"
	"github.com/milk9111/slalom/race"
	"golang.org/x/image/colornames"
)

const (
	pixelsPerUnit = 12.0
	poleRadius    = 4
	// the skier sits a third of the way down the screen so more of the
	// course ahead is visible
	cameraAnchorY = common.BaseHeight / 3
)

type palette map[string]color.Color

var defaultPalette = palette{
	"snow":    colornames.Snow,
	"blue":    colornames.Royalblue,
	"pink":    colornames.Hotpink,
	"start":   colornames.Gold,
	"finish":  colornames.Gold,
	"pass":    colornames.Slategray,
	"boost":   colornames.Mediumseagreen,
	"success": colornames.Limegreen,
	"failure": colornames.Black,
	"skier":   colornames.Crimson,
	"tree":    colornames.Forestgreen,
	"border":  colornames.Dimgray,
	"snowman": colornames.Lightsteelblue,
}

func newPalette(overrides map[string]prefabs.YAMLColor) palette {
	p := make(palette, len(defaultPalette)+len(overrides))
	for k, v := range defaultPalette {
		p[k] = v
	}
	for k, v := range overrides {
		if v.Color != nil {
			p[strings.ToLower(k)] = v.Color
		}
	}
	return p
}

func (p palette) get(key string) color.Color {
	if c, ok := p[key]; ok {
		return c
	}
	return colornames.Magenta
}

type camera struct {
	x, z float64
}

func (c camera) toScreen(x, z float64) (float32, float32) {
	sx := (x-c.x)*pixelsPerUnit + common.BaseWidth/2
	sy := (z-c.z)*pixelsPerUnit + cameraAnchorY
	return float32(sx), float32(sy)
}

func drawCourse(screen *ebiten.Image, snap race.Snapshot, pal palette, debug bool) {
	screen.Fill(pal.get("snow"))
	cam := camera{x: snap.X, z: snap.Z}

	for _, g := range snap.Gates {
		drawGate(screen, cam, g, pal, debug)
	}
	for _, o := range snap.Obstacles {
		x, y := cam.toScreen(o.X, o.Z)
		vector.FillCircle(screen, x, y, float32(o.Radius*pixelsPerUnit), obstacleColor(o.Tag, pal), true)
	}
	drawSkier(screen, cam, snap, pal)
}

func drawGate(screen *ebiten.Image, cam camera, g race.GateView, pal palette, debug bool) {
	c := pal.get(g.Kind.String())
	switch g.Signal {
	case component.SignalSuccess:
		c = pal.get("success")
	case component.SignalFailure:
		c = pal.get("failure")
	}

	lx, ly := cam.toScreen(g.X-g.Width/2, g.Z)
	rx, ry := cam.toScreen(g.X+g.Width/2, g.Z)
	switch g.Kind {
	case component.GateStart, component.GateFinish:
		vector.StrokeLine(screen, lx, ly, rx, ry, 4, c, true)
	case component.GateBlue, component.GatePink:
		// single turning pole; the zone extends to both sides of it
		px, py := cam.toScreen(g.X, g.Z)
		vector.FillCircle(screen, px, py, poleRadius, c, true)
	default:
		vector.FillCircle(screen, lx, ly, poleRadius, c, true)
		vector.FillCircle(screen, rx, ry, poleRadius, c, true)
		vector.StrokeLine(screen, lx, ly, rx, ry, 1, c, true)
	}

	if debug {
		x, y := cam.toScreen(g.X-g.Width/2, g.Z-g.Depth/2)
		vector.StrokeRect(screen, x, y, float32(g.Width*pixelsPerUnit), float32(g.Depth*pixelsPerUnit), 1, color.RGBA{R: 255, A: 160}, false)
	}
}

func obstacleColor(tag string, pal palette) color.Color {
	switch strings.ToLower(tag) {
	case "tree":
		return pal.get("tree")
	case "border":
		return pal.get("border")
	default:
		return pal.get("snowman")
	}
}

func drawSkier(screen *ebiten.Image, cam camera, snap race.Snapshot, pal palette) {
	x, y := cam.toScreen(snap.X, snap.Z)
	// height shows as a lifted shadow offset
	lift := float32(snap.Y * pixelsPerUnit)
	vector.FillCircle(screen, x, y, 6, color.RGBA{A: 60}, true)

	c := pal.get("skier")
	if snap.Hurt && (snap.Tick/4)%2 == 0 {
		c = colornames.White
	}
	vector.FillCircle(screen, x, y-lift, 7, c, true)

	fwd := common.Forward(snap.Heading)
	tx, ty := x+float32(fwd.X*18), y-lift+float32(fwd.Z*18)
	vector.StrokeLine(screen, x, y-lift, tx, ty, 2, c, true)
	if snap.Boosting {
		vector.StrokeCircle(screen, x, y-lift, 11, 2, pal.get("boost"), true)
	}
}

func drawHUD(screen *ebiten.Image, snap race.Snapshot, course string, debug bool) {
	lines := []string{
		fmt.Sprintf("%s  %s", course, snap.Clock),
		fmt.Sprintf("time   %6.2fs", snap.Elapsed.Seconds()),
		fmt.Sprintf("speed  %6.0f", snap.Speed),
		fmt.Sprintf("score  %6d", snap.Score),
		fmt.Sprintf("health %6.0f", snap.Health),
	}
	if debug {
		lines = append(lines,
			fmt.Sprintf("pos (%.1f, %.2f, %.1f) heading %.1f", snap.X, snap.Y, snap.Z, math.Mod(snap.Heading, 360)),
			fmt.Sprintf("grounded %v hurt %v boost %v", snap.Grounded, snap.Hurt, snap.Boosting),
			fmt.Sprintf("tick %d  TPS %.1f  FPS %.1f", snap.Tick, ebiten.ActualTPS(), ebiten.ActualFPS()),
		)
	}
	ebitenutil.DebugPrint(screen, strings.Join(lines, "\n"))
}

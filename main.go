package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/slalom/common"
)

func main() {
	courseName := flag.String("course", "courses/slalom.yaml", "course prefab (.yaml) or generator script (.tengo)")
	tuningName := flag.String("tuning", "tuning.yaml", "tuning prefab")
	watch := flag.Bool("watch", false, "reload tuning and course edits under prefabs/")
	debug := flag.Bool("debug", false, "draw trigger zones and the debug readout")
	mute := flag.Bool("mute", false, "disable sound cues")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("slalom")

	game, err := NewGame(Options{
		Course: *courseName,
		Tuning: *tuningName,
		Watch:  *watch,
		Debug:  *debug,
		Mute:   *mute,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

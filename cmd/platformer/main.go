package main

import (
	"flag"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/platformer/internal/application/game"
	"github.com/younwookim/platformer/internal/application/scene"
	"github.com/younwookim/platformer/internal/application/scene/loading"
	"github.com/younwookim/platformer/internal/application/scene/playing"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Config directory (default: embedded configs)")
	levelFlag := flag.String("level", "demo", "Level to load from <config>/levels")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Run a recorded replay headless and print the final state")
	flag.Parse()

	loader, err := newLoader(*configDir)
	if err != nil {
		log.Fatalf("Failed to open configs: %v", err)
	}

	if *replayFlag != "" {
		res, err := runReplay(loader, *replayFlag)
		if err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		log.Printf("Replayed %d/%d frames on level %q: pos (%.3f, %.3f) vel (%.3f, %.3f)",
			res.Frames, res.Total, res.Level, res.Position.X, res.Position.Y, res.Velocity.X, res.Velocity.Y)
		return
	}

	display, err := loader.LoadDisplay()
	if err != nil {
		log.Fatalf("Failed to load display config: %v", err)
	}

	recordFilename := *recordFlag
	first := loading.New(loader, *levelFlag, func(cfg *config.GameConfig) (scene.Scene, error) {
		return playing.New(cfg, recordFilename)
	})
	g := game.New(first, display)

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.TPS)

	// Run game
	err = ebiten.RunGame(g)
	g.Shutdown()
	if err != nil {
		log.Fatal(err)
	}
}

// newLoader reads from dir when given, otherwise from the embedded configs
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys), nil
}

package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/jakecoffman/cp"
	"github.com/younwookim/platformer/internal/application/replay"
	"github.com/younwookim/platformer/internal/application/system"
	"github.com/younwookim/platformer/internal/ecs"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// ReplayResult is the player state after a headless replay
type ReplayResult struct {
	Level    string
	Frames   int
	Total    int
	Position cp.Vector
	Velocity cp.Vector
}

// runReplay loads a recording and feeds it through a fresh simulation without a window
func runReplay(loader *config.Loader, filename string) (*ReplayResult, error) {
	data, err := replay.LoadReplay(filename)
	if err != nil {
		return nil, err
	}

	physics, err := loader.LoadPhysics()
	if err != nil {
		return nil, err
	}

	replayer := replay.NewReplayer(*data)
	level, err := loadReplayLevel(loader, replayer.Level())
	if err != nil {
		return nil, err
	}

	world := ecs.NewWorld()
	player, err := system.SpawnLevel(world, level)
	if err != nil {
		return nil, err
	}

	sys := system.NewPhysicsSystem(physics, world)
	replayer.Run(sys)

	return &ReplayResult{
		Level:    level.Name,
		Frames:   replayer.CurrentFrame(),
		Total:    replayer.TotalFrames(),
		Position: world.Position[player].Vector,
		Velocity: world.Velocity[player].Vector,
	}, nil
}

// loadReplayLevel resolves the recorded level name.
// Recordings made on the built-in level have no file to load.
func loadReplayLevel(loader *config.Loader, name string) (*config.LevelConfig, error) {
	def := config.DefaultLevel()
	if name == "" {
		return def, nil
	}

	level, err := loader.LoadLevel(name)
	if errors.Is(err, fs.ErrNotExist) && name == def.Name {
		return def, nil
	}
	if err != nil {
		return nil, fmt.Errorf("replay level %q: %w", name, err)
	}
	return level, nil
}

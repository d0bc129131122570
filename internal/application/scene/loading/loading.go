// Package loading provides the scene that loads configuration before play starts.
package loading

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/platformer/internal/application/scene"
	"github.com/younwookim/platformer/internal/application/state"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// PlayingFactory builds the gameplay scene once configuration is available
type PlayingFactory func(cfg *config.GameConfig) (scene.Scene, error)

// Loading loads settings and the level, then hands over to the playing scene.
// Physics cannot tick while this scene is active.
type Loading struct {
	loader *config.Loader
	level  string
	next   PlayingFactory
	state  state.GameState
}

// New creates a new Loading scene
func New(loader *config.Loader, level string, next PlayingFactory) *Loading {
	return &Loading{
		loader: loader,
		level:  level,
		next:   next,
		state:  state.StateLoading,
	}
}

// Update loads everything in one go and transitions on success
func (l *Loading) Update() (scene.Scene, error) {
	cfg, err := l.loader.LoadAll(l.level)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded level %q (%d grounds)", cfg.Level.Name, len(cfg.Level.Grounds))

	next, err := l.next(cfg)
	if err != nil {
		return nil, err
	}
	l.state = state.StatePlaying
	return next, nil
}

// Draw renders the loading text
func (l *Loading) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, "Loading...")
}

// OnEnter is called when entering this scene
func (l *Loading) OnEnter() {}

// OnExit is called when leaving this scene
func (l *Loading) OnExit() {}

// State returns the loading state
func (l *Loading) State() state.GameState {
	return l.state
}

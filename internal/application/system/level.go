package system

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/younwookim/platformer/internal/ecs"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// SpawnLevel creates the player, its ground probe ray and every ground of the level.
// Returns the player entity.
func SpawnLevel(w *ecs.World, cfg *config.LevelConfig) (ecs.EntityID, error) {
	spawn := cfg.Player
	player := w.SpawnPlayer(toVector(spawn.Position), toVector(spawn.Size))

	if _, err := w.SpawnPlayerRay(toVector(spawn.Position), toVector(spawn.Ray)); err != nil {
		return 0, fmt.Errorf("level %s: player ray: %w", cfg.Name, err)
	}

	for _, g := range cfg.Grounds {
		w.SpawnGround(toVector(g.Position), toVector(g.Size))
	}

	return player, nil
}

func toVector(v config.VectorConfig) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

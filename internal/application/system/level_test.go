package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/platformer/internal/ecs"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

func TestSpawnLevel(t *testing.T) {
	w := ecs.NewWorld()

	player, err := SpawnLevel(w, config.DefaultLevel())
	require.NoError(t, err)

	assert.Equal(t, player, w.PlayerID)
	assert.Equal(t, cp.Vector{X: 0, Y: 15}, w.Position[player].Vector)
	assert.Equal(t, ecs.ColliderPlayer, w.Hurtbox[player].ColliderType)

	require.Len(t, w.IsPlayerRay, 1)
	for ray := range w.IsPlayerRay {
		assert.Equal(t, cp.Vector{X: 0, Y: -30.1}, w.Hurtbox[ray].Shape.Vector)
		assert.Equal(t, w.Position[player], w.Position[ray])
	}

	require.Len(t, w.IsGround, 1)
	for ground := range w.IsGround {
		assert.Equal(t, cp.Vector{X: 0, Y: -30}, w.Position[ground].Vector)
		assert.Equal(t, ecs.RectShape(cp.Vector{X: 240, Y: 60}), w.Hitbox[ground].Shape)
	}
}

func TestSpawnLevel_DegenerateRay(t *testing.T) {
	lvl := config.DefaultLevel()
	lvl.Player.Ray = config.VectorConfig{}

	_, err := SpawnLevel(ecs.NewWorld(), lvl)
	assert.ErrorIs(t, err, ecs.ErrDegenerateRay)
}

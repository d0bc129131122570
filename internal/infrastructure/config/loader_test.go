package config

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configDir = "../../../cmd/platformer/configs"

func TestLoader_LoadPhysics(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadPhysics()
	require.NoError(t, err)

	assert.Equal(t, -1600.0, cfg.NormalGravity)
	assert.Equal(t, -600.0, cfg.HoldGravity)
	assert.Equal(t, 420.0, cfg.InitialJumpVelocity)
	assert.Equal(t, 900.0, cfg.HorizontalA)
	assert.Equal(t, 1200.0, cfg.Friction)
	assert.Equal(t, 20.0, cfg.StoppingHorizontalSpeed)
}

func TestLoader_LoadLevel(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadLevel("demo")
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.Name)
	assert.Equal(t, VectorConfig{X: 0, Y: 15}, cfg.Player.Position)
	assert.Equal(t, VectorConfig{X: 30, Y: 30}, cfg.Player.Size)
	assert.Equal(t, VectorConfig{X: 0, Y: -30.1}, cfg.Player.Ray)
	require.Len(t, cfg.Grounds, 3)
	assert.Equal(t, DefaultLevel().Grounds[0], cfg.Grounds[0])
}

func TestLoader_LoadLevelJSON(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadLevel("flat")
	require.NoError(t, err)

	assert.Equal(t, "flat", cfg.Name)
	require.Len(t, cfg.Grounds, 1)
	assert.Equal(t, 2000.0, cfg.Grounds[0].Size.X)
}

func TestLoader_LoadDisplay(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadDisplay()
	require.NoError(t, err)

	assert.Equal(t, 480, cfg.ScreenWidth)
	assert.Equal(t, 270, cfg.ScreenHeight)
	assert.Equal(t, 60, cfg.TPS)
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadAll("demo")
	require.NoError(t, err)

	assert.NotNil(t, cfg.Physics)
	assert.NotNil(t, cfg.Level)
	assert.NotNil(t, cfg.Display)
}

func TestLoader_FormatSelection(t *testing.T) {
	fsys := fstest.MapFS{
		"physics.json": {Data: []byte(`{"normal_gravity": -10, "hold_gravity": -5, "initial_jump_velocity": 7,
			"horizontal_a": 3, "friction": 2, "stopping_horizontal_speed": 1}`)},
		"levels/a.yml": {Data: []byte("player:\n  size: {x: 2, y: 4}\n")},
	}
	loader := NewFSLoader(fsys)

	physics, err := loader.LoadPhysics()
	require.NoError(t, err)
	assert.Equal(t, PhysicsSettings{
		NormalGravity:           -10,
		HoldGravity:             -5,
		InitialJumpVelocity:     7,
		HorizontalA:             3,
		Friction:                2,
		StoppingHorizontalSpeed: 1,
	}, *physics)

	lvl, err := loader.LoadLevel("a")
	require.NoError(t, err)
	assert.Equal(t, "a", lvl.Name, "name defaults to the file's base name")
	assert.Equal(t, VectorConfig{X: 2, Y: 4}, lvl.Player.Size)
}

func TestLoader_YAMLWinsOverJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"physics.yaml": {Data: []byte("friction: 5\n")},
		"physics.json": {Data: []byte(`{"friction": 9}`)},
	}

	cfg, err := NewFSLoader(fsys).LoadPhysics()
	require.NoError(t, err)
	assert.Equal(t, 5.0, cfg.Friction)
}

func TestLoader_Errors(t *testing.T) {
	t.Run("missing physics", func(t *testing.T) {
		_, err := NewFSLoader(fstest.MapFS{}).LoadPhysics()
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("malformed physics", func(t *testing.T) {
		fsys := fstest.MapFS{"physics.json": {Data: []byte(`{"friction":`)}}
		_, err := NewFSLoader(fsys).LoadPhysics()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse physics.json")
	})

	t.Run("invalid physics", func(t *testing.T) {
		fsys := fstest.MapFS{"physics.yaml": {Data: []byte("friction: -1\n")}}
		_, err := NewFSLoader(fsys).LoadPhysics()
		assert.ErrorIs(t, err, ErrInvalidSettings)
	})

	t.Run("missing level", func(t *testing.T) {
		_, err := NewLoader(configDir).LoadLevel("nope")
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})
}

func TestLoader_DisplayDefaults(t *testing.T) {
	cfg, err := NewFSLoader(fstest.MapFS{}).LoadDisplay()
	require.NoError(t, err)
	assert.Equal(t, DefaultDisplay(), cfg)

	fsys := fstest.MapFS{"display.yaml": {Data: []byte("scale: 3\n")}}
	cfg, err = NewFSLoader(fsys).LoadDisplay()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Scale)
	assert.Equal(t, 60, cfg.TPS, "unset fields keep their defaults")
}

func TestPhysicsSettings_Validate(t *testing.T) {
	valid := PhysicsSettings{HorizontalA: 1, Friction: 1, StoppingHorizontalSpeed: 1}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*PhysicsSettings)
	}{
		{"negative horizontal_a", func(s *PhysicsSettings) { s.HorizontalA = -1 }},
		{"negative friction", func(s *PhysicsSettings) { s.Friction = -1 }},
		{"negative stopping speed", func(s *PhysicsSettings) { s.StoppingHorizontalSpeed = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidSettings)
		})
	}
}

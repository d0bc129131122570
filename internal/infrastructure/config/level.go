package config

// LevelConfig is the root config for level files
type LevelConfig struct {
	Name    string            `json:"name" yaml:"name"`
	Player  PlayerSpawnConfig `json:"player" yaml:"player"`
	Grounds []RectConfig      `json:"grounds" yaml:"grounds"`
}

// VectorConfig is a 2D vector in world units
type VectorConfig struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// PlayerSpawnConfig places the player and its ground probe ray
type PlayerSpawnConfig struct {
	Position VectorConfig `json:"position" yaml:"position"`
	Size     VectorConfig `json:"size" yaml:"size"`
	Ray      VectorConfig `json:"ray" yaml:"ray"`
}

// RectConfig is a rectangle given by its center and full extent
type RectConfig struct {
	Position VectorConfig `json:"position" yaml:"position"`
	Size     VectorConfig `json:"size" yaml:"size"`
}

// DefaultLevel returns a single ground slab with the player resting on it
func DefaultLevel() *LevelConfig {
	return &LevelConfig{
		Name: "default",
		Player: PlayerSpawnConfig{
			Position: VectorConfig{X: 0, Y: 15},
			Size:     VectorConfig{X: 30, Y: 30},
			Ray:      VectorConfig{X: 0, Y: -30.1},
		},
		Grounds: []RectConfig{
			{Position: VectorConfig{X: 0, Y: -30}, Size: VectorConfig{X: 240, Y: 60}},
		},
	}
}

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// extensions are tried in order when a config file is looked up by base name
var extensions = []string{".yaml", ".yml", ".json"}

// Loader loads game configuration from YAML or JSON files using fs.FS interface
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{fsys: os.DirFS(basePath)}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadPhysics loads and validates physics.{yaml,yml,json}
func (l *Loader) LoadPhysics() (*PhysicsSettings, error) {
	var cfg PhysicsSettings
	if _, err := l.load("physics", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadLevel loads levels/<name>.{yaml,yml,json}
func (l *Loader) LoadLevel(name string) (*LevelConfig, error) {
	var cfg LevelConfig
	if _, err := l.load(path.Join("levels", name), &cfg); err != nil {
		return nil, err
	}
	if cfg.Name == "" {
		cfg.Name = name
	}
	return &cfg, nil
}

// LoadDisplay loads display.{yaml,yml,json}, falling back to DefaultDisplay when absent
func (l *Loader) LoadDisplay() (*DisplayConfig, error) {
	cfg := DefaultDisplay()
	if _, err := l.load("display", cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultDisplay(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// LoadAll loads physics, the named level and display settings
func (l *Loader) LoadAll(level string) (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	lvl, err := l.LoadLevel(level)
	if err != nil {
		return nil, err
	}

	display, err := l.LoadDisplay()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Physics: physics,
		Level:   lvl,
		Display: display,
	}, nil
}

// load decodes the first existing file among base+extensions into v.
// It returns the file name that was read.
func (l *Loader) load(base string, v any) (string, error) {
	for _, ext := range extensions {
		name := base + ext
		data, err := fs.ReadFile(l.fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", name, err)
		}
		if err := decode(ext, data, v); err != nil {
			return "", fmt.Errorf("failed to parse %s: %w", name, err)
		}
		return name, nil
	}
	return "", fmt.Errorf("failed to read %s: %w", base, fs.ErrNotExist)
}

func decode(ext string, data []byte, v any) error {
	if ext == ".json" {
		return json.Unmarshal(data, v)
	}
	return yaml.Unmarshal(data, v)
}

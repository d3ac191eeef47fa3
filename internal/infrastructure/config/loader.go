package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the loader's filesystem
const FileName = "game.yaml"

// Loader loads game configuration from YAML using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
	useEnv   bool
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
		useEnv:   true,
	}
}

// NewFSLoader creates a new config loader from fs.FS.
// Environment overrides are not applied; call WithEnv to enable them.
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// WithEnv toggles ARENA_* environment overrides
func (l *Loader) WithEnv(enabled bool) *Loader {
	l.useEnv = enabled
	return l
}

// Load builds the config with priority: defaults < game.yaml < environment.
// A missing game.yaml is not an error.
func (l *Loader) Load() (*GameConfig, error) {
	cfg := Default()

	data, err := fs.ReadFile(l.fsys, FileName)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
		}
	}

	if l.useEnv {
		if err := ParseEnv(cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", FileName, err)
	}
	return cfg, nil
}

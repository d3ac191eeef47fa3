package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadShippedConfig(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs").WithEnv(false)

	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, 960, cfg.Display.ScreenWidth)
	assert.Equal(t, 0.1, cfg.Simulation.MaxFrameDelta)
	assert.False(t, cfg.Simulation.ExclusiveActions)
	assert.Equal(t, 5.0, cfg.Player.Motion.MoveSpeed)
	assert.Equal(t, 10.0, cfg.Player.Motion.RunSpeed)
	assert.Equal(t, 9.8, cfg.Player.Motion.Gravity)
	assert.Equal(t, 2.0, cfg.Enemy.AttackDistance)
	assert.Equal(t, 15.0, cfg.Enemy.FollowDistance)
	assert.Equal(t, 2.0, cfg.Enemy.AttackCooldown)
	assert.Equal(t, 50.0, cfg.Arena.HalfExtent)
	assert.Equal(t, 1.0, cfg.Arena.ObstacleRadius)
	assert.Equal(t, 10.0, cfg.Arena.EnemySpawn.X)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoader_MissingFileUsesDefaults(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{}, ".")

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoader_PartialFileMergesOverDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		FileName: {Data: []byte("player:\n  motion:\n    move_speed: 7\n    rotation_speed: 3\n    gravity: 9.8\n")},
	}

	cfg, err := NewFSLoader(fsys, ".").Load()
	require.NoError(t, err)

	assert.Equal(t, 7.0, cfg.Player.Motion.MoveSpeed)
	assert.Equal(t, 10.0, cfg.Player.Motion.RunSpeed, "keys absent from the file keep defaults")
	assert.Equal(t, 50.0, cfg.Arena.HalfExtent)
}

func TestLoader_ParseError(t *testing.T) {
	fsys := fstest.MapFS{
		FileName: {Data: []byte("player: [not, a, map")},
	}

	_, err := NewFSLoader(fsys, ".").Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse game.yaml")
}

func TestLoader_InvalidValues(t *testing.T) {
	fsys := fstest.MapFS{
		FileName: {Data: []byte("enemy:\n  follow_distance: 1\n")},
	}

	_, err := NewFSLoader(fsys, ".").Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoader_EnvOverrides(t *testing.T) {
	t.Setenv("ARENA_LOG_LEVEL", "debug")
	t.Setenv("ARENA_EXCLUSIVE_ACTIONS", "true")
	t.Setenv("ARENA_MAX_FRAME_DELTA", "0.25")
	t.Setenv("ARENA_MODEL", "hero.glb")

	cfg, err := NewFSLoader(fstest.MapFS{}, ".").WithEnv(true).Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Simulation.ExclusiveActions)
	assert.Equal(t, 0.25, cfg.Simulation.MaxFrameDelta)
	assert.Equal(t, "hero.glb", cfg.Model.DefaultPath)
	assert.Equal(t, 960, cfg.Display.ScreenWidth, "unset variables keep defaults")
}

func TestLoader_EnvParseError(t *testing.T) {
	t.Setenv("ARENA_SCREEN_WIDTH", "wide")

	_, err := NewFSLoader(fstest.MapFS{}, ".").WithEnv(true).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

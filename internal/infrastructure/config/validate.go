package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Validate rejects values the simulation cannot run with
func (c *GameConfig) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"player.motion.move_speed", c.Player.Motion.MoveSpeed},
		{"player.motion.rotation_speed", c.Player.Motion.RotationSpeed},
		{"player.motion.gravity", c.Player.Motion.Gravity},
		{"enemy.motion.move_speed", c.Enemy.Motion.MoveSpeed},
		{"enemy.motion.gravity", c.Enemy.Motion.Gravity},
		{"enemy.attack_distance", c.Enemy.AttackDistance},
		{"enemy.turn_rate", c.Enemy.TurnRate},
		{"arena.half_extent", c.Arena.HalfExtent},
	}
	for _, chk := range checks {
		if chk.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, chk.name, chk.value)
		}
	}

	if c.Player.Motion.RunSpeed < 0 {
		return fmt.Errorf("%w: player.motion.run_speed must not be negative", ErrInvalidConfig)
	}
	if c.Arena.ObstacleRadius < 0 {
		return fmt.Errorf("%w: arena.obstacle_radius must not be negative", ErrInvalidConfig)
	}
	if c.Enemy.FollowDistance < c.Enemy.AttackDistance {
		return fmt.Errorf("%w: enemy.follow_distance (%v) is below attack_distance (%v)",
			ErrInvalidConfig, c.Enemy.FollowDistance, c.Enemy.AttackDistance)
	}
	if c.Simulation.MaxFrameDelta < 0 {
		return fmt.Errorf("%w: simulation.max_frame_delta must not be negative", ErrInvalidConfig)
	}
	return nil
}

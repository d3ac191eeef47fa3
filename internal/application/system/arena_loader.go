package system

import (
	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/ecs"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

// LoadArena converts an ArenaConfig into the static Arena entity
func LoadArena(cfg *config.ArenaConfig) *entity.Arena {
	return &entity.Arena{
		Obstacle: entity.Obstacle{
			Center: vec(cfg.ObstacleCenter),
			Radius: cfg.ObstacleRadius,
		},
		HalfExtent:  cfg.HalfExtent,
		PlayerSpawn: vec(cfg.PlayerSpawn),
		EnemySpawn:  vec(cfg.EnemySpawn),
	}
}

// TuningFrom converts a MotionConfig into character tuning
func TuningFrom(cfg config.MotionConfig) entity.Tuning {
	return entity.Tuning{
		MoveSpeed:     cfg.MoveSpeed,
		RunSpeed:      cfg.RunSpeed,
		RotationSpeed: cfg.RotationSpeed,
		JumpSpeed:     cfg.JumpSpeed,
		Gravity:       cfg.Gravity,
	}
}

// NewArenaWorld builds a world with the player and one enemy at their spawns.
// The enemy starts facing the player.
func NewArenaWorld(cfg *config.GameConfig) *ecs.World {
	arena := LoadArena(&cfg.Arena)
	w := ecs.NewWorld(arena)

	w.CreatePlayer(TuningFrom(cfg.Player.Motion))

	enemyTuning := TuningFrom(cfg.Enemy.Motion)
	enemyTuning.RunSpeed = 0
	w.CreateEnemy(arena.EnemySpawn, HeadingTo(arena.EnemySpawn, arena.PlayerSpawn), ecs.EnemyConfig{
		Tuning:         enemyTuning,
		AttackDistance: cfg.Enemy.AttackDistance,
		FollowDistance: cfg.Enemy.FollowDistance,
		TurnRate:       cfg.Enemy.TurnRate,
		Cooldown:       cfg.Enemy.AttackCooldown,
	})

	return w
}

func vec(v config.Vec3Config) entity.Vec3 {
	return entity.Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

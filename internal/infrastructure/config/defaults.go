package config

// Default returns a GameConfig with the stock arena and tuning
func Default() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			ScreenWidth:   960,
			ScreenHeight:  640,
			PixelsPerUnit: 12,
			CameraLerp:    5,
		},
		Simulation: SimulationConfig{
			MaxFrameDelta:    0.1,
			ExclusiveActions: false,
		},
		Player: PlayerConfig{
			Motion: MotionConfig{
				MoveSpeed:     5,
				RunSpeed:      10,
				RotationSpeed: 3,
				JumpSpeed:     5,
				Gravity:       9.8,
			},
		},
		Enemy: EnemyConfig{
			Motion: MotionConfig{
				MoveSpeed:     3,
				RotationSpeed: 3,
				JumpSpeed:     5,
				Gravity:       9.8,
			},
			AttackDistance: 2,
			FollowDistance: 15,
			AttackCooldown: 2,
			TurnRate:       5,
		},
		Arena: ArenaConfig{
			HalfExtent:     50,
			ObstacleRadius: 1,
			PlayerSpawn:    Vec3Config{Z: 5},
			EnemySpawn:     Vec3Config{X: 10, Z: 10},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

package config

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display    DisplayConfig    `yaml:"display"`
	Simulation SimulationConfig `yaml:"simulation"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Arena      ArenaConfig      `yaml:"arena"`
	Model      ModelConfig      `yaml:"model"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type DisplayConfig struct {
	ScreenWidth   int     `yaml:"screen_width" env:"SCREEN_WIDTH"`
	ScreenHeight  int     `yaml:"screen_height" env:"SCREEN_HEIGHT"`
	PixelsPerUnit float64 `yaml:"pixels_per_unit" env:"PIXELS_PER_UNIT"` // camera zoom at rest
	CameraLerp    float64 `yaml:"camera_lerp" env:"CAMERA_LERP"`         // follow smoothing per second
}

type SimulationConfig struct {
	// MaxFrameDelta clamps wall-clock elapsed time per tick (seconds).
	// 0 disables the clamp.
	MaxFrameDelta float64 `yaml:"max_frame_delta" env:"MAX_FRAME_DELTA"`
	// ExclusiveActions forbids attacking while airborne and jumping while attacking.
	ExclusiveActions bool `yaml:"exclusive_actions" env:"EXCLUSIVE_ACTIONS"`
}

type MotionConfig struct {
	MoveSpeed     float64 `yaml:"move_speed"`
	RunSpeed      float64 `yaml:"run_speed"`
	RotationSpeed float64 `yaml:"rotation_speed"` // rad/s
	JumpSpeed     float64 `yaml:"jump_speed"`
	Gravity       float64 `yaml:"gravity"`
}

type PlayerConfig struct {
	Motion MotionConfig `yaml:"motion"`
}

type EnemyConfig struct {
	Motion         MotionConfig `yaml:"motion"`
	AttackDistance float64      `yaml:"attack_distance"`
	FollowDistance float64      `yaml:"follow_distance"`
	AttackCooldown float64      `yaml:"attack_cooldown"` // seconds
	TurnRate       float64      `yaml:"turn_rate"`       // rad/s
}

type Vec3Config struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type ArenaConfig struct {
	HalfExtent     float64    `yaml:"half_extent"`
	ObstacleRadius float64    `yaml:"obstacle_radius"`
	ObstacleCenter Vec3Config `yaml:"obstacle_center"`
	PlayerSpawn    Vec3Config `yaml:"player_spawn"`
	EnemySpawn     Vec3Config `yaml:"enemy_spawn"`
}

type ModelConfig struct {
	// DefaultPath is loaded for both characters at startup when set
	DefaultPath string `yaml:"default_path" env:"MODEL"`
}

type LoggingConfig struct {
	Level   string `yaml:"level" env:"LOG_LEVEL"`
	LogFile string `yaml:"log_file" env:"LOG_FILE"`
}

package entity

// DefaultAttackCooldown is the pause between enemy attacks in seconds
const DefaultAttackCooldown = 2.0

// EnemyAI holds the decision state of an AI-driven character
type EnemyAI struct {
	AttackDistance float64
	FollowDistance float64
	TurnRate       float64 // max radians per second when facing the target
	Cooldown       float64 // reset value after each attack

	// CooldownRemaining decays every tick and may go negative;
	// the enemy is ready to attack whenever it is <= 0.
	CooldownRemaining float64
}

// NewEnemyAI creates AI state that is ready to attack immediately
func NewEnemyAI(attackDistance, followDistance, turnRate, cooldown float64) *EnemyAI {
	if cooldown <= 0 {
		cooldown = DefaultAttackCooldown
	}
	return &EnemyAI{
		AttackDistance: attackDistance,
		FollowDistance: followDistance,
		TurnRate:       turnRate,
		Cooldown:       cooldown,
	}
}

// Ready reports whether a new attack may start
func (e *EnemyAI) Ready() bool {
	return e.CooldownRemaining <= 0
}

// Band classifies a distance against the AI's thresholds
type Band int

const (
	BandAttack Band = iota
	BandFollow
	BandIdle
)

// BandFor returns which policy band a target distance falls in
func (e *EnemyAI) BandFor(distance float64) Band {
	switch {
	case distance < e.AttackDistance:
		return BandAttack
	case distance < e.FollowDistance:
		return BandFollow
	default:
		return BandIdle
	}
}

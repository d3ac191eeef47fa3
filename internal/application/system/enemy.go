package system

import (
	"math"

	"go.uber.org/zap"

	"github.com/younwookim/arena/internal/domain/animation"
	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/ecs"
)

// EnemySystem drives AI characters through the shared state machine
type EnemySystem struct {
	chars *CharacterSystem
	motor *MotorSystem
	log   *zap.Logger
}

// NewEnemySystem creates a new enemy system
func NewEnemySystem(chars *CharacterSystem, motor *MotorSystem, log *zap.Logger) *EnemySystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &EnemySystem{chars: chars, motor: motor, log: log}
}

// Update runs every enemy in the world against the player's current position
func (s *EnemySystem) Update(w *ecs.World, dt float64) {
	target := w.Player()
	for _, id := range w.EnemyIDs() {
		c := w.Characters[id]
		ai := w.EnemyAI[id]
		if c == nil || ai == nil {
			continue
		}
		s.UpdateEnemy(c, ai, target, dt)
	}
}

// UpdateEnemy runs one tick of the follow/attack/idle policy.
// A nil target leaves the enemy idle.
func (s *EnemySystem) UpdateEnemy(c *entity.Character, ai *entity.EnemyAI, target *entity.Character, dt float64) {
	s.chars.UpdateTimers(c, dt)
	c.Velocity = entity.Vec3{}

	if !c.Attacking {
		band := entity.BandIdle
		if target != nil {
			band = ai.BandFor(c.Position.Distance(target.Position))
		}

		switch band {
		case entity.BandAttack:
			if ai.Ready() && s.chars.StartAttack(c) {
				ai.CooldownRemaining = ai.Cooldown
				s.log.Debug("enemy attack", zap.Uint32("entity", uint32(c.ID)))
			}
		case entity.BandFollow:
			s.follow(c, ai, target.Position, dt)
			s.chars.RequestRole(c, animation.RoleWalk)
		default:
			s.chars.RequestRole(c, animation.RoleIdle)
		}
	}

	ai.CooldownRemaining -= dt

	if c.Jumping {
		s.motor.ApplyGravity(c, dt)
	}
}

func (s *EnemySystem) follow(c *entity.Character, ai *entity.EnemyAI, target entity.Vec3, dt float64) {
	c.Heading = TurnToward(c.Heading, HeadingTo(c.Position, target), ai.TurnRate*dt)
	s.motor.Advance(c, c.Tuning.MoveSpeed, 1, dt)
}

// HeadingTo returns the heading whose Forward vector points from 'from' to 'to'
// on the ground plane.
func HeadingTo(from, to entity.Vec3) float64 {
	d := to.Sub(from)
	return math.Atan2(-d.X, -d.Z)
}

// TurnToward rotates current toward desired by at most maxStep radians,
// always along the shorter arc. The result is wrapped to [-π, π).
func TurnToward(current, desired, maxStep float64) float64 {
	diff := WrapAngle(desired - current)
	if math.Abs(diff) <= maxStep {
		return WrapAngle(desired)
	}
	return WrapAngle(current + math.Copysign(maxStep, diff))
}

// WrapAngle maps any angle to [-π, π)
func WrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

package system

import (
	"math"

	"github.com/younwookim/arena/internal/domain/entity"
)

// MotorSystem integrates character kinematics against the static arena
type MotorSystem struct {
	arena *entity.Arena
}

// NewMotorSystem creates a new motor system
func NewMotorSystem(arena *entity.Arena) *MotorSystem {
	return &MotorSystem{arena: arena}
}

// Forward returns the unit ground-plane vector a heading faces.
// Heading 0 faces -Z.
func Forward(heading float64) entity.Vec3 {
	return entity.Vec3{X: -math.Sin(heading), Z: -math.Cos(heading)}
}

// Rotate turns the character. turn is +1 for left, -1 for right.
func (s *MotorSystem) Rotate(c *entity.Character, turn, dt float64) {
	if turn == 0 {
		return
	}
	c.Heading += turn * c.Tuning.RotationSpeed * dt
}

// TryMove moves the character by a planar delta if the arena allows the
// destination. A rejected move leaves the position untouched.
func (s *MotorSystem) TryMove(c *entity.Character, delta entity.Vec3) bool {
	candidate := c.Position
	candidate.X += delta.X
	candidate.Z += delta.Z

	if s.arena != nil && !s.arena.Allows(candidate) {
		return false
	}
	c.Position = candidate
	return true
}

// Advance moves the character along its heading at speed.
// dir is +1 forward, -1 backward. A blocked move leaves Velocity zero.
func (s *MotorSystem) Advance(c *entity.Character, speed, dir, dt float64) bool {
	v := Forward(c.Heading).Scale(speed * dir)
	if !s.TryMove(c, v.Scale(dt)) {
		c.Velocity = entity.Vec3{}
		return false
	}
	c.Velocity = v
	return true
}

// Speed returns the planar speed the intent asks for
func (s *MotorSystem) Speed(c *entity.Character, in Intent) float64 {
	if in.Run && c.CanRun() {
		return c.Tuning.RunSpeed
	}
	return c.Tuning.MoveSpeed
}

// Move applies one tick of player movement intent.
// It returns false when the intent asked to move but collision blocked it.
func (s *MotorSystem) Move(c *entity.Character, in Intent, dt float64) bool {
	if !in.Moving() {
		c.Velocity = entity.Vec3{}
		return true
	}
	return s.Advance(c, s.Speed(c, in), in.Direction(), dt)
}

// Launch starts a jump. It is the only way a character leaves the ground.
func (s *MotorSystem) Launch(c *entity.Character) {
	c.Jumping = true
	c.VerticalVelocity = c.Tuning.JumpSpeed
}

// ApplyGravity integrates the jump arc and reports whether the character
// landed this tick. It does nothing for grounded characters.
func (s *MotorSystem) ApplyGravity(c *entity.Character, dt float64) bool {
	if c.Grounded() {
		return false
	}

	c.VerticalVelocity -= c.Tuning.Gravity * dt
	c.Position.Y += c.VerticalVelocity * dt

	if c.Position.Y > 0 {
		return false
	}

	c.Position.Y = 0
	c.VerticalVelocity = 0
	c.Jumping = false
	return true
}

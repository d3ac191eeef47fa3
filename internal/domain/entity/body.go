package entity

import "github.com/younwookim/arena/internal/domain/animation"

// Tuning holds per-character movement constants (world units, seconds, radians)
type Tuning struct {
	MoveSpeed     float64
	RunSpeed      float64 // 0 disables running
	RotationSpeed float64
	JumpSpeed     float64 // vertical launch velocity
	Gravity       float64
}

// Body is the kinematic state of a character.
// A grounded body always has Position.Y == 0; only a jump raises it.
type Body struct {
	Position         Vec3
	Heading          float64 // yaw in radians
	Velocity         Vec3    // planar velocity of the last tick
	VerticalVelocity float64

	Jumping   bool
	Attacking bool

	// AttackTimer counts down the attack lock in seconds
	AttackTimer float64
}

// Grounded reports whether the body is standing on the ground plane
func (b *Body) Grounded() bool {
	return !b.Jumping
}

// Character is one animated, movable actor in the arena
type Character struct {
	ID   EntityID
	Kind Kind
	Body
	Tuning Tuning

	Anim      *animation.Player
	ModelName string
}

// NewCharacter creates a grounded character at pos with no animations bound
func NewCharacter(id EntityID, kind Kind, pos Vec3, heading float64, tuning Tuning) *Character {
	pos.Y = 0
	return &Character{
		ID:   id,
		Kind: kind,
		Body: Body{
			Position: pos,
			Heading:  heading,
		},
		Tuning: tuning,
		Anim:   animation.NewPlayer(animation.Set{}),
	}
}

// Role returns the animation role currently playing
func (c *Character) Role() animation.Role {
	return c.Anim.Current()
}

// CanRun reports whether the run modifier has any effect
func (c *Character) CanRun() bool {
	return c.Tuning.RunSpeed > 0 && c.Anim.Set().Has(animation.RoleRun)
}

// Package animation classifies named animation clips into canonical roles
// and plays at most one of them at a time per character.
package animation

// Role is a canonical animation category
type Role int

const (
	RoleIdle Role = iota
	RoleWalk
	RoleRun
	RoleJump
	RoleAttack

	roleCount
)

// RoleNone means no role has been played yet
const RoleNone Role = -1

// DefaultDuration is reported for roles without a bound clip
const DefaultDuration = 1.0

// Roles returns every role in classification precedence order
func Roles() []Role {
	return []Role{RoleIdle, RoleWalk, RoleRun, RoleJump, RoleAttack}
}

// String returns the string representation of the role
func (r Role) String() string {
	switch r {
	case RoleNone:
		return "NONE"
	case RoleIdle:
		return "IDLE"
	case RoleWalk:
		return "WALK"
	case RoleRun:
		return "RUN"
	case RoleJump:
		return "JUMP"
	case RoleAttack:
		return "ATTACK"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether r indexes a real role
func (r Role) Valid() bool {
	return r >= RoleIdle && r < roleCount
}

// Loops reports whether the role repeats indefinitely.
// JUMP and ATTACK play once and hold their final pose.
func (r Role) Loops() bool {
	switch r {
	case RoleIdle, RoleWalk, RoleRun:
		return true
	default:
		return false
	}
}

package system

import (
	"go.uber.org/zap"

	"github.com/younwookim/arena/internal/domain/animation"
	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

// timerEpsilon absorbs float drift when summed ticks should exactly hit a duration
const timerEpsilon = 1e-9

// CharacterSystem is the per-character state machine: it owns the attack
// and jump lifecycle and is the only place roles are requested.
type CharacterSystem struct {
	motor     *MotorSystem
	exclusive bool
	log       *zap.Logger
}

// NewCharacterSystem creates a new character system
func NewCharacterSystem(cfg *config.SimulationConfig, motor *MotorSystem, log *zap.Logger) *CharacterSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &CharacterSystem{
		motor:     motor,
		exclusive: cfg.ExclusiveActions,
		log:       log,
	}
}

// RequestRole forwards to the animation player and logs real transitions
func (s *CharacterSystem) RequestRole(c *entity.Character, role animation.Role) bool {
	from := c.Anim.Current()
	if !c.Anim.Request(role) {
		return false
	}
	s.log.Debug("role changed",
		zap.Uint32("entity", uint32(c.ID)),
		zap.Stringer("kind", c.Kind),
		zap.Stringer("from", from),
		zap.Stringer("to", role),
	)
	return true
}

// StartAttack locks the character into an attack for the attack clip's
// duration. It returns false if an attack is already running.
func (s *CharacterSystem) StartAttack(c *entity.Character) bool {
	if c.Attacking {
		return false
	}
	if s.exclusive && c.Jumping {
		return false
	}

	c.Attacking = true
	c.AttackTimer = c.Anim.DurationOf(animation.RoleAttack)
	s.RequestRole(c, animation.RoleAttack)
	return true
}

// StartJump launches the character. It returns false if already airborne.
func (s *CharacterSystem) StartJump(c *entity.Character) bool {
	if c.Jumping {
		return false
	}
	if s.exclusive && c.Attacking {
		return false
	}

	s.motor.Launch(c)
	s.RequestRole(c, animation.RoleJump)
	return true
}

// UpdateTimers counts down the attack lock and reports whether it expired
// this tick. On expiry the character reverts to IDLE.
func (s *CharacterSystem) UpdateTimers(c *entity.Character, dt float64) bool {
	if !c.Attacking {
		return false
	}

	c.AttackTimer -= dt
	if c.AttackTimer > timerEpsilon {
		return false
	}

	c.AttackTimer = 0
	c.Attacking = false
	s.RequestRole(c, animation.RoleIdle)
	return true
}

// UpdatePlayer runs one tick of the player state machine
func (s *CharacterSystem) UpdatePlayer(c *entity.Character, in Intent, dt float64) {
	s.UpdateTimers(c, dt)

	// Edge-triggered actions; the guards inside debounce held keys
	if in.Attack {
		s.StartAttack(c)
	}
	if in.Jump {
		s.StartJump(c)
	}

	// A grounded attack freezes movement. An airborne one lets the arc finish.
	if c.Attacking && c.Grounded() {
		c.Velocity = entity.Vec3{}
		return
	}

	s.motor.Rotate(c, in.Turn(), dt)
	s.motor.Move(c, in, dt)

	if c.Jumping && s.motor.ApplyGravity(c, dt) {
		s.log.Debug("landed", zap.Uint32("entity", uint32(c.ID)))
	}

	if !c.Attacking && c.Grounded() {
		s.SelectRole(c, in)
	}
}

// SelectRole picks the locomotion role for a grounded, non-attacking character
func (s *CharacterSystem) SelectRole(c *entity.Character, in Intent) {
	switch {
	case in.Moving() && in.Run && c.CanRun():
		s.RequestRole(c, animation.RoleRun)
	case in.Moving():
		s.RequestRole(c, animation.RoleWalk)
	default:
		s.RequestRole(c, animation.RoleIdle)
	}
}

// Rebind swaps in a freshly classified set and resumes the role matching the
// character's flags. Timers keep running; nothing is scheduled against the
// old set.
func (s *CharacterSystem) Rebind(c *entity.Character, set animation.Set) {
	c.Anim.Rebind(set)

	switch {
	case c.Attacking:
		s.RequestRole(c, animation.RoleAttack)
	case c.Jumping:
		s.RequestRole(c, animation.RoleJump)
	default:
		s.RequestRole(c, animation.RoleIdle)
	}

	s.log.Info("animations bound",
		zap.Uint32("entity", uint32(c.ID)),
		zap.Stringer("kind", c.Kind),
		zap.Strings("roles", roleNames(set)),
	)
}

func roleNames(set animation.Set) []string {
	bound := set.Bound()
	names := make([]string, len(bound))
	for i, r := range bound {
		names[i] = r.String()
	}
	return names
}

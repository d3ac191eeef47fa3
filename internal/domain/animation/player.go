package animation

import "math"

// LoopMode controls what an action does when its play head reaches the end
type LoopMode int

const (
	LoopRepeat LoopMode = iota
	LoopOnce            // clamp at the end and hold the last pose
)

// Action is the playback state of one bound clip
type Action struct {
	Clip    Clip
	Loop    LoopMode
	Time    float64 // play head in seconds
	Weight  float64
	Playing bool
}

func (a *Action) stop() {
	a.Playing = false
	a.Weight = 0
}

func (a *Action) advance(dt float64) {
	if !a.Playing || dt <= 0 {
		return
	}

	a.Time += dt
	d := a.Clip.Duration
	if d <= 0 {
		a.Time = 0
		return
	}

	switch a.Loop {
	case LoopRepeat:
		a.Time = math.Mod(a.Time, d)
	case LoopOnce:
		if a.Time > d {
			a.Time = d
		}
	}
}

// Player owns one character's bound clips and plays them exclusively.
// It does not own a clock; Update must be fed elapsed time once per tick.
type Player struct {
	set     Set
	actions [roleCount]*Action
	current Role
}

// NewPlayer creates a player for the given set
func NewPlayer(set Set) *Player {
	p := &Player{}
	p.Rebind(set)
	return p
}

// Rebind discards all actions and starts over with a new set.
// Current is reset to RoleNone.
func (p *Player) Rebind(set Set) {
	p.set = set
	p.actions = [roleCount]*Action{}
	for _, role := range set.Bound() {
		b, _ := set.Get(role)
		p.actions[role] = &Action{Clip: b.Clip}
	}
	p.current = RoleNone
}

// Set returns the bindings the player was built from
func (p *Player) Set() Set {
	return p.set
}

// Current returns the role currently playing
func (p *Player) Current() Role {
	return p.current
}

// Request switches playback to role. It is a no-op returning false when the
// role has no clip or is already current. Otherwise every other action is
// stopped outright and the target restarts from zero at full weight.
func (p *Player) Request(role Role) bool {
	if !p.set.Has(role) || role == p.current {
		return false
	}

	for _, a := range p.actions {
		if a != nil {
			a.stop()
		}
	}

	a := p.actions[role]
	if role.Loops() {
		a.Loop = LoopRepeat
	} else {
		a.Loop = LoopOnce
	}
	a.Time = 0
	a.Weight = 1
	a.Playing = true

	p.current = role
	return true
}

// DurationOf returns the clip length bound to role, or DefaultDuration
func (p *Player) DurationOf(role Role) float64 {
	b, ok := p.set.Get(role)
	if !ok {
		return DefaultDuration
	}
	return b.Clip.Duration
}

// Active returns the action of the current role, if any
func (p *Player) Active() *Action {
	if !p.current.Valid() {
		return nil
	}
	return p.actions[p.current]
}

// Action returns the action bound to role, if any
func (p *Player) Action(role Role) *Action {
	if !role.Valid() {
		return nil
	}
	return p.actions[role]
}

// Update advances the play head of the active action
func (p *Player) Update(dt float64) {
	if a := p.Active(); a != nil {
		a.advance(dt)
	}
}

package animation

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Clip is a named, timed animation source decoded from a model
type Clip struct {
	Name     string
	Handle   any // decoder-specific, never inspected here
	Duration float64
}

// Binding assigns one clip to one role
type Binding struct {
	Role Role
	Clip Clip
}

// Set maps roles to bindings. Not every role needs to be bound.
type Set struct {
	bindings [roleCount]*Binding
}

// roleKeywords are matched as substrings of the upper-cased clip name
var roleKeywords = [roleCount][]string{
	RoleIdle:   {"IDLE", "STOPPED"},
	RoleWalk:   {"WALK"},
	RoleRun:    {"RUN", "SPRINT"},
	RoleJump:   {"JUMP", "LEAP"},
	RoleAttack: {"ATTACK", "SHOOT", "FIRE"},
}

// Classify binds clips to roles in source order.
// A clip goes to the first role, in Roles() order, whose keywords it
// contains and which is still unbound. Clips that match nothing are dropped.
func Classify(clips []Clip) Set {
	var set Set
	upper := cases.Upper(language.Und)

	for _, clip := range clips {
		name := upper.String(clip.Name)
		for _, role := range Roles() {
			if set.Has(role) || !matches(name, roleKeywords[role]) {
				continue
			}
			set.bindings[role] = &Binding{Role: role, Clip: clip}
			break
		}
	}

	return set
}

func matches(name string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// Get returns the binding for a role
func (s Set) Get(role Role) (Binding, bool) {
	if !role.Valid() || s.bindings[role] == nil {
		return Binding{}, false
	}
	return *s.bindings[role], true
}

// Has reports whether a role has a clip
func (s Set) Has(role Role) bool {
	return role.Valid() && s.bindings[role] != nil
}

// Len returns the number of bound roles
func (s Set) Len() int {
	n := 0
	for _, b := range s.bindings {
		if b != nil {
			n++
		}
	}
	return n
}

// Bound returns the bound roles in precedence order
func (s Set) Bound() []Role {
	roles := make([]Role, 0, roleCount)
	for _, role := range Roles() {
		if s.Has(role) {
			roles = append(roles, role)
		}
	}
	return roles
}

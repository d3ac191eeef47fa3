package system

// Intent is the per-tick distillation of player input.
// Jump and Attack are edges: true only on the tick the key went down.
type Intent struct {
	Forward   bool
	Backward  bool
	TurnLeft  bool
	TurnRight bool
	Run       bool
	Jump      bool
	Attack    bool
}

// Moving reports whether planar movement is requested.
// Forward and backward together cancel out.
func (i Intent) Moving() bool {
	return i.Forward != i.Backward
}

// Direction returns +1 for forward, -1 for backward, 0 otherwise
func (i Intent) Direction() float64 {
	switch {
	case i.Forward && !i.Backward:
		return 1
	case i.Backward && !i.Forward:
		return -1
	default:
		return 0
	}
}

// Turn returns +1 for left, -1 for right, 0 otherwise
func (i Intent) Turn() float64 {
	switch {
	case i.TurnLeft && !i.TurnRight:
		return 1
	case i.TurnRight && !i.TurnLeft:
		return -1
	default:
		return 0
	}
}

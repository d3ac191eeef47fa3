package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem snapshots the keyboard and mouse once per tick
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the raw input of one tick
type InputState struct {
	Up            bool
	Down          bool
	Left          bool
	Right         bool
	Shift         bool
	JumpPressed   bool
	AttackPressed bool
	MouseClick    bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Up:            ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:          ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:          ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:         ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Shift:         ebiten.IsKeyPressed(ebiten.KeyShift),
		JumpPressed:   inpututil.IsKeyJustPressed(ebiten.KeySpace),
		AttackPressed: inpututil.IsKeyJustPressed(ebiten.KeyF),
		MouseClick:    inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
}

// MapIntent converts raw input into the intent the state machine consumes
func MapIntent(in InputState) Intent {
	return Intent{
		Forward:   in.Up,
		Backward:  in.Down,
		TurnLeft:  in.Left,
		TurnRight: in.Right,
		Run:       in.Shift,
		Jump:      in.JumpPressed,
		Attack:    in.AttackPressed || in.MouseClick,
	}
}

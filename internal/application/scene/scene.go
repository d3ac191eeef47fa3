// Package scene defines the Scene interface driven by game.Game.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the application, e.g. the arena.
// Transitions happen by returning a non-nil Scene from Update.
type Scene interface {
	// Update advances the scene by dt seconds of wall-clock time, already
	// clamped by the game loop. An error terminates the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene. It must not change simulation state.
	Draw(screen *ebiten.Image)

	// OnEnter runs when the scene becomes current, before its first Update.
	OnEnter()

	// OnExit runs when the scene is replaced or the game shuts down.
	OnExit()
}

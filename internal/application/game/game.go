// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/arena/internal/application/scene"
)

// Clock returns the current time. Tests substitute a fake.
type Clock func() time.Time

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int

	clock    Clock
	last     time.Time
	maxDelta float64
	fixedDT  float64 // > 0 overrides the clock
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
// Elapsed time per tick is measured from the wall clock and clamped to
// maxDelta seconds; maxDelta <= 0 disables the clamp.
func New(initialScene scene.Scene, screenW, screenH int, maxDelta float64) *Game {
	g := &Game{
		current:  initialScene,
		screenW:  screenW,
		screenH:  screenH,
		clock:    time.Now,
		maxDelta: maxDelta,
	}
	g.current.OnEnter()
	return g
}

// SetClock replaces the wall clock and restarts measurement.
func (g *Game) SetClock(c Clock) {
	g.clock = c
	g.last = time.Time{}
}

// SetDT fixes the delta time used for updates, bypassing the clock.
// Useful for testing or custom frame rates. 0 restores the clock.
func (g *Game) SetDT(dt float64) {
	g.fixedDT = dt
}

// delta returns the elapsed seconds since the previous tick.
// The first tick after start has no history and reports zero.
func (g *Game) delta() float64 {
	if g.fixedDT > 0 {
		return g.fixedDT
	}

	now := g.clock()
	if g.last.IsZero() {
		g.last = now
		return 0
	}
	dt := now.Sub(g.last).Seconds()
	g.last = now

	if dt < 0 {
		return 0
	}
	if g.maxDelta > 0 && dt > g.maxDelta {
		return g.maxDelta
	}
	return dt
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.delta())
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Close runs the current scene's OnExit. Call once after the loop ends.
func (g *Game) Close() {
	g.current.OnExit()
}

// Package game provides the main loop manager that handles Scene transitions.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/menuengine/internal/application/scene"
	"github.com/younwookim/menuengine/internal/application/state"
)

// Game implements ebiten.Game and manages Scene transitions.
// Frame-rate limiting is ebiten's: Update runs at the configured TPS.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	stopped bool
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH, fps int) *Game {
	if fps <= 0 {
		fps = 60
	}
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / float64(fps),
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if g.stopped {
		return ebiten.Termination
	}

	next, err := g.current.Update(g.dt)
	if err != nil {
		// The current scene owns the resources being released
		g.current.OnExit()
		g.stopped = true
		if errors.Is(err, ebiten.Termination) {
			return ebiten.Termination
		}
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

// Close exits the current scene unless the loop already stopped through
// Update. RunGame can return without a final Update, e.g. when ebiten
// closes the window itself, so callers run Close after it.
func (g *Game) Close() {
	if g.stopped {
		return
	}
	g.stopped = true
	g.current.OnExit()
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

// State reports the engine state
func (g *Game) State() state.EngineState {
	if g.stopped {
		return state.StateStopped
	}
	return g.current.State()
}

// SetDT sets the delta time passed to scenes.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

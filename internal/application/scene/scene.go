// Package scene defines the Scene interface for engine screens.
//
// The intro sequence and the menu are both scenes, so the intro is a state
// of the frame loop rather than a blocking call inside it.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/menuengine/internal/application/state"
)

// Scene represents an engine screen (intro, menu).
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by one tick.
	// dt is the nominal tick length in seconds (1/fps).
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns ebiten.Termination to stop the engine, any other error to abort it.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene, including on shutdown.
	OnExit()

	// State reports which engine state the scene represents.
	State() state.EngineState
}

// Music is the background track shared by the intro and the menu.
// *audio.Player satisfies it.
type Music interface {
	Play()
	IsPlaying() bool
	Close() error
}

// Package scene defines the Scene interface for game screens.
//
// The game loop delegates Update and Draw calls to the current scene.
package scene

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrQuit is returned from Update when the player asks to leave.
// The game loop treats it as a clean shutdown.
var ErrQuit = errors.New("quit requested")

// Scene represents a game screen
//
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update updates the scene state.
	// elapsed is the wall time since the previous frame.
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update(elapsed time.Duration) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene, including on shutdown.
	OnExit()
}

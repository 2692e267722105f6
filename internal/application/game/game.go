// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/riseai/internal/application/loop"
	"github.com/younwookim/riseai/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int

	clock   loop.Clock
	last    time.Duration
	started bool
	closed  bool
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		clock:   loop.NewSystemClock(),
	}
	g.current.OnEnter()
	return g
}

// SetClock replaces the frame clock. Useful for testing.
func (g *Game) SetClock(clock loop.Clock) {
	g.clock = clock
	g.started = false
}

// Update measures the frame time, updates the current scene and handles
// scene transitions. Implements ebiten.Game interface.
func (g *Game) Update() error {
	now := g.clock.Now()
	var elapsed time.Duration
	if g.started {
		elapsed = now - g.last
	}
	g.last = now
	g.started = true

	next, err := g.current.Update(elapsed)
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

// Close exits the current scene once. Call after ebiten.RunGame returns.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.current.OnExit()
}

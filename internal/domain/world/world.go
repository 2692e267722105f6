// Package world holds the single owner of every live entity in a game session.
package world

import "github.com/younwookim/riseai/internal/domain/entity"

// Outcome is the terminal condition of a session
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeWon
	OutcomeLost
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "Running"
	case OutcomeWon:
		return "Won"
	case OutcomeLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Bounds limits horizontal movement. A zero value disables the limit.
type Bounds struct {
	MinX, MaxX float32
}

// Enabled reports whether the bounds constrain anything
func (b Bounds) Enabled() bool {
	return b.MaxX > b.MinX
}

// World exclusively owns the player, enemy and platform storage.
// Enemies and platforms are stored by value; callers index into the slices
// rather than keeping pointers across a Reset.
type World struct {
	Player    *entity.Player
	Enemies   []entity.Enemy
	Platforms []entity.Platform
	Bounds    Bounds

	initial snapshot
}

type snapshot struct {
	player    entity.Player
	enemies   []entity.Enemy
	platforms []entity.Platform
}

// New creates a world and remembers its initial layout for Reset
func New(player *entity.Player, enemies []entity.Enemy, platforms []entity.Platform, bounds Bounds) *World {
	w := &World{
		Player:    player,
		Enemies:   enemies,
		Platforms: platforms,
		Bounds:    bounds,
	}
	w.Snapshot()
	return w
}

// Snapshot records the current state as the one Reset returns to
func (w *World) Snapshot() {
	w.initial = snapshot{
		player:    *w.Player,
		enemies:   append([]entity.Enemy(nil), w.Enemies...),
		platforms: append([]entity.Platform(nil), w.Platforms...),
	}
}

// Reset restores the state recorded by the last Snapshot
func (w *World) Reset() {
	*w.Player = w.initial.player
	w.Enemies = append(w.Enemies[:0], w.initial.enemies...)
	w.Platforms = append(w.Platforms[:0], w.initial.platforms...)
}

// ActiveEnemies returns the number of enemies still in play
func (w *World) ActiveEnemies() int {
	n := 0
	for i := range w.Enemies {
		if w.Enemies[i].Active {
			n++
		}
	}
	return n
}

// DefeatedEnemies returns the number of deactivated enemies
func (w *World) DefeatedEnemies() int {
	return len(w.Enemies) - w.ActiveEnemies()
}

// Outcome evaluates the terminal display condition.
// A defeated player takes precedence over a cleared board.
func (w *World) Outcome() Outcome {
	if w.Player.WasDefeated {
		return OutcomeLost
	}
	if len(w.Enemies) > 0 && w.ActiveEnemies() == 0 {
		return OutcomeWon
	}
	return OutcomeRunning
}

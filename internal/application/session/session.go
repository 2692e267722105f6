// Package session runs one play-through of a stage: input, fixed steps and outcome.
//
// The interactive scene and headless replays both drive a Session, so a
// recorded run goes through exactly the same sequence as the live one.
package session

import (
	"time"

	"github.com/younwookim/riseai/internal/application/loop"
	"github.com/younwookim/riseai/internal/application/state"
	"github.com/younwookim/riseai/internal/application/system"
	"github.com/younwookim/riseai/internal/domain/world"
)

// Session owns the world and the systems that advance it
type Session struct {
	World *world.World
	Sim   *system.Simulation
	Input *system.InputSystem

	acc   *loop.Accumulator
	state state.GameState

	// Event callbacks
	OnOutcome func(outcome world.Outcome)
	OnRestart func()
}

// New creates a session in the playing state
func New(w *world.World, sim *system.Simulation, acc *loop.Accumulator) *Session {
	return &Session{
		World: w,
		Sim:   sim,
		Input: system.NewInputSystem(),
		acc:   acc,
		state: state.StatePlaying,
	}
}

// State returns the current game state
func (s *Session) State() state.GameState {
	return s.state
}

// Accumulator returns the fixed-step accumulator
func (s *Session) Accumulator() *loop.Accumulator {
	return s.acc
}

// Update handles one frame of input and advances the world by elapsed.
// Returns the number of fixed steps simulated.
func (s *Session) Update(in system.InputState, elapsed time.Duration) int {
	if in.Restart {
		s.Restart()
		return 0
	}

	switch s.state {
	case state.StatePaused:
		if in.Pause {
			s.state = state.StatePlaying
			// Time spent paused is not simulated
			s.acc.Reset()
		}
		return 0
	case state.StateWon, state.StateLost:
		return 0
	}

	if in.Pause {
		s.state = state.StatePaused
		return 0
	}

	s.Input.UpdatePlayer(s.World.Player, in)
	steps := s.acc.Advance(elapsed, func(dt float32) {
		s.Sim.Tick(s.World, dt)
	})

	s.evaluate()
	return steps
}

// Restart puts the world back to its initial layout
func (s *Session) Restart() {
	s.World.Reset()
	s.acc.Reset()
	s.state = state.StatePlaying
	if s.OnRestart != nil {
		s.OnRestart()
	}
}

func (s *Session) evaluate() {
	outcome := s.World.Outcome()
	switch outcome {
	case world.OutcomeWon:
		s.state = state.StateWon
	case world.OutcomeLost:
		s.state = state.StateLost
	default:
		return
	}

	if s.OnOutcome != nil {
		s.OnOutcome(outcome)
	}
}

package loop

import "time"

// DefaultStep is one 60 Hz tick, truncated like the original 0.0166666 s constant
const DefaultStep = 16666600 * time.Nanosecond

// DefaultMaxSteps caps how many steps a single frame may run
const DefaultMaxSteps = 10

// StepFromSeconds converts a configured step length into a Duration
func StepFromSeconds(s float64) time.Duration {
	if s <= 0 {
		return DefaultStep
	}
	return time.Duration(s*float64(time.Second) + 0.5)
}

// Accumulator turns variable frame time into a whole number of fixed steps.
// Leftover time shorter than one step carries into the next frame.
type Accumulator struct {
	Step     time.Duration
	MaxSteps int

	pending time.Duration
}

// NewAccumulator creates an accumulator with the given step and catch-up cap.
// maxSteps <= 0 disables the cap.
func NewAccumulator(step time.Duration, maxSteps int) *Accumulator {
	if step <= 0 {
		step = DefaultStep
	}
	return &Accumulator{Step: step, MaxSteps: maxSteps}
}

// Pending returns the carried-over time not yet simulated
func (a *Accumulator) Pending() time.Duration {
	return a.pending
}

// Reset drops carried-over time
func (a *Accumulator) Reset() {
	a.pending = 0
}

// Advance adds elapsed to the pending time and calls fn once per whole step.
// When the cap is hit the remaining backlog is dropped.
// Returns the number of steps run.
func (a *Accumulator) Advance(elapsed time.Duration, fn func(dt float32)) int {
	if elapsed > 0 {
		a.pending += elapsed
	}

	dt := float32(a.Step.Seconds())
	steps := 0
	for a.pending >= a.Step {
		if a.MaxSteps > 0 && steps >= a.MaxSteps {
			a.pending = 0
			break
		}
		fn(dt)
		a.pending -= a.Step
		steps++
	}
	return steps
}

package loop

import "time"

// Clock reports monotonic time elapsed since some fixed origin
type Clock interface {
	Now() time.Duration
}

// SystemClock reads the monotonic wall clock
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a clock starting at zero now
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now returns the time elapsed since the clock was created
func (c *SystemClock) Now() time.Duration {
	return time.Since(c.start)
}

// ManualClock only moves when told to. Used by tests and headless replays.
type ManualClock struct {
	now time.Duration
}

// NewManualClock creates a manual clock at zero
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// Now returns the current manual time
func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward by d
func (c *ManualClock) Advance(d time.Duration) {
	c.now += d
}

package replay

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/younwookim/riseai/internal/application/loop"
	"github.com/younwookim/riseai/internal/application/session"
	"github.com/younwookim/riseai/internal/application/state"
	"github.com/younwookim/riseai/internal/application/system"
	"github.com/younwookim/riseai/internal/domain/world"
)

// Result summarises a headless replay run
type Result struct {
	Frames   int
	Steps    int
	State    state.GameState
	Outcome  world.Outcome
	Defeated int
	Player   mgl32.Vec3
}

// Simulate plays recorded frames against w without a window.
// Each frame gets exactly the recorded number of fixed steps.
func Simulate(data ReplayData, w *world.World) (Result, error) {
	rule, err := system.ParseContactRule(data.ContactRule)
	if err != nil {
		return Result{}, err
	}

	step := loop.StepFromSeconds(data.Step)
	clock := loop.NewManualClock()
	sess := session.New(w, system.NewSimulation(w.Bounds, rule), loop.NewAccumulator(step, 0))

	replayer := NewReplayer(data)
	result := Result{}

	for {
		in, steps, ok := replayer.GetInput()
		if !ok {
			break
		}

		last := clock.Now()
		clock.Advance(time.Duration(steps) * step)
		result.Steps += sess.Update(in, clock.Now()-last)
		result.Frames++
	}

	result.State = sess.State()
	result.Outcome = w.Outcome()
	result.Defeated = w.DefeatedEnemies()
	result.Player = w.Player.Position
	return result, nil
}

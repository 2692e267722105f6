package replay

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/riseai/internal/application/state"
	"github.com/younwookim/riseai/internal/application/system"
	"github.com/younwookim/riseai/internal/domain/world"
	"github.com/younwookim/riseai/internal/infrastructure/config"
)

func loadDemoWorld(t *testing.T) *world.World {
	t.Helper()
	loader := config.NewLoader("../../../cmd/game/configs")

	gameCfg, err := loader.LoadGame()
	require.NoError(t, err)
	stageCfg, err := loader.LoadStage("demo")
	require.NoError(t, err)

	w, err := system.LoadStage(gameCfg, stageCfg)
	require.NoError(t, err)
	return w
}

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version: Version,
		Stage:   "test",
		Step:    0.0166666,
		Frames: []FrameInput{
			{F: 0, L: true, S: 1},
			{F: 1, R: true, JP: true, S: 2},
			{F: 2, P: true},
			{F: 3, RS: true},
		},
	}

	replayer := NewReplayer(data)
	assert.Equal(t, 4, replayer.TotalFrames())

	input, steps, ok := replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Left)
	assert.False(t, input.Right)
	assert.Equal(t, 1, steps)

	input, steps, ok = replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Right)
	assert.True(t, input.JumpPressed)
	assert.Equal(t, 2, steps)

	input, steps, ok = replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Pause)
	assert.Equal(t, 0, steps)

	input, _, ok = replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Restart)
	assert.False(t, input.Quit)

	_, _, ok = replayer.GetInput()
	assert.False(t, ok, "no frames left")
	assert.Equal(t, 4, replayer.CurrentFrame())

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())
}

func TestEncodeDecode(t *testing.T) {
	data := CreateTestReplayData(3)
	data.Frames[1].JP = true

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, data))
	assert.Contains(t, buf.String(), `"jp": true`)
	assert.NotContains(t, buf.String(), `"l":`, "false flags are omitted")

	decoded, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, data.Frames, decoded.Frames)
	assert.Equal(t, 3, decoded.TotalSteps())
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode(strings.NewReader("not json"))
	assert.Error(t, err)

	_, err = Decode(strings.NewReader(`{"version":"2.0","frames":[]}`))
	assert.Error(t, err, "missing step length")
}

func TestLoadReplay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, Encode(f, CreateTestReplayData(5)))
	require.NoError(t, f.Close())

	data, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Len(t, data.Frames, 5)

	_, err = LoadReplay(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestSimulate_IdlePlayer(t *testing.T) {
	result, err := Simulate(CreateTestReplayData(600), loadDemoWorld(t))
	require.NoError(t, err)

	assert.Equal(t, 600, result.Frames)
	assert.Equal(t, 600, result.Steps)
	assert.Equal(t, state.StatePlaying, result.State)
	assert.Equal(t, world.OutcomeRunning, result.Outcome)
	assert.Equal(t, 2, result.Defeated)
	assert.InDelta(t, -2.35, result.Player.Y(), 1e-3)
}

func TestSimulate_Deterministic(t *testing.T) {
	data := CreateTestReplayData(300)
	for i := 0; i < 120; i++ {
		data.Frames[i].R = true
	}
	data.Frames[10].JP = true
	data.Frames[50].S = 3

	first, err := Simulate(data, loadDemoWorld(t))
	require.NoError(t, err)
	second, err := Simulate(data, loadDemoWorld(t))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, data.TotalSteps(), first.Steps)
}

func TestSimulate_PauseSkipsSteps(t *testing.T) {
	data := CreateTestReplayData(10)
	data.Frames[2].P = true
	data.Frames[6].P = true

	result, err := Simulate(data, loadDemoWorld(t))
	require.NoError(t, err)

	// Frames 2..6 run no steps: two toggles plus three paused frames
	assert.Equal(t, 5, result.Steps)
	assert.Equal(t, state.StatePlaying, result.State)
}

func TestSimulate_UnknownRule(t *testing.T) {
	data := CreateTestReplayData(1)
	data.ContactRule = "tickle"

	_, err := Simulate(data, loadDemoWorld(t))
	assert.Error(t, err)
}

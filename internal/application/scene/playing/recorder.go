package playing

import (
	"fmt"
	"os"
	"time"

	"github.com/younwookim/riseai/internal/application/replay"
	"github.com/younwookim/riseai/internal/application/system"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      replay.ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder for a stage, contact rule and step length
func NewRecorder(stage, contactRule string, step float64) *Recorder {
	return &Recorder{
		data: replay.ReplayData{
			Version:     replay.Version,
			Stage:       stage,
			ContactRule: contactRule,
			Step:        step,
			StartTime:   time.Now().Format(time.RFC3339),
			Frames:      make([]replay.FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
		frame:     0,
	}
}

// RecordFrame records a single frame's input and the steps it produced
func (r *Recorder) RecordFrame(input system.InputState, steps int) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, replay.FrameInput{
		F:  r.frame,
		L:  input.Left,
		R:  input.Right,
		JP: input.JumpPressed,
		P:  input.Pause,
		RS: input.Restart,
		S:  steps,
	})
	r.frame++
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return replay.Encode(file, r.data)
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the replay data
func (r *Recorder) Data() replay.ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}

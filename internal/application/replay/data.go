package replay

// Version of the replay file format
const Version = "2.0"

// FrameInput records input state and simulated steps for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	JP bool `json:"jp,omitempty"` // JumpPressed
	P  bool `json:"p,omitempty"`  // Pause toggle
	RS bool `json:"rs,omitempty"` // Restart
	S  int  `json:"s"`            // Fixed steps simulated this frame
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version     string       `json:"version"`
	Stage       string       `json:"stage"`
	ContactRule string       `json:"contactRule"`
	Step        float64      `json:"step"` // seconds per fixed step
	StartTime   string       `json:"startTime"`
	Frames      []FrameInput `json:"frames"`
}

// TotalSteps returns the number of fixed steps across all frames
func (d ReplayData) TotalSteps() int {
	total := 0
	for _, f := range d.Frames {
		total += f.S
	}
	return total
}

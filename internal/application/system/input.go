package system

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/riseai/internal/domain/entity"
)

// InputSystem handles player input
type InputSystem struct {
	// OnJump fires when a jump is accepted (fire-and-forget audio cue)
	OnJump func()
}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the current input state
type InputState struct {
	Left        bool
	Right       bool
	JumpPressed bool
	Pause       bool
	Restart     bool
	Quit        bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:        ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:       ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		JumpPressed: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Pause:       inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Restart:     inpututil.IsKeyJustPressed(ebiten.KeyR),
		Quit:        inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}
}

// UpdatePlayer turns one frame of input into the player's movement intent.
// Movement is rebuilt from scratch every cycle.
func (s *InputSystem) UpdatePlayer(player *entity.Player, input InputState) {
	player.Movement = mgl32.Vec3{}

	// Jump only from solid ground
	if input.JumpPressed && player.Grounded() {
		player.Jump = true
		if s.OnJump != nil {
			s.OnJump()
		}
	}

	if input.Left {
		player.Movement[0] = -1
	} else if input.Right {
		player.Movement[0] = 1
	}

	player.ClampMovement()
}

package entity

import "github.com/go-gl/mathgl/mgl32"

// DefaultSize is the width and height of a freshly constructed entity (world units)
const DefaultSize = 1

// Body is the kinematic and collision state shared by every entity kind.
// All vectors are in world units; only X and Y are used by the simulation.
type Body struct {
	Position     mgl32.Vec3
	Movement     mgl32.Vec3 // input intent, length <= 1
	Velocity     mgl32.Vec3
	Acceleration mgl32.Vec3
	Speed        float32

	Width  float32
	Height float32

	// Inactive bodies are skipped by update, collision and rendering
	Active bool

	CollidedTop    bool
	CollidedBottom bool
	CollidedLeft   bool
	CollidedRight  bool

	// Render state
	Texture string
	Model   mgl32.Mat4
}

func newBody(x, y float32, texture string) Body {
	b := Body{
		Position: mgl32.Vec3{x, y, 0},
		Width:    DefaultSize,
		Height:   DefaultSize,
		Active:   true,
		Texture:  texture,
	}
	b.UpdateModel()
	return b
}

// HalfWidth returns half the body width
func (b *Body) HalfWidth() float32 {
	return b.Width * 0.5
}

// HalfHeight returns half the body height
func (b *Body) HalfHeight() float32 {
	return b.Height * 0.5
}

// ClearCollisionFlags resets the four contact flags before a new tick
func (b *Body) ClearCollisionFlags() {
	b.CollidedTop = false
	b.CollidedBottom = false
	b.CollidedLeft = false
	b.CollidedRight = false
}

// ClampMovement normalizes the movement intent when its length exceeds 1
func (b *Body) ClampMovement() {
	if b.Movement.Len() > 1 {
		b.Movement = b.Movement.Normalize()
	}
}

// Grounded reports whether the body rested on something during the last tick
func (b *Body) Grounded() bool {
	return b.CollidedBottom
}

// UpdateModel rebuilds the model matrix: translate to position, then scale to size
func (b *Body) UpdateModel() {
	b.Model = mgl32.Translate3D(b.Position.X(), b.Position.Y(), 0).
		Mul4(mgl32.Scale3D(b.Width, b.Height, 1))
}

// Player is the entity driven by keyboard input
type Player struct {
	Body

	Jump        bool // set by input, consumed by the next update
	JumpPower   float32
	WasDefeated bool
}

// NewPlayer creates an active player at world position (x, y)
func NewPlayer(x, y float32, texture string) *Player {
	return &Player{Body: newBody(x, y, texture)}
}

// Platform is a static collision target
type Platform struct {
	Body
}

// NewPlatform creates an active platform at world position (x, y)
func NewPlatform(x, y float32, texture string) Platform {
	return Platform{Body: newBody(x, y, texture)}
}

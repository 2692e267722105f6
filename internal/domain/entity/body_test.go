package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayer(t *testing.T) {
	player := NewPlayer(-4, -1, "player")

	require.NotNil(t, player)
	assert.Equal(t, mgl32.Vec3{-4, -1, 0}, player.Position)
	assert.True(t, player.Active)
	assert.False(t, player.WasDefeated)
	assert.Equal(t, float32(1), player.Width)
	assert.Equal(t, float32(1), player.Height)
}

func TestNewPlatform(t *testing.T) {
	platform := NewPlatform(-4.5, -3.25, "tile")

	assert.True(t, platform.Active)
	assert.Equal(t, mgl32.Vec3{}, platform.Velocity)
	assert.Equal(t, mgl32.Vec3{}, platform.Acceleration)
}

func TestBody_ClearCollisionFlags(t *testing.T) {
	b := newBody(0, 0, "")
	b.CollidedTop = true
	b.CollidedBottom = true
	b.CollidedLeft = true
	b.CollidedRight = true

	b.ClearCollisionFlags()

	assert.False(t, b.CollidedTop)
	assert.False(t, b.CollidedBottom)
	assert.False(t, b.CollidedLeft)
	assert.False(t, b.CollidedRight)
}

func TestBody_ClampMovement(t *testing.T) {
	tests := []struct {
		name    string
		in      mgl32.Vec3
		wantLen float32
	}{
		{"zero stays zero", mgl32.Vec3{}, 0},
		{"unit stays unit", mgl32.Vec3{-1, 0, 0}, 1},
		{"short stays short", mgl32.Vec3{0.5, 0, 0}, 0.5},
		{"diagonal is clamped", mgl32.Vec3{1, 1, 0}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBody(0, 0, "")
			b.Movement = tt.in

			b.ClampMovement()

			assert.InDelta(t, tt.wantLen, b.Movement.Len(), 1e-6)
		})
	}
}

func TestBody_UpdateModel(t *testing.T) {
	b := newBody(0, 0, "")
	b.Position = mgl32.Vec3{1.5, -2, 0}
	b.Width = 0.5
	b.Height = 2

	b.UpdateModel()

	// Unit quad corner (0.5, 0.5) lands on the top-right corner of the body
	corner := b.Model.Mul4x1(mgl32.Vec4{0.5, 0.5, 0, 1})
	assert.InDelta(t, 1.75, corner.X(), 1e-6)
	assert.InDelta(t, -1.0, corner.Y(), 1e-6)
}

func TestBody_Grounded(t *testing.T) {
	b := newBody(0, 0, "")
	assert.False(t, b.Grounded())

	b.CollidedBottom = true
	assert.True(t, b.Grounded())

	b.ClearCollisionFlags()
	assert.False(t, b.Grounded())
}

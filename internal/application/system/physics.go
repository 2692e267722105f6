package system

import (
	"github.com/younwookim/riseai/internal/domain/entity"
	"github.com/younwookim/riseai/internal/domain/world"
)

// PhysicsSystem advances entity kinematics one fixed step at a time
// and resolves collisions against platforms, Y axis first.
type PhysicsSystem struct {
	bounds world.Bounds
	ai     *AISystem
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(bounds world.Bounds, ai *AISystem) *PhysicsSystem {
	if ai == nil {
		ai = NewAISystem()
	}
	return &PhysicsSystem{
		bounds: bounds,
		ai:     ai,
	}
}

// UpdatePlayer advances the player by dt
func (s *PhysicsSystem) UpdatePlayer(player *entity.Player, dt float32, platforms []entity.Platform) {
	if !player.Active {
		return
	}
	s.step(&player.Body, &player.Jump, player.JumpPower, dt, platforms)
}

// UpdateEnemy runs AI dispatch for the enemy and then advances it by dt
func (s *PhysicsSystem) UpdateEnemy(enemy *entity.Enemy, player *entity.Player, dt float32, platforms []entity.Platform) {
	if !enemy.Active {
		return
	}
	s.ai.Update(enemy, player)
	s.step(&enemy.Body, nil, 0, dt, platforms)
}

// UpdatePlatform performs the resting update of a platform: no targets, no time
func (s *PhysicsSystem) UpdatePlatform(platform *entity.Platform) {
	if !platform.Active {
		return
	}
	s.step(&platform.Body, nil, 0, 0, nil)
}

// SettlePlatforms runs the initial resting update on every platform
func (s *PhysicsSystem) SettlePlatforms(platforms []entity.Platform) {
	for i := range platforms {
		s.UpdatePlatform(&platforms[i])
	}
}

// step integrates one body. jump may be nil for bodies that cannot jump.
func (s *PhysicsSystem) step(b *entity.Body, jump *bool, jumpPower, dt float32, platforms []entity.Platform) {
	b.ClearCollisionFlags()

	b.Velocity = b.Velocity.Add(b.Acceleration.Mul(dt))
	b.Velocity[0] = b.Movement.X() * b.Speed

	if jump != nil && *jump {
		*jump = false
		b.Velocity[1] = jumpPower
	}

	b.Position[1] += b.Velocity.Y() * dt
	ResolveY(b, platforms)

	b.Position[0] += b.Velocity.X() * dt
	ResolveX(b, platforms)

	s.clampToBounds(b)

	b.UpdateModel()
}

// clampToBounds keeps moving bodies inside the horizontal world bounds,
// reporting the edge as a wall contact
func (s *PhysicsSystem) clampToBounds(b *entity.Body) {
	if !s.bounds.Enabled() {
		return
	}

	hw := b.HalfWidth()
	if b.Position.X()-hw < s.bounds.MinX {
		b.Position[0] = s.bounds.MinX + hw
		b.Velocity[0] = 0
		b.CollidedLeft = true
	} else if b.Position.X()+hw > s.bounds.MaxX {
		b.Position[0] = s.bounds.MaxX - hw
		b.Velocity[0] = 0
		b.CollidedRight = true
	}
}

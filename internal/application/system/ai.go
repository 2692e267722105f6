package system

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/younwookim/riseai/internal/domain/entity"
)

// DefaultDetectRange is the wake-up distance used when a WAITANDGO enemy has none configured
const DefaultDetectRange = 3.0

// AISystem selects each enemy's horizontal movement intent before physics runs
type AISystem struct{}

// NewAISystem creates a new AI system
func NewAISystem() *AISystem {
	return &AISystem{}
}

// Update dispatches on the enemy's AI type.
// Collision flags read here are the ones left by the previous tick.
func (s *AISystem) Update(enemy *entity.Enemy, player *entity.Player) {
	switch enemy.AIType {
	case entity.AIWalker:
		s.updateWalker(enemy)
	case entity.AIWaitAndGo:
		s.updateWaitAndGo(enemy, player)
	}
}

// updateWalker keeps walking and turns around after hitting a wall
func (s *AISystem) updateWalker(enemy *entity.Enemy) {
	dir := enemy.Direction()
	if dir == 0 {
		dir = -1
	}

	turned := false
	if dir > 0 && enemy.CollidedRight {
		dir = -1
		turned = true
	} else if dir < 0 && enemy.CollidedLeft {
		dir = 1
		turned = true
	}

	enemy.Movement = mgl32.Vec3{dir, 0, 0}

	// Attackers hop when they turn around on solid ground
	if turned && enemy.AIState == entity.AIAttacking && enemy.AttackJump > 0 && enemy.Grounded() {
		enemy.Velocity[1] = enemy.AttackJump
	}
}

// updateWaitAndGo idles until the player comes within range, then walks
func (s *AISystem) updateWaitAndGo(enemy *entity.Enemy, player *entity.Player) {
	switch enemy.AIState {
	case entity.AIIdle:
		enemy.Movement = mgl32.Vec3{}
		if player == nil || !player.Active {
			return
		}

		rng := enemy.DetectRange
		if rng <= 0 {
			rng = DefaultDetectRange
		}

		dx := player.Position.X() - enemy.Position.X()
		if absFloat(dx) < rng {
			enemy.AIState = entity.AIWalking
			dir := float32(-1)
			if dx > 0 {
				dir = 1
			}
			enemy.Movement = mgl32.Vec3{dir, 0, 0}
		}
	default:
		s.updateWalker(enemy)
	}
}

package entity

// Enemy is an AI-controlled entity
type Enemy struct {
	Body

	ID      EntityID
	AIType  AIType
	AIState AIState

	// Horizontal distance at which a WAITANDGO enemy wakes up
	DetectRange float32
	// Upward velocity an ATTACKING walker uses when it turns around (0 = never hops)
	AttackJump float32
}

// NewEnemy creates an active enemy at world position (x, y)
func NewEnemy(id EntityID, x, y float32, texture string, aiType AIType, aiState AIState) Enemy {
	return Enemy{
		Body:    newBody(x, y, texture),
		ID:      id,
		AIType:  aiType,
		AIState: aiState,
	}
}

// Defeat removes the enemy from play without removing it from the world
func (e *Enemy) Defeat() {
	e.Active = false
}

// Direction returns -1, 0 or 1 for the current horizontal intent
func (e *Enemy) Direction() float32 {
	switch {
	case e.Movement.X() > 0:
		return 1
	case e.Movement.X() < 0:
		return -1
	default:
		return 0
	}
}

package entity

import "fmt"

// EntityID is the index-based identifier of an entity inside its World slice
type EntityID uint32

// AIType selects the movement rule an enemy follows
type AIType int

const (
	AIWalker AIType = iota
	AIWaitAndGo
)

// String returns the config name of the AI type
func (t AIType) String() string {
	switch t {
	case AIWalker:
		return "walker"
	case AIWaitAndGo:
		return "waitandgo"
	default:
		return "unknown"
	}
}

// ParseAIType converts a config string into an AIType
func ParseAIType(s string) (AIType, error) {
	switch s {
	case "walker":
		return AIWalker, nil
	case "waitandgo", "waitAndGo", "wait-and-go":
		return AIWaitAndGo, nil
	default:
		return AIWalker, fmt.Errorf("unknown ai type %q", s)
	}
}

// AIState is the current behavior mode of an enemy
type AIState int

const (
	AIIdle AIState = iota
	AIWalking
	AIAttacking
)

// String returns the config name of the AI state
func (s AIState) String() string {
	switch s {
	case AIIdle:
		return "idle"
	case AIWalking:
		return "walking"
	case AIAttacking:
		return "attacking"
	default:
		return "unknown"
	}
}

// ParseAIState converts a config string into an AIState
func ParseAIState(s string) (AIState, error) {
	switch s {
	case "idle":
		return AIIdle, nil
	case "walking":
		return AIWalking, nil
	case "attacking":
		return AIAttacking, nil
	default:
		return AIIdle, fmt.Errorf("unknown ai state %q", s)
	}
}

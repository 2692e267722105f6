package system

import (
	"fmt"

	"github.com/younwookim/riseai/internal/domain/entity"
)

// ContactRule decides who loses when an enemy touches the player
type ContactRule int

const (
	// ContactDefeatEnemy deactivates the enemy; the player is never defeated
	ContactDefeatEnemy ContactRule = iota
	// ContactDefeatPlayer marks the player defeated
	ContactDefeatPlayer
	// ContactStomp defeats the enemy when the player falls onto it, the player otherwise
	ContactStomp
)

// String returns the config name of the rule
func (r ContactRule) String() string {
	switch r {
	case ContactDefeatEnemy:
		return "defeat-enemy"
	case ContactDefeatPlayer:
		return "defeat-player"
	case ContactStomp:
		return "stomp"
	default:
		return "unknown"
	}
}

// ParseContactRule converts a config string into a ContactRule
func ParseContactRule(s string) (ContactRule, error) {
	switch s {
	case "", "defeat-enemy":
		return ContactDefeatEnemy, nil
	case "defeat-player":
		return ContactDefeatPlayer, nil
	case "stomp":
		return ContactStomp, nil
	default:
		return ContactDefeatEnemy, fmt.Errorf("unknown contact rule %q", s)
	}
}

// ContactSystem checks enemy-vs-player overlap after every entity has moved
type ContactSystem struct {
	rule ContactRule

	// Event callbacks
	OnEnemyDefeated  func(enemy *entity.Enemy)
	OnPlayerDefeated func(by *entity.Enemy)
}

// NewContactSystem creates a new contact system
func NewContactSystem(rule ContactRule) *ContactSystem {
	return &ContactSystem{rule: rule}
}

// Rule returns the active contact rule
func (s *ContactSystem) Rule() ContactRule {
	return s.rule
}

// Update resolves every enemy currently touching the player
func (s *ContactSystem) Update(player *entity.Player, enemies []entity.Enemy) {
	for i := range enemies {
		if player.WasDefeated {
			return
		}

		enemy := &enemies[i]
		if !Overlaps(&player.Body, &enemy.Body) {
			continue
		}

		switch s.rule {
		case ContactDefeatEnemy:
			s.defeatEnemy(enemy)
		case ContactDefeatPlayer:
			s.defeatPlayer(player, enemy)
		case ContactStomp:
			if isStomp(player, enemy) {
				s.defeatEnemy(enemy)
				// Bounce off the defeated enemy
				player.Velocity[1] = player.JumpPower * 0.5
			} else {
				s.defeatPlayer(player, enemy)
			}
		}
	}
}

// isStomp reports whether the player is coming down onto the enemy from above
func isStomp(player *entity.Player, enemy *entity.Enemy) bool {
	return player.Position.Y() > enemy.Position.Y() && player.Velocity.Y() <= 0 && !player.Grounded()
}

func (s *ContactSystem) defeatEnemy(enemy *entity.Enemy) {
	enemy.Defeat()
	if s.OnEnemyDefeated != nil {
		s.OnEnemyDefeated(enemy)
	}
}

func (s *ContactSystem) defeatPlayer(player *entity.Player, by *entity.Enemy) {
	player.WasDefeated = true
	if s.OnPlayerDefeated != nil {
		s.OnPlayerDefeated(by)
	}
}

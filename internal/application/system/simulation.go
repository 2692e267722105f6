package system

import "github.com/younwookim/riseai/internal/domain/world"

// Simulation runs one fixed step over a whole world:
// player first, then each enemy in slice order, then enemy-player contacts
type Simulation struct {
	Physics *PhysicsSystem
	AI      *AISystem
	Contact *ContactSystem
}

// NewSimulation wires the physics, AI and contact systems for a world
func NewSimulation(bounds world.Bounds, rule ContactRule) *Simulation {
	ai := NewAISystem()
	return &Simulation{
		Physics: NewPhysicsSystem(bounds, ai),
		AI:      ai,
		Contact: NewContactSystem(rule),
	}
}

// Tick advances every active entity by dt
func (s *Simulation) Tick(w *world.World, dt float32) {
	s.Physics.UpdatePlayer(w.Player, dt, w.Platforms)
	for i := range w.Enemies {
		s.Physics.UpdateEnemy(&w.Enemies[i], w.Player, dt, w.Platforms)
	}
	s.Contact.Update(w.Player, w.Enemies)
}

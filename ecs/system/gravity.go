package system

import (
	"github.com/milk9111/orbitsim/ecs"
	"github.com/milk9111/orbitsim/ecs/entity"
	"github.com/milk9111/orbitsim/physics"
)

// GravitySystem advances every body by one timestep under mutual gravity.
type GravitySystem struct {
	Field physics.Field
	// Timestep is simulated seconds per tick.
	Timestep float64
}

func NewGravitySystem(field physics.Field, timestep float64) *GravitySystem {
	return &GravitySystem{Field: field, Timestep: timestep}
}

func (s *GravitySystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ents, particles := entity.Bodies(w)
	if len(particles) == 0 {
		return
	}
	s.Field.Step(particles, s.Timestep)
	entity.WriteMotion(w, ents, particles)
}

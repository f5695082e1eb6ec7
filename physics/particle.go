package physics

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/orbitsim/ecs/component"
)

// Particle is a point-mass snapshot of a simulated body.
type Particle struct {
	Body     component.Body
	Position cp.Vector
	Velocity cp.Vector
}

func (p Particle) Mass() float64 {
	return p.Body.Mass
}

func (p Particle) Radius() float64 {
	return p.Body.Radius
}

// Momentum returns mass times velocity.
func (p Particle) Momentum() cp.Vector {
	return p.Velocity.Mult(p.Body.Mass)
}

// Positions returns the positions of particles in order.
func Positions(particles []Particle) []cp.Vector {
	out := make([]cp.Vector, len(particles))
	for i, p := range particles {
		out[i] = p.Position
	}
	return out
}

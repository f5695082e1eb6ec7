package physics

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/orbitsim/common"
)

// DefaultMinSeparation floors the distance used in the inverse-square law.
const DefaultMinSeparation = 1e-3

// Field computes pairwise Newtonian gravity.
type Field struct {
	MinSeparation float64
}

func NewField(minSeparation float64) Field {
	if minSeparation <= 0 {
		minSeparation = DefaultMinSeparation
	}
	return Field{MinSeparation: minSeparation}
}

// Force returns the gravitational force exerted on a by b.
// Coincident particles exert no force on each other.
func (f Field) Force(a, b Particle) cp.Vector {
	if a.Position == b.Position {
		return cp.Vector{}
	}
	d := common.Distance(a.Position, b.Position)
	if d < f.MinSeparation {
		d = f.MinSeparation
	}
	magnitude := common.G * a.Body.Mass * b.Body.Mass / (d * d)
	return common.ToCartesian(magnitude, common.Bearing(a.Position, b.Position))
}

// NetForce sums the forces every particle in others exerts on p.
func (f Field) NetForce(p Particle, others []Particle) cp.Vector {
	forces := make([]cp.Vector, 0, len(others))
	for _, o := range others {
		forces = append(forces, f.Force(p, o))
	}
	return common.Resolve(forces...)
}

// Step advances particles by dt seconds in place. All velocities are updated
// from pre-step positions before any position moves.
func (f Field) Step(particles []Particle, dt float64) {
	if len(particles) == 0 || dt == 0 {
		return
	}

	deltas := make([]cp.Vector, len(particles))
	for i, p := range particles {
		if p.Body.Mass <= 0 {
			continue
		}
		var net cp.Vector
		for j, o := range particles {
			if i == j {
				continue
			}
			net = net.Add(f.Force(p, o))
		}
		deltas[i] = net.Mult(dt / p.Body.Mass)
	}

	for i := range particles {
		particles[i].Velocity = particles[i].Velocity.Add(deltas[i])
	}
	for i := range particles {
		particles[i].Position = particles[i].Position.Add(particles[i].Velocity.Mult(dt))
	}
}

// GravitationalForce uses the default separation floor.
func GravitationalForce(a, b Particle) cp.Vector {
	return NewField(DefaultMinSeparation).Force(a, b)
}

func NetForce(p Particle, others []Particle) cp.Vector {
	return NewField(DefaultMinSeparation).NetForce(p, others)
}

func Step(particles []Particle, dt float64) {
	NewField(DefaultMinSeparation).Step(particles, dt)
}

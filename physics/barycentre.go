package physics

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/orbitsim/common"
)

const (
	// EarthRadius is the fallback scale reference for an empty scene.
	EarthRadius = 6.37e6

	DefaultSpreadFactor = 3.0
	DefaultSingleFactor = 10.0
)

// Barycentre returns the mass-weighted centroid of particles, or the origin
// when there is nothing to weigh.
func Barycentre(particles []Particle) cp.Vector {
	var weighted cp.Vector
	var total float64
	for _, p := range particles {
		weighted = weighted.Add(p.Position.Mult(p.Body.Mass))
		total += p.Body.Mass
	}
	if total == 0 {
		return cp.Vector{}
	}
	return divide(weighted, total)
}

// ScaleFactors tunes AppropriateSpan.
type ScaleFactors struct {
	Spread float64
	Single float64
}

func DefaultScaleFactors() ScaleFactors {
	return ScaleFactors{Spread: DefaultSpreadFactor, Single: DefaultSingleFactor}
}

// AppropriateSpan returns the width in metres the viewport should cover to
// frame particles.
func (s ScaleFactors) AppropriateSpan(particles []Particle) float64 {
	switch len(particles) {
	case 0:
		return s.Single * EarthRadius
	case 1:
		return s.Single * particles[0].Body.Radius
	}
	return s.Spread * common.GreatestCardinalSeparation(Positions(particles))
}

// AppropriateScale returns metres per pixel for a square viewport of the
// given size.
func AppropriateScale(particles []Particle, viewportSize int) float64 {
	return DefaultScaleFactors().Scale(particles, viewportSize)
}

func (s ScaleFactors) Scale(particles []Particle, viewportSize int) float64 {
	if viewportSize <= 0 {
		viewportSize = 1
	}
	span := s.AppropriateSpan(particles)
	if span <= 0 {
		// coincident bodies or a zero-radius single body
		span = s.Single * EarthRadius
	}
	return span / float64(viewportSize)
}

package entity

import (
	"fmt"

	"github.com/milk9111/orbitsim/ecs"
	"github.com/milk9111/orbitsim/ecs/component"
	"github.com/milk9111/orbitsim/physics"
)

// NewBody creates an entity carrying the particle's body, position and
// velocity. It joins the end of the world's iteration order.
func NewBody(w *ecs.World, p physics.Particle) (ecs.Entity, error) {
	if p.Body.Mass <= 0 {
		return 0, fmt.Errorf("body %q: non-positive mass %v", p.Body.Name, p.Body.Mass)
	}

	body := ecs.CreateEntity(w)
	if err := ecs.Add(w, body, component.BodyComponent.Kind(), &p.Body); err != nil {
		return 0, fmt.Errorf("body %q: %w", p.Body.Name, err)
	}
	if err := ecs.Add(w, body, component.TransformComponent.Kind(), &component.Transform{Position: p.Position}); err != nil {
		return 0, fmt.Errorf("body %q: %w", p.Body.Name, err)
	}
	if err := ecs.Add(w, body, component.VelocityComponent.Kind(), &component.Velocity{Vector: p.Velocity}); err != nil {
		return 0, fmt.Errorf("body %q: %w", p.Body.Name, err)
	}
	return body, nil
}

// Particle reads an entity back as a particle snapshot.
func Particle(w *ecs.World, e ecs.Entity) (physics.Particle, bool) {
	body, ok := ecs.Get(w, e, component.BodyComponent.Kind())
	if !ok {
		return physics.Particle{}, false
	}
	transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return physics.Particle{}, false
	}
	velocity, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
	if !ok {
		return physics.Particle{}, false
	}
	return physics.Particle{Body: *body, Position: transform.Position, Velocity: velocity.Vector}, true
}

// Bodies returns every simulated body in creation order alongside its
// particle snapshot.
func Bodies(w *ecs.World) ([]ecs.Entity, []physics.Particle) {
	var ents []ecs.Entity
	var particles []physics.Particle
	ecs.ForEach3(w,
		component.BodyComponent.Kind(),
		component.TransformComponent.Kind(),
		component.VelocityComponent.Kind(),
		func(e ecs.Entity, body *component.Body, t *component.Transform, v *component.Velocity) {
			ents = append(ents, e)
			particles = append(particles, physics.Particle{Body: *body, Position: t.Position, Velocity: v.Vector})
		})
	return ents, particles
}

// WriteMotion stores the particles' positions and velocities back onto their
// entities. ents and particles must be index-aligned.
func WriteMotion(w *ecs.World, ents []ecs.Entity, particles []physics.Particle) {
	for i, e := range ents {
		if i >= len(particles) {
			return
		}
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			t.Position = particles[i].Position
		}
		if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			v.Vector = particles[i].Velocity
		}
	}
}

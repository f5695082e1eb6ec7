package system

import (
	"fmt"

	"github.com/milk9111/orbitsim/ecs"
	"github.com/milk9111/orbitsim/ecs/entity"
	ecssystem "github.com/milk9111/orbitsim/ecs/system"
	"github.com/milk9111/orbitsim/obj"
	"github.com/milk9111/orbitsim/physics"
	"github.com/milk9111/orbitsim/prefabs"
)

// World owns the ECS world seeded from one scenario, the camera framing it,
// and the systems that advance it.
type World struct {
	ECS      *ecs.World
	Camera   *obj.Camera
	Scenario *prefabs.Scenario

	Gravity   *ecssystem.GravitySystem
	Collision *ecssystem.CollisionSystem
	Follow    *ecssystem.CameraSystem

	scale       physics.ScaleFactors
	magnifierBy float64
}

// NewWorld creates a world and loads the scenario into it.
func NewWorld(sc *prefabs.Scenario, cfg prefabs.ConfigSpec) (*World, error) {
	w := &World{}
	if err := w.Load(sc, cfg); err != nil {
		return nil, err
	}
	return w, nil
}

// Load replaces the world's contents with the scenario's bodies and frames
// them with a fresh camera.
func (w *World) Load(sc *prefabs.Scenario, cfg prefabs.ConfigSpec) error {
	if w == nil {
		return fmt.Errorf("world is nil")
	}
	if sc == nil {
		return fmt.Errorf("world: scenario is nil")
	}
	if cfg.TickRate <= 0 {
		return fmt.Errorf("world: tick rate must be positive, got %d", cfg.TickRate)
	}

	world := ecs.NewWorld()
	for i, p := range sc.Particles {
		if _, err := entity.NewBody(world, p); err != nil {
			return fmt.Errorf("world: seed body %d: %w", i, err)
		}
	}

	cam := obj.NewCamera(cfg.ViewportSize, cfg.ZoomIncrement)

	w.ECS = world
	w.Camera = cam
	w.Scenario = sc
	w.scale = physics.ScaleFactors{Spread: cfg.SpreadFactor, Single: cfg.SingleFactor}
	if w.scale.Spread <= 0 || w.scale.Single <= 0 {
		w.scale = physics.DefaultScaleFactors()
	}
	w.magnifierBy = cfg.MagnifierReduction

	// gravity, then collisions, then the camera reads the settled positions
	w.Gravity = ecssystem.NewGravitySystem(physics.NewField(cfg.MinSeparation), sc.TimeAcceleration/float64(cfg.TickRate))
	w.Collision = ecssystem.NewCollisionSystem()
	w.Follow = ecssystem.NewCameraSystem(cam)
	world.AddSystem(w.Gravity)
	world.AddSystem(w.Collision)
	world.AddSystem(w.Follow)

	_, particles := entity.Bodies(world)
	cam.SnapTo(physics.Barycentre(particles))
	w.ResetZoom()
	return nil
}

// Step runs one tick of every system.
func (w *World) Step() {
	if w == nil || w.ECS == nil {
		return
	}
	w.ECS.Update()
}

// Bodies returns the live bodies in iteration order.
func (w *World) Bodies() ([]ecs.Entity, []physics.Particle) {
	if w == nil {
		return nil, nil
	}
	return entity.Bodies(w.ECS)
}

// ResetZoom rescales the camera so every body fits the viewport.
func (w *World) ResetZoom() {
	if w == nil || w.Camera == nil {
		return
	}
	_, particles := w.Bodies()
	w.Camera.SetScale(w.scale.Scale(particles, w.Camera.ViewportSize))
}

// TimeAcceleration is simulated seconds per wall-clock second.
func (w *World) TimeAcceleration() float64 {
	if w == nil || w.Scenario == nil {
		return 0
	}
	return w.Scenario.TimeAcceleration
}

// OverlayZoom is the magnifier's scale reduction: the scenario's own factor,
// else magnifier_reduction from config.
func (w *World) OverlayZoom() float64 {
	if w == nil || w.Scenario == nil {
		return 0
	}
	if w.Scenario.OverlayZoom > 0 {
		return w.Scenario.OverlayZoom
	}
	return w.magnifierBy
}

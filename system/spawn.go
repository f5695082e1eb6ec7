package system

import (
	"fmt"
	"log"

	"github.com/milk9111/orbitsim/ecs"
	"github.com/milk9111/orbitsim/ecs/entity"
	"github.com/milk9111/orbitsim/physics"
)

// Spawn adds a body at the end of the iteration order and reports it with
// an EventSpawned.
func (w *World) Spawn(p physics.Particle) (ecs.Entity, error) {
	if w == nil || w.ECS == nil {
		return 0, fmt.Errorf("world is nil")
	}
	e, err := entity.NewBody(w.ECS, p)
	if err != nil {
		return 0, fmt.Errorf("world: spawn %q: %w", p.Body.Name, err)
	}
	w.ECS.Events().Push(ecs.Event{
		Type: ecs.EventSpawned,
		Data: ecs.SpawnedEvent{Entity: e, Name: p.Body.Name},
	})
	return e, nil
}

// spawnAll spawns shots in order and returns how many joined the world.
func (w *World) spawnAll(shots []physics.Particle) int {
	n := 0
	for _, p := range shots {
		if _, err := w.Spawn(p); err != nil {
			log.Printf("loop: %v", err)
			continue
		}
		n++
	}
	return n
}

package system

import (
	"log"

	"github.com/milk9111/orbitsim/ecs"
	"github.com/milk9111/orbitsim/ecs/entity"
	"github.com/milk9111/orbitsim/physics"
)

// CollisionSystem merges overlapping bodies. Each tick scans a snapshot of
// the world and applies all removals and insertions once the scan is done.
type CollisionSystem struct {
	Debug bool
}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (s *CollisionSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ents, snapshot := entity.Bodies(w)
	cs := physics.ResolveCollisions(snapshot)
	if cs.Empty() {
		return
	}

	for _, i := range cs.Remove {
		ecs.DestroyEntity(w, ents[i])
	}

	for _, m := range cs.Merges {
		merged := cs.Add[m.Output]
		result, err := entity.NewBody(w, merged)
		if err != nil {
			log.Printf("collision: spawn merged body: %v", err)
			continue
		}
		if s.Debug {
			log.Printf("collision: %s + %s -> %s (%.3g kg)", snapshot[m.A].Body.Name, snapshot[m.B].Body.Name, merged.Body.Name, merged.Body.Mass)
		}
		w.Events().Push(ecs.Event{
			Type: ecs.EventMerged,
			Data: ecs.MergedEvent{
				Consumed: [2]ecs.Entity{ents[m.A], ents[m.B]},
				Result:   result,
				Name:     merged.Body.Name,
			},
		})
	}
}

package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/orbitsim/ecs"
	"github.com/milk9111/orbitsim/ecs/component"
	"github.com/milk9111/orbitsim/ecs/entity"
	"github.com/milk9111/orbitsim/obj"
	"github.com/milk9111/orbitsim/physics"
)

func spawn(t *testing.T, w *ecs.World, name string, mass, radius float64, pos, vel cp.Vector) ecs.Entity {
	t.Helper()
	e, err := entity.NewBody(w, physics.Particle{
		Body:     component.Body{Name: name, Mass: mass, Radius: radius},
		Position: pos,
		Velocity: vel,
	})
	if err != nil {
		t.Fatalf("spawn %s: %v", name, err)
	}
	return e
}

func TestGravitySystemMatchesPhysicsStep(t *testing.T) {
	w := ecs.NewWorld()
	a := spawn(t, w, "a", 5.97e24, 6.37e6, cp.Vector{}, cp.Vector{})
	b := spawn(t, w, "b", 7.34e22, 1.74e6, cp.Vector{Y: 4e8}, cp.Vector{X: 1022})

	_, want := entity.Bodies(w)
	physics.NewField(physics.DefaultMinSeparation).Step(want, 60)

	w.AddSystem(NewGravitySystem(physics.NewField(physics.DefaultMinSeparation), 60))
	w.Update()

	for i, e := range []ecs.Entity{a, b} {
		got, ok := entity.Particle(w, e)
		if !ok {
			t.Fatalf("entity %d missing", i)
		}
		if got.Position != want[i].Position || got.Velocity != want[i].Velocity {
			t.Fatalf("entity %d: expected %+v, got %+v", i, want[i], got)
		}
	}
}

func TestCollisionSystemMergesAndEmits(t *testing.T) {
	w := ecs.NewWorld()
	far := spawn(t, w, "far", 1, 1, cp.Vector{X: 100}, cp.Vector{})
	light := spawn(t, w, "light", 1, 1, cp.Vector{}, cp.Vector{X: 2, Y: 4})
	heavy := spawn(t, w, "heavy", 2, 1, cp.Vector{X: 0.5}, cp.Vector{X: 3.5, Y: 4})

	w.AddSystem(NewCollisionSystem())
	w.Update()

	if ecs.IsAlive(w, light) || ecs.IsAlive(w, heavy) {
		t.Fatalf("merged inputs should be destroyed")
	}
	ents := ecs.Entities(w)
	if len(ents) != 2 || ents[0] != far {
		t.Fatalf("expected [far merged], got %v", ents)
	}
	merged, ok := entity.Particle(w, ents[1])
	if !ok {
		t.Fatalf("merged entity missing components")
	}
	if merged.Body.Mass != 3 || merged.Body.Name != "heavy" {
		t.Fatalf("unexpected merged body %+v", merged.Body)
	}
	if merged.Velocity.X != 3 || merged.Velocity.Y != 4 {
		t.Fatalf("expected velocity (3, 4), got %v", merged.Velocity)
	}
	if math.Abs(merged.Body.Radius-math.Cbrt(2)) > 1e-9 {
		t.Fatalf("expected radius cbrt(2), got %v", merged.Body.Radius)
	}

	events := w.Events().Drain()
	if len(events) != 1 || events[0].Type != ecs.EventMerged {
		t.Fatalf("expected one merge event, got %+v", events)
	}
	evt := events[0].Data.(ecs.MergedEvent)
	if evt.Consumed != [2]ecs.Entity{light, heavy} || evt.Result != ents[1] {
		t.Fatalf("unexpected event payload %+v", evt)
	}
}

func TestCollisionSystemNoOverlap(t *testing.T) {
	w := ecs.NewWorld()
	spawn(t, w, "a", 1, 1, cp.Vector{}, cp.Vector{})
	spawn(t, w, "b", 1, 1, cp.Vector{X: 5}, cp.Vector{})

	NewCollisionSystem().Update(w)

	if len(ecs.Entities(w)) != 2 || w.Events().Len() != 0 {
		t.Fatalf("expected world untouched")
	}
}

func TestCameraSystem(t *testing.T) {
	t.Run("barycentre", func(t *testing.T) {
		w := ecs.NewWorld()
		spawn(t, w, "a", 1, 0, cp.Vector{Y: 1}, cp.Vector{})
		spawn(t, w, "b", 1, 0, cp.Vector{X: 2, Y: 1}, cp.Vector{})
		cam := obj.NewCamera(100, 0)

		NewCameraSystem(cam).Update(w)
		if cam.Focus != (cp.Vector{X: 1, Y: 1}) {
			t.Fatalf("expected (1, 1), got %v", cam.Focus)
		}
	})

	t.Run("pinned", func(t *testing.T) {
		w := ecs.NewWorld()
		spawn(t, w, "a", 1, 0, cp.Vector{}, cp.Vector{})
		b := spawn(t, w, "b", 1, 0, cp.Vector{X: 7, Y: -3}, cp.Vector{})
		cam := obj.NewCamera(100, 0)
		cam.Pin(b)

		NewCameraSystem(cam).Update(w)
		if cam.Focus != (cp.Vector{X: 7, Y: -3}) {
			t.Fatalf("expected pinned focus, got %v", cam.Focus)
		}
		if w.Events().Len() != 0 {
			t.Fatalf("did not expect focus events")
		}
	})

	t.Run("pin_lost", func(t *testing.T) {
		w := ecs.NewWorld()
		spawn(t, w, "a", 3, 0, cp.Vector{X: 4}, cp.Vector{})
		b := spawn(t, w, "b", 1, 0, cp.Vector{X: 8}, cp.Vector{})
		cam := obj.NewCamera(100, 0)
		cam.Pin(b)
		ecs.DestroyEntity(w, b)

		NewCameraSystem(cam).Update(w)
		if cam.IsPinned() {
			t.Fatalf("lost pin should be cleared")
		}
		if cam.Focus != (cp.Vector{X: 4}) {
			t.Fatalf("expected barycentre of remaining body, got %v", cam.Focus)
		}
		events := w.Events().Drain()
		if len(events) != 1 || events[0].Type != ecs.EventFocusChanged {
			t.Fatalf("expected focus changed event, got %+v", events)
		}
		if evt := events[0].Data.(ecs.FocusChangedEvent); evt.Previous != b || evt.Current.Valid() {
			t.Fatalf("unexpected payload %+v", evt)
		}
	})

	t.Run("empty_world", func(t *testing.T) {
		w := ecs.NewWorld()
		cam := obj.NewCamera(100, 0)
		cam.Focus = cp.Vector{X: 5, Y: 5}
		NewCameraSystem(cam).Update(w)
		if cam.Focus != (cp.Vector{}) {
			t.Fatalf("expected origin, got %v", cam.Focus)
		}
	})
}

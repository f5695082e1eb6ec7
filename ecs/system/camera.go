package system

import (
	"log"

	"github.com/milk9111/orbitsim/ecs"
	"github.com/milk9111/orbitsim/ecs/component"
	"github.com/milk9111/orbitsim/ecs/entity"
	"github.com/milk9111/orbitsim/obj"
	"github.com/milk9111/orbitsim/physics"
)

// CameraSystem points the camera at its pinned body, or at the barycentre
// when nothing is pinned. A pin whose body no longer exists is cleared.
type CameraSystem struct {
	Camera *obj.Camera
}

func NewCameraSystem(cam *obj.Camera) *CameraSystem {
	return &CameraSystem{Camera: cam}
}

func (s *CameraSystem) Update(w *ecs.World) {
	if s == nil || s.Camera == nil || w == nil {
		return
	}
	cam := s.Camera

	if cam.IsPinned() {
		if ecs.Has(w, cam.Pinned, component.BodyComponent.Kind()) {
			if t, ok := ecs.Get(w, cam.Pinned, component.TransformComponent.Kind()); ok {
				cam.Focus = t.Position
				return
			}
		}
		lost := cam.Pinned
		cam.Recentre()
		log.Printf("camera: pinned entity %v is gone, following barycentre", lost)
		w.Events().Push(ecs.Event{
			Type: ecs.EventFocusChanged,
			Data: ecs.FocusChangedEvent{Previous: lost, Current: cam.Pinned},
		})
	}

	_, particles := entity.Bodies(w)
	cam.Focus = physics.Barycentre(particles)
}

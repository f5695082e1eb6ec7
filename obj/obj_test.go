package obj

import (
	"math"
	"testing"
	"time"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/orbitsim/ecs/component"
)

func TestCameraTransformsRoundTrip(t *testing.T) {
	cam := NewCamera(400, 0)
	cam.Focus = cp.Vector{X: 1e6, Y: -2e6}
	cam.SpatialScale = 2500

	cases := []struct {
		name   string
		screen cp.Vector
		world  cp.Vector
	}{
		{"centre", cp.Vector{X: 200, Y: 200}, cp.Vector{X: 1e6, Y: -2e6}},
		{"origin", cp.Vector{}, cp.Vector{X: 1e6 - 200*2500, Y: -2e6 - 200*2500}},
		{"bottom_right", cp.Vector{X: 400, Y: 400}, cp.Vector{X: 1e6 + 200*2500, Y: -2e6 + 200*2500}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := cam.ScreenToWorld(c.screen)
			if w != c.world {
				t.Fatalf("expected world %v, got %v", c.world, w)
			}
			s := cam.WorldToScreen(w)
			if math.Abs(s.X-c.screen.X) > 1e-9 || math.Abs(s.Y-c.screen.Y) > 1e-9 {
				t.Fatalf("expected screen %v, got %v", c.screen, s)
			}
		})
	}
}

func TestCameraZoomAndEntityScale(t *testing.T) {
	cam := NewCamera(100, 1.01)
	cam.SetScale(1000)

	cam.ZoomIn()
	if math.Abs(cam.SpatialScale-1000/1.01) > 1e-9 {
		t.Fatalf("zoom in: got %v", cam.SpatialScale)
	}
	cam.ZoomOut()
	if math.Abs(cam.SpatialScale-1000) > 1e-9 {
		t.Fatalf("zoom out: got %v", cam.SpatialScale)
	}

	cam.SetScale(-5)
	if math.Abs(cam.SpatialScale-1000) > 1e-9 {
		t.Fatalf("non-positive scale should be ignored, got %v", cam.SpatialScale)
	}

	cam.EnlargeEntities()
	cam.EnlargeEntities()
	if math.Abs(cam.EntityDisplayFactor-1.01*1.01) > 1e-12 {
		t.Fatalf("enlarge: got %v", cam.EntityDisplayFactor)
	}
	cam.DiminishEntities()
	if math.Abs(cam.EntityDisplayFactor-1.01) > 1e-12 {
		t.Fatalf("diminish: got %v", cam.EntityDisplayFactor)
	}
	if r := cam.DisplayRadius(1000); math.Abs(r-1.01) > 1e-9 {
		t.Fatalf("display radius: got %v", r)
	}
	cam.ResetEntityScale()
	if cam.EntityDisplayFactor != 1 {
		t.Fatalf("reset: got %v", cam.EntityDisplayFactor)
	}
}

func TestCameraPin(t *testing.T) {
	cam := NewCamera(0, 0)
	if cam.ViewportSize != DefaultViewportSize {
		t.Fatalf("expected default viewport, got %d", cam.ViewportSize)
	}
	if cam.IsPinned() {
		t.Fatalf("new camera should not be pinned")
	}
	cam.Pin(7)
	if !cam.IsPinned() || cam.Pinned != 7 {
		t.Fatalf("expected pin 7, got %v", cam.Pinned)
	}
	cam.Recentre()
	if cam.IsPinned() {
		t.Fatalf("recentre should clear the pin")
	}
}

func TestShoot(t *testing.T) {
	const ws = 500.0
	cam := NewCamera(int(ws), 0)
	cam.Focus = cp.Vector{X: 6 * ws, Y: 6 * ws}
	cam.SpatialScale = 2

	body := component.Body{Name: "Moon", Mass: 7.34e22, Radius: 1.74e6}
	drag := DragGesture{
		Start:    cp.Vector{},
		End:      cp.Vector{X: ws / 2},
		Duration: time.Second,
	}

	p := Shoot(cam, body, drag, 2)

	if p.Position.X != 6*ws || p.Position.Y != 5*ws {
		t.Fatalf("expected position (%v, %v), got %v", 6*ws, 5*ws, p.Position)
	}
	if math.Abs(p.Velocity.X-ws/2) > 1e-9 || math.Abs(p.Velocity.Y) > 1e-9 {
		t.Fatalf("expected velocity (%v, 0), got %v", ws/2, p.Velocity)
	}
	if p.Body != body {
		t.Fatalf("expected shot to carry the selected body")
	}
}

func TestShootDegenerateDrags(t *testing.T) {
	cam := NewCamera(100, 0)
	cam.SpatialScale = 1
	body := component.Body{Name: "Earth", Mass: 1, Radius: 1}

	t.Run("zero_duration", func(t *testing.T) {
		p := Shoot(cam, body, DragGesture{End: cp.Vector{X: 10}}, 1)
		if math.IsInf(p.Velocity.X, 0) || math.IsNaN(p.Velocity.X) {
			t.Fatalf("expected finite velocity, got %v", p.Velocity)
		}
		if math.Abs(p.Velocity.X-10/0.001) > 1e-6 {
			t.Fatalf("expected zero duration to count as 1ms, got %v", p.Velocity)
		}
	})

	t.Run("click", func(t *testing.T) {
		p := Shoot(cam, body, DragGesture{Start: cp.Vector{X: 3}, End: cp.Vector{X: 3}, Duration: time.Second}, 1)
		if p.Velocity.X != 0 || p.Velocity.Y != 0 {
			t.Fatalf("expected body at rest, got %v", p.Velocity)
		}
	})
}

func TestCommandQueue(t *testing.T) {
	q := NewCommandQueue()
	q.PushType(CmdFocusNext)
	q.PushType(CmdNone)
	q.Push(Command{Type: CmdShoot, Drag: DragGesture{Duration: time.Second}})
	q.Hold(CmdZoomIn, true)

	if q.Len() != 2 {
		t.Fatalf("expected 2 pending, got %d", q.Len())
	}

	got := q.Drain()
	if len(got) != 3 || got[0].Type != CmdFocusNext || got[1].Type != CmdShoot || got[2].Type != CmdZoomIn {
		t.Fatalf("unexpected drain %+v", got)
	}

	// held commands repeat until released
	if again := q.Drain(); len(again) != 1 || again[0].Type != CmdZoomIn {
		t.Fatalf("expected held zoom, got %+v", again)
	}
	q.Hold(CmdZoomIn, false)
	if empty := q.Drain(); len(empty) != 0 {
		t.Fatalf("expected empty drain, got %+v", empty)
	}
}

func TestCommandTypeString(t *testing.T) {
	if CmdReloadCatalog.String() != "reload_catalog" {
		t.Fatalf("got %q", CmdReloadCatalog.String())
	}
	if CommandType(99).String() != "unknown" {
		t.Fatalf("expected unknown")
	}
}

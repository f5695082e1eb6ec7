package system

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/milk9111/orbitsim/common"
	"github.com/milk9111/orbitsim/ecs"
	"github.com/milk9111/orbitsim/ecs/component"
	"github.com/milk9111/orbitsim/obj"
	"github.com/milk9111/orbitsim/physics"
	"github.com/milk9111/orbitsim/prefabs"
)

// Loop is the single writer of simulation state. Input and the prefab
// watcher only push commands; Tick drains them, advances the world and
// hands a Frame to the Renderer at the render rate.
type Loop struct {
	World    *World
	Queue    *obj.CommandQueue
	Renderer Renderer
	// ReloadCatalog is called for CmdReloadCatalog.
	ReloadCatalog func() (*prefabs.Catalog, error)
	Debug         bool

	catalog  *prefabs.Catalog
	shooting component.Body

	overlay bool
	labels  bool

	tickInterval   time.Duration
	renderInterval time.Duration
	lastRender     time.Time

	pendingShots []physics.Particle
	focusChanged bool
	title        string
	titleLength  int
	magnifier    int
	ticks        uint64
}

// NewLoop wires a loop around world. The shooting body starts at the
// configured catalog entry, or the first one.
func NewLoop(world *World, catalog *prefabs.Catalog, queue *obj.CommandQueue, cfg prefabs.ConfigSpec) (*Loop, error) {
	if world == nil {
		return nil, fmt.Errorf("loop: world is nil")
	}
	if cfg.TickRate <= 0 || cfg.RenderRate <= 0 {
		return nil, fmt.Errorf("loop: tick and render rates must be positive, got %d and %d", cfg.TickRate, cfg.RenderRate)
	}
	if queue == nil {
		queue = obj.NewCommandQueue()
	}

	l := &Loop{
		World:          world,
		Queue:          queue,
		ReloadCatalog:  prefabs.LoadCatalog,
		catalog:        catalog,
		tickInterval:   time.Second / time.Duration(cfg.TickRate),
		renderInterval: time.Second / time.Duration(cfg.RenderRate),
		titleLength:    cfg.TitleLength,
		magnifier:      cfg.MagnifierSize,
		labels:         true,
	}

	if l.titleLength <= 0 {
		l.titleLength = defaultTitleLength
	}

	if b, ok := catalog.Lookup(cfg.ShootingBody); ok {
		l.shooting = b
	} else if b, ok := catalog.First(); ok {
		l.shooting = b
	}
	l.refreshTitle()
	return l, nil
}

// Run ticks at the tick rate until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			l.Tick(now)
		}
	}
}

// RunTicks runs n ticks back to back on a simulated clock, rendering at the
// same cadence Run would.
func (l *Loop) RunTicks(n int, start time.Time) {
	for i := 0; i < n; i++ {
		l.Tick(start.Add(time.Duration(i) * l.tickInterval))
	}
}

// Tick drains commands, advances the world one step, adds pending shots and
// renders if a render is due.
func (l *Loop) Tick(now time.Time) {
	if l == nil || l.World == nil {
		return
	}

	for _, cmd := range l.Queue.Drain() {
		l.handle(cmd)
	}

	l.World.Step()

	if len(l.pendingShots) > 0 {
		l.World.spawnAll(l.pendingShots)
		l.pendingShots = l.pendingShots[:0]
	}

	l.handleEvents(l.World.ECS.Events().Drain())
	l.ticks++

	if l.Renderer == nil {
		return
	}
	if !l.lastRender.IsZero() && now.Sub(l.lastRender) < l.renderInterval {
		return
	}
	l.lastRender = now
	l.Renderer.Render(l.Frame())
	l.focusChanged = false
}

func (l *Loop) handle(cmd obj.Command) {
	cam := l.World.Camera

	switch cmd.Type {
	case obj.CmdFocusNext, obj.CmdFocusPrev:
		ents, _ := l.World.Bodies()
		next, ok := common.Cycle(ents, cam.Pinned, cmd.Type == obj.CmdFocusNext)
		if ok && next != cam.Pinned {
			l.pin(next)
		}
	case obj.CmdBodyNext, obj.CmdBodyPrev:
		if b, ok := l.catalog.Cycle(l.shooting.Name, cmd.Type == obj.CmdBodyNext); ok {
			l.shooting = b
			l.refreshTitle()
		}
	case obj.CmdRecentre:
		if cam.IsPinned() {
			l.pin(0)
		}
	case obj.CmdZoomIn:
		cam.ZoomIn()
	case obj.CmdZoomOut:
		cam.ZoomOut()
	case obj.CmdResetZoom:
		l.World.ResetZoom()
	case obj.CmdEnlargeEntities:
		cam.EnlargeEntities()
	case obj.CmdDiminishEntities:
		cam.DiminishEntities()
	case obj.CmdResetEntityScale:
		cam.ResetEntityScale()
	case obj.CmdToggleOverlay:
		l.overlay = !l.overlay
	case obj.CmdToggleLabels:
		l.labels = !l.labels
	case obj.CmdShoot:
		if l.shooting.Mass <= 0 {
			log.Printf("loop: no body selected for shooting")
			return
		}
		shot := obj.Shoot(cam, l.shooting, cmd.Drag, l.World.TimeAcceleration())
		l.pendingShots = append(l.pendingShots, shot)
	case obj.CmdReloadCatalog:
		l.reloadCatalog()
	}
}

// pin moves the camera to e, or back to the barycentre for the zero entity,
// and queues the change for handleEvents.
func (l *Loop) pin(e ecs.Entity) {
	cam := l.World.Camera
	prev := cam.Pinned
	cam.Pin(e)
	l.World.ECS.Events().Push(ecs.Event{
		Type: ecs.EventFocusChanged,
		Data: ecs.FocusChangedEvent{Previous: prev, Current: cam.Pinned},
	})
}

func (l *Loop) reloadCatalog() {
	if l.ReloadCatalog == nil {
		return
	}
	cat, err := l.ReloadCatalog()
	if err != nil {
		log.Printf("loop: reload catalog: %v", err)
		return
	}
	l.catalog = cat
	if b, ok := cat.Lookup(l.shooting.Name); ok {
		l.shooting = b
	} else if b, ok := cat.First(); ok {
		l.shooting = b
	} else {
		l.shooting = component.Body{}
	}
	log.Printf("loop: reloaded catalog with %d bodies", cat.Len())
	l.refreshTitle()
}

func (l *Loop) handleEvents(events []ecs.Event) {
	if len(events) == 0 {
		return
	}
	for _, evt := range events {
		switch evt.Type {
		case ecs.EventFocusChanged:
			l.focusChanged = true
			if f, ok := evt.Data.(ecs.FocusChangedEvent); ok && l.Debug {
				log.Printf("loop: focus %v -> %v", f.Previous, f.Current)
			}
		case ecs.EventMerged:
			if m, ok := evt.Data.(ecs.MergedEvent); ok && l.Debug {
				log.Printf("loop: merged into %s", m.Name)
			}
		case ecs.EventSpawned:
			if s, ok := evt.Data.(ecs.SpawnedEvent); ok && l.Debug {
				log.Printf("loop: shot %s", s.Name)
			}
		}
	}
	l.refreshTitle()
}

func (l *Loop) refreshTitle() {
	watching := ""
	if cam := l.World.Camera; cam != nil && cam.IsPinned() {
		if body, ok := ecs.Get(l.World.ECS, cam.Pinned, component.BodyComponent.Kind()); ok {
			watching = body.Name
		}
	}
	ents, _ := l.World.Bodies()
	l.title = FormatTitle(l.World.TimeAcceleration(), watching, l.shooting.Name, len(ents), l.titleLength)
}

// Title is the current window title.
func (l *Loop) Title() string {
	return l.title
}

// Shooting is the catalog body the next drag will fire.
func (l *Loop) Shooting() component.Body {
	return l.shooting
}

func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Frame snapshots the current state for drawing.
func (l *Loop) Frame() Frame {
	cam := l.World.Camera
	ents, particles := l.World.Bodies()

	f := Frame{
		Tick:                l.ticks,
		Title:               l.title,
		TitleLength:         l.titleLength,
		Bodies:              make([]BodyView, len(ents)),
		Focus:               cam.Focus,
		ViewportSize:        cam.ViewportSize,
		SpatialScale:        cam.SpatialScale,
		EntityDisplayFactor: cam.EntityDisplayFactor,
		Overlay:             l.overlay,
		Labels:              l.labels,
		OverlayZoom:         l.World.OverlayZoom(),
		MagnifierSize:       l.magnifier,
		ShootingName:        l.shooting.Name,
		TimeAcceleration:    l.World.TimeAcceleration(),
		EntityCount:         len(ents),
		FocusChanged:        l.focusChanged,
	}
	for i, e := range ents {
		p := particles[i]
		pinned := e == cam.Pinned
		f.Bodies[i] = BodyView{
			Entity:   e,
			Name:     p.Body.Name,
			Color:    p.Body.Color,
			Radius:   p.Body.Radius,
			Position: p.Position,
			Pinned:   pinned,
		}
		if pinned {
			f.PinnedName = p.Body.Name
		}
	}
	return f
}

package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/orbitsim/obj"
)

type keyBinding struct {
	keys  []ebiten.Key
	shift bool
	cmd   obj.CommandType
	// held bindings repeat every tick while the key is down
	held bool
}

var defaultBindings = []keyBinding{
	{keys: []ebiten.Key{ebiten.KeyBracketRight}, cmd: obj.CmdFocusNext},
	{keys: []ebiten.Key{ebiten.KeyBracketLeft}, cmd: obj.CmdFocusPrev},
	{keys: []ebiten.Key{ebiten.KeyPeriod}, cmd: obj.CmdBodyNext},
	{keys: []ebiten.Key{ebiten.KeyComma}, cmd: obj.CmdBodyPrev},
	{keys: []ebiten.Key{ebiten.KeyBracketRight}, shift: true, cmd: obj.CmdEnlargeEntities, held: true},
	{keys: []ebiten.Key{ebiten.KeyBracketLeft}, shift: true, cmd: obj.CmdDiminishEntities, held: true},
	{keys: []ebiten.Key{ebiten.KeyR}, cmd: obj.CmdResetEntityScale},
	{keys: []ebiten.Key{ebiten.KeyC}, cmd: obj.CmdRecentre},
	{keys: []ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadAdd}, cmd: obj.CmdZoomIn, held: true},
	{keys: []ebiten.Key{ebiten.KeyMinus, ebiten.KeyNumpadSubtract}, cmd: obj.CmdZoomOut, held: true},
	{keys: []ebiten.Key{ebiten.KeyZ}, cmd: obj.CmdResetZoom},
	{keys: []ebiten.Key{ebiten.KeyO}, cmd: obj.CmdToggleOverlay},
	{keys: []ebiten.Key{ebiten.KeyN}, cmd: obj.CmdToggleLabels},
}

// keyState abstracts ebiten's keyboard polling.
type keyState interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// Input turns keyboard and mouse state into commands on a queue.
type Input struct {
	// Cursor is the mouse position in screen pixels.
	Cursor cp.Vector
	// Quit is set once the quit key was pressed.
	Quit bool
	// Help toggles with H. Mouse drags are ignored while it is shown.
	Help bool

	queue    *obj.CommandQueue
	bindings []keyBinding
	keys     keyState
	now      func() time.Time

	dragging    bool
	dragStart   cp.Vector
	dragStartAt time.Time
}

func NewInput(queue *obj.CommandQueue) *Input {
	return &Input{
		queue:    queue,
		bindings: defaultBindings,
		keys:     ebitenKeys{},
		now:      time.Now,
	}
}

// Update polls ebiten once per frame.
func (i *Input) Update() {
	if i == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		i.Quit = true
	}
	if i.keys.JustPressed(ebiten.KeyH) {
		i.Help = !i.Help
	}

	mx, my := ebiten.CursorPosition()
	i.pollKeys()
	if i.Help {
		i.Cursor = cp.Vector{X: float64(mx), Y: float64(my)}
		i.dragging = false
		return
	}
	i.pollMouse(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), cp.Vector{X: float64(mx), Y: float64(my)})
}

func (i *Input) pollKeys() {
	shift := i.keys.Pressed(ebiten.KeyShiftLeft) || i.keys.Pressed(ebiten.KeyShiftRight)
	for _, b := range i.bindings {
		// zoom keys work with or without shift ('+' is shift+'=')
		matchShift := b.shift == shift || b.cmd == obj.CmdZoomIn || b.cmd == obj.CmdZoomOut
		if b.held {
			down := false
			if matchShift {
				for _, k := range b.keys {
					if i.keys.Pressed(k) {
						down = true
						break
					}
				}
			}
			i.queue.Hold(b.cmd, down)
			continue
		}
		if !matchShift {
			continue
		}
		for _, k := range b.keys {
			if i.keys.JustPressed(k) {
				i.queue.PushType(b.cmd)
				break
			}
		}
	}
}

func (i *Input) pollMouse(pressed bool, cursor cp.Vector) {
	i.Cursor = cursor
	switch {
	case pressed && !i.dragging:
		i.dragging = true
		i.dragStart = cursor
		i.dragStartAt = i.now()
	case !pressed && i.dragging:
		i.dragging = false
		i.queue.Push(obj.Command{
			Type: obj.CmdShoot,
			Drag: obj.DragGesture{
				Start:    i.dragStart,
				End:      cursor,
				Duration: i.now().Sub(i.dragStartAt),
			},
		})
	}
}

// Dragging reports an in-progress drag and where it started.
func (i *Input) Dragging() (cp.Vector, bool) {
	return i.dragStart, i.dragging
}

package main

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/orbitsim/obj"
)

type fakeKeys struct {
	pressed map[ebiten.Key]bool
	just    map[ebiten.Key]bool
}

func (f fakeKeys) Pressed(k ebiten.Key) bool     { return f.pressed[k] }
func (f fakeKeys) JustPressed(k ebiten.Key) bool { return f.just[k] }

func TestInputKeyBindings(t *testing.T) {
	cases := []struct {
		name    string
		pressed []ebiten.Key
		just    []ebiten.Key
		want    []obj.CommandType
	}{
		{"focus_next", nil, []ebiten.Key{ebiten.KeyBracketRight}, []obj.CommandType{obj.CmdFocusNext}},
		{"enlarge_is_shift_bracket", []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyBracketRight}, []ebiten.Key{ebiten.KeyBracketRight}, []obj.CommandType{obj.CmdEnlargeEntities}},
		{"plus_with_shift", []ebiten.Key{ebiten.KeyShiftRight, ebiten.KeyEqual}, nil, []obj.CommandType{obj.CmdZoomIn}},
		{"numpad_minus", []ebiten.Key{ebiten.KeyNumpadSubtract}, nil, []obj.CommandType{obj.CmdZoomOut}},
		{"labels_and_overlay", nil, []ebiten.Key{ebiten.KeyO, ebiten.KeyN}, []obj.CommandType{obj.CmdToggleOverlay, obj.CmdToggleLabels}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			keys := fakeKeys{pressed: map[ebiten.Key]bool{}, just: map[ebiten.Key]bool{}}
			for _, k := range c.pressed {
				keys.pressed[k] = true
			}
			for _, k := range c.just {
				keys.just[k] = true
				keys.pressed[k] = true
			}
			q := obj.NewCommandQueue()
			in := NewInput(q)
			in.keys = keys
			in.pollKeys()

			got := q.Drain()
			if len(got) != len(c.want) {
				t.Fatalf("expected %v, got %+v", c.want, got)
			}
			for i := range c.want {
				if got[i].Type != c.want[i] {
					t.Fatalf("expected %v, got %+v", c.want, got)
				}
			}
		})
	}
}

func TestInputDragProducesShot(t *testing.T) {
	q := obj.NewCommandQueue()
	in := NewInput(q)
	clock := time.Unix(100, 0)
	in.now = func() time.Time { return clock }

	in.pollMouse(true, cp.Vector{X: 10, Y: 10})
	if _, ok := in.Dragging(); !ok {
		t.Fatalf("expected drag in progress")
	}
	clock = clock.Add(250 * time.Millisecond)
	in.pollMouse(true, cp.Vector{X: 40, Y: 10})
	in.pollMouse(false, cp.Vector{X: 50, Y: 10})

	got := q.Drain()
	if len(got) != 1 || got[0].Type != obj.CmdShoot {
		t.Fatalf("expected one shot, got %+v", got)
	}
	drag := got[0].Drag
	if drag.Start != (cp.Vector{X: 10, Y: 10}) || drag.End != (cp.Vector{X: 50, Y: 10}) || drag.Duration != 250*time.Millisecond {
		t.Fatalf("unexpected drag %+v", drag)
	}
	if in.Cursor != (cp.Vector{X: 50, Y: 10}) {
		t.Fatalf("cursor not tracked, got %v", in.Cursor)
	}
}

package main

import (
	"sync"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/orbitsim/obj"
	"github.com/milk9111/orbitsim/system"
)

// Game is the ebiten front end. Update only feeds input into the command
// queue; Draw paints the latest frame published by the simulation loop.
type Game struct {
	input *Input
	size  int
	debug bool

	mu    sync.Mutex
	frame system.Frame

	shownTitle string
	magnifier  *ebiten.Image
	help       *ebitenui.UI
}

func NewGame(queue *obj.CommandQueue, size int, debug bool) *Game {
	g := &Game{
		input: NewInput(queue),
		size:  size,
		debug: debug,
	}
	g.help = NewHelpUI(size, func() { g.input.Help = false })
	return g
}

// Render publishes a frame for the next Draw. It runs on the loop goroutine.
func (g *Game) Render(f system.Frame) {
	g.mu.Lock()
	g.frame = f
	g.mu.Unlock()
}

func (g *Game) latest() system.Frame {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.frame
}

func (g *Game) Update() error {
	g.input.Update()
	if g.input.Quit {
		return ebiten.Termination
	}
	if g.input.Help {
		g.help.Update()
	}

	if f := g.latest(); f.Title != "" && f.Title != g.shownTitle {
		ebiten.SetWindowTitle(f.Title)
		g.shownTitle = f.Title
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	f := g.latest()
	screen.Fill(backgroundColor)
	if f.ViewportSize == 0 {
		return
	}

	drawBodies(screen, f, f.Camera(), f.Labels)
	if start, ok := g.input.Dragging(); ok {
		drawDrag(screen, start, g.input.Cursor)
	}
	if f.Overlay && f.MagnifierSize > 0 {
		if g.magnifier == nil || g.magnifier.Bounds().Dx() != f.MagnifierSize {
			g.magnifier = ebiten.NewImage(f.MagnifierSize, f.MagnifierSize)
		}
		drawMagnifier(screen, g.magnifier, f, g.input.Cursor)
	}
	drawHUD(screen, f, g.debug)
	if g.input.Help {
		g.help.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.size), float64(g.size)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

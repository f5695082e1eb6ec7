package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/orbitsim/obj"
	"github.com/milk9111/orbitsim/system"
)

const (
	minDisplayRadius = 1.0
	highlightGap     = 3.0
	labelOffset      = 4.0
)

var (
	labelFace       = text.NewGoXFace(basicfont.Face7x13)
	backgroundColor = colornames.Black
	borderColor     = colornames.White
	dragColor       = colornames.Lightgreen
)

// drawBodies draws every body in the frame through cam. Bodies fully
// outside dst are skipped.
func drawBodies(dst *ebiten.Image, f system.Frame, cam *obj.Camera, labels bool) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	for _, b := range f.Bodies {
		p := cam.WorldToScreen(b.Position)
		r := math.Max(cam.DisplayRadius(b.Radius), minDisplayRadius)
		if p.X+r < 0 || p.Y+r < 0 || p.X-r > float64(w) || p.Y-r > float64(h) {
			continue
		}

		vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), float32(r), b.Color, true)
		if b.Pinned {
			vector.StrokeCircle(dst, float32(p.X), float32(p.Y), float32(r+highlightGap), 1, tint(b.Color, 0.6), true)
		}
		if labels {
			drawText(dst, b.Name, p.X+r+labelOffset, p.Y-float64(basicfont.Face7x13.Height)/2, tint(b.Color, 0.5))
		}
	}
}

// drawMagnifier renders the frame into the magnifier image around the
// cursor and stamps it, framed, onto dst.
func drawMagnifier(dst, magnifier *ebiten.Image, f system.Frame, cursor cp.Vector) {
	size := float64(f.MagnifierSize)
	magnifier.Fill(backgroundColor)
	drawBodies(magnifier, f, f.MagnifierCamera(cursor), false)

	x, y := cursor.X-size/2, cursor.Y-size/2
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	dst.DrawImage(magnifier, op)
	vector.StrokeRect(dst, float32(x), float32(y), float32(size), float32(size), 1, borderColor, false)
}

func drawDrag(dst *ebiten.Image, start, end cp.Vector) {
	vector.StrokeLine(dst, float32(start.X), float32(start.Y), float32(end.X), float32(end.Y), 1, dragColor, true)
}

func drawText(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, labelFace, op)
}

// tint blends c towards white so dark bodies keep readable labels.
func tint(c color.NRGBA, amount float64) color.Color {
	base, ok := colorful.MakeColor(c)
	if !ok {
		return borderColor
	}
	return base.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, amount).Clamped()
}

package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/orbitsim/system"
)

const (
	hudMargin      = 8.0
	hudLineSpacing = 3.0
)

var hudColor = colornames.Lightgray

// hudLines describes the frame in a few short lines for the corner overlay.
func hudLines(f system.Frame, debug bool, fps float64) []string {
	lines := make([]string, 0, 5)
	if f.PinnedName != "" {
		lines = append(lines, "Watching "+system.TrimToLength(f.PinnedName, f.TitleLength))
	} else {
		lines = append(lines, "Watching barycentre")
	}
	if f.ShootingName != "" {
		lines = append(lines, "Shooting "+system.TrimToLength(f.ShootingName, f.TitleLength))
	}
	lines = append(lines, fmt.Sprintf("Scale %s m/px", system.FormatScientific(f.SpatialScale, 2)))
	if f.EntityDisplayFactor != 1 {
		lines = append(lines, fmt.Sprintf("Bodies drawn x%.2f", f.EntityDisplayFactor))
	}
	if debug {
		lines = append(lines, fmt.Sprintf("Tick %d    FPS %.2f", f.Tick, fps))
	}
	return lines
}

func drawHUD(dst *ebiten.Image, f system.Frame, debug bool) {
	y := hudMargin
	step := float64(basicfont.Face7x13.Height) + hudLineSpacing
	for _, line := range hudLines(f, debug, ebiten.ActualFPS()) {
		drawText(dst, line, hudMargin, y, hudColor)
		y += step
	}
}

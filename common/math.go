package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

// G is the universal gravitational constant in N·m²/kg².
const G = 6.674e-11

const fullTurn = 2 * math.Pi

// Distance returns the Euclidean distance between p and q.
func Distance(p, q cp.Vector) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Bearing returns the angle of to as seen from from, in radians in [0, 2π).
// Zero points up the screen (negative Y) and the angle grows clockwise.
func Bearing(from, to cp.Vector) float64 {
	dx := to.X - from.X
	dy := to.Y - from.Y
	theta := math.Pi + math.Atan2(-dx, dy)
	theta = math.Mod(theta, fullTurn)
	if theta < 0 {
		theta += fullTurn
	}
	if theta >= fullTurn {
		theta = 0
	}
	return theta
}

// Resolve sums vectors componentwise.
func Resolve(vectors ...cp.Vector) cp.Vector {
	var out cp.Vector
	for _, v := range vectors {
		out.X += v.X
		out.Y += v.Y
	}
	return out
}

// ToCartesian converts a magnitude and bearing into x/y components.
func ToCartesian(magnitude, bearing float64) cp.Vector {
	sin, cos := math.Sincos(bearing)
	return cp.Vector{X: magnitude * sin, Y: -magnitude * cos}
}

// VolumeFromRadius returns the volume of a sphere of radius r.
func VolumeFromRadius(r float64) float64 {
	return 4.0 / 3.0 * math.Pi * r * r * r
}

// RadiusFromVolume returns the radius of a sphere of volume v.
func RadiusFromVolume(v float64) float64 {
	return math.Cbrt(3 * v / (4 * math.Pi))
}

// GreatestCardinalSeparation returns the largest horizontal or vertical gap
// between any two of the given points.
func GreatestCardinalSeparation(points []cp.Vector) float64 {
	if len(points) < 2 {
		return 0
	}
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return math.Max(maxX-minX, maxY-minY)
}

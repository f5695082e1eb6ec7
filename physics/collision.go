package physics

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/orbitsim/common"
	"github.com/milk9111/orbitsim/ecs/component"
)

// Collided reports whether two particles overlap.
func Collided(a, b Particle) bool {
	return common.Distance(a.Position, b.Position) < a.Radius()+b.Radius()
}

// Merge combines two particles, conserving mass, volume and momentum. The
// result sits at their mass-weighted centroid and takes the name and colour
// of the heavier input; a tie goes to a.
func Merge(a, b Particle) Particle {
	mass := a.Mass() + b.Mass()
	volume := common.VolumeFromRadius(a.Radius()) + common.VolumeFromRadius(b.Radius())

	dominant := a.Body
	if b.Mass() > a.Mass() {
		dominant = b.Body
	}

	var velocity, position cp.Vector
	if mass > 0 {
		velocity = divide(a.Momentum().Add(b.Momentum()), mass)
		position = divide(a.Position.Mult(a.Body.Mass).Add(b.Position.Mult(b.Body.Mass)), mass)
	} else {
		velocity = a.Velocity.Add(b.Velocity).Mult(0.5)
		position = a.Position.Add(b.Position).Mult(0.5)
	}

	return Particle{
		Body: component.Body{
			Name:   dominant.Name,
			Mass:   mass,
			Radius: common.RadiusFromVolume(volume),
			Color:  dominant.Color,
		},
		Position: position,
		Velocity: velocity,
	}
}

func divide(v cp.Vector, s float64) cp.Vector {
	return cp.Vector{X: v.X / s, Y: v.Y / s}
}

// MergeRecord names the snapshot indices consumed by one merge and the index
// of its output within Changeset.Add.
type MergeRecord struct {
	A, B   int
	Output int
}

// Changeset is the outcome of one collision scan. Remove is sorted ascending.
type Changeset struct {
	Remove []int
	Add    []Particle
	Merges []MergeRecord
}

func (c Changeset) Empty() bool {
	return len(c.Remove) == 0 && len(c.Add) == 0
}

// ResolveCollisions scans every pair of snapshot in index order and merges
// overlapping ones. A particle takes part in at most one merge per scan.
func ResolveCollisions(snapshot []Particle) Changeset {
	var cs Changeset
	consumed := make([]bool, len(snapshot))
	for i := 0; i < len(snapshot); i++ {
		if consumed[i] {
			continue
		}
		for j := i + 1; j < len(snapshot); j++ {
			if consumed[j] {
				continue
			}
			if !Collided(snapshot[i], snapshot[j]) {
				continue
			}
			consumed[i], consumed[j] = true, true
			cs.Merges = append(cs.Merges, MergeRecord{A: i, B: j, Output: len(cs.Add)})
			cs.Add = append(cs.Add, Merge(snapshot[i], snapshot[j]))
			break
		}
	}
	for i, c := range consumed {
		if c {
			cs.Remove = append(cs.Remove, i)
		}
	}
	return cs
}

// Apply returns a new slice with the changeset's removals dropped and its
// additions appended, preserving the order of the survivors.
func (c Changeset) Apply(snapshot []Particle) []Particle {
	removed := make(map[int]bool, len(c.Remove))
	for _, i := range c.Remove {
		removed[i] = true
	}
	out := make([]Particle, 0, len(snapshot)-len(removed)+len(c.Add))
	for i, p := range snapshot {
		if !removed[i] {
			out = append(out, p)
		}
	}
	return append(out, c.Add...)
}

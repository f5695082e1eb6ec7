package component

import "image/color"

// Body is the immutable physical descriptor of a simulated entity. A merge
// produces a new Body; existing ones are never edited.
type Body struct {
	Name   string
	Mass   float64
	Radius float64
	Color  color.NRGBA
}

var BodyComponent = NewComponent[Body]("body")

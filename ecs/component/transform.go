package component

import "github.com/jakecoffman/cp"

// Transform holds an entity's world position in metres.
type Transform struct {
	Position cp.Vector
}

var TransformComponent = NewComponent[Transform]("transform")

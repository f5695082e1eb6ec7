package component

import "github.com/jakecoffman/cp"

// Velocity holds an entity's velocity in metres per second.
type Velocity struct {
	Vector cp.Vector
}

var VelocityComponent = NewComponent[Velocity]("velocity")

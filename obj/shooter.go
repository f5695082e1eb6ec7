package obj

import (
	"time"

	"github.com/milk9111/orbitsim/common"
	"github.com/milk9111/orbitsim/ecs/component"
	"github.com/milk9111/orbitsim/physics"
)

const minDragDuration = time.Millisecond

// Shoot turns a drag gesture into a new particle of the given body. The body
// appears where the drag ended, travelling along the drag at the drag's
// simulated speed.
func Shoot(cam *Camera, body component.Body, drag DragGesture, timeAcceleration float64) physics.Particle {
	start := cam.ScreenToWorld(drag.Start)
	end := cam.ScreenToWorld(drag.End)

	duration := drag.Duration
	if duration < minDragDuration {
		duration = minDragDuration
	}

	var speed float64
	if timeAcceleration > 0 {
		speed = common.Distance(start, end) / (duration.Seconds() * timeAcceleration)
	}

	p := physics.Particle{Body: body, Position: end}
	if start != end {
		p.Velocity = common.ToCartesian(speed, common.Bearing(start, end))
	}
	return p
}

package ecs

// EventType identifies an event payload.
type EventType string

const (
	EventFocusChanged EventType = "focus_changed"
	EventMerged       EventType = "merged"
	EventSpawned      EventType = "spawned"
)

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Data any
}

// FocusChangedEvent is emitted whenever the camera's pinned entity changes,
// by command or because the pinned body was merged away. A zero Current
// means the camera follows the barycentre.
type FocusChangedEvent struct {
	Previous Entity
	Current  Entity
}

// MergedEvent is emitted when two bodies are replaced by their merger.
type MergedEvent struct {
	Consumed [2]Entity
	Result   Entity
	Name     string
}

// SpawnedEvent is emitted when a shot body joins the world.
type SpawnedEvent struct {
	Entity Entity
	Name   string
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

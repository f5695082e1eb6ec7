package obj

import (
	"sync"
	"time"

	"github.com/jakecoffman/cp"
)

// CommandType identifies a user or system request handled between ticks.
type CommandType int

const (
	CmdNone CommandType = iota
	CmdFocusNext
	CmdFocusPrev
	CmdBodyNext
	CmdBodyPrev
	CmdRecentre
	CmdZoomIn
	CmdZoomOut
	CmdResetZoom
	CmdEnlargeEntities
	CmdDiminishEntities
	CmdResetEntityScale
	CmdToggleOverlay
	CmdToggleLabels
	CmdShoot
	CmdReloadCatalog
	cmdCount
)

var commandNames = [...]string{
	CmdNone:             "none",
	CmdFocusNext:        "focus_next",
	CmdFocusPrev:        "focus_prev",
	CmdBodyNext:         "body_next",
	CmdBodyPrev:         "body_prev",
	CmdRecentre:         "recentre",
	CmdZoomIn:           "zoom_in",
	CmdZoomOut:          "zoom_out",
	CmdResetZoom:        "reset_zoom",
	CmdEnlargeEntities:  "enlarge_entities",
	CmdDiminishEntities: "diminish_entities",
	CmdResetEntityScale: "reset_entity_scale",
	CmdToggleOverlay:    "toggle_overlay",
	CmdToggleLabels:     "toggle_labels",
	CmdShoot:            "shoot",
	CmdReloadCatalog:    "reload_catalog",
}

func (c CommandType) String() string {
	if c < 0 || c >= cmdCount {
		return "unknown"
	}
	return commandNames[c]
}

// DragGesture is a completed mouse drag in screen pixels.
type DragGesture struct {
	Start    cp.Vector
	End      cp.Vector
	Duration time.Duration
}

type Command struct {
	Type CommandType
	// Drag is set for CmdShoot.
	Drag DragGesture
}

// CommandQueue buffers commands from the input and watcher goroutines until
// the simulation loop drains them. Held commands repeat on every drain until
// released.
type CommandQueue struct {
	mu      sync.Mutex
	pending []Command
	held    [cmdCount]bool
}

func NewCommandQueue() *CommandQueue {
	return &CommandQueue{}
}

func (q *CommandQueue) Push(cmd Command) {
	if q == nil || cmd.Type == CmdNone {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, cmd)
	q.mu.Unlock()
}

// PushType is shorthand for commands without a payload.
func (q *CommandQueue) PushType(t CommandType) {
	q.Push(Command{Type: t})
}

// Hold marks a command as held (on) or released.
func (q *CommandQueue) Hold(t CommandType, on bool) {
	if q == nil || t <= CmdNone || t >= cmdCount {
		return
	}
	q.mu.Lock()
	q.held[t] = on
	q.mu.Unlock()
}

// Drain returns queued commands in arrival order followed by every held
// command, and clears the queue.
func (q *CommandQueue) Drain() []Command {
	if q == nil {
		return nil
	}
	q.mu.Lock()
	defer q.mu.Unlock()

	out := q.pending
	q.pending = nil
	for t, on := range q.held {
		if on {
			out = append(out, Command{Type: CommandType(t)})
		}
	}
	return out
}

func (q *CommandQueue) Len() int {
	if q == nil {
		return 0
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

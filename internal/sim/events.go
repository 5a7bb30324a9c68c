package sim

// EventKind tags an input event.
type EventKind int

const (
	// EventQuit ends the loop before the next tick.
	EventQuit EventKind = iota
	// EventTogglePause flips between Running and Paused.
	EventTogglePause
	// EventPointerClick toggles the cell under pixel (X, Y).
	EventPointerClick
	// EventStepOnce advances one generation regardless of mode.
	EventStepOnce
	// EventSave persists the current state through the configured Saver.
	EventSave
	// EventClear kills every cell.
	EventClear
)

func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "quit"
	case EventTogglePause:
		return "toggle-pause"
	case EventPointerClick:
		return "pointer-click"
	case EventStepOnce:
		return "step-once"
	case EventSave:
		return "save"
	case EventClear:
		return "clear"
	}
	return "unknown"
}

// Event is a single input delivered to the controller. X and Y are pixel
// coordinates and only meaningful for EventPointerClick.
type Event struct {
	Kind EventKind
	X, Y int
}

// Click builds a pointer click event at pixel (x, y).
func Click(x, y int) Event { return Event{Kind: EventPointerClick, X: x, Y: y} }

// InputSource delivers pending events without blocking. An empty result
// means nothing is pending.
type InputSource interface {
	Poll() []Event
}

// Queue is a FIFO InputSource fed by Push.
type Queue struct {
	pending []Event
}

// Push appends events to the queue.
func (q *Queue) Push(evs ...Event) { q.pending = append(q.pending, evs...) }

// Poll drains every pending event.
func (q *Queue) Poll() []Event {
	out := q.pending
	q.pending = nil
	return out
}

// Len reports the number of pending events.
func (q *Queue) Len() int { return len(q.pending) }

// QuitAfter is an InputSource that stays silent for n polls and then asks to
// quit, which runs exactly n iterations of the loop.
type QuitAfter struct {
	n int
}

// NewQuitAfter returns a source that quits on poll n+1.
func NewQuitAfter(n int) *QuitAfter { return &QuitAfter{n: n} }

// Poll implements InputSource.
func (q *QuitAfter) Poll() []Event {
	if q.n <= 0 {
		return []Event{{Kind: EventQuit}}
	}
	q.n--
	return nil
}

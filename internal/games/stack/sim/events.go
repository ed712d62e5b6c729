package sim

// EventKind identifies a discrete input event.
type EventKind int

const (
	EventNone EventKind = iota
	EventTap            // Drop the moving block
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "none"
	case EventTap:
		return "tap"
	default:
		return "unknown"
	}
}

// Event is a discrete input delivered to the simulation.
type Event struct {
	Kind EventKind
}

// Tap returns a tap event.
func Tap() Event {
	return Event{Kind: EventTap}
}

// SignalKind identifies a notification emitted by the simulation.
type SignalKind int

const (
	SignalGameOver SignalKind = iota + 1 // A drop missed the stack
)

// String returns a human-readable name for the signal kind.
func (k SignalKind) String() string {
	switch k {
	case SignalGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Signal is emitted by the stacking rule for the host to react to.
type Signal struct {
	Kind   SignalKind
	Entity EntityID // Block the signal is about
}

// DefaultQueueCapacity is the number of events buffered between ticks.
const DefaultQueueCapacity = 8

// EventQueue is a bounded FIFO of events, drained once per tick.
type EventQueue struct {
	events   []Event
	capacity int
}

// NewEventQueue creates a queue holding at most capacity events.
func NewEventQueue(capacity int) *EventQueue {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &EventQueue{
		events:   make([]Event, 0, capacity),
		capacity: capacity,
	}
}

// Push enqueues an event. Returns false and drops the event when full.
func (q *EventQueue) Push(e Event) bool {
	if len(q.events) >= q.capacity {
		return false
	}
	q.events = append(q.events, e)
	return true
}

// Drain returns all queued events in arrival order and empties the queue.
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Cap returns the queue capacity.
func (q *EventQueue) Cap() int {
	return q.capacity
}

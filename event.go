package bounce

// EventType identifies a kind of queued platform event.
type EventType uint8

const (
	EventResize EventType = iota // framebuffer size changed; Width/Height are valid
	EventRedraw                  // re-sync vertices before the next draw
)

// Event is a platform notification waiting to be applied by the frame loop.
type Event struct {
	Type          EventType
	Width, Height int
}

// eventQueue is a FIFO filled by Layout and drained at the start of Update.
// Ebitengine calls Layout, Update and Draw from the same goroutine, so the
// queue has exactly one writer and one reader on one goroutine.
type eventQueue struct {
	events []Event
}

func (q *eventQueue) push(e Event) {
	q.events = append(q.events, e)
}

func (q *eventQueue) len() int {
	return len(q.events)
}

// drain hands every queued event to fn in arrival order and empties the queue.
// Events pushed by fn are delivered in the same drain.
func (q *eventQueue) drain(fn func(Event)) {
	for i := 0; i < len(q.events); i++ {
		fn(q.events[i])
	}
	q.events = q.events[:0]
}

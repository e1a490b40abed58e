package bounce

import "testing"

func TestEventQueueDrainFIFO(t *testing.T) {
	var q eventQueue
	q.push(Event{Type: EventResize, Width: 1, Height: 1})
	q.push(Event{Type: EventRedraw})
	q.push(Event{Type: EventResize, Width: 3, Height: 3})

	var got []Event
	q.drain(func(e Event) { got = append(got, e) })

	if len(got) != 3 {
		t.Fatalf("drained %d events, want 3", len(got))
	}
	if got[0].Width != 1 || got[1].Type != EventRedraw || got[2].Width != 3 {
		t.Errorf("drain order = %v", got)
	}
	if q.len() != 0 {
		t.Errorf("queue len after drain = %d, want 0", q.len())
	}
}

func TestEventQueueDrainEmpty(t *testing.T) {
	var q eventQueue
	calls := 0
	q.drain(func(Event) { calls++ })
	if calls != 0 {
		t.Errorf("drain on empty queue called fn %d times", calls)
	}
}

func TestEventQueuePushDuringDrain(t *testing.T) {
	var q eventQueue
	q.push(Event{Type: EventResize, Width: 10, Height: 10})

	var got []EventType
	q.drain(func(e Event) {
		got = append(got, e.Type)
		if e.Type == EventResize {
			q.push(Event{Type: EventRedraw})
		}
	})
	if len(got) != 2 || got[1] != EventRedraw {
		t.Errorf("drained %v, want [resize redraw]", got)
	}
	if q.len() != 0 {
		t.Errorf("queue len after drain = %d, want 0", q.len())
	}
}

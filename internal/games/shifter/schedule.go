package shifter

import (
	"cmp"
	"container/heap"
	"slices"
)

// EventKind identifies a scheduled simulation event.
type EventKind int

const (
	EventSpawn          EventKind = iota // Enemy spawn tick, repeats at the level cadence
	EventTransitionTick                  // Fade clock, every transition step
	EventSpeedRevert                     // One-shot speed boost expiry
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventSpawn:
		return "spawn"
	case EventTransitionTick:
		return "transition_tick"
	case EventSpeedRevert:
		return "speed_revert"
	default:
		return "unknown"
	}
}

// EventID identifies a scheduled event for cancellation. Zero is never issued.
type EventID uint64

// ScheduledEvent is an entry of the schedule.
type ScheduledEvent struct {
	ID   EventID
	Kind EventKind
	Due  int64 // Simulation ms
}

// Schedule is a due-time priority queue of simulation events. Events due at
// the same time pop in the order they were scheduled.
type Schedule struct {
	queue  eventQueue
	byID   map[EventID]*queuedEvent
	nextID EventID
}

type queuedEvent struct {
	ScheduledEvent
	index int
}

// NewSchedule creates an empty schedule.
func NewSchedule() *Schedule {
	return &Schedule{byID: make(map[EventID]*queuedEvent)}
}

// Add schedules an event and returns its ID.
func (s *Schedule) Add(kind EventKind, due int64) EventID {
	s.nextID++
	ev := &queuedEvent{ScheduledEvent: ScheduledEvent{ID: s.nextID, Kind: kind, Due: due}}
	heap.Push(&s.queue, ev)
	s.byID[ev.ID] = ev
	return ev.ID
}

// Cancel removes a pending event. Unknown or already fired IDs are ignored.
func (s *Schedule) Cancel(id EventID) {
	ev, ok := s.byID[id]
	if !ok {
		return
	}
	heap.Remove(&s.queue, ev.index)
	delete(s.byID, id)
}

// Pending reports whether the event is still scheduled.
func (s *Schedule) Pending(id EventID) bool {
	_, ok := s.byID[id]
	return ok
}

// PopDue removes and returns the earliest event due at or before now.
func (s *Schedule) PopDue(now int64) (ScheduledEvent, bool) {
	if len(s.queue) == 0 || s.queue[0].Due > now {
		return ScheduledEvent{}, false
	}
	ev := heap.Pop(&s.queue).(*queuedEvent)
	delete(s.byID, ev.ID)
	return ev.ScheduledEvent, true
}

// Len returns the number of pending events.
func (s *Schedule) Len() int {
	return len(s.queue)
}

// Clear drops every pending event. IDs keep increasing.
func (s *Schedule) Clear() {
	s.queue = s.queue[:0]
	clear(s.byID)
}

// events returns the pending events sorted by (due, id).
func (s *Schedule) events() []ScheduledEvent {
	out := make([]ScheduledEvent, 0, len(s.queue))
	for _, ev := range s.queue {
		out = append(out, ev.ScheduledEvent)
	}
	slices.SortFunc(out, func(a, b ScheduledEvent) int {
		if c := cmp.Compare(a.Due, b.Due); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// eventQueue implements heap.Interface ordered by due time, then ID.
type eventQueue []*queuedEvent

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	if q[i].Due != q[j].Due {
		return q[i].Due < q[j].Due
	}
	return q[i].ID < q[j].ID
}

func (q eventQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *eventQueue) Push(x any) {
	ev := x.(*queuedEvent)
	ev.index = len(*q)
	*q = append(*q, ev)
}

func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	ev := old[n-1]
	old[n-1] = nil
	ev.index = -1
	*q = old[:n-1]
	return ev
}

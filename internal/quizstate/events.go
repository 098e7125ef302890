package quizstate

// EventKind identifies the type of state change.
type EventKind int

const (
	// EventNavigated signals a Next or Previous call.
	EventNavigated EventKind = iota
	// EventAnswerChanged signals a write to one of the answer buffers.
	EventAnswerChanged
)

// String returns a short label for the kind.
func (k EventKind) String() string {
	switch k {
	case EventNavigated:
		return "navigated"
	case EventAnswerChanged:
		return "answer_changed"
	default:
		return "unknown"
	}
}

// Direction records which way a navigation moved the index.
type Direction int

const (
	// Stay means the index did not move, either because the event was not a
	// navigation or because it was clamped at a boundary.
	Stay Direction = iota
	// Forward means the index was incremented.
	Forward
	// Backward means the index was decremented.
	Backward
)

// String returns a short label for the direction.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "stay"
	}
}

// Event carries a state change to subscribers.
type Event struct {
	Kind      EventKind
	Direction Direction
	Snapshot  Snapshot
}

// Observer receives state change events.
type Observer func(Event)

type subscription struct {
	id       int
	observer Observer
}

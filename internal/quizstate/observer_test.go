package quizstate

import "testing"

// TestSubscribeReceivesEvents verifies mutators publish snapshots.
func TestSubscribeReceivesEvents(t *testing.T) {
	state := newDefaultState(t)
	var events []Event
	state.Subscribe(func(event Event) { events = append(events, event) })

	state.SetTrueFalse(false)
	state.Next()
	state.Previous()
	state.Previous()

	if len(events) != 4 {
		t.Fatalf("expected 4 events, got %d", len(events))
	}
	if events[0].Kind != EventAnswerChanged || events[0].Snapshot.TrueFalse == nil || *events[0].Snapshot.TrueFalse {
		t.Fatalf("unexpected answer event: %+v", events[0])
	}
	want := []Direction{Stay, Forward, Backward, Stay}
	for i, direction := range want {
		if events[i].Direction != direction {
			t.Fatalf("event %d: expected %s, got %s", i, direction, events[i].Direction)
		}
	}
	if events[1].Snapshot.Index != 1 || !events[1].Snapshot.Empty() {
		t.Fatalf("expected cleared snapshot at index 1, got %+v", events[1].Snapshot)
	}
	if events[3].Kind != EventNavigated {
		t.Fatalf("expected clamped navigation to still publish")
	}
}

// TestUnsubscribe verifies observers stop receiving events.
func TestUnsubscribe(t *testing.T) {
	state := newDefaultState(t)
	first, second := 0, 0
	stopFirst := state.Subscribe(func(Event) { first++ })
	state.Subscribe(func(Event) { second++ })

	state.Next()
	stopFirst()
	stopFirst()
	state.Next()

	if first != 1 || second != 2 {
		t.Fatalf("expected first=1 second=2, got first=%d second=%d", first, second)
	}
}

// TestUnsubscribeDuringPublish verifies an observer can remove itself.
func TestUnsubscribeDuringPublish(t *testing.T) {
	state := newDefaultState(t)
	calls := 0
	var stop func()
	stop = state.Subscribe(func(Event) {
		calls++
		stop()
	})
	state.Next()
	state.Next()
	if calls != 1 {
		t.Fatalf("expected one call, got %d", calls)
	}
}

// TestSnapshotAnswered verifies the relevant buffer is chosen per kind.
func TestSnapshotAnswered(t *testing.T) {
	state := newDefaultState(t)
	state.SetText("Kotlin")
	if state.Snapshot().Answered() {
		t.Fatalf("text buffer should not answer a true/false question")
	}
	state.SetTrueFalse(false)
	if !state.Snapshot().Answered() {
		t.Fatalf("expected true/false question to be answered")
	}
}

package quizstate

// Subscribe registers an observer for every subsequent state change. The
// returned function removes it.
func (s *State) Subscribe(observer Observer) func() {
	if observer == nil {
		return func() {}
	}
	id := s.nextSubID
	s.nextSubID++
	s.subscribers = append(s.subscribers, subscription{id: id, observer: observer})
	return func() { s.unsubscribe(id) }
}

func (s *State) unsubscribe(id int) {
	for i, sub := range s.subscribers {
		if sub.id == id {
			s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
			return
		}
	}
}

// publish notifies observers in subscription order.
func (s *State) publish(kind EventKind, direction Direction) {
	if len(s.subscribers) == 0 {
		return
	}
	event := Event{Kind: kind, Direction: direction, Snapshot: s.Snapshot()}
	subscribers := make([]subscription, len(s.subscribers))
	copy(subscribers, s.subscribers)
	for _, sub := range subscribers {
		sub.observer(event)
	}
}

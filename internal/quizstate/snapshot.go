package quizstate

import "quiz/internal/question"

// Snapshot is a read-only copy of the state at one point in time.
type Snapshot struct {
	SessionID    string
	Index        int
	Len          int
	Question     question.Question
	TrueFalse    *bool
	SingleChoice *string
	MultiChoice  []string
	Text         string
}

// Snapshot copies the current state.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		SessionID:   s.sessionID,
		Index:       s.index,
		Len:         len(s.questions),
		Question:    s.questions[s.index],
		MultiChoice: s.MultiChoice(),
		Text:        s.text,
	}
	if value, ok := s.TrueFalse(); ok {
		snap.TrueFalse = &value
	}
	if value, ok := s.SingleChoice(); ok {
		snap.SingleChoice = &value
	}
	return snap
}

// Empty reports whether every answer buffer holds its default.
func (snap Snapshot) Empty() bool {
	return snap.TrueFalse == nil && snap.SingleChoice == nil && len(snap.MultiChoice) == 0 && snap.Text == ""
}

// Answered reports whether the buffer used by the current question is set.
func (snap Snapshot) Answered() bool {
	switch snap.Question.(type) {
	case question.TrueFalse:
		return snap.TrueFalse != nil
	case question.SingleChoice:
		return snap.SingleChoice != nil
	case question.MultiChoice:
		return len(snap.MultiChoice) > 0
	case question.FreeText:
		return snap.Text != ""
	default:
		return false
	}
}

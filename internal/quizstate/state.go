package quizstate

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"quiz/internal/question"
)

// State is the view-model of one quiz session: a fixed question list, the
// current index, and one answer buffer per question kind.
//
// The index is always within [0, Len()-1]. Every navigation clears all four
// buffers, whichever buffer the current question uses.
//
// State is not safe for concurrent use.
type State struct {
	sessionID string
	questions []question.Question
	index     int

	trueFalse *bool
	single    *string
	multi     map[string]struct{}
	text      string

	subscribers []subscription
	nextSubID   int
}

// New constructs a session over a validated question list.
func New(questions []question.Question) (*State, error) {
	if err := question.Validate(questions); err != nil {
		return nil, fmt.Errorf("new quiz state: %w", err)
	}
	owned := make([]question.Question, len(questions))
	copy(owned, questions)
	return &State{
		sessionID: uuid.NewString(),
		questions: owned,
		multi:     map[string]struct{}{},
	}, nil
}

// Next advances to the following question when there is one, then clears
// every answer buffer.
func (s *State) Next() {
	direction := Stay
	if s.index < len(s.questions)-1 {
		s.index++
		direction = Forward
	}
	s.clearBuffers()
	s.publish(EventNavigated, direction)
}

// Previous returns to the preceding question when there is one, then clears
// every answer buffer.
func (s *State) Previous() {
	direction := Stay
	if s.index > 0 {
		s.index--
		direction = Backward
	}
	s.clearBuffers()
	s.publish(EventNavigated, direction)
}

// SetTrueFalse records a true/false answer.
func (s *State) SetTrueFalse(value bool) {
	s.trueFalse = &value
	s.publish(EventAnswerChanged, Stay)
}

// SetSingleChoice records a single-choice answer.
func (s *State) SetSingleChoice(option string) {
	s.single = &option
	s.publish(EventAnswerChanged, Stay)
}

// ToggleMultiChoice adds option to the multi-choice set, or removes it when
// it is already present.
func (s *State) ToggleMultiChoice(option string) {
	if _, ok := s.multi[option]; ok {
		delete(s.multi, option)
	} else {
		s.multi[option] = struct{}{}
	}
	s.publish(EventAnswerChanged, Stay)
}

// SetText records the free-text answer.
func (s *State) SetText(value string) {
	s.text = value
	s.publish(EventAnswerChanged, Stay)
}

func (s *State) clearBuffers() {
	s.trueFalse = nil
	s.single = nil
	s.multi = map[string]struct{}{}
	s.text = ""
}

// SessionID identifies the session for logs and display.
func (s *State) SessionID() string { return s.sessionID }

// Questions returns a copy of the question list.
func (s *State) Questions() []question.Question {
	out := make([]question.Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// Len returns the number of questions.
func (s *State) Len() int { return len(s.questions) }

// Index returns the current question index.
func (s *State) Index() int { return s.index }

// Current returns the question at the current index.
func (s *State) Current() question.Question { return s.questions[s.index] }

// IsFirst reports whether the first question is displayed.
func (s *State) IsFirst() bool { return s.index == 0 }

// IsLast reports whether the last question is displayed.
func (s *State) IsLast() bool { return s.index == len(s.questions)-1 }

// TrueFalse returns the true/false buffer and whether it is set.
func (s *State) TrueFalse() (bool, bool) {
	if s.trueFalse == nil {
		return false, false
	}
	return *s.trueFalse, true
}

// SingleChoice returns the single-choice buffer and whether it is set.
func (s *State) SingleChoice() (string, bool) {
	if s.single == nil {
		return "", false
	}
	return *s.single, true
}

// MultiChoice returns the multi-choice selections in sorted order.
func (s *State) MultiChoice() []string {
	out := make([]string, 0, len(s.multi))
	for option := range s.multi {
		out = append(out, option)
	}
	sort.Strings(out)
	return out
}

// IsSelected reports whether option is in the multi-choice set.
func (s *State) IsSelected(option string) bool {
	_, ok := s.multi[option]
	return ok
}

// Text returns the free-text buffer.
func (s *State) Text() string { return s.text }

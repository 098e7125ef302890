package live

import (
	"fmt"

	"quiz/internal/question"
	"quiz/internal/quizstate"
)

// Reduce applies a quiz event to the view state.
func Reduce(view View, event quizstate.Event) View {
	switch event.Kind {
	case quizstate.EventNavigated:
		view.Direction = event.Direction
		view.Moves++
	case quizstate.EventAnswerChanged:
		view.Edits++
	}
	if message := formatLastEvent(event); message != "" {
		view.LastEvent = message
	}
	return view
}

// formatLastEvent renders a footer line for an event.
func formatLastEvent(event quizstate.Event) string {
	snap := event.Snapshot
	position := formatPosition(snap.Index, snap.Len)
	switch event.Kind {
	case quizstate.EventNavigated:
		if event.Direction == quizstate.Stay {
			return "Stayed on " + position + ", answers cleared"
		}
		return fmt.Sprintf("Moved %s to %s", event.Direction, position)
	case quizstate.EventAnswerChanged:
		return "Answer updated: " + formatAnswer(snap)
	default:
		return ""
	}
}

// formatAnswer summarizes the buffer relevant to the snapshot's question.
func formatAnswer(snap quizstate.Snapshot) string {
	switch snap.Question.(type) {
	case question.TrueFalse:
		if snap.TrueFalse == nil {
			return "none"
		}
		if *snap.TrueFalse {
			return "True"
		}
		return "False"
	case question.SingleChoice:
		if snap.SingleChoice == nil {
			return "none"
		}
		return *snap.SingleChoice
	case question.MultiChoice:
		if len(snap.MultiChoice) == 0 {
			return "none"
		}
		return joinOptions(snap.MultiChoice)
	case question.FreeText:
		if snap.Text == "" {
			return "none"
		}
		return fmt.Sprintf("%q", formatText(snap.Text))
	default:
		return "none"
	}
}

package live

import (
	"strconv"
	"strings"

	"quiz/internal/quizstate"
)

// formatPosition renders a 1-based question position.
func formatPosition(index, total int) string {
	return "question " + strconv.Itoa(index+1) + "/" + strconv.Itoa(total)
}

// formatText collapses whitespace and truncates long answers to 40 runes.
func formatText(text string) string {
	normalized := strings.Join(strings.Fields(text), " ")
	const limit = 40
	runes := []rune(normalized)
	if len(runes) <= limit {
		return normalized
	}
	return string(runes[:limit-3]) + "..."
}

// joinOptions renders a list of options.
func joinOptions(options []string) string {
	return strings.Join(options, ", ")
}

// directionMarker renders the slide direction of the last navigation.
func directionMarker(direction quizstate.Direction) string {
	switch direction {
	case quizstate.Forward:
		return "»"
	case quizstate.Backward:
		return "«"
	default:
		return "·"
	}
}

// checkbox renders a selection marker.
func checkbox(selected, multi bool) string {
	switch {
	case multi && selected:
		return "[x]"
	case multi:
		return "[ ]"
	case selected:
		return "(•)"
	default:
		return "( )"
	}
}

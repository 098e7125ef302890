package live

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"quiz/internal/question"
	"quiz/internal/quizstate"
)

// renderHeader renders the session and position line.
func renderHeader(quiz *quizstate.State, view View, noColor bool) string {
	line := "Quiz " + shortID(quiz.SessionID()) +
		" | " + capitalize(formatPosition(quiz.Index(), quiz.Len())) +
		" " + directionMarker(view.Direction)
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderPrompt renders the current question text.
func renderPrompt(q question.Question, noColor bool) string {
	text := q.Text()
	if noColor {
		return "\n" + text + "\n"
	}
	return "\n" + lipgloss.NewStyle().Bold(true).Render(text) + "\n"
}

// renderAnswers renders the input controls for the current question.
func renderAnswers(m Model, noColor bool) string {
	switch current := m.quiz.Current().(type) {
	case question.TrueFalse:
		value, set := m.quiz.TrueFalse()
		lines := []string{
			renderOption(m.cursor == 0, set && value, false, "True", noColor),
			renderOption(m.cursor == 1, set && !value, false, "False", noColor),
		}
		return strings.Join(lines, "\n")
	case question.SingleChoice:
		selected, set := m.quiz.SingleChoice()
		lines := make([]string, 0, len(current.Options))
		for i, option := range current.Options {
			lines = append(lines, renderOption(m.cursor == i, set && selected == option, false, option, noColor))
		}
		return strings.Join(lines, "\n")
	case question.MultiChoice:
		lines := make([]string, 0, len(current.Options))
		for i, option := range current.Options {
			lines = append(lines, renderOption(m.cursor == i, m.quiz.IsSelected(option), true, option, noColor))
		}
		return strings.Join(lines, "\n")
	case question.FreeText:
		return m.input.View()
	default:
		return ""
	}
}

// renderOption renders one selectable line.
func renderOption(focused, selected, multi bool, label string, noColor bool) string {
	prefix := "  "
	if focused {
		prefix = "> "
	}
	line := prefix + checkbox(selected, multi) + " " + label
	if focused {
		return stylize(line, noColor, lipgloss.Color("212"))
	}
	return line
}

// renderControls renders the Back and Next buttons that apply.
func renderControls(quiz *quizstate.State, noColor bool) string {
	var buttons []string
	if !quiz.IsFirst() {
		buttons = append(buttons, "[ Back ]")
	}
	if !quiz.IsLast() {
		buttons = append(buttons, "[ Next ]")
	}
	if len(buttons) == 0 {
		return ""
	}
	return "\n" + stylize(strings.Join(buttons, "   "), noColor, lipgloss.Color("240")) + "\n"
}

// renderFooter renders the last event line.
func renderFooter(view View, noColor bool) string {
	if view.LastEvent == "" {
		return ""
	}
	return stylize("Last event: "+view.LastEvent, noColor, lipgloss.Color("244"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// shortID trims a session id for the header.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func capitalize(text string) string {
	first, size := utf8.DecodeRuneInString(text)
	if size == 0 {
		return text
	}
	return string(unicode.ToUpper(first)) + text[size:]
}

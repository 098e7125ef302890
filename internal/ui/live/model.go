package live

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quiz/internal/question"
	"quiz/internal/quizstate"
)

// Model renders a quiz session using Bubble Tea. It reads the quiz directly
// and invokes its mutators on key presses.
type Model struct {
	quiz    *quizstate.State
	view    View
	events  <-chan quizstate.Event
	cursor  int
	input   textinput.Model
	keys    keyMap
	help    help.Model
	width   int
	noColor bool
}

// Options configures the live UI model.
type Options struct {
	NoColor bool
}

// NewModel constructs a live UI model for a quiz and its event stream.
func NewModel(quiz *quizstate.State, events <-chan quizstate.Event, opts Options) Model {
	input := textinput.New()
	input.Placeholder = "Type your answer"
	input.CharLimit = 256
	input.Width = 48
	m := Model{
		quiz:    quiz,
		events:  events,
		input:   input,
		keys:    defaultKeyMap(),
		help:    help.New(),
		noColor: opts.NoColor,
	}
	m.syncInput()
	return m
}

// ViewState returns the reduced presentation state.
func (m Model) ViewState() View {
	return m.view
}

// Cursor returns the highlighted option index.
func (m Model) Cursor() int {
	return m.cursor
}

// Init waits for the first quiz event.
func (m Model) Init() tea.Cmd {
	if m.onFreeText() {
		return tea.Batch(waitForEvent(m.events), textinput.Blink)
	}
	return waitForEvent(m.events)
}

// Update consumes key presses and quiz events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.help.Width = typed.Width
		return m, nil
	case EventMsg:
		m.view = Reduce(m.view, typed.Event)
		return m, waitForEvent(m.events)
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	if m.onFreeText() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey routes a key press to the quiz mutators.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.onFreeText() {
		switch {
		case key.Matches(msg, m.keys.TextNext):
			return m.navigate(m.quiz.Next)
		case key.Matches(msg, m.keys.TextPrevious):
			return m.navigate(m.quiz.Previous)
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if value := m.input.Value(); value != m.quiz.Text() {
			m.quiz.SetText(value)
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.QuitText):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		return m.navigate(m.quiz.Next)
	case key.Matches(msg, m.keys.Previous):
		return m.navigate(m.quiz.Previous)
	}

	switch current := m.quiz.Current().(type) {
	case question.TrueFalse:
		switch {
		case key.Matches(msg, m.keys.True):
			m.quiz.SetTrueFalse(true)
		case key.Matches(msg, m.keys.False):
			m.quiz.SetTrueFalse(false)
		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.cursor = 1 - m.cursor
		case key.Matches(msg, m.keys.Select):
			m.quiz.SetTrueFalse(m.cursor == 0)
		}
	case question.SingleChoice:
		if m.moveCursor(msg, len(current.Options)) {
			return m, nil
		}
		if key.Matches(msg, m.keys.Select) {
			m.quiz.SetSingleChoice(current.Options[m.cursor])
		}
	case question.MultiChoice:
		if m.moveCursor(msg, len(current.Options)) {
			return m, nil
		}
		if key.Matches(msg, m.keys.Select) {
			m.quiz.ToggleMultiChoice(current.Options[m.cursor])
		}
	}
	return m, nil
}

// moveCursor handles up/down within a list of options.
func (m *Model) moveCursor(msg tea.KeyMsg, count int) bool {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return true
	case key.Matches(msg, m.keys.Down):
		if m.cursor < count-1 {
			m.cursor++
		}
		return true
	}
	return false
}

// navigate runs a navigation mutator and resets per-question widgets.
func (m Model) navigate(move func()) (tea.Model, tea.Cmd) {
	move()
	m.cursor = 0
	return m, m.syncInput()
}

// syncInput mirrors the text buffer into the input and sets focus.
func (m *Model) syncInput() tea.Cmd {
	m.input.SetValue(m.quiz.Text())
	if m.onFreeText() {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

func (m Model) onFreeText() bool {
	_, ok := m.quiz.Current().(question.FreeText)
	return ok
}

// View renders the quiz screen.
func (m Model) View() string {
	sections := []string{
		renderHeader(m.quiz, m.view, m.noColor),
		renderPrompt(m.quiz.Current(), m.noColor),
		renderAnswers(m, m.noColor),
		renderControls(m.quiz, m.noColor),
		m.help.ShortHelpView(m.helpBindings()),
	}
	if footer := renderFooter(m.view, m.noColor); footer != "" {
		sections = append(sections, footer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// helpBindings lists the keys that apply to the current question.
func (m Model) helpBindings() []key.Binding {
	if m.onFreeText() {
		return []key.Binding{m.keys.TextNext, m.keys.TextPrevious, m.keys.Quit}
	}
	bindings := []key.Binding{m.keys.Next, m.keys.Previous}
	switch m.quiz.Current().(type) {
	case question.TrueFalse:
		bindings = append(bindings, m.keys.True, m.keys.False)
	default:
		bindings = append(bindings, m.keys.Up, m.keys.Down, m.keys.Select)
	}
	return append(bindings, m.keys.QuitText)
}

// EventMsg wraps a quiz event for Bubble Tea.
type EventMsg struct {
	Event quizstate.Event
}

// waitForEvent blocks until a quiz event is available.
func waitForEvent(events <-chan quizstate.Event) tea.Cmd {
	return func() tea.Msg {
		if events == nil {
			return nil
		}
		event, ok := <-events
		if !ok {
			return tea.Quit()
		}
		return EventMsg{Event: event}
	}
}

package live

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings the quiz screen reacts to.
type keyMap struct {
	Next     key.Binding
	Previous key.Binding
	True     key.Binding
	False    key.Binding
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Quit     key.Binding
	QuitText key.Binding

	// Free-text questions leave letters and arrows to the input.
	TextNext     key.Binding
	TextPrevious key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "n"),
			key.WithHelp("→/n", "next"),
		),
		Previous: key.NewBinding(
			key.WithKeys("shift+tab", "left", "b"),
			key.WithHelp("←/b", "back"),
		),
		True: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "true"),
		),
		False: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "false"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys(" ", "space", "enter"),
			key.WithHelp("space", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
		QuitText: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		TextNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		TextPrevious: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "back"),
		),
	}
}

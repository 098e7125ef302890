package live

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"quiz/internal/quizstate"
)

// eventBuffer bounds the queue between the quiz and the UI. Events beyond it
// are dropped; the screen reads the quiz directly, so only the footer lags.
const eventBuffer = 64

// Subscribe forwards quiz events into a channel without blocking the caller.
// The returned function unsubscribes and closes the channel.
func Subscribe(quiz *quizstate.State) (<-chan quizstate.Event, func()) {
	events := make(chan quizstate.Event, eventBuffer)
	unsubscribe := quiz.Subscribe(func(event quizstate.Event) {
		select {
		case events <- event:
		default:
		}
	})
	return events, func() {
		unsubscribe()
		close(events)
	}
}

// Run drives the live UI until the user quits or ctx is cancelled.
func Run(ctx context.Context, quiz *quizstate.State, stdin io.Reader, stdout io.Writer, opts Options) error {
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	events, stop := Subscribe(quiz)
	defer stop()

	model := NewModel(quiz, events, opts)
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(stdin),
		tea.WithOutput(stdout),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run live ui: %w", err)
	}
	return nil
}

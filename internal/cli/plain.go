package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"quiz/internal/question"
	"quiz/internal/quizstate"
)

// errUnknownCommand reports an unrecognized plain-mode command.
var errUnknownCommand = errors.New("unknown command")

// plainHelp lists the commands the plain session accepts.
const plainHelp = "Commands: next, back, true, false, choose <option|n>, toggle <option|n>, text <answer>, show, help, quit"

// runPlain drives a line-oriented session: one command per input line. It
// returns when stdin ends, the user quits, or ctx is cancelled; a cancelled
// session is not an error.
func runPlain(ctx context.Context, quiz *quizstate.State, stdin io.Reader, stdout io.Writer) error {
	lines, readErr := readLines(ctx, stdin)
	renderPlain(stdout, quiz)
	fmt.Fprintln(stdout, plainHelp)
	for {
		fmt.Fprint(stdout, "> ")
		var raw string
		select {
		case <-ctx.Done():
			fmt.Fprintln(stdout)
			return nil
		case next, ok := <-lines:
			if !ok {
				fmt.Fprintln(stdout)
				if err := <-readErr; err != nil {
					return fmt.Errorf("read input: %w", err)
				}
				return nil
			}
			raw = next
		}
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		result, err := applyPlainCommand(quiz, line)
		if err != nil {
			fmt.Fprintf(stdout, "%v\n", err)
			continue
		}
		switch result {
		case plainQuit:
			return nil
		case plainHelpShown:
			fmt.Fprintln(stdout, plainHelp)
		case plainRender:
			renderPlain(stdout, quiz)
		}
	}
}

// readLines scans stdin on its own goroutine so a blocked read never holds up
// cancellation. The lines channel closes at end of input; the scanner error,
// if any, is then available on the error channel. The goroutine stops sending
// once ctx is done but stays parked in Read until stdin yields or closes.
func readLines(ctx context.Context, stdin io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(readErr)
		defer close(lines)
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()
	return lines, readErr
}

type plainResult int

const (
	plainRender plainResult = iota
	plainHelpShown
	plainQuit
)

// applyPlainCommand parses one command line and invokes the matching mutator.
func applyPlainCommand(quiz *quizstate.State, line string) (plainResult, error) {
	verb, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	switch strings.ToLower(verb) {
	case "next", "n":
		quiz.Next()
	case "back", "b", "prev", "previous":
		quiz.Previous()
	case "true", "t":
		quiz.SetTrueFalse(true)
	case "false", "f":
		quiz.SetTrueFalse(false)
	case "choose", "c":
		option, err := resolveOption(quiz.Current(), arg)
		if err != nil {
			return plainRender, err
		}
		quiz.SetSingleChoice(option)
	case "toggle", "x":
		option, err := resolveOption(quiz.Current(), arg)
		if err != nil {
			return plainRender, err
		}
		quiz.ToggleMultiChoice(option)
	case "text":
		quiz.SetText(arg)
	case "show", "s":
	case "help", "h", "?":
		return plainHelpShown, nil
	case "quit", "q", "exit":
		return plainQuit, nil
	default:
		return plainRender, fmt.Errorf("%w %q (type help)", errUnknownCommand, verb)
	}
	return plainRender, nil
}

// resolveOption maps a 1-based number or option text to an option of the
// current question. Questions without options accept any non-empty value.
func resolveOption(q question.Question, arg string) (string, error) {
	if arg == "" {
		return "", errors.New("an option is required")
	}
	options := question.Options(q)
	if len(options) == 0 {
		return arg, nil
	}
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(options) {
			return "", fmt.Errorf("option %d out of range 1-%d", n, len(options))
		}
		return options[n-1], nil
	}
	if option, ok := question.FindOption(options, arg); ok {
		return option, nil
	}
	return "", fmt.Errorf("unknown option %q", arg)
}

// renderPlain prints the active question and the buffer it uses.
func renderPlain(w io.Writer, quiz *quizstate.State) {
	current := quiz.Current()
	fmt.Fprintf(w, "\nQuestion %d/%d [%s]\n", quiz.Index()+1, quiz.Len(), current.Kind())
	fmt.Fprintln(w, current.Text())
	switch typed := current.(type) {
	case question.TrueFalse:
		value, set := quiz.TrueFalse()
		fmt.Fprintf(w, "  %s True\n", mark(set && value, false))
		fmt.Fprintf(w, "  %s False\n", mark(set && !value, false))
	case question.SingleChoice:
		selected, set := quiz.SingleChoice()
		for i, option := range typed.Options {
			fmt.Fprintf(w, "  %d. %s %s\n", i+1, mark(set && selected == option, false), option)
		}
	case question.MultiChoice:
		for i, option := range typed.Options {
			fmt.Fprintf(w, "  %d. %s %s\n", i+1, mark(quiz.IsSelected(option), true), option)
		}
	case question.FreeText:
		if quiz.Text() == "" {
			fmt.Fprintln(w, "  Answer: (empty)")
		} else {
			fmt.Fprintf(w, "  Answer: %s\n", quiz.Text())
		}
	}
	var controls []string
	if !quiz.IsFirst() {
		controls = append(controls, "back")
	}
	if !quiz.IsLast() {
		controls = append(controls, "next")
	}
	if len(controls) > 0 {
		fmt.Fprintf(w, "  [%s]\n", strings.Join(controls, " | "))
	}
}

func mark(selected, multi bool) string {
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

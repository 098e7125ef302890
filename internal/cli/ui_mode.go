package cli

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// uiMode is the --ui flag value.
type uiMode string

const (
	uiAuto  uiMode = "auto"
	uiLive  uiMode = "live"
	uiPlain uiMode = "plain"
)

// Notes printed when a live request cannot be honoured.
const (
	noteVerbosePlain = "quiz: --verbose writes logs to stderr, so this session uses the plain prompt"
	noteNoTerminal   = "quiz: the live quiz needs a terminal on stdout, so this session uses the plain prompt"
)

// presenter says which front end drives the session.
type presenter struct {
	live bool
	note string
}

// isTerminal reports whether the quiz output goes to a TTY; tests replace it.
var isTerminal = stdoutIsTerminal

func parseUIMode(raw string) (uiMode, error) {
	mode := uiMode(strings.ToLower(strings.TrimSpace(raw)))
	switch mode {
	case "":
		return uiAuto, nil
	case uiAuto, uiLive, uiPlain:
		return mode, nil
	}
	return "", fmt.Errorf("invalid ui mode %q (expected auto|live|plain)", raw)
}

// choosePresenter picks the live screen or the plain prompt. The live screen
// takes over the terminal, so it is never used alongside --verbose logging.
func choosePresenter(raw string, verbose bool, stdout io.Writer) (presenter, error) {
	mode, err := parseUIMode(raw)
	if err != nil {
		return presenter{}, err
	}
	if mode == uiPlain {
		return presenter{}, nil
	}

	var note string
	switch {
	case verbose:
		note = noteVerbosePlain
	case !isTerminal(stdout):
		note = noteNoTerminal
	default:
		return presenter{live: true}, nil
	}
	if mode == uiAuto {
		note = ""
	}
	return presenter{note: note}, nil
}

func stdoutIsTerminal(stdout io.Writer) bool {
	fder, ok := stdout.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(fder.Fd()))
}

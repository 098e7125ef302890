package cli

import (
	"io"
	"testing"
)

func TestParseUIMode(t *testing.T) {
	for raw, want := range map[string]uiMode{"": uiAuto, " Auto ": uiAuto, "LIVE": uiLive, "plain": uiPlain} {
		got, err := parseUIMode(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if got != want {
			t.Fatalf("parse %q: expected %q, got %q", raw, want, got)
		}
	}
	if _, err := parseUIMode("fancy"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

// TestChoosePresenter covers every mode against terminal and verbose state.
func TestChoosePresenter(t *testing.T) {
	cases := []struct {
		name     string
		mode     string
		verbose  bool
		terminal bool
		want     presenter
	}{
		{name: "auto on terminal", mode: "auto", terminal: true, want: presenter{live: true}},
		{name: "auto piped", mode: "auto", want: presenter{}},
		{name: "auto verbose stays quiet", mode: "", verbose: true, terminal: true, want: presenter{}},
		{name: "live on terminal", mode: "live", terminal: true, want: presenter{live: true}},
		{name: "live verbose", mode: "live", verbose: true, terminal: true, want: presenter{note: noteVerbosePlain}},
		{name: "live piped", mode: "live", want: presenter{note: noteNoTerminal}},
		{name: "plain on terminal", mode: "plain", terminal: true, want: presenter{}},
	}

	original := isTerminal
	t.Cleanup(func() { isTerminal = original })

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			isTerminal = func(io.Writer) bool { return tc.terminal }
			got, err := choosePresenter(tc.mode, tc.verbose, io.Discard)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestChoosePresenterRejectsUnknownMode(t *testing.T) {
	if _, err := choosePresenter("nope", false, io.Discard); err == nil {
		t.Fatalf("expected error")
	}
}

func TestStdoutIsTerminalWithoutDescriptor(t *testing.T) {
	if stdoutIsTerminal(io.Discard) {
		t.Fatalf("expected a plain writer not to be a terminal")
	}
}

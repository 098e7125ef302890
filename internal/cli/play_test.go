package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quiz/internal/config"
	"quiz/internal/quizstate"
	"quiz/internal/ui/live"
)

// stubConfig replaces config loading for a test.
func stubConfig(t *testing.T, cfg config.Config) {
	t.Helper()
	original := loadConfig
	loadConfig = func(config.Options) (config.Config, error) { return cfg, nil }
	t.Cleanup(func() { loadConfig = original })
}

// TestPlayPlain verifies a plain session runs over stdin.
func TestPlayPlain(t *testing.T) {
	stubConfig(t, config.Default())
	var out, errOut bytes.Buffer
	code := Run([]string{"play", "--ui", "plain"}, strings.NewReader("true\nnext\nquit\n"), &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, errOut.String())
	}
	if !strings.Contains(out.String(), "Question 2/4") {
		t.Fatalf("expected second question, got:\n%s", out.String())
	}
	if errOut.Len() != 0 {
		t.Fatalf("expected no log lines next to the prompt, got:\n%s", errOut.String())
	}
}

// TestPlayLogFileKeepsConfiguredLevel verifies info logs still reach a log file.
func TestPlayLogFileKeepsConfiguredLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Log.File = filepath.Join(t.TempDir(), "quiz.log")
	stubConfig(t, cfg)
	var out, errOut bytes.Buffer
	code := Run([]string{"play", "--ui", "plain"}, strings.NewReader("next\nquit\n"), &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, errOut.String())
	}
	data, err := os.ReadFile(cfg.Log.File)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "quiz session started") || !strings.Contains(string(data), "quiz session ended") {
		t.Fatalf("expected session logs in file, got:\n%s", data)
	}
	if errOut.Len() != 0 {
		t.Fatalf("expected empty stderr, got:\n%s", errOut.String())
	}
}

func TestPromptLogLevel(t *testing.T) {
	cases := map[string]string{
		"debug": "warn",
		"info":  "warn",
		"warn":  "warn",
		"error": "error",
		"bogus": "bogus",
	}
	for level, want := range cases {
		if got := promptLogLevel(level); got != want {
			t.Fatalf("promptLogLevel(%q): expected %q, got %q", level, want, got)
		}
	}
}

// TestPlayVerboseLogsStateChanges verifies debug logs for state events.
func TestPlayVerboseLogsStateChanges(t *testing.T) {
	stubConfig(t, config.Default())
	var out, errOut bytes.Buffer
	code := Run([]string{"play", "--verbose"}, strings.NewReader("next\n"), &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, errOut.String())
	}
	if !strings.Contains(errOut.String(), "quiz state changed") || !strings.Contains(errOut.String(), `"direction": "forward"`) {
		t.Fatalf("expected state change log, got:\n%s", errOut.String())
	}
}

// TestPlayLive verifies the live UI is chosen on a TTY.
func TestPlayLive(t *testing.T) {
	stubConfig(t, config.Default())
	originalTerminal, originalLive := isTerminal, runLive
	t.Cleanup(func() { isTerminal, runLive = originalTerminal, originalLive })
	isTerminal = func(io.Writer) bool { return true }

	var gotOpts live.Options
	var gotLen int
	runLive = func(_ context.Context, quiz *quizstate.State, _ io.Reader, _ io.Writer, opts live.Options) error {
		gotOpts = opts
		gotLen = quiz.Len()
		return nil
	}

	var out, errOut bytes.Buffer
	code := Run([]string{"play", "--no-color"}, strings.NewReader(""), &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, errOut.String())
	}
	if gotLen != 4 || !gotOpts.NoColor {
		t.Fatalf("unexpected live invocation: len=%d opts=%+v", gotLen, gotOpts)
	}
	if errOut.Len() != 0 {
		t.Fatalf("expected no logs while the live UI owns the terminal, got %q", errOut.String())
	}
}

// TestPlayLiveFailure verifies live UI errors map to ExitError.
func TestPlayLiveFailure(t *testing.T) {
	stubConfig(t, config.Default())
	originalTerminal, originalLive := isTerminal, runLive
	t.Cleanup(func() { isTerminal, runLive = originalTerminal, originalLive })
	isTerminal = func(io.Writer) bool { return true }
	runLive = func(context.Context, *quizstate.State, io.Reader, io.Writer, live.Options) error {
		return errors.New("no tty")
	}

	var out, errOut bytes.Buffer
	if code := Run([]string{"play"}, strings.NewReader(""), &out, &errOut); code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut.String(), "Quiz failed: no tty") {
		t.Fatalf("unexpected stderr %q", errOut.String())
	}
}

// TestPlayInvalidUIMode verifies bad --ui values are usage errors.
func TestPlayInvalidUIMode(t *testing.T) {
	stubConfig(t, config.Default())
	var out, errOut bytes.Buffer
	if code := Run([]string{"play", "--ui", "fancy"}, strings.NewReader(""), &out, &errOut); code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
}

// TestPlayQuestionFile verifies --questions overrides the built-in set.
func TestPlayQuestionFile(t *testing.T) {
	stubConfig(t, config.Default())
	path := filepath.Join(t.TempDir(), "quiz.yml")
	payload := "version: 1\nquestions:\n  - type: free_text\n    question: \"Favourite editor?\"\n"
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write questions: %v", err)
	}

	var out, errOut bytes.Buffer
	code := Run([]string{"play", "--ui", "plain", "--questions", path}, strings.NewReader("text vim\nshow\n"), &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, errOut.String())
	}
	if !strings.Contains(out.String(), "Question 1/1 [free_text]") || !strings.Contains(out.String(), "Answer: vim") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

// TestPlayBadQuestionFile verifies load failures surface.
func TestPlayBadQuestionFile(t *testing.T) {
	stubConfig(t, config.Default())
	var out, errOut bytes.Buffer
	code := Run([]string{"play", "--ui", "plain", "--questions", filepath.Join(t.TempDir(), "missing.yml")}, strings.NewReader(""), &out, &errOut)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut.String(), "Failed to load questions") {
		t.Fatalf("unexpected stderr %q", errOut.String())
	}
}

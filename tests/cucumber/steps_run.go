//go:build cucumber

package cucumber

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"

	"quiz/internal/cli"
)

// aScaffoldedProject creates a temp project and runs the scaffold command in it.
func (s *featureState) aScaffoldedProject(command string) error {
	dir, err := os.MkdirTemp("", "quiz-feature-")
	if err != nil {
		return fmt.Errorf("create project dir: %w", err)
	}
	s.projectDir = dir
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	s.previousWD = wd
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("enter project dir: %w", err)
	}
	if err := s.run(command, ""); err != nil {
		return err
	}
	if s.exitCode != cli.ExitOK {
		return fmt.Errorf("%s failed with %d: %s", command, s.exitCode, s.stderr.String())
	}
	return nil
}

// theQuestionFileIsInvalid overwrites the scaffolded question file.
func (s *featureState) theQuestionFileIsInvalid() error {
	payload := `version: 1
questions:
  - type: single_choice
    question: "Which component manages the app's UI?"
    options: [Activity, Service]
    correct: Fragment
`
	path := filepath.Join(s.projectDir, cli.DefaultQuestionsFile)
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		return fmt.Errorf("write question file: %w", err)
	}
	return nil
}

// iRunCommand executes a CLI command for the scenario.
func (s *featureState) iRunCommand(command string) error {
	return s.run(command, "")
}

// iRunCommandWithInput executes a CLI command with a doc string on stdin.
func (s *featureState) iRunCommandWithInput(command string, input *godog.DocString) error {
	return s.run(command, input.Content+"\n")
}

func (s *featureState) run(command, input string) error {
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "quiz" {
		args = args[1:]
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, strings.NewReader(input), &s.stdout, &s.stderr)
	return nil
}

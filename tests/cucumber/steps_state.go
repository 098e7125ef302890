//go:build cucumber

package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/cucumber/godog"
)

// featureState holds scenario state for cucumber CLI tests.
type featureState struct {
	projectDir string
	previousWD string
	stdout     bytes.Buffer
	stderr     bytes.Buffer
	exitCode   int
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		return ctx, state.cleanup()
	})

	ctx.Step(`^a project scaffolded with "([^"]+)"$`, state.aScaffoldedProject)
	ctx.Step(`^the question file has a single choice answer that is not an option$`, state.theQuestionFileIsInvalid)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^I run "([^"]+)" with input:$`, state.iRunCommandWithInput)
	ctx.Step(`^the exit code is (\d+)$`, state.theExitCodeIs)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
	ctx.Step(`^the output lists these commands:$`, state.theOutputListsCommands)
	ctx.Step(`^the output contains "([^"]+)"$`, state.theOutputContains)
	ctx.Step(`^the error output contains "([^"]+)"$`, state.theErrorOutputContains)
	ctx.Step(`^the last question shown is (\d+) of (\d+) with no answer selected$`, state.theLastQuestionShown)
}

func (s *featureState) reset() {
	s.projectDir = ""
	s.previousWD = ""
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
}

// cleanup restores the working directory and removes the project.
func (s *featureState) cleanup() error {
	if s.previousWD != "" {
		if err := os.Chdir(s.previousWD); err != nil {
			return fmt.Errorf("restore working directory: %w", err)
		}
	}
	if s.projectDir != "" {
		return os.RemoveAll(s.projectDir)
	}
	return nil
}

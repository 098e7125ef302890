//go:build cucumber

package cucumber

import (
	"fmt"
	"strings"

	"github.com/cucumber/godog"
)

// theExitCodeIs checks the exit code.
func (s *featureState) theExitCodeIs(code int) error {
	if s.exitCode != code {
		return fmt.Errorf("expected exit code %d, got %d (stderr: %s)", code, s.exitCode, s.stderr.String())
	}
	return nil
}

// theExitCodeIsNonZero checks for failure.
func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit code")
	}
	return nil
}

// theOutputListsCommands checks every listed command appears in usage.
func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		if len(row.Cells) == 0 {
			continue
		}
		name := strings.TrimSpace(row.Cells[0].Value)
		if !strings.Contains(output, "  "+name+" ") {
			return fmt.Errorf("expected command %q in output:\n%s", name, output)
		}
	}
	return nil
}

// theOutputContains checks stdout for a fragment.
func (s *featureState) theOutputContains(fragment string) error {
	if !strings.Contains(s.stdout.String(), fragment) {
		return fmt.Errorf("expected %q in output:\n%s", fragment, s.stdout.String())
	}
	return nil
}

// theErrorOutputContains checks stderr for a fragment.
func (s *featureState) theErrorOutputContains(fragment string) error {
	if !strings.Contains(s.stderr.String(), fragment) {
		return fmt.Errorf("expected %q in error output:\n%s", fragment, s.stderr.String())
	}
	return nil
}

// theLastQuestionShown checks the final rendered question has cleared buffers.
func (s *featureState) theLastQuestionShown(position, total int) error {
	output := s.stdout.String()
	header := fmt.Sprintf("Question %d/%d", position, total)
	last := strings.LastIndex(output, "\nQuestion ")
	if last == -1 {
		return fmt.Errorf("no question rendered:\n%s", output)
	}
	block := output[last+1:]
	if !strings.HasPrefix(block, header) {
		return fmt.Errorf("expected last question %s, got:\n%s", header, block)
	}
	if strings.Contains(block, "(•)") || strings.Contains(block, "[x]") {
		return fmt.Errorf("expected no selection after navigation:\n%s", block)
	}
	return nil
}

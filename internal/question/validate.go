package question

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a question set.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question set validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Validate checks that a question set can back a quiz session.
func Validate(questions []Question) error {
	collector := &issueCollector{}
	validateInto(collector, questions)
	return collector.result()
}

func validateInto(collector *issueCollector, questions []Question) {
	if len(questions) == 0 {
		collector.add("questions", "must include at least one entry")
		return
	}
	for i, q := range questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		if q == nil {
			collector.add(prefix, "is nil")
			continue
		}
		if strings.TrimSpace(q.Text()) == "" {
			collector.add(prefix+".question", "is required")
		}
		switch typed := q.(type) {
		case SingleChoice:
			validateOptions(collector, prefix, typed.Options)
			if strings.TrimSpace(typed.Correct) == "" {
				collector.add(prefix+".correct", "is required")
			} else if _, ok := FindOption(typed.Options, typed.Correct); !ok {
				collector.add(prefix+".correct", fmt.Sprintf("unknown option %q", typed.Correct))
			}
		case MultiChoice:
			validateOptions(collector, prefix, typed.Options)
			if len(typed.Correct) == 0 {
				collector.add(prefix+".correct_answers", "must include at least one entry")
			}
			seen := map[string]struct{}{}
			for j, correct := range typed.Correct {
				field := fmt.Sprintf("%s.correct_answers[%d]", prefix, j)
				if _, ok := FindOption(typed.Options, correct); !ok {
					collector.add(field, fmt.Sprintf("unknown option %q", correct))
					continue
				}
				key := NormalizeOption(correct)
				if _, dup := seen[key]; dup {
					collector.add(field, fmt.Sprintf("duplicate answer %q", correct))
				}
				seen[key] = struct{}{}
			}
		}
	}
}

func validateOptions(collector *issueCollector, prefix string, options []string) {
	if len(options) == 0 {
		collector.add(prefix+".options", "must include at least one entry")
		return
	}
	seen := map[string]struct{}{}
	for i, option := range options {
		field := fmt.Sprintf("%s.options[%d]", prefix, i)
		key := NormalizeOption(option)
		if key == "" {
			collector.add(field, "is required")
			continue
		}
		if _, dup := seen[key]; dup {
			collector.add(field, fmt.Sprintf("duplicate option %q", option))
		}
		seen[key] = struct{}{}
	}
}

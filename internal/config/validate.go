package config

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// issueCollector accumulates validation issues.
type issueCollector struct {
	issues []Issue
}

// add records a new validation issue.
func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

// result returns a ValidationError when issues are present.
func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

// Validate checks enum fields and the log level.
func Validate(cfg *Config) error {
	collector := &issueCollector{}
	switch cfg.Env {
	case "local", "development", "production":
	case "":
		collector.add("env", "is required")
	default:
		collector.add("env", fmt.Sprintf("unsupported env %q (expected local|development|production)", cfg.Env))
	}
	switch cfg.UI {
	case "auto", "live", "plain":
	default:
		collector.add("ui", fmt.Sprintf("invalid ui mode %q (expected auto|live|plain)", cfg.UI))
	}
	if _, err := zapcore.ParseLevel(cfg.Log.Level); err != nil {
		collector.add("log.level", fmt.Sprintf("unknown level %q", cfg.Log.Level))
	}
	return collector.result()
}

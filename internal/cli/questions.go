package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"quiz/internal/question"
)

// runQuestions builds the handler for the questions command.
func runQuestions(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		settings := addSettingsFlags(flags)
		format := flags.String("format", "text", "Output format: text|yaml")
		if code, err := parseFlags(cmd, flags, args, stdout, stderr); err != nil {
			return code
		}

		cfg, err := settings.load(flags)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		questions, err := loadQuestions(cfg.Questions)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load questions:\n%v\n", err)
			return ExitError
		}

		switch strings.ToLower(strings.TrimSpace(*format)) {
		case "text":
			writeQuestionList(stdout, questions)
		case "yaml":
			if err := writeQuestionYAML(stdout, questions); err != nil {
				fmt.Fprintf(stderr, "Failed to encode questions: %v\n", err)
				return ExitError
			}
		default:
			fmt.Fprintf(stderr, "invalid format %q (expected text|yaml)\n", *format)
			return ExitUsage
		}
		return ExitOK
	}
}

// writeQuestionList prints a numbered overview of the question set.
func writeQuestionList(w io.Writer, questions []question.Question) {
	for i, q := range questions {
		fmt.Fprintf(w, "%d. [%s] %s\n", i+1, q.Kind(), q.Text())
		for _, option := range question.Options(q) {
			fmt.Fprintf(w, "   - %s\n", option)
		}
	}
}

// writeQuestionYAML encodes the question set in question file format.
func writeQuestionYAML(w io.Writer, questions []question.Question) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(question.ToFile(questions)); err != nil {
		return err
	}
	return encoder.Close()
}

package cli

import (
	"flag"
	"fmt"
	"io"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		settings := addSettingsFlags(flags)
		if code, err := parseFlags(cmd, flags, args, stdout, stderr); err != nil {
			return code
		}

		cfg, err := settings.load(flags)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		fmt.Fprintln(stdout, "Config OK")

		questions, err := loadQuestions(cfg.Questions)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		source := cfg.Questions
		if source == "" {
			source = "built-in set"
		}
		fmt.Fprintf(stdout, "Questions OK: %d from %s\n", len(questions), source)
		return ExitOK
	}
}

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

// errHelpShown reports that parseFlags already printed usage for -h.
var errHelpShown = errors.New("help shown")

// parseFlags parses args and rejects positional arguments. It returns the
// exit code to use when parsing does not succeed.
func parseFlags(cmd *Command, flags *flag.FlagSet, args []string, stdout, stderr io.Writer) (int, error) {
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return ExitOK, errHelpShown
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage, err
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
		printCommandUsage(cmd, stderr)
		return ExitUsage, fmt.Errorf("unexpected arguments")
	}
	return ExitOK, nil
}

// flagWasSet reports whether name was passed explicitly.
func flagWasSet(flags *flag.FlagSet, name string) bool {
	set := false
	flags.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

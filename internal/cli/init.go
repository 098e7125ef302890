package cli

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"quiz/internal/config"
	"quiz/internal/question"
)

// DefaultQuestionsFile is the question file written by init.
const DefaultQuestionsFile = "questions.yml"

// runInit builds the handler for the init command.
func runInit(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		dir := flags.String("dir", ".", "Directory to scaffold into")
		force := flags.Bool("force", false, "Overwrite existing files")
		if code, err := parseFlags(cmd, flags, args, stdout, stderr); err != nil {
			return code
		}

		configPath := config.ConfigPath(*dir)
		questionsPath := filepath.Join(*dir, DefaultQuestionsFile)
		if !*force {
			for _, path := range []string{configPath, questionsPath} {
				if _, err := os.Stat(path); err == nil {
					fmt.Fprintf(stderr, "Init failed: %s already exists (use --force to overwrite)\n", path)
					return ExitError
				}
			}
		}

		configBody, err := renderConfigScaffold()
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		var questionsBody bytes.Buffer
		if err := writeQuestionYAML(&questionsBody, question.Default()); err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}

		if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
			fmt.Fprintf(stderr, "Init failed: create config dir: %v\n", err)
			return ExitError
		}
		if err := os.WriteFile(configPath, configBody, 0o644); err != nil {
			fmt.Fprintf(stderr, "Init failed: write config: %v\n", err)
			return ExitError
		}
		if err := os.WriteFile(questionsPath, questionsBody.Bytes(), 0o644); err != nil {
			fmt.Fprintf(stderr, "Init failed: write questions: %v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Wrote %s\n", configPath)
		fmt.Fprintf(stdout, "Wrote %s\n", questionsPath)
		return ExitOK
	}
}

// configScaffold mirrors config.Config with yaml tags for writing.
type configScaffold struct {
	Env       string `yaml:"env"`
	UI        string `yaml:"ui"`
	NoColor   bool   `yaml:"no_color"`
	Questions string `yaml:"questions"`
	Log       struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"log"`
}

// renderConfigScaffold returns the default config pointing at the scaffolded question file.
func renderConfigScaffold() ([]byte, error) {
	defaults := config.Default()
	scaffold := configScaffold{
		Env:       defaults.Env,
		UI:        defaults.UI,
		NoColor:   defaults.NoColor,
		Questions: DefaultQuestionsFile,
	}
	scaffold.Log.Level = defaults.Log.Level
	data, err := yaml.Marshal(scaffold)
	if err != nil {
		return nil, fmt.Errorf("render config: %w", err)
	}
	return data, nil
}

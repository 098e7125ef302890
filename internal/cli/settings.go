package cli

import (
	"flag"

	"quiz/internal/config"
	"quiz/internal/question"
)

// settingsFlags are the flags shared by commands that read configuration.
type settingsFlags struct {
	configPath *string
	questions  *string
}

func addSettingsFlags(flags *flag.FlagSet) settingsFlags {
	return settingsFlags{
		configPath: flags.String("config", "", "Path to config file (default: search for .quiz/config.yml)"),
		questions:  flags.String("questions", "", "Path to a question file (default: built-in set)"),
	}
}

// loadConfig is swapped in tests.
var loadConfig = config.Load

// load reads configuration and applies flag overrides.
func (s settingsFlags) load(flags *flag.FlagSet) (config.Config, error) {
	cfg, err := loadConfig(config.Options{
		Path:    *s.configPath,
		EnvFile: config.EnvFileName,
	})
	if err != nil {
		return config.Config{}, err
	}
	if flagWasSet(flags, "questions") {
		cfg.Questions = *s.questions
	}
	return cfg, nil
}

// loadQuestions returns the configured question file or the built-in set.
func loadQuestions(path string) ([]question.Question, error) {
	if path == "" {
		return question.Default(), nil
	}
	return question.LoadSet(path)
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. QUIZ_LOG_LEVEL.
const EnvPrefix = "QUIZ"

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env       string `mapstructure:"env"`       // local, development or production
	UI        string `mapstructure:"ui"`        // auto, live or plain
	NoColor   bool   `mapstructure:"no_color"`  // disable styled output
	Questions string `mapstructure:"questions"` // optional question file; empty means built-in set
	Log       Log    `mapstructure:"log"`       // logging section
}

// Log contains logging configuration.
type Log struct {
	Level string `mapstructure:"level"` // zap level name
	File  string `mapstructure:"file"`  // log file path; empty means stderr in plain mode and no logs in live mode
}

// Options controls where Load looks for configuration.
type Options struct {
	// Path is an explicit config file. When empty the loader searches upward
	// from StartDir and treats a missing file as defaults.
	Path     string
	StartDir string
	// EnvFile is loaded into the process environment before reading
	// overrides. A missing file is ignored.
	EnvFile string
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Env: "local",
		UI:  "auto",
		Log: Log{Level: "info"},
	}
}

// Load reads configuration from an optional config file and QUIZ_* environment variables.
func Load(opts Options) (Config, error) {
	if err := loadEnvFile(opts.EnvFile); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetConfigType("yaml")

	defaults := Default()
	v.SetDefault("env", defaults.Env)
	v.SetDefault("ui", defaults.UI)
	v.SetDefault("no_color", defaults.NoColor)
	v.SetDefault("questions", defaults.Questions)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.file", defaults.Log.File)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath, err := resolveConfigPath(opts)
	if err != nil {
		return Config{}, err
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if configPath != "" {
		Normalize(&cfg, BaseDirFromConfigPath(configPath))
	} else {
		Normalize(&cfg, "")
	}
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func resolveConfigPath(opts Options) (string, error) {
	if strings.TrimSpace(opts.Path) != "" {
		return opts.Path, nil
	}
	path, err := FindConfigPath(opts.StartDir)
	if errors.Is(err, ErrConfigNotFound) {
		return "", nil
	}
	return path, err
}

func loadEnvFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat env file: %w", err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// Normalize lowercases enum fields and resolves the question file against baseDir.
func Normalize(cfg *Config, baseDir string) {
	cfg.Env = strings.ToLower(strings.TrimSpace(cfg.Env))
	cfg.UI = strings.ToLower(strings.TrimSpace(cfg.UI))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Questions = strings.TrimSpace(cfg.Questions)
	if cfg.Questions != "" && baseDir != "" && !filepath.IsAbs(cfg.Questions) {
		cfg.Questions = filepath.Join(baseDir, cfg.Questions)
	}
	cfg.Log.File = strings.TrimSpace(cfg.Log.File)
}

package logger

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"quiz/internal/config"
)

// New builds a zap logger for the configured environment. Production uses
// JSON output, everything else the console encoder.
//
// Logs go to cfg.Log.File when set and to out otherwise. When ownsTerminal
// is set and no log file is configured, logs are dropped so they do not
// corrupt the live UI.
func New(cfg config.Config, ownsTerminal bool, out io.Writer) (*zap.Logger, error) {
	if ownsTerminal && cfg.Log.File == "" {
		return zap.NewNop(), nil
	}
	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	var zc zap.Config
	if cfg.Env == "production" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	if cfg.Log.File == "" && out != nil {
		var encoder zapcore.Encoder
		if zc.Encoding == "json" {
			encoder = zapcore.NewJSONEncoder(zc.EncoderConfig)
		} else {
			encoder = zapcore.NewConsoleEncoder(zc.EncoderConfig)
		}
		core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(out)), zc.Level)
		return zap.New(core, zap.AddCaller()), nil
	}

	if cfg.Log.File != "" {
		zc.OutputPaths = []string{cfg.Log.File}
		zc.ErrorOutputPaths = []string{cfg.Log.File}
	}
	log, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return log, nil
}

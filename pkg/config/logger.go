package config

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a configured zap logger.
// Level is one of debug, info, warn, error (default "info"); format is
// "json" or "console" (default "console").
func NewLogger(c LoggingConfig) (*zap.Logger, error) {
	level := c.Level
	if level == "" {
		level = "info"
	}
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("config: invalid log level %q: %w", level, err)
	}

	var cfg zap.Config
	switch c.Format {
	case "json":
		cfg = zap.NewProductionConfig()
	case "console", "":
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("config: invalid log format %q: must be \"json\" or \"console\"", c.Format)
	}

	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	// Logs go to stderr so command output on stdout stays clean.
	cfg.OutputPaths = []string{"stderr"}

	return cfg.Build()
}

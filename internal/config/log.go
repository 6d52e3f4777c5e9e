package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/duel-check/internal/errors"
)

// LogConfig holds settings for the structured logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string

	// Format is console or json.
	Format string

	// Caller adds the calling file and line to each entry.
	Caller bool
}

// NewLogConfig creates a LogConfig with default values.
// Only warnings and worse are logged unless asked otherwise.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level:  "warn",
		Format: "console",
	}
}

// Validate checks that the level and format are known.
func (l *LogConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q: %w", l.Level, errors.ErrInvalidConfig)
	}
	switch strings.ToLower(l.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format %q: %w", l.Format, errors.ErrInvalidConfig)
	}
	return nil
}

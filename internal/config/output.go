package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/duel-check/internal/errors"
)

// OutputFormat represents how results are written.
type OutputFormat int

const (
	TextFormat OutputFormat = iota // one outcome code per board
	JSONFormat                     // a JSON array of results
)

// String returns the name used on the command line and in config files.
func (f OutputFormat) String() string {
	switch f {
	case TextFormat:
		return "text"
	case JSONFormat:
		return "json"
	}
	return "unknown"
}

// ParseOutputFormat converts a format name to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return TextFormat, nil
	case "json":
		return JSONFormat, nil
	}
	return TextFormat, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format selects text or JSON results
	Format OutputFormat

	// IncludeFEN adds the board's FEN placement to each result
	IncludeFEN bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format: TextFormat,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Format != TextFormat && o.Format != JSONFormat {
		return fmt.Errorf("output format %d: %w", o.Format, errors.ErrInvalidConfig)
	}
	return nil
}

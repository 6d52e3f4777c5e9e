// Package config provides configuration for duel-check.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/duel-check/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Output OutputConfig
	Log    LogConfig
	Input  InputConfig

	// Workers is the number of boards evaluated in parallel in batch mode.
	Workers int

	// Output streams
	OutputFile io.Writer // results
	ErrorFile  io.Writer // "ERROR: ..." lines and logs
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Output:     *NewOutputConfig(),
		Log:        *NewLogConfig(),
		Input:      *NewInputConfig(),
		Workers:    runtime.NumCPU(),
		OutputFile: os.Stdout,
		ErrorFile:  os.Stderr,
	}
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	return c.Input.Validate()
}

// InputConfig holds settings for board file arguments.
type InputConfig struct {
	// Strict accepts exactly one board file whose name ends in Extension.
	Strict bool

	// Extension is the required file name suffix in strict mode.
	Extension string
}

// NewInputConfig creates an InputConfig with default values.
func NewInputConfig() *InputConfig {
	return &InputConfig{
		Strict:    true,
		Extension: ".txt",
	}
}

// Validate checks that the input configuration is usable.
func (i *InputConfig) Validate() error {
	if i.Strict && i.Extension == "" {
		return fmt.Errorf("strict input needs a file extension: %w", errors.ErrInvalidConfig)
	}
	return nil
}

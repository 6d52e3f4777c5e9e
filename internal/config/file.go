package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"github.com/lgbarn/duel-check/internal/errors"
)

// fileConfig mirrors the YAML layout. Pointer fields distinguish a missing
// key from a zero value so defaults survive partial files.
type fileConfig struct {
	Workers *int `yaml:"workers"`
	Output  struct {
		Format *string `yaml:"format"`
		FEN    *bool   `yaml:"fen"`
	} `yaml:"output"`
	Log struct {
		Level  *string `yaml:"level"`
		Format *string `yaml:"format"`
		Caller *bool   `yaml:"caller"`
	} `yaml:"log"`
	Input struct {
		Strict    *bool   `yaml:"strict"`
		Extension *string `yaml:"extension"`
	} `yaml:"input"`
}

// LoadFile applies the YAML file at path on top of cfg.
func LoadFile(cfg *Config, path string) error {
	raw, err := os.ReadFile(path) //nolint:gosec // G304: config path comes from the user
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := Apply(cfg, raw); err != nil {
		return errors.Wrap(err, path)
	}
	return nil
}

// Apply decodes YAML from raw and applies every key present to cfg.
// Unknown keys are rejected. An empty document changes nothing.
func Apply(cfg *Config, raw []byte) error {
	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%v: %w", err, errors.ErrInvalidConfig)
	}

	if fc.Workers != nil {
		cfg.Workers = *fc.Workers
	}
	if fc.Output.Format != nil {
		format, err := ParseOutputFormat(*fc.Output.Format)
		if err != nil {
			return err
		}
		cfg.Output.Format = format
	}
	if fc.Output.FEN != nil {
		cfg.Output.IncludeFEN = *fc.Output.FEN
	}
	if fc.Log.Level != nil {
		cfg.Log.Level = *fc.Log.Level
	}
	if fc.Log.Format != nil {
		cfg.Log.Format = *fc.Log.Format
	}
	if fc.Log.Caller != nil {
		cfg.Log.Caller = *fc.Log.Caller
	}
	if fc.Input.Strict != nil {
		cfg.Input.Strict = *fc.Input.Strict
	}
	if fc.Input.Extension != nil {
		cfg.Input.Extension = *fc.Input.Extension
	}
	return nil
}

// ApplyEnv applies DUEL_* environment overrides using getenv.
// Blank values are ignored.
func ApplyEnv(cfg *Config, getenv func(string) string) error {
	if v := strings.TrimSpace(getenv("DUEL_LOG_LEVEL")); v != "" {
		cfg.Log.Level = v
	}
	if v := strings.TrimSpace(getenv("DUEL_LOG_FORMAT")); v != "" {
		cfg.Log.Format = v
	}
	if v := strings.TrimSpace(getenv("DUEL_WORKERS")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("DUEL_WORKERS=%q: %w", v, errors.ErrInvalidConfig)
		}
		cfg.Workers = n
	}
	return nil
}

package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build validates and returns the built Config.
func (b *ConfigBuilder) Build() (*Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// WithFile applies the YAML config file at path.
func (b *ConfigBuilder) WithFile(path string) (*ConfigBuilder, error) {
	if err := LoadFile(b.cfg, path); err != nil {
		return nil, err
	}
	return b, nil
}

// WithEnv applies the DUEL_* environment overrides read through getenv.
func (b *ConfigBuilder) WithEnv(getenv func(string) string) (*ConfigBuilder, error) {
	if err := ApplyEnv(b.cfg, getenv); err != nil {
		return nil, err
	}
	return b, nil
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithFEN enables FEN placement in results.
func (b *ConfigBuilder) WithFEN(enabled bool) *ConfigBuilder {
	b.cfg.Output.IncludeFEN = enabled
	return b
}

// WithLogLevel sets the log level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithLogFormat sets the log encoder.
func (b *ConfigBuilder) WithLogFormat(format string) *ConfigBuilder {
	b.cfg.Log.Format = format
	return b
}

// WithStrictInput controls single-file argument checking.
func (b *ConfigBuilder) WithStrictInput(strict bool) *ConfigBuilder {
	b.cfg.Input.Strict = strict
	return b
}

// WithWorkers sets the batch worker count.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithOutput sets the result writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithErrorOutput sets the writer for error lines and logs.
func (b *ConfigBuilder) WithErrorOutput(w io.Writer) *ConfigBuilder {
	b.cfg.ErrorFile = w
	return b
}

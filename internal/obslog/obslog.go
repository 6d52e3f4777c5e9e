// Package obslog holds the process-wide zap logger.
package obslog

import (
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lgbarn/duel-check/internal/config"
)

// L returns the global logger. It is a no-op logger until Init is called.
// The global lives in zap, which guards it with a mutex.
func L() *zap.Logger { return zap.L() }

// Init builds a logger from cfg writing to w and installs it globally.
// The returned func restores the previous global logger.
func Init(cfg config.LogConfig, w io.Writer) (*zap.Logger, func()) {
	logger := New(cfg, w)
	return logger, zap.ReplaceGlobals(logger)
}

// New builds a logger from cfg writing to w.
func New(cfg config.LogConfig, w io.Writer) *zap.Logger {
	var enc zapcore.Encoder
	if strings.EqualFold(strings.TrimSpace(cfg.Format), "json") {
		enc = zapcore.NewJSONEncoder(jsonEncoderConfig())
	} else {
		enc = zapcore.NewConsoleEncoder(consoleEncoderConfig())
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), ParseLevel(cfg.Level))
	logger := zap.New(core)
	if cfg.Caller {
		logger = logger.WithOptions(zap.AddCaller())
	}
	return logger
}

// Sync flushes the global logger.
func Sync() {
	_ = zap.L().Sync()
}

// ParseLevel converts a level name to a zap level, defaulting to info.
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func consoleEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.ConsoleSeparator = " | "
	return cfg
}

func jsonEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	return cfg
}

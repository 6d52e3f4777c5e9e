// duel-check reads two-piece chess boards and reports which piece can capture the other.
package main

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lgbarn/duel-check/internal/config"
	"github.com/lgbarn/duel-check/internal/errors"
	"github.com/lgbarn/duel-check/internal/obslog"
	"github.com/lgbarn/duel-check/internal/output"
)

const programVersion = "0.1.0"

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1 // at least one board could not be evaluated
	exitUsage   = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, os.Getenv))
}

// run is the whole program. It returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	fs, opts := newFlagSet(stderr)
	if err := fs.Parse(args); err != nil {
		if stderrors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if opts.version {
		fmt.Fprintf(stdout, "duel-check version %s\n", programVersion)
		return exitOK
	}

	cfg, err := loadConfig(fs, opts, getenv, stdout, stderr)
	if err != nil {
		reportError(stderr, err)
		return exitUsage
	}

	base, restore := obslog.Init(cfg.Log, stderr)
	defer restore()
	defer obslog.Sync()
	logger := base.With(zap.String("run_id", uuid.NewString()))

	paths := fs.Args()
	if err := checkArgs(paths, &cfg.Input); err != nil {
		logger.Debug("arguments_rejected", zap.Strings("args", paths), zap.Error(err))
		reportError(stderr, err)
		return exitUsage
	}

	results, err := processBoards(ctx, cfg, paths, logger)
	if err != nil {
		reportError(stderr, err)
		return exitFailure
	}

	writer := output.NewWriter(cfg, len(paths) > 1)
	for _, r := range results {
		if err := writer.WriteResult(r); err != nil {
			reportError(stderr, err)
			return exitFailure
		}
	}
	if err := writer.Close(); err != nil {
		reportError(stderr, err)
		return exitFailure
	}

	stats := summarize(results)
	logger.Info("run_complete",
		zap.Int("boards", stats.total),
		zap.Int("failed", stats.failed),
		zap.Any("outcomes", stats.outcomes),
	)
	if stats.failed > 0 {
		return exitFailure
	}
	return exitOK
}

// loadConfig builds the configuration from defaults, the optional config
// file, the environment and finally the command-line flags.
func loadConfig(fs *flag.FlagSet, opts *options, getenv func(string) string, stdout, stderr io.Writer) (*config.Config, error) {
	b := config.NewConfigBuilder().WithOutput(stdout).WithErrorOutput(stderr)
	var err error
	if opts.configPath != "" {
		if b, err = b.WithFile(opts.configPath); err != nil {
			return nil, err
		}
	}
	if b, err = b.WithEnv(getenv); err != nil {
		return nil, err
	}
	applyFlags(fs, opts, b)
	return b.Build()
}

// checkArgs rejects argument lists the input mode cannot accept.
func checkArgs(paths []string, in *config.InputConfig) error {
	if len(paths) == 0 {
		return &errors.UsageError{Reason: "not enough arguments"}
	}
	if !in.Strict {
		return nil
	}
	if len(paths) > 1 {
		return &errors.UsageError{Reason: "too many arguments passed"}
	}
	if !strings.HasSuffix(paths[0], in.Extension) {
		return &errors.UsageError{Reason: "arguments should be entered in format: <file" + in.Extension + ">"}
	}
	return nil
}

func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s%v\n", output.ErrorPrefix, err)
}

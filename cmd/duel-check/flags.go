// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/lgbarn/duel-check/internal/config"
)

// options holds the parsed command-line flags.
type options struct {
	configPath string
	jsonOutput bool
	showFEN    bool
	workers    int
	logLevel   string
	logFormat  string
	strict     bool
	version    bool
}

// newFlagSet defines every flag on a fresh FlagSet writing usage to stderr.
func newFlagSet(stderr io.Writer) (*flag.FlagSet, *options) {
	opts := &options{}
	fs := flag.NewFlagSet("duel-check", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Input options
	fs.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	fs.BoolVar(&opts.strict, "strict", true, "Accept exactly one board file ending in .txt")

	// Output options
	fs.BoolVar(&opts.jsonOutput, "json", false, "Output results as JSON")
	fs.BoolVar(&opts.showFEN, "fen", false, "Append the FEN piece placement to each result")

	// Processing options
	fs.IntVar(&opts.workers, "j", 0, "Boards evaluated in parallel (default: number of CPUs)")

	// Logging options
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (default: warn)")
	fs.StringVar(&opts.logFormat, "log-format", "", "Log format: console, json (default: console)")

	fs.BoolVar(&opts.version, "version", false, "Print version and exit")

	fs.Usage = func() { usage(fs, stderr) }
	return fs, opts
}

// applyFlags copies the flags given on the command line into b. Flags left
// at their defaults do not override the config file or environment.
func applyFlags(fs *flag.FlagSet, opts *options, b *config.ConfigBuilder) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "strict":
			b.WithStrictInput(opts.strict)
		case "json":
			if opts.jsonOutput {
				b.WithOutputFormat(config.JSONFormat)
			} else {
				b.WithOutputFormat(config.TextFormat)
			}
		case "fen":
			b.WithFEN(opts.showFEN)
		case "j":
			b.WithWorkers(opts.workers)
		case "log-level":
			b.WithLogLevel(opts.logLevel)
		case "log-format":
			b.WithLogFormat(opts.logFormat)
		}
	})
}

func usage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, "Usage: duel-check [options] <board.txt> [more.txt...]\n\n")
	fmt.Fprintf(w, "Decides which of two pieces on an 8x8 board can capture the other.\n\n")
	fmt.Fprintf(w, "Options:\n")
	fs.PrintDefaults()
	fmt.Fprintf(w, "\nOutcome codes:\n")
	fmt.Fprintf(w, "  E  both pieces can capture (draw)\n")
	fmt.Fprintf(w, "  B  only the white piece can capture\n")
	fmt.Fprintf(w, "  N  only the black piece can capture\n")
	fmt.Fprintf(w, "  P  neither piece can capture\n")
}

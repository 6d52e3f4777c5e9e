// Package output writes capture-test results as text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/duel-check/internal/config"
	"github.com/lgbarn/duel-check/internal/engine"
)

// ErrorPrefix starts every error line written for a failed board.
const ErrorPrefix = "ERROR: "

// Result is the outcome of processing one board file.
type Result struct {
	Index   int // position in the argument list
	Path    string
	Verdict engine.Verdict
	Err     error
}

// ResultWriter is the interface for writing results to output.
type ResultWriter interface {
	// WriteResult writes a single result.
	WriteResult(r Result) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close flushes and releases the writer.
	Close() error
}

// NewWriter returns the writer for cfg's output format. showPath prefixes
// text results with their file name, which batch mode needs.
func NewWriter(cfg *config.Config, showPath bool) ResultWriter {
	if cfg.Output.Format == config.JSONFormat {
		return NewJSONWriter(cfg.OutputFile, &cfg.Output)
	}
	return NewTextWriter(cfg.OutputFile, cfg.ErrorFile, &cfg.Output, showPath)
}

// TextWriter writes one outcome code per line. Failed boards are written to
// the error stream as "ERROR: <message>".
type TextWriter struct {
	w        io.Writer
	errW     io.Writer
	cfg      *config.OutputConfig
	showPath bool
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w, errW io.Writer, cfg *config.OutputConfig, showPath bool) *TextWriter {
	return &TextWriter{
		w:        w,
		errW:     errW,
		cfg:      cfg,
		showPath: showPath,
	}
}

// WriteResult writes a result line.
func (tw *TextWriter) WriteResult(r Result) error {
	prefix := ""
	if tw.showPath {
		prefix = r.Path + ": "
	}

	if r.Err != nil {
		_, err := fmt.Fprintf(tw.errW, "%s%s%v\n", ErrorPrefix, prefix, r.Err)
		return err
	}

	line := prefix + r.Verdict.Outcome.String()
	if tw.cfg.IncludeFEN {
		line += " " + BoardFEN(r.Verdict.Board)
	}
	_, err := fmt.Fprintln(tw.w, line)
	return err
}

// Flush is a no-op; text results are written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter buffers results and writes them as a JSON object on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	cfg     *config.OutputConfig
	results []*JSONResult
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer, cfg *config.OutputConfig) *JSONWriter {
	return &JSONWriter{
		w:       w,
		cfg:     cfg,
		results: make([]*JSONResult, 0),
	}
}

// WriteResult buffers a result for JSON output.
func (jw *JSONWriter) WriteResult(r Result) error {
	jw.results = append(jw.results, ResultToJSON(r, jw.cfg))
	return nil
}

// Flush writes all buffered results.
func (jw *JSONWriter) Flush() error {
	if len(jw.results) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Results: jw.results})

	// Clear buffer after writing
	jw.results = jw.results[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

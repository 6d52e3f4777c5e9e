// Package errors provides sentinel errors and error types for duel-check.
// Every structured error unwraps to one of the sentinels, so callers can
// branch with errors.Is() and pull details out with errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lgbarn/duel-check/internal/chess"
)

// Sentinel errors for board validation and program setup.
var (
	// ErrRowCount indicates the board does not have BoardSize rows.
	ErrRowCount = errors.New("wrong row count")

	// ErrRowLength indicates a row is not RowLength characters long.
	ErrRowLength = errors.New("wrong row length")

	// ErrInvalidPiece indicates a token that is neither empty nor a kind code.
	ErrInvalidPiece = errors.New("invalid piece")

	// ErrDuplicatePiece indicates a second piece of a colour.
	ErrDuplicatePiece = errors.New("duplicate piece")

	// ErrMissingPiece indicates a colour with no piece on the board.
	ErrMissingPiece = errors.New("missing piece")

	// ErrUsage indicates bad command-line arguments.
	ErrUsage = errors.New("usage error")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// RowCountError reports a board with the wrong number of rows.
type RowCountError struct {
	Expected int
	Actual   int
}

func (e *RowCountError) Error() string {
	return fmt.Sprintf("board formatted incorrectly. Board has %d rows, expected %d", e.Actual, e.Expected)
}

// Unwrap returns ErrRowCount.
func (e *RowCountError) Unwrap() error { return ErrRowCount }

// RowLengthError reports a row with the wrong number of characters.
type RowLengthError struct {
	Row      int // 0-based row index
	Expected int
	Actual   int
}

func (e *RowLengthError) Error() string {
	return fmt.Sprintf("board formatted incorrectly. Row number %d has %d characters, expected %d",
		e.Row, e.Actual, e.Expected)
}

// Unwrap returns ErrRowLength.
func (e *RowLengthError) Unwrap() error { return ErrRowLength }

// InvalidPieceError reports a token that is not a valid cell.
// Token holds either the whole multi-character token or the single bad character.
type InvalidPieceError struct {
	Token string
}

func (e *InvalidPieceError) Error() string {
	return "invalid piece: " + e.Token
}

// Unwrap returns ErrInvalidPiece.
func (e *InvalidPieceError) Unwrap() error { return ErrInvalidPiece }

// DuplicatePieceError reports a second piece of the same colour.
type DuplicatePieceError struct {
	Colour chess.Colour
}

func (e *DuplicatePieceError) Error() string {
	return fmt.Sprintf("more than one %s piece inserted", strings.ToLower(e.Colour.String()))
}

// Unwrap returns ErrDuplicatePiece.
func (e *DuplicatePieceError) Unwrap() error { return ErrDuplicatePiece }

// MissingPieceError reports a colour with no piece.
type MissingPieceError struct {
	Colour chess.Colour
}

func (e *MissingPieceError) Error() string {
	return fmt.Sprintf("no %s piece inserted", strings.ToLower(e.Colour.String()))
}

// Unwrap returns ErrMissingPiece.
func (e *MissingPieceError) Unwrap() error { return ErrMissingPiece }

// UsageError reports command-line arguments that cannot be accepted.
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string { return e.Reason }

// Unwrap returns ErrUsage.
func (e *UsageError) Unwrap() error { return ErrUsage }

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

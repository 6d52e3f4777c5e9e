package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/lgbarn/duel-check/internal/chess"
)

// TestStructuredErrors_Is verifies each structured error unwraps to its sentinel
func TestStructuredErrors_Is(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"RowCountError", &RowCountError{Expected: 8, Actual: 9}, ErrRowCount},
		{"RowLengthError", &RowLengthError{Row: 4, Expected: 15, Actual: 17}, ErrRowLength},
		{"InvalidPieceError", &InvalidPieceError{Token: "x"}, ErrInvalidPiece},
		{"DuplicatePieceError", &DuplicatePieceError{Colour: chess.Black}, ErrDuplicatePiece},
		{"MissingPieceError", &MissingPieceError{Colour: chess.White}, ErrMissingPiece},
		{"UsageError", &UsageError{Reason: "not enough arguments"}, ErrUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
			wrapped := fmt.Errorf("board.txt: %w", tt.err)
			if !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("errors.Is(wrapped %v, %v) = false, want true", wrapped, tt.sentinel)
			}
		})
	}
}

// TestStructuredErrors_Error verifies the messages carry the details
func TestStructuredErrors_Error(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"row count", &RowCountError{Expected: 8, Actual: 9},
			"board formatted incorrectly. Board has 9 rows, expected 8"},
		{"row length", &RowLengthError{Row: 4, Expected: 15, Actual: 17},
			"board formatted incorrectly. Row number 4 has 17 characters, expected 15"},
		{"invalid char", &InvalidPieceError{Token: "x"}, "invalid piece: x"},
		{"invalid token", &InvalidPieceError{Token: "__"}, "invalid piece: __"},
		{"two white", &DuplicatePieceError{Colour: chess.White}, "more than one white piece inserted"},
		{"two black", &DuplicatePieceError{Colour: chess.Black}, "more than one black piece inserted"},
		{"no white", &MissingPieceError{Colour: chess.White}, "no white piece inserted"},
		{"no black", &MissingPieceError{Colour: chess.Black}, "no black piece inserted"},
		{"usage", &UsageError{Reason: "too many arguments passed"}, "too many arguments passed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestStructuredErrors_As verifies details survive wrapping
func TestStructuredErrors_As(t *testing.T) {
	err := Wrap(&RowLengthError{Row: 2, Expected: 15, Actual: 3}, "boards/short.txt")

	var rowErr *RowLengthError
	if !errors.As(err, &rowErr) {
		t.Fatal("errors.As() could not extract RowLengthError")
	}
	if rowErr.Row != 2 || rowErr.Actual != 3 {
		t.Errorf("RowLengthError = %+v, want Row 2 Actual 3", rowErr)
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidConfig, "loading duel.yaml")

	if !errors.Is(wrapped, ErrInvalidConfig) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !strings.Contains(wrapped.Error(), "loading duel.yaml") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrUsage, "argument %d", 2)

	if !errors.Is(wrapped, ErrUsage) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !strings.Contains(wrapped.Error(), "argument 2") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

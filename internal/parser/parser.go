// Package parser turns board text into a validated two-piece chess.Board.
package parser

import (
	"strings"

	"github.com/lgbarn/duel-check/internal/chess"
	"github.com/lgbarn/duel-check/internal/errors"
)

// Parse validates rows and builds the board they describe.
//
// Checks run in order and stop at the first failure: the row count, then
// for each row its length followed by its tokens, and finally that both
// colours were placed. No partial board is returned on error.
func Parse(rows []string) (chess.Board, error) {
	if len(rows) != chess.BoardSize {
		return chess.Board{}, &errors.RowCountError{Expected: chess.BoardSize, Actual: len(rows)}
	}

	var b builder
	for y, row := range rows {
		if err := b.parseRow(row, y); err != nil {
			return chess.Board{}, err
		}
	}
	return b.build()
}

// builder accumulates the two colour slots while rows are scanned.
// Each slot may be filled once.
type builder struct {
	white chess.Piece
	black chess.Piece
}

// parseRow validates a single row and places any piece found in it.
func (b *builder) parseRow(row string, y int) error {
	if len(row) != chess.RowLength {
		return &errors.RowLengthError{Row: y, Expected: chess.RowLength, Actual: len(row)}
	}

	for x, token := range strings.Fields(row) {
		if len(token) != 1 {
			return &errors.InvalidPieceError{Token: token}
		}
		c := token[0]
		if c == chess.EmptyCell {
			continue
		}
		kind, colour, ok := chess.KindFromCode(c)
		if !ok {
			return &errors.InvalidPieceError{Token: token}
		}
		if err := b.place(chess.Piece{Kind: kind, Pos: chess.Position{X: x, Y: y}, Colour: colour}); err != nil {
			return err
		}
	}
	return nil
}

// place fills the slot for p's colour, failing if it is already taken.
func (b *builder) place(p chess.Piece) error {
	slot := &b.white
	if p.Colour == chess.Black {
		slot = &b.black
	}
	if slot.IsSet() {
		return &errors.DuplicatePieceError{Colour: p.Colour}
	}
	*slot = p
	return nil
}

// build checks both slots are filled and returns the finished board.
func (b *builder) build() (chess.Board, error) {
	if !b.white.IsSet() {
		return chess.Board{}, &errors.MissingPieceError{Colour: chess.White}
	}
	if !b.black.IsSet() {
		return chess.Board{}, &errors.MissingPieceError{Colour: chess.Black}
	}
	return chess.Board{White: b.white, Black: b.black}, nil
}

// Package engine decides which of the two pieces on a board can capture the other.
package engine

import (
	"github.com/lgbarn/duel-check/internal/chess"
	"github.com/lgbarn/duel-check/internal/parser"
)

// Outcome is the single-character result of a capture test.
type Outcome byte

const (
	Draw        Outcome = 'E' // both pieces can capture
	WhiteWins   Outcome = 'B'
	BlackWins   Outcome = 'N'
	NeitherWins Outcome = 'P'
)

// String returns the outcome code.
func (o Outcome) String() string {
	return string(o)
}

// Describe returns a human-readable description of the outcome.
func (o Outcome) Describe() string {
	switch o {
	case Draw:
		return "draw"
	case WhiteWins:
		return "white wins"
	case BlackWins:
		return "black wins"
	case NeitherWins:
		return "neither can capture"
	}
	return "unknown"
}

// Decide maps the two capture flags to an outcome.
func Decide(whiteCaptures, blackCaptures bool) Outcome {
	switch {
	case whiteCaptures && blackCaptures:
		return Draw
	case whiteCaptures:
		return WhiteWins
	case blackCaptures:
		return BlackWins
	}
	return NeitherWins
}

// Evaluate reports whether each piece can capture the other. The two checks
// are independent of each other.
func Evaluate(b chess.Board) (whiteCaptures, blackCaptures bool) {
	return CanCapture(b.White, b.Black), CanCapture(b.Black, b.White)
}

// Verdict holds everything worked out for one board.
type Verdict struct {
	Board         chess.Board
	WhiteCaptures bool
	BlackCaptures bool
	Outcome       Outcome
}

// Judge evaluates a parsed board.
func Judge(b chess.Board) Verdict {
	w, bl := Evaluate(b)
	return Verdict{
		Board:         b,
		WhiteCaptures: w,
		BlackCaptures: bl,
		Outcome:       Decide(w, bl),
	}
}

// Play parses rows and returns the outcome of the capture test.
func Play(rows []string) (Outcome, error) {
	board, err := parser.Parse(rows)
	if err != nil {
		return 0, err
	}
	return Judge(board).Outcome, nil
}

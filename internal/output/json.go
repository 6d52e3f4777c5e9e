package output

import (
	"strings"

	"github.com/lgbarn/duel-check/internal/chess"
	"github.com/lgbarn/duel-check/internal/config"
)

// JSONPiece represents a piece in JSON format.
type JSONPiece struct {
	Kind string `json:"kind"`
	Code string `json:"code"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// JSONResult represents one board's result in JSON format.
type JSONResult struct {
	Path          string     `json:"path,omitempty"`
	Outcome       string     `json:"outcome,omitempty"`
	Meaning       string     `json:"meaning,omitempty"`
	WhiteCaptures bool       `json:"whiteCaptures"`
	BlackCaptures bool       `json:"blackCaptures"`
	White         *JSONPiece `json:"white,omitempty"`
	Black         *JSONPiece `json:"black,omitempty"`
	FEN           string     `json:"fen,omitempty"`
	Error         string     `json:"error,omitempty"`
}

// JSONOutput holds multiple results for array output.
type JSONOutput struct {
	Results []*JSONResult `json:"results"`
}

// ResultToJSON converts a result to JSON format.
func ResultToJSON(r Result, cfg *config.OutputConfig) *JSONResult {
	jr := &JSONResult{Path: r.Path}
	if r.Err != nil {
		jr.Error = r.Err.Error()
		return jr
	}

	v := r.Verdict
	jr.Outcome = v.Outcome.String()
	jr.Meaning = v.Outcome.Describe()
	jr.WhiteCaptures = v.WhiteCaptures
	jr.BlackCaptures = v.BlackCaptures
	jr.White = pieceToJSON(v.Board.White)
	jr.Black = pieceToJSON(v.Board.Black)
	if cfg.IncludeFEN {
		jr.FEN = BoardFEN(v.Board)
	}
	return jr
}

func pieceToJSON(p chess.Piece) *JSONPiece {
	return &JSONPiece{
		Kind: strings.ToLower(p.Kind.String()),
		Code: string(p.Kind.Code(p.Colour)),
		X:    p.Pos.X,
		Y:    p.Pos.Y,
	}
}

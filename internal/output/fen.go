package output

import (
	nchess "github.com/corentings/chess/v2"

	"github.com/lgbarn/duel-check/internal/chess"
)

var fenPieceTypes = map[chess.Kind]nchess.PieceType{
	chess.King:   nchess.King,
	chess.Queen:  nchess.Queen,
	chess.Bishop: nchess.Bishop,
	chess.Knight: nchess.Knight,
	chess.Rook:   nchess.Rook,
	chess.Pawn:   nchess.Pawn,
}

// BoardFEN returns the FEN piece-placement field for b. Row 0 of the board
// text is rank 8 and column 0 is file a, so White pawns advance up the board
// as in standard chess.
func BoardFEN(b chess.Board) string {
	squares := make(map[nchess.Square]nchess.Piece, 2)
	for _, p := range []chess.Piece{b.White, b.Black} {
		pt, ok := fenPieceTypes[p.Kind]
		if !ok || !p.Pos.OnBoard() {
			continue
		}
		colour := nchess.White
		if p.Colour == chess.Black {
			colour = nchess.Black
		}
		sq := nchess.NewSquare(nchess.File(p.Pos.X), nchess.Rank(chess.BoardSize-1-p.Pos.Y))
		squares[sq] = nchess.NewPiece(pt, colour)
	}
	return nchess.NewBoard(squares).String()
}

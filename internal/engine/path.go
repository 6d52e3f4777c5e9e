package engine

import "github.com/lgbarn/duel-check/internal/chess"

// knightOffsets are the eight L-shaped jumps, grouped by quadrant:
// up-left, up-right, down-left, down-right.
var knightOffsets = [8][2]int{
	{-1, -2}, {-2, -1},
	{1, -2}, {2, -1},
	{-1, 2}, {-2, 1},
	{1, 2}, {2, 1},
}

// Reaches reports whether attacker's movement pattern takes it from its
// square to target. There is never anything in between to block a line.
func Reaches(attacker chess.Piece, target chess.Position) bool {
	from := attacker.Pos

	switch attacker.Kind {
	case chess.King:
		return kingReaches(from, target)
	case chess.Queen:
		return rookReaches(from, target) || bishopReaches(from, target)
	case chess.Bishop:
		return bishopReaches(from, target)
	case chess.Knight:
		return knightReaches(from, target)
	case chess.Rook:
		return rookReaches(from, target)
	case chess.Pawn:
		return pawnReaches(from, target, attacker.Colour)
	}

	return false
}

// CanCapture reports whether attacker can take target.
func CanCapture(attacker, target chess.Piece) bool {
	return Reaches(attacker, target.Pos)
}

// kingReaches accepts any cell within one step, including from itself.
func kingReaches(from, to chess.Position) bool {
	return abs(to.X-from.X) <= 1 && abs(to.Y-from.Y) <= 1
}

func rookReaches(from, to chess.Position) bool {
	return from.X == to.X || from.Y == to.Y
}

func bishopReaches(from, to chess.Position) bool {
	colDiff := abs(to.X - from.X)
	rankDiff := abs(to.Y - from.Y)
	return colDiff != 0 && colDiff == rankDiff && to.OnBoard()
}

func knightReaches(from, to chess.Position) bool {
	for _, off := range knightOffsets {
		candidate := from.Offset(off[0], off[1])
		if candidate.OnBoard() && candidate == to {
			return true
		}
	}
	return false
}

// pawnReaches checks a single diagonal step forward. A pawn on the first or
// last column reaches every cell of the one neighbouring column, whatever
// the row.
func pawnReaches(from, to chess.Position, colour chess.Colour) bool {
	if colour != chess.White && colour != chess.Black {
		return false
	}

	switch from.X {
	case 0:
		return to.X == 1
	case chess.BoardSize - 1:
		return to.X == chess.BoardSize-2
	}

	ahead := from.Y + colour.Forward()
	if ahead < 0 || ahead >= chess.BoardSize || to.Y != ahead {
		return false
	}
	return abs(to.X-from.X) == 1
}

package chess

import "fmt"

// Position is a board cell. X is the column, Y the row, both 0-based;
// row 0 is the first line of the board text.
type Position struct {
	X int
	Y int
}

// OnBoard reports whether the position lies inside the board.
func (p Position) OnBoard() bool {
	return p.X >= 0 && p.X < BoardSize && p.Y >= 0 && p.Y < BoardSize
}

// Offset returns the position shifted by dx columns and dy rows.
func (p Position) Offset(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// String returns the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Piece is a placed piece.
type Piece struct {
	Kind   Kind
	Pos    Position
	Colour Colour
}

// IsSet reports whether the piece has been assigned a kind.
func (p Piece) IsSet() bool {
	return p.Kind != NoKind
}

// String returns a short description such as "White Queen (5,7)".
func (p Piece) String() string {
	return fmt.Sprintf("%s %s %s", p.Colour, p.Kind, p.Pos)
}

// Board holds the two pieces of a capture test. It is built once by the
// parser and only read afterwards.
type Board struct {
	White Piece
	Black Piece
}

// Rows renders the board back to its eight text rows.
func (b Board) Rows() []string {
	rows := make([]string, BoardSize)
	for y := 0; y < BoardSize; y++ {
		line := make([]byte, 0, RowLength)
		for x := 0; x < BoardSize; x++ {
			if x > 0 {
				line = append(line, ' ')
			}
			line = append(line, b.cellAt(Position{X: x, Y: y}))
		}
		rows[y] = string(line)
	}
	return rows
}

func (b Board) cellAt(pos Position) byte {
	for _, p := range []Piece{b.White, b.Black} {
		if p.IsSet() && p.Pos == pos {
			return p.Kind.Code(p.Colour)
		}
	}
	return EmptyCell
}

// Package chess provides the core types for a two-piece capture board.
package chess

// Colour represents the colour of a piece.
type Colour int

const (
	NoColour Colour = iota // Not yet assigned
	White
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "None"
}

// Forward returns the row step a pawn of this colour advances by.
// White advances toward row 0, Black toward the last row.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// Kind represents a piece's movement archetype.
type Kind int

const (
	NoKind Kind = iota // Slot not yet filled
	King
	Queen
	Bishop
	Knight
	Rook
	Pawn
	NumKinds
)

// kindNames holds the display name for each kind, in Kind order.
var kindNames = []string{"None", "King", "Queen", "Bishop", "Knight", "Rook", "Pawn"}

// String returns the string representation of a kind.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// kindCodes holds the board letter for each kind, in Kind order.
// The letters are the board file convention, not English initials.
var kindCodes = []byte{' ', 'r', 'd', 'a', 'c', 't', 'p'}

// Code returns the board letter for the kind in the given colour:
// lowercase for White, uppercase for Black.
func (k Kind) Code(colour Colour) byte {
	if k <= NoKind || k >= NumKinds {
		return '?'
	}
	c := kindCodes[k]
	if colour == Black {
		c -= 'a' - 'A'
	}
	return c
}

// KindFromCode decodes a board letter. Lowercase letters are White,
// uppercase Black. ok is false for anything that is not one of the six codes.
func KindFromCode(c byte) (kind Kind, colour Colour, ok bool) {
	colour = White
	lower := c
	switch {
	case c >= 'A' && c <= 'Z':
		colour = Black
		lower = c + ('a' - 'A')
	case c >= 'a' && c <= 'z':
	default:
		return NoKind, NoColour, false
	}
	for k := King; k < NumKinds; k++ {
		if kindCodes[k] == lower {
			return k, colour, true
		}
	}
	return NoKind, NoColour, false
}

// Constants for board dimensions and the text format.
const (
	BoardSize = 8
	RowLength = 2*BoardSize - 1 // cells separated by single spaces
	EmptyCell = '_'
)

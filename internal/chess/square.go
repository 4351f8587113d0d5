package chess

import "fmt"

// Square identifies one of the 64 board squares as file + 8*rank,
// a1 = 0 through h8 = 63.
type Square int8

// NoSquare is the sentinel for "no square", used for absent
// en passant targets and failed lookups.
const NoSquare Square = -1

// NewSquare builds a Square from zero-based file and rank coordinates.
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// File returns the zero-based file (0 = a, 7 = h).
func (sq Square) File() int {
	return int(sq) % 8
}

// Rank returns the zero-based rank (0 = rank 1, 7 = rank 8).
func (sq Square) Rank() int {
	return int(sq) / 8
}

// Valid reports whether sq addresses a real board square.
func (sq Square) Valid() bool {
	return sq >= 0 && sq < 64
}

// String returns the algebraic name of the square, e.g. "e4".
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + sq.File()), byte('1' + sq.Rank())})
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square %q", s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("invalid square %q", s)
	}
	return NewSquare(file, rank), nil
}

package chess

// Move is one fully described ply. Captured is NoKind for quiet
// moves; Promotion is NoKind except for pawn moves to the far rank.
// Check and Checkmate describe the state the move produced and are
// filled in during execution.
type Move struct {
	From      Square
	To        Square
	Piece     PieceKind
	Captured  PieceKind
	Promotion PieceKind
	Castle    bool
	EnPassant bool
	Check     bool
	Checkmate bool
	SAN       string
}

// String returns the move in coordinate form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoKind {
		s += string(m.Promotion.letter() + ('a' - 'A'))
	}
	return s
}

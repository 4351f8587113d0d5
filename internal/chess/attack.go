package chess

// Piece movement geometry as file/rank deltas.
var (
	knightOffsets = [8][2]int{
		{-1, 2}, {1, 2}, {-1, -2}, {1, -2},
		{-2, 1}, {2, 1}, {-2, -1}, {2, -1},
	}
	kingOffsets = [8][2]int{
		{-1, -1}, {-1, 0}, {-1, 1}, {0, -1},
		{0, 1}, {1, -1}, {1, 0}, {1, 1},
	}
	bishopDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	rookDirs   = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// offsetSquare returns the square at (file+df, rank+dr) from sq, or
// NoSquare when that falls off the board.
func offsetSquare(sq Square, df, dr int) Square {
	file := sq.File() + df
	rank := sq.Rank() + dr
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare
	}
	return NewSquare(file, rank)
}

// pawnDir is the forward rank direction for a side's pawns.
func pawnDir(side Side) int {
	if side == White {
		return 1
	}
	return -1
}

// IsSquareAttacked reports whether any piece of the attacking side
// could reach sq in one pseudo-move. Pawn attacks are the two capture
// diagonals only, never the forward push square. Sliding pieces are
// blocked by the first occupant in each direction regardless of side.
func (b Board) IsSquareAttacked(sq Square, by Side) bool {
	// Pawns: a pawn on the diagonal behind sq (relative to its own
	// advance direction) attacks it.
	for _, df := range [2]int{-1, 1} {
		from := offsetSquare(sq, df, -pawnDir(by))
		if p := b.PieceAt(from); p.Kind == Pawn && p.Side == by {
			return true
		}
	}

	for _, off := range knightOffsets {
		if p := b.PieceAt(offsetSquare(sq, off[0], off[1])); p.Kind == Knight && p.Side == by {
			return true
		}
	}

	for _, off := range kingOffsets {
		if p := b.PieceAt(offsetSquare(sq, off[0], off[1])); p.Kind == King && p.Side == by {
			return true
		}
	}

	for _, dir := range bishopDirs {
		if p := b.firstAlong(sq, dir[0], dir[1]); p.Side == by && (p.Kind == Bishop || p.Kind == Queen) {
			return true
		}
	}
	for _, dir := range rookDirs {
		if p := b.firstAlong(sq, dir[0], dir[1]); p.Side == by && (p.Kind == Rook || p.Kind == Queen) {
			return true
		}
	}
	return false
}

// firstAlong walks from sq in the given direction and returns the
// first piece encountered, NoPiece if the ray runs off the board.
func (b Board) firstAlong(sq Square, df, dr int) Piece {
	for cur := offsetSquare(sq, df, dr); cur != NoSquare; cur = offsetSquare(cur, df, dr) {
		if p := b[cur]; !p.IsEmpty() {
			return p
		}
	}
	return NoPiece
}

// InCheck reports whether the given side's king is attacked.
func (s GameState) InCheck(side Side) bool {
	ksq := s.Board.KingSquare(side)
	return ksq != NoSquare && s.Board.IsSquareAttacked(ksq, side.Other())
}

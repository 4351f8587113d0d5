package chess

import "slices"

// pseudoMovesFrom generates geometry-only candidates for the piece on
// from: board edges and same-side occupancy are respected, sliding
// pieces stop at the first occupant, but exposure of the moving
// side's own king is ignored. Promotion candidates are emitted with
// Promotion unset; the kind is supplied at execution time.
func (s GameState) pseudoMovesFrom(from Square) []Move {
	p := s.Board.PieceAt(from)
	if p.IsEmpty() {
		return nil
	}

	var moves []Move
	add := func(to Square, capture PieceKind) {
		moves = append(moves, Move{From: from, To: to, Piece: p.Kind, Captured: capture})
	}

	switch p.Kind {
	case Pawn:
		dir := pawnDir(p.Side)
		startRank := 1
		if p.Side == Black {
			startRank = 6
		}
		// Forward pushes: never captures.
		if one := offsetSquare(from, 0, dir); one != NoSquare && s.Board[one].IsEmpty() {
			add(one, NoKind)
			if from.Rank() == startRank {
				if two := offsetSquare(from, 0, 2*dir); two != NoSquare && s.Board[two].IsEmpty() {
					add(two, NoKind)
				}
			}
		}
		// Diagonal captures, including the en passant target.
		for _, df := range [2]int{-1, 1} {
			to := offsetSquare(from, df, dir)
			if to == NoSquare {
				continue
			}
			if target := s.Board[to]; !target.IsEmpty() && target.Side != p.Side {
				add(to, target.Kind)
			} else if to == s.EnPassant {
				moves = append(moves, Move{
					From: from, To: to, Piece: Pawn,
					Captured: Pawn, EnPassant: true,
				})
			}
		}

	case Knight:
		for _, off := range knightOffsets {
			s.addStep(&moves, from, p, off[0], off[1])
		}

	case Bishop:
		for _, dir := range bishopDirs {
			s.addRay(&moves, from, p, dir[0], dir[1])
		}

	case Rook:
		for _, dir := range rookDirs {
			s.addRay(&moves, from, p, dir[0], dir[1])
		}

	case Queen:
		for _, dir := range bishopDirs {
			s.addRay(&moves, from, p, dir[0], dir[1])
		}
		for _, dir := range rookDirs {
			s.addRay(&moves, from, p, dir[0], dir[1])
		}

	case King:
		for _, off := range kingOffsets {
			s.addStep(&moves, from, p, off[0], off[1])
		}
		moves = append(moves, s.castlingMoves(p.Side)...)
	}
	return moves
}

// addStep appends a single-step candidate if the destination is on
// the board and not occupied by a same-side piece.
func (s GameState) addStep(moves *[]Move, from Square, p Piece, df, dr int) {
	to := offsetSquare(from, df, dr)
	if to == NoSquare {
		return
	}
	target := s.Board[to]
	if !target.IsEmpty() && target.Side == p.Side {
		return
	}
	*moves = append(*moves, Move{From: from, To: to, Piece: p.Kind, Captured: target.Kind})
}

// addRay appends sliding candidates until the first occupant, which
// is included only as an enemy capture.
func (s GameState) addRay(moves *[]Move, from Square, p Piece, df, dr int) {
	for to := offsetSquare(from, df, dr); to != NoSquare; to = offsetSquare(to, df, dr) {
		target := s.Board[to]
		if target.IsEmpty() {
			*moves = append(*moves, Move{From: from, To: to, Piece: p.Kind})
			continue
		}
		if target.Side != p.Side {
			*moves = append(*moves, Move{From: from, To: to, Piece: p.Kind, Captured: target.Kind})
		}
		return
	}
}

// castlingMoves emits the castle candidates whose full precondition
// already holds: rights flag set, king and rook on their origin
// squares, every square strictly between them empty, king not in
// check, and neither the transit nor the destination square attacked.
// Transit through check is illegal, not only landing in it.
func (s GameState) castlingMoves(side Side) []Move {
	rank := 0
	if side == Black {
		rank = 7
	}
	kingFrom := NewSquare(4, rank)
	if s.Board.PieceAt(kingFrom) != (Piece{Kind: King, Side: side}) {
		return nil
	}
	enemy := side.Other()
	if s.Board.IsSquareAttacked(kingFrom, enemy) {
		return nil
	}

	var moves []Move
	tryWing := func(allowed bool, rookFile int, between []int, path []int) {
		if !allowed {
			return
		}
		if s.Board.PieceAt(NewSquare(rookFile, rank)) != (Piece{Kind: Rook, Side: side}) {
			return
		}
		for _, f := range between {
			if !s.Board[NewSquare(f, rank)].IsEmpty() {
				return
			}
		}
		for _, f := range path {
			if s.Board.IsSquareAttacked(NewSquare(f, rank), enemy) {
				return
			}
		}
		moves = append(moves, Move{
			From: kingFrom, To: NewSquare(path[len(path)-1], rank),
			Piece: King, Castle: true,
		})
	}

	kingSide, queenSide := s.Castling.WhiteKingSide, s.Castling.WhiteQueenSide
	if side == Black {
		kingSide, queenSide = s.Castling.BlackKingSide, s.Castling.BlackQueenSide
	}
	tryWing(kingSide, 7, []int{5, 6}, []int{5, 6})
	tryWing(queenSide, 0, []int{1, 2, 3}, []int{3, 2})
	return moves
}

// applyToBoard plays the move on a copy of the board and returns the
// copy. En passant removes the pawn behind the target square; castling
// relocates the rook alongside the king; a promotion kind replaces the
// pawn on arrival.
func (s GameState) applyToBoard(m Move) Board {
	b := s.Board
	p := b[m.From]
	b[m.From] = NoPiece
	if m.Promotion != NoKind {
		p.Kind = m.Promotion
	}
	b[m.To] = p

	if m.EnPassant {
		b[NewSquare(m.To.File(), m.From.Rank())] = NoPiece
	}
	if m.Castle {
		rank := m.From.Rank()
		if m.To.File() == 6 { // king side
			b[NewSquare(5, rank)] = b[NewSquare(7, rank)]
			b[NewSquare(7, rank)] = NoPiece
		} else { // queen side
			b[NewSquare(3, rank)] = b[NewSquare(0, rank)]
			b[NewSquare(0, rank)] = NoPiece
		}
	}
	return b
}

// leavesOwnKingInCheck applies m on a scratch board and reports
// whether the mover's king ends up attacked. This single filter
// covers pins and check-escape uniformly.
func (s GameState) leavesOwnKingInCheck(m Move) bool {
	side := s.Board[m.From].Side
	b := s.applyToBoard(m)
	ksq := b.KingSquare(side)
	return ksq != NoSquare && b.IsSquareAttacked(ksq, side.Other())
}

// legalMovesFrom filters the pseudo-legal candidates of the piece on
// from down to those that leave its own king safe. It does not gate
// on side-to-move or terminal status.
func (s GameState) legalMovesFrom(from Square) []Move {
	var legal []Move
	for _, m := range s.pseudoMovesFrom(from) {
		if !s.leavesOwnKingInCheck(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// LegalMoves returns every legal move for the side to move,
// enumerated over origin squares in file-major, rank-minor order.
// It is a pure function of the position; terminal gating lives in
// ValidMoves and ExecuteMove.
func (s GameState) LegalMoves() []Move {
	var all []Move
	for _, from := range s.Board.Occupied(s.SideToMove) {
		all = append(all, s.legalMovesFrom(from)...)
	}
	return all
}

// ValidMoves returns the legal destination squares for the piece on
// from, sorted file-major, rank-minor. It is empty when the square is
// empty, holds the idle side's piece, or the game is over. It never
// mutates the state.
func (s GameState) ValidMoves(from Square) []Square {
	if s.Status.Terminal() {
		return nil
	}
	p := s.Board.PieceAt(from)
	if p.IsEmpty() || p.Side != s.SideToMove {
		return nil
	}
	var dests []Square
	for _, m := range s.legalMovesFrom(from) {
		if !slices.Contains(dests, m.To) {
			dests = append(dests, m.To)
		}
	}
	slices.SortFunc(dests, func(a, b Square) int {
		if a.File() != b.File() {
			return a.File() - b.File()
		}
		return a.Rank() - b.Rank()
	})
	return dests
}

// IsValidMove reports whether from→to is in the legal set for the
// current side to move.
func (s GameState) IsValidMove(from, to Square) bool {
	return slices.Contains(s.ValidMoves(from), to)
}

package chess

import (
	"fmt"
	"slices"
)

// GameStatus is the engine-level game status, serialized as a plain
// string for external collaborators.
type GameStatus string

const (
	StatusActive    GameStatus = "active"
	StatusCheck     GameStatus = "check"
	StatusCheckmate GameStatus = "checkmate"
	StatusStalemate GameStatus = "stalemate"
	StatusDraw      GameStatus = "draw"
)

// Terminal reports whether no further moves are accepted.
func (gs GameStatus) Terminal() bool {
	return gs == StatusCheckmate || gs == StatusStalemate || gs == StatusDraw
}

// CastlingRights holds the four independent castle permissions. A
// flag goes permanently false once its king or rook leaves the origin
// square, or the rook is captured there.
type CastlingRights struct {
	WhiteKingSide  bool
	WhiteQueenSide bool
	BlackKingSide  bool
	BlackQueenSide bool
}

// GameState is one immutable position snapshot plus the bookkeeping
// derived from the move sequence that reached it. ExecuteMove returns
// a new value and never touches the receiver; callers that need
// undo/redo keep the prior values themselves.
type GameState struct {
	Board          Board
	SideToMove     Side
	Castling       CastlingRights
	EnPassant      Square // NoSquare unless the last move was a double pawn push
	HalfMoveClock  int    // plies since the last capture or pawn move
	FullMoveNumber int    // increments after each black move
	History        []Move
	Status         GameStatus
}

// NewGame returns the standard initial position.
func NewGame() GameState {
	return GameState{
		Board:          StartingBoard(),
		SideToMove:     White,
		Castling:       CastlingRights{true, true, true, true},
		EnPassant:      NoSquare,
		FullMoveNumber: 1,
		Status:         StatusActive,
	}
}

// ExecuteMove validates m against the legal set for the side to move
// and returns the resulting state. The move is matched by from/to
// squares; all other fields of m except Promotion are recomputed, so
// externally proposed moves go through the identical validation path.
// The receiver is left untouched on every error.
func (s GameState) ExecuteMove(m Move) (GameState, error) {
	if s.Status.Terminal() {
		return s, fmt.Errorf("%w: game ended in %s", ErrGameOver, s.Status)
	}
	p := s.Board.PieceAt(m.From)
	if p.IsEmpty() || p.Side != s.SideToMove {
		return s, fmt.Errorf("%w: no %s piece on %s", ErrIllegalMove, s.SideToMove, m.From)
	}

	var chosen Move
	found := false
	for _, cand := range s.legalMovesFrom(m.From) {
		if cand.To == m.To {
			chosen = cand
			found = true
			break
		}
	}
	if !found {
		return s, fmt.Errorf("%w: %s cannot move %s to %s", ErrIllegalMove, p.Kind, m.From, m.To)
	}

	if isPromotionMove(p, m.To) {
		switch m.Promotion {
		case Knight, Bishop, Rook, Queen:
			chosen.Promotion = m.Promotion
		case NoKind:
			return s, fmt.Errorf("%w: pawn move to %s needs a promotion kind", ErrAmbiguousPromotion, m.To)
		default:
			return s, fmt.Errorf("%w: cannot promote to %s", ErrIllegalMove, m.Promotion)
		}
	} else if m.Promotion != NoKind {
		return s, fmt.Errorf("%w: %s to %s is not a promotion", ErrIllegalMove, m.From, m.To)
	}

	next := GameState{
		Board:          s.applyToBoard(chosen),
		SideToMove:     s.SideToMove.Other(),
		Castling:       s.Castling.after(chosen),
		EnPassant:      enPassantTarget(chosen, p),
		HalfMoveClock:  s.HalfMoveClock + 1,
		FullMoveNumber: s.FullMoveNumber,
	}
	if chosen.Captured != NoKind || chosen.Piece == Pawn {
		next.HalfMoveClock = 0
	}
	if s.SideToMove == Black {
		next.FullMoveNumber++
	}

	next.Status = next.evaluateStatus()
	chosen.Check = next.Status == StatusCheck || next.Status == StatusCheckmate
	chosen.Checkmate = next.Status == StatusCheckmate
	chosen.SAN = s.san(chosen)
	next.History = append(slices.Clone(s.History), chosen)
	return next, nil
}

// evaluateStatus derives the terminal status for the side to move:
// no legal moves means checkmate or stalemate depending on check, a
// half-move clock at 100 or more is a fifty-move-rule draw, otherwise
// the state is check or active.
func (s GameState) evaluateStatus() GameStatus {
	inCheck := s.InCheck(s.SideToMove)
	if len(s.LegalMoves()) == 0 {
		if inCheck {
			return StatusCheckmate
		}
		return StatusStalemate
	}
	if s.HalfMoveClock >= 100 {
		return StatusDraw
	}
	if inCheck {
		return StatusCheck
	}
	return StatusActive
}

// after returns the castling rights once m has been played.
// Rights are monotone: they only ever go false.
func (c CastlingRights) after(m Move) CastlingRights {
	revoke := func(sq Square) {
		switch sq {
		case NewSquare(4, 0):
			c.WhiteKingSide, c.WhiteQueenSide = false, false
		case NewSquare(7, 0):
			c.WhiteKingSide = false
		case NewSquare(0, 0):
			c.WhiteQueenSide = false
		case NewSquare(4, 7):
			c.BlackKingSide, c.BlackQueenSide = false, false
		case NewSquare(7, 7):
			c.BlackKingSide = false
		case NewSquare(0, 7):
			c.BlackQueenSide = false
		}
	}
	// Moving off an origin square and capturing onto one both revoke.
	revoke(m.From)
	revoke(m.To)
	return c
}

// enPassantTarget returns the skipped square after a double pawn
// push, NoSquare otherwise. The target is valid for exactly the next
// move; ExecuteMove recomputes it from scratch every ply.
func enPassantTarget(m Move, p Piece) Square {
	if p.Kind != Pawn {
		return NoSquare
	}
	fromRank, toRank := m.From.Rank(), m.To.Rank()
	if toRank-fromRank == 2 || fromRank-toRank == 2 {
		return NewSquare(m.From.File(), (fromRank+toRank)/2)
	}
	return NoSquare
}

// isPromotionMove reports whether moving p to to is a pawn reaching
// the far rank.
func isPromotionMove(p Piece, to Square) bool {
	if p.Kind != Pawn {
		return false
	}
	if p.Side == White {
		return to.Rank() == 7
	}
	return to.Rank() == 0
}

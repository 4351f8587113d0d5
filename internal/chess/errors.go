package chess

import "errors"

// Engine error kinds. All are recoverable: a rejected operation
// leaves the prior GameState untouched. Callers match them with
// errors.Is; specific failures wrap these sentinels with context.
var (
	// ErrIllegalMove rejects a move outside the legal set for the
	// current side to move.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameOver rejects a move on a terminal state.
	ErrGameOver = errors.New("game over")

	// ErrInvalidFEN rejects a malformed position import.
	ErrInvalidFEN = errors.New("invalid FEN")

	// ErrAmbiguousPromotion rejects a promotion-eligible move that
	// did not name a promotion kind.
	ErrAmbiguousPromotion = errors.New("ambiguous promotion")
)

package chess

import (
	"fmt"
	"strings"
)

// Engine is the controller around the pure rule core: it owns one
// authoritative GameState plus the snapshots that preceded it, which
// is what makes undo and repetition counting possible without any
// mutability inside the core. Engine values are not safe for
// concurrent use; the core functions they call are.
type Engine struct {
	state      GameState
	prev       []GameState
	drawReason DrawMethod
}

// NewEngine starts a game from the standard initial position.
func NewEngine() *Engine {
	return &Engine{state: NewGame()}
}

// NewEngineFromFEN starts a game from an imported position.
func NewEngineFromFEN(fen string) (*Engine, error) {
	state, err := ImportFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Engine{state: state}, nil
}

// State returns the current authoritative state. It is a value copy;
// callers can run what-if analysis on it freely.
func (e *Engine) State() GameState {
	return e.state
}

// MakeMove executes a move given algebraic square names and an
// optional promotion kind. Externally proposed moves (AI, remote
// players) go through this same path; there is no trusted shortcut.
func (e *Engine) MakeMove(from, to string, promotion PieceKind) (*MoveResult, error) {
	if e.drawReason != "" {
		return nil, fmt.Errorf("%w: game ended in draw", ErrGameOver)
	}
	fromSq, err := ParseSquare(from)
	if err != nil {
		return nil, err
	}
	toSq, err := ParseSquare(to)
	if err != nil {
		return nil, err
	}

	next, err := e.state.ExecuteMove(Move{From: fromSq, To: toSq, Promotion: promotion})
	if err != nil {
		return nil, err
	}
	e.prev = append(e.prev, e.state)
	e.state = next

	played := next.History[len(next.History)-1]
	result := &MoveResult{
		From:      from,
		To:        to,
		SAN:       played.SAN,
		FEN:       next.FEN(),
		Check:     played.Check,
		Checkmate: played.Checkmate,
		Draw:      next.Status == StatusStalemate || next.Status == StatusDraw,
		GameOver:  next.Status.Terminal(),
	}
	if result.GameOver {
		result.Result = e.resultString()
	}
	return result, nil
}

// Undo discards the latest move, restoring the previous snapshot.
// It reports whether there was a move to undo. A claimed draw is
// forgotten along with the move it followed.
func (e *Engine) Undo() bool {
	if len(e.prev) == 0 {
		return false
	}
	e.state = e.prev[len(e.prev)-1]
	e.prev = e.prev[:len(e.prev)-1]
	e.drawReason = ""
	return true
}

// GetFEN exports the current position.
func (e *Engine) GetFEN() string {
	return e.state.FEN()
}

// GetStatus returns the current game status, accounting for any
// claimed draw.
func (e *Engine) GetStatus() GameStatus {
	if e.drawReason != "" {
		return StatusDraw
	}
	return e.state.Status
}

// GetActiveColor returns "white" or "black".
func (e *Engine) GetActiveColor() string {
	return e.state.SideToMove.String()
}

// Winner returns the winning side; ok is false unless the game ended
// in checkmate, where the side that just moved wins.
func (e *Engine) Winner() (Side, bool) {
	if e.state.Status != StatusCheckmate {
		return White, false
	}
	return e.state.SideToMove.Other(), true
}

// ValidMoves returns the algebraic names of the legal destinations
// for the piece on the named square, for renderer highlighting.
func (e *Engine) ValidMoves(from string) []string {
	sq, err := ParseSquare(from)
	if err != nil {
		return nil
	}
	var out []string
	for _, dest := range e.state.ValidMoves(sq) {
		out = append(out, dest.String())
	}
	return out
}

// ValidateFEN reports whether a FEN string would import cleanly.
func (e *Engine) ValidateFEN(fen string) error {
	_, err := ImportFEN(fen)
	return err
}

// History returns the SAN notation of every executed move in order.
func (e *Engine) History() []string {
	var out []string
	for _, m := range e.state.History {
		out = append(out, m.SAN)
	}
	return out
}

// HistoryString renders the move list with move numbers, e.g.
// "1. e4 e5 2. Nf3".
func (e *Engine) HistoryString() string {
	var sb strings.Builder
	for i, san := range e.History() {
		if i%2 == 0 {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d. %s", i/2+1, san)
		} else {
			sb.WriteByte(' ')
			sb.WriteString(san)
		}
	}
	return sb.String()
}

// GetMaterialCount sums standard piece values per side.
func (e *Engine) GetMaterialCount() MaterialCount {
	return e.state.Board.Material()
}

// GetMaterialBalance is white's material minus black's.
func (e *Engine) GetMaterialBalance() int {
	return e.state.Board.MaterialBalance()
}

// GetPieceValues exposes the standard value table keyed by kind name.
func (e *Engine) GetPieceValues() map[string]int {
	values := make(map[string]int, len(StandardPieceValues))
	for kind, v := range StandardPieceValues {
		values[kind.String()] = v
	}
	return values
}

// IsDrawn reports whether the game is drawn: stalemate or the
// fifty-move rule from the rule core, dead material on the board, or
// a claimed draw.
func (e *Engine) IsDrawn() bool {
	return e.GetStatus() == StatusStalemate ||
		e.GetStatus() == StatusDraw ||
		e.state.Board.InsufficientMaterial()
}

// GetDrawReason names why the game is drawn, empty when it is not.
func (e *Engine) GetDrawReason() DrawMethod {
	switch {
	case e.drawReason != "":
		return e.drawReason
	case e.state.Status == StatusStalemate:
		return DrawStalemate
	case e.state.Status == StatusDraw:
		return DrawFiftyMoveRule
	case e.state.Board.InsufficientMaterial():
		return DrawInsufficientMaterial
	default:
		return ""
	}
}

// IsThreefoldRepetition reports whether the current position has
// occurred at least three times. Positions compare by placement,
// side to move, castling rights and en passant target, i.e. the
// first four FEN fields.
func (e *Engine) IsThreefoldRepetition() bool {
	key := positionKey(e.state)
	n := 1
	for _, prev := range e.prev {
		if positionKey(prev) == key {
			n++
		}
	}
	return n >= 3
}

// GetEligibleDraws lists the draw methods the side to move could
// claim right now.
func (e *Engine) GetEligibleDraws() []DrawMethod {
	var eligible []DrawMethod
	if e.IsThreefoldRepetition() {
		eligible = append(eligible, DrawThreefoldRepetition)
	}
	if e.state.Board.InsufficientMaterial() {
		eligible = append(eligible, DrawInsufficientMaterial)
	}
	if e.state.HalfMoveClock >= 100 {
		eligible = append(eligible, DrawFiftyMoveRule)
	}
	return eligible
}

// ClaimDraw ends the game by the given method if it is eligible.
func (e *Engine) ClaimDraw(method DrawMethod) error {
	for _, m := range e.GetEligibleDraws() {
		if m == method {
			e.drawReason = method
			return nil
		}
	}
	return fmt.Errorf("draw by %s is not eligible", method)
}

// resultString is the PGN score for a finished game.
func (e *Engine) resultString() string {
	switch e.GetStatus() {
	case StatusCheckmate:
		if winner, _ := e.Winner(); winner == White {
			return ResultWhiteWon
		}
		return ResultBlackWon
	case StatusStalemate, StatusDraw:
		return ResultDraw
	default:
		return ""
	}
}

// positionKey is the repetition identity of a state: its FEN without
// the move clocks.
func positionKey(s GameState) string {
	fields := strings.Fields(s.FEN())
	return strings.Join(fields[:4], " ")
}

package chess

import (
	"errors"
	"testing"
)

func playMoves(t *testing.T, s GameState, moves ...string) GameState {
	t.Helper()
	for _, mv := range moves {
		var promotion PieceKind
		if len(mv) == 5 {
			promotion = ParsePromotion(mv[4:])
		}
		next, err := s.ExecuteMove(Move{
			From:      mustSquare(t, mv[:2]),
			To:        mustSquare(t, mv[2:4]),
			Promotion: promotion,
		})
		if err != nil {
			t.Fatalf("Failed to execute %s: %v", mv, err)
		}
		s = next
	}
	return s
}

func TestItalianOpeningSequence(t *testing.T) {
	s := playMoves(t, NewGame(), "e2e4", "e7e5", "f1c4", "f8c5", "d1h5")

	want := "rnbqk1nr/pppp1ppp/8/2b1p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 3 3"
	if got := s.FEN(); got != want {
		t.Errorf("FEN = %s, want %s", got, want)
	}
	if s.Status != StatusActive {
		t.Errorf("Status = %s, want %s", s.Status, StatusActive)
	}
}

func TestFoolsMate(t *testing.T) {
	s := playMoves(t, NewGame(), "f2f3", "e7e5", "g2g4", "d8h4")

	if s.SideToMove != White {
		t.Errorf("SideToMove = %s, want white", s.SideToMove)
	}
	if s.Status != StatusCheckmate {
		t.Errorf("Status = %s, want %s", s.Status, StatusCheckmate)
	}

	played := s.History[len(s.History)-1]
	if !played.Check || !played.Checkmate {
		t.Error("Expected check and checkmate flags on the mating move")
	}
	if played.SAN != "Qh4#" {
		t.Errorf("Expected SAN Qh4#, got %s", played.SAN)
	}

	// No further moves are accepted.
	_, err := s.ExecuteMove(Move{From: mustSquare(t, "e2"), To: mustSquare(t, "e4")})
	if !errors.Is(err, ErrGameOver) {
		t.Errorf("Expected ErrGameOver, got %v", err)
	}
}

func TestStalemate(t *testing.T) {
	// Queen f7 and king g6 smother the black king on h8.
	s := mustImport(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if s.Status != StatusStalemate {
		t.Errorf("Status = %s, want %s", s.Status, StatusStalemate)
	}
	if got := len(s.LegalMoves()); got != 0 {
		t.Errorf("Expected no legal moves in stalemate, got %d", got)
	}
}

func TestFiftyMoveRuleDraw(t *testing.T) {
	// One quiet move away from a hundred half-moves.
	s := mustImport(t, "8/8/8/3k4/8/3K4/8/R6R w - - 99 80")
	next, err := s.ExecuteMove(Move{From: mustSquare(t, "a1"), To: mustSquare(t, "a2")})
	if err != nil {
		t.Fatalf("Failed to make the qualifying move: %v", err)
	}
	if next.HalfMoveClock != 100 {
		t.Errorf("HalfMoveClock = %d, want 100", next.HalfMoveClock)
	}
	if next.Status != StatusDraw {
		t.Errorf("Status = %s, want %s", next.Status, StatusDraw)
	}

	_, err = next.ExecuteMove(Move{From: mustSquare(t, "d5"), To: mustSquare(t, "d6")})
	if !errors.Is(err, ErrGameOver) {
		t.Errorf("Expected ErrGameOver after the draw, got %v", err)
	}
}

func TestFiftyMoveClockResets(t *testing.T) {
	// A pawn move resets the clock even at 99.
	s := mustImport(t, "8/8/8/3k4/8/3K4/7P/R6R w - - 99 80")
	next, err := s.ExecuteMove(Move{From: mustSquare(t, "h2"), To: mustSquare(t, "h3")})
	if err != nil {
		t.Fatalf("Failed to push the pawn: %v", err)
	}
	if next.HalfMoveClock != 0 {
		t.Errorf("HalfMoveClock = %d, want 0", next.HalfMoveClock)
	}
	if next.Status != StatusActive {
		t.Errorf("Status = %s, want %s", next.Status, StatusActive)
	}
}

func TestMoveCounters(t *testing.T) {
	s := NewGame()
	s = playMoves(t, s, "g1f3")
	if s.HalfMoveClock != 1 {
		t.Errorf("HalfMoveClock = %d, want 1 after a knight move", s.HalfMoveClock)
	}
	if s.FullMoveNumber != 1 {
		t.Errorf("FullMoveNumber = %d, want 1 after white's move", s.FullMoveNumber)
	}

	s = playMoves(t, s, "g8f6")
	if s.HalfMoveClock != 2 {
		t.Errorf("HalfMoveClock = %d, want 2", s.HalfMoveClock)
	}
	if s.FullMoveNumber != 2 {
		t.Errorf("FullMoveNumber = %d, want 2 after black's move", s.FullMoveNumber)
	}

	s = playMoves(t, s, "e2e4")
	if s.HalfMoveClock != 0 {
		t.Errorf("HalfMoveClock = %d, want 0 after a pawn move", s.HalfMoveClock)
	}
}

func TestExecuteMoveLeavesReceiverUntouched(t *testing.T) {
	s := NewGame()
	if _, err := s.ExecuteMove(Move{From: mustSquare(t, "e2"), To: mustSquare(t, "e4")}); err != nil {
		t.Fatalf("Failed to execute move: %v", err)
	}
	if got := s.FEN(); got != StartingFEN {
		t.Errorf("Prior state changed: %s", got)
	}
	if len(s.History) != 0 {
		t.Errorf("Prior history changed: %v", s.History)
	}

	// Rejected operations leave the state untouched too.
	if _, err := s.ExecuteMove(Move{From: mustSquare(t, "e2"), To: mustSquare(t, "e5")}); err == nil {
		t.Fatal("Expected an error")
	}
	if got := s.FEN(); got != StartingFEN {
		t.Errorf("State changed by a rejected move: %s", got)
	}
}

func TestCheckStatusIsNotTerminal(t *testing.T) {
	s := playMoves(t, NewGame(), "e2e4", "f7f6", "d1h5")
	if s.Status != StatusCheck {
		t.Fatalf("Status = %s, want %s", s.Status, StatusCheck)
	}
	if s.Status.Terminal() {
		t.Error("Check must not be terminal")
	}

	// Only moves resolving the check are accepted.
	_, err := s.ExecuteMove(Move{From: mustSquare(t, "a7"), To: mustSquare(t, "a6")})
	if !errors.Is(err, ErrIllegalMove) {
		t.Errorf("Expected ErrIllegalMove for a move ignoring check, got %v", err)
	}
	next, err := s.ExecuteMove(Move{From: mustSquare(t, "g7"), To: mustSquare(t, "g6")})
	if err != nil {
		t.Fatalf("Failed to block the check: %v", err)
	}
	if next.Status != StatusActive {
		t.Errorf("Status = %s, want %s", next.Status, StatusActive)
	}
}

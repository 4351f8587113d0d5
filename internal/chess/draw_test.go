package chess

import (
	"errors"
	"testing"
)

func TestDrawDetection(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		wantDraw bool
		drawType DrawMethod
	}{
		{
			name:     "Stalemate position",
			fen:      "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
			wantDraw: true,
			drawType: DrawStalemate,
		},
		{
			name:     "Insufficient material, king vs king",
			fen:      "8/8/8/4k3/8/3K4/8/8 w - - 0 1",
			wantDraw: true,
			drawType: DrawInsufficientMaterial,
		},
		{
			name:     "Insufficient material, king and bishop vs king",
			fen:      "8/8/8/4k3/8/3KB3/8/8 w - - 0 1",
			wantDraw: true,
			drawType: DrawInsufficientMaterial,
		},
		{
			name:     "Insufficient material, king and knight vs king",
			fen:      "8/8/8/4k3/8/3KN3/8/8 w - - 0 1",
			wantDraw: true,
			drawType: DrawInsufficientMaterial,
		},
		{
			name:     "Rook endgame is not drawn",
			fen:      "8/8/8/3k4/8/3K4/8/R7 w - - 0 1",
			wantDraw: false,
		},
		{
			name:     "Two minor pieces can still mate",
			fen:      "8/8/8/4k3/8/2NKB3/8/8 w - - 0 1",
			wantDraw: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, err := NewEngineFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("Failed to create engine from FEN: %v", err)
			}

			if got := engine.IsDrawn(); got != tt.wantDraw {
				t.Errorf("IsDrawn() = %v, want %v", got, tt.wantDraw)
			}

			if tt.wantDraw {
				if reason := engine.GetDrawReason(); reason != tt.drawType {
					t.Errorf("GetDrawReason() = %s, want %s", reason, tt.drawType)
				}
			}
		})
	}
}

func TestThreefoldRepetition(t *testing.T) {
	engine := NewEngine()

	// Knights shuffle back and forth until the starting position has
	// occurred three times.
	moves := []struct {
		from string
		to   string
	}{
		{"g1", "f3"}, {"g8", "f6"},
		{"f3", "g1"}, {"f6", "g8"},
		{"g1", "f3"}, {"g8", "f6"},
		{"f3", "g1"}, {"f6", "g8"},
	}

	for i, move := range moves {
		if engine.IsThreefoldRepetition() && i < len(moves)-1 {
			t.Fatalf("Repetition reported too early, after %d moves", i)
		}
		_, err := engine.MakeMove(move.from, move.to, NoKind)
		if err != nil {
			t.Fatalf("Failed to make move %s->%s: %v", move.from, move.to, err)
		}
	}

	if !engine.IsThreefoldRepetition() {
		t.Fatal("Expected threefold repetition to be eligible")
	}

	found := false
	for _, method := range engine.GetEligibleDraws() {
		if method == DrawThreefoldRepetition {
			found = true
			break
		}
	}
	if !found {
		t.Error("ThreefoldRepetition not found in eligible draws")
	}

	if err := engine.ClaimDraw(DrawThreefoldRepetition); err != nil {
		t.Fatalf("Failed to claim threefold repetition draw: %v", err)
	}

	if !engine.IsDrawn() {
		t.Error("Game should be drawn after claiming threefold repetition")
	}
	if engine.GetStatus() != StatusDraw {
		t.Errorf("GetStatus() = %s, want %s", engine.GetStatus(), StatusDraw)
	}
	if reason := engine.GetDrawReason(); reason != DrawThreefoldRepetition {
		t.Errorf("GetDrawReason() = %s, want %s", reason, DrawThreefoldRepetition)
	}
}

func TestClaimedDrawRejectsFurtherMoves(t *testing.T) {
	engine := NewEngine()
	for _, mv := range [][2]string{
		{"g1", "f3"}, {"g8", "f6"},
		{"f3", "g1"}, {"f6", "g8"},
		{"g1", "f3"}, {"g8", "f6"},
		{"f3", "g1"}, {"f6", "g8"},
	} {
		if _, err := engine.MakeMove(mv[0], mv[1], NoKind); err != nil {
			t.Fatalf("Failed to make move: %v", err)
		}
	}
	if err := engine.ClaimDraw(DrawThreefoldRepetition); err != nil {
		t.Fatalf("Failed to claim draw: %v", err)
	}

	before := engine.GetFEN()
	_, err := engine.MakeMove("e2", "e4", NoKind)
	if !errors.Is(err, ErrGameOver) {
		t.Fatalf("MakeMove after claimed draw: err = %v, want ErrGameOver", err)
	}
	if engine.GetFEN() != before {
		t.Error("Position changed by a move on a drawn game")
	}
	if engine.GetStatus() != StatusDraw {
		t.Errorf("GetStatus() = %s, want %s", engine.GetStatus(), StatusDraw)
	}
}

func TestClaimDrawRejectedWhenIneligible(t *testing.T) {
	engine := NewEngine()
	if err := engine.ClaimDraw(DrawThreefoldRepetition); err == nil {
		t.Error("Expected claim to fail in the starting position")
	}
	if engine.GetStatus() != StatusActive {
		t.Errorf("GetStatus() = %s, want %s", engine.GetStatus(), StatusActive)
	}
}

func TestFiftyMoveRuleViaEngine(t *testing.T) {
	engine, err := NewEngineFromFEN("8/8/8/3k4/8/3K4/8/R6R w - - 99 80")
	if err != nil {
		t.Fatalf("Failed to create engine from FEN: %v", err)
	}

	result, err := engine.MakeMove("a1", "a2", NoKind)
	if err != nil {
		t.Fatalf("Failed to make the qualifying move: %v", err)
	}
	if !result.Draw || !result.GameOver {
		t.Errorf("Expected a drawn, finished game, got %+v", result)
	}
	if result.Result != ResultDraw {
		t.Errorf("Result = %s, want %s", result.Result, ResultDraw)
	}
	if reason := engine.GetDrawReason(); reason != DrawFiftyMoveRule {
		t.Errorf("GetDrawReason() = %s, want %s", reason, DrawFiftyMoveRule)
	}
}

func TestUndoForgetsClaimedDraw(t *testing.T) {
	engine := NewEngine()
	for _, mv := range [][2]string{
		{"g1", "f3"}, {"g8", "f6"},
		{"f3", "g1"}, {"f6", "g8"},
		{"g1", "f3"}, {"g8", "f6"},
		{"f3", "g1"}, {"f6", "g8"},
	} {
		if _, err := engine.MakeMove(mv[0], mv[1], NoKind); err != nil {
			t.Fatalf("Failed to make move: %v", err)
		}
	}
	if err := engine.ClaimDraw(DrawThreefoldRepetition); err != nil {
		t.Fatalf("Failed to claim draw: %v", err)
	}
	if !engine.Undo() {
		t.Fatal("Expected Undo to succeed")
	}
	if engine.GetStatus() != StatusActive {
		t.Errorf("GetStatus() = %s, want %s after undo", engine.GetStatus(), StatusActive)
	}
}

package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/argontus/chesscore/internal/chess"
)

var (
	lightSquare = color.New(color.BgHiWhite, color.FgBlack)
	darkSquare  = color.New(color.BgCyan, color.FgBlack)
	frameLabel  = color.New(color.Bold)
)

var pieceGlyphs = map[chess.Side]map[chess.PieceKind]string{
	chess.White: {
		chess.Pawn: "♙", chess.Knight: "♘", chess.Bishop: "♗",
		chess.Rook: "♖", chess.Queen: "♕", chess.King: "♔",
	},
	chess.Black: {
		chess.Pawn: "♟", chess.Knight: "♞", chess.Bishop: "♝",
		chess.Rook: "♜", chess.Queen: "♛", chess.King: "♚",
	},
}

// renderBoard paints the position from white's point of view, ranks 8
// down to 1. Rendering lives here in the CLI; the engine itself knows
// nothing about presentation.
func renderBoard(b chess.Board) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteString(frameLabel.Sprintf(" %d ", rank+1))
		for file := 0; file < 8; file++ {
			cell := " "
			if p := b.PieceAt(chess.NewSquare(file, rank)); !p.IsEmpty() {
				cell = pieceGlyphs[p.Side][p.Kind]
			}
			paint := darkSquare
			if (file+rank)%2 == 1 {
				paint = lightSquare
			}
			sb.WriteString(paint.Sprintf(" %s ", cell))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   ")
	for file := 0; file < 8; file++ {
		sb.WriteString(frameLabel.Sprintf(" %c ", 'a'+file))
	}
	sb.WriteByte('\n')
	return sb.String()
}

func printStatus(engine *chess.Engine) {
	fmt.Printf("%s to move, status: %s\n", engine.GetActiveColor(), engine.GetStatus())
}

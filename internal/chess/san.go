package chess

import "strings"

// san renders m in standard algebraic notation from the position it
// was played in. The move's Check/Checkmate flags must already be
// filled in; they become the "+" / "#" suffix.
func (s GameState) san(m Move) string {
	var sb strings.Builder

	switch {
	case m.Castle && m.To.File() == 6:
		sb.WriteString("O-O")
	case m.Castle:
		sb.WriteString("O-O-O")
	default:
		if m.Piece != Pawn {
			sb.WriteByte(m.Piece.letter())
			sb.WriteString(s.disambiguation(m))
		}
		if m.Captured != NoKind {
			if m.Piece == Pawn {
				sb.WriteByte(byte('a' + m.From.File()))
			}
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.Promotion != NoKind {
			sb.WriteByte('=')
			sb.WriteByte(m.Promotion.letter())
		}
	}

	if m.Checkmate {
		sb.WriteByte('#')
	} else if m.Check {
		sb.WriteByte('+')
	}
	return sb.String()
}

// disambiguation returns the origin file and/or rank needed when
// another piece of the same kind could also legally reach the
// destination.
func (s GameState) disambiguation(m Move) string {
	side := s.Board[m.From].Side
	var rivals []Square
	for _, from := range s.Board.Occupied(side) {
		if from == m.From || s.Board[from].Kind != m.Piece {
			continue
		}
		for _, cand := range s.legalMovesFrom(from) {
			if cand.To == m.To {
				rivals = append(rivals, from)
				break
			}
		}
	}
	if len(rivals) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, sq := range rivals {
		if sq.File() == m.From.File() {
			sameFile = true
		}
		if sq.Rank() == m.From.Rank() {
			sameRank = true
		}
	}
	switch {
	case !sameFile:
		return string([]byte{byte('a' + m.From.File())})
	case !sameRank:
		return string([]byte{byte('1' + m.From.Rank())})
	default:
		return m.From.String()
	}
}

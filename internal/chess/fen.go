package chess

import (
	"fmt"
	"strconv"
	"strings"
)

// StartingFEN is the standard initial position.
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN exports the position as the six space-separated FEN fields:
// piece placement (ranks 8 down to 1), side to move, castling rights,
// en passant target, half-move clock, full-move number.
func (s GameState) FEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		if rank < 7 {
			sb.WriteByte('/')
		}
		empties := 0
		for file := 0; file < 8; file++ {
			p := s.Board[NewSquare(file, rank)]
			if p.IsEmpty() {
				empties++
				continue
			}
			if empties > 0 {
				sb.WriteByte(byte('0' + empties))
				empties = 0
			}
			sb.WriteByte(p.fenLetter())
		}
		if empties > 0 {
			sb.WriteByte(byte('0' + empties))
		}
	}

	sb.WriteByte(' ')
	if s.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(s.Castling.fenField())

	sb.WriteByte(' ')
	sb.WriteString(s.EnPassant.String())

	fmt.Fprintf(&sb, " %d %d", s.HalfMoveClock, s.FullMoveNumber)
	return sb.String()
}

func (c CastlingRights) fenField() string {
	var sb strings.Builder
	if c.WhiteKingSide {
		sb.WriteByte('K')
	}
	if c.WhiteQueenSide {
		sb.WriteByte('Q')
	}
	if c.BlackKingSide {
		sb.WriteByte('k')
	}
	if c.BlackQueenSide {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// ImportFEN parses a six-field FEN string into a fresh GameState with
// its terminal status evaluated. Every malformed input is rejected
// with ErrInvalidFEN; no existing state is touched either way.
func ImportFEN(fen string) (GameState, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return GameState{}, fmt.Errorf("%w: want 6 fields, got %d", ErrInvalidFEN, len(fields))
	}

	board, err := parsePlacement(fields[0])
	if err != nil {
		return GameState{}, err
	}

	s := GameState{Board: board, EnPassant: NoSquare}

	switch fields[1] {
	case "w":
		s.SideToMove = White
	case "b":
		s.SideToMove = Black
	default:
		return GameState{}, fmt.Errorf("%w: bad side to move %q", ErrInvalidFEN, fields[1])
	}

	if s.Castling, err = parseCastlingField(fields[2]); err != nil {
		return GameState{}, err
	}

	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil || (sq.Rank() != 2 && sq.Rank() != 5) {
			return GameState{}, fmt.Errorf("%w: bad en passant target %q", ErrInvalidFEN, fields[3])
		}
		s.EnPassant = sq
	}

	if s.HalfMoveClock, err = strconv.Atoi(fields[4]); err != nil || s.HalfMoveClock < 0 {
		return GameState{}, fmt.Errorf("%w: bad half-move clock %q", ErrInvalidFEN, fields[4])
	}
	if s.FullMoveNumber, err = strconv.Atoi(fields[5]); err != nil || s.FullMoveNumber < 1 {
		return GameState{}, fmt.Errorf("%w: bad full-move number %q", ErrInvalidFEN, fields[5])
	}

	s.Status = s.evaluateStatus()
	return s, nil
}

// parsePlacement parses the first FEN field, insisting on eight rank
// sections, exactly eight squares per rank, valid piece letters, one
// king per side, at most eight pawns per side, and no pawn on a back
// rank.
func parsePlacement(field string) (Board, error) {
	var b Board
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return b, fmt.Errorf("%w: want 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}
	for i, row := range ranks {
		rank := 7 - i
		file := 0
		lastWasDigit := false
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				if lastWasDigit {
					return b, fmt.Errorf("%w: consecutive digits in rank %d", ErrInvalidFEN, rank+1)
				}
				file += int(c - '0')
				lastWasDigit = true
				continue
			}
			lastWasDigit = false
			p, ok := pieceFromFEN(c)
			if !ok {
				return b, fmt.Errorf("%w: unknown piece letter %q", ErrInvalidFEN, string(c))
			}
			if file > 7 {
				return b, fmt.Errorf("%w: rank %d overflows", ErrInvalidFEN, rank+1)
			}
			b[NewSquare(file, rank)] = p
			file++
		}
		if file != 8 {
			return b, fmt.Errorf("%w: rank %d has %d squares", ErrInvalidFEN, rank+1, file)
		}
	}
	for _, side := range [2]Side{White, Black} {
		if n := b.count(side, King); n != 1 {
			return b, fmt.Errorf("%w: %s has %d kings", ErrInvalidFEN, side, n)
		}
		if n := b.count(side, Pawn); n > 8 {
			return b, fmt.Errorf("%w: %s has %d pawns", ErrInvalidFEN, side, n)
		}
	}
	for file := 0; file < 8; file++ {
		if b[NewSquare(file, 0)].Kind == Pawn || b[NewSquare(file, 7)].Kind == Pawn {
			return b, fmt.Errorf("%w: pawn on a back rank", ErrInvalidFEN)
		}
	}
	return b, nil
}

func parseCastlingField(field string) (CastlingRights, error) {
	var c CastlingRights
	if field == "-" {
		return c, nil
	}
	if field == "" || len(field) > 4 {
		return c, fmt.Errorf("%w: bad castling field %q", ErrInvalidFEN, field)
	}
	for i := 0; i < len(field); i++ {
		var flag *bool
		switch field[i] {
		case 'K':
			flag = &c.WhiteKingSide
		case 'Q':
			flag = &c.WhiteQueenSide
		case 'k':
			flag = &c.BlackKingSide
		case 'q':
			flag = &c.BlackQueenSide
		default:
			return CastlingRights{}, fmt.Errorf("%w: bad castling field %q", ErrInvalidFEN, field)
		}
		if *flag {
			return CastlingRights{}, fmt.Errorf("%w: duplicate castling flag %q", ErrInvalidFEN, string(field[i]))
		}
		*flag = true
	}
	return c, nil
}

package chess

// Side is one of the two players.
type Side int8

const (
	White Side = iota
	Black
)

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == White {
		return Black
	}
	return White
}

func (s Side) String() string {
	if s == White {
		return "white"
	}
	return "black"
}

// PieceKind is the type of a piece, independent of its side.
type PieceKind int8

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindNames = map[PieceKind]string{
	Pawn:   "pawn",
	Knight: "knight",
	Bishop: "bishop",
	Rook:   "rook",
	Queen:  "queen",
	King:   "king",
}

func (k PieceKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "none"
}

// letter returns the uppercase SAN letter for the kind ('N', 'Q', ...).
// Pawns have no letter in notation; 'P' is only used in FEN.
func (k PieceKind) letter() byte {
	return " PNBRQK"[k]
}

// Piece is a side-tagged piece kind. The zero value is an empty square.
type Piece struct {
	Kind PieceKind
	Side Side
}

// NoPiece is the empty-square value.
var NoPiece = Piece{}

// IsEmpty reports whether p is the empty-square value.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// fenLetter returns the FEN letter for the piece: uppercase for
// white, lowercase for black.
func (p Piece) fenLetter() byte {
	c := p.Kind.letter()
	if p.Side == Black {
		c += 'a' - 'A'
	}
	return c
}

// pieceFromFEN maps a FEN letter to a piece, reporting failure for
// anything that is not one of "PNBRQKpnbrqk".
func pieceFromFEN(c byte) (Piece, bool) {
	side := White
	if c >= 'a' && c <= 'z' {
		side = Black
		c -= 'a' - 'A'
	}
	for k := Pawn; k <= King; k++ {
		if k.letter() == c {
			return Piece{Kind: k, Side: side}, true
		}
	}
	return NoPiece, false
}

// ParsePromotion converts a promotion letter ("q", "r", "b", "n") to a
// piece kind. Anything else maps to NoKind.
func ParsePromotion(p string) PieceKind {
	switch p {
	case "q", "Q":
		return Queen
	case "r", "R":
		return Rook
	case "b", "B":
		return Bishop
	case "n", "N":
		return Knight
	default:
		return NoKind
	}
}

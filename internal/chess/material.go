package chess

// StandardPieceValues maps piece kinds to their conventional values.
// The king carries no material value.
var StandardPieceValues = map[PieceKind]int{
	Pawn:   1,
	Knight: 3,
	Bishop: 3,
	Rook:   5,
	Queen:  9,
	King:   0,
}

// MaterialCount is the summed material value of both sides.
type MaterialCount struct {
	White int `json:"white"`
	Black int `json:"black"`
}

// Material totals the standard piece values on the board per side.
func (b Board) Material() MaterialCount {
	var mc MaterialCount
	for sq := Square(0); sq < 64; sq++ {
		p := b[sq]
		if p.IsEmpty() {
			continue
		}
		if p.Side == White {
			mc.White += StandardPieceValues[p.Kind]
		} else {
			mc.Black += StandardPieceValues[p.Kind]
		}
	}
	return mc
}

// MaterialBalance is white's material minus black's.
func (b Board) MaterialBalance() int {
	mc := b.Material()
	return mc.White - mc.Black
}

// InsufficientMaterial reports whether neither side can possibly
// deliver checkmate: bare kings, or a single minor piece beside them.
func (b Board) InsufficientMaterial() bool {
	minors := 0
	for sq := Square(0); sq < 64; sq++ {
		switch b[sq].Kind {
		case NoKind, King:
		case Knight, Bishop:
			minors++
		default:
			return false
		}
	}
	return minors <= 1
}

package chess

// Board maps each of the 64 squares to an optional piece. It is a
// plain array so assignment copies the whole position; scratch copies
// used during legality filtering are just value copies.
type Board [64]Piece

// StartingBoard returns the standard initial setup.
func StartingBoard() Board {
	var b Board
	back := [8]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < 8; file++ {
		b[NewSquare(file, 0)] = Piece{Kind: back[file], Side: White}
		b[NewSquare(file, 1)] = Piece{Kind: Pawn, Side: White}
		b[NewSquare(file, 6)] = Piece{Kind: Pawn, Side: Black}
		b[NewSquare(file, 7)] = Piece{Kind: back[file], Side: Black}
	}
	return b
}

// PieceAt returns the piece on sq, or NoPiece.
func (b Board) PieceAt(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b[sq]
}

// Occupied returns the squares holding pieces of the given side, in
// file-major, rank-minor order.
func (b Board) Occupied(side Side) []Square {
	var squares []Square
	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			sq := NewSquare(file, rank)
			if p := b[sq]; !p.IsEmpty() && p.Side == side {
				squares = append(squares, sq)
			}
		}
	}
	return squares
}

// KingSquare locates the king of the given side, NoSquare if absent.
func (b Board) KingSquare(side Side) Square {
	for sq := Square(0); sq < 64; sq++ {
		if b[sq].Kind == King && b[sq].Side == side {
			return sq
		}
	}
	return NoSquare
}

// count returns the number of pieces of the given side and kind.
func (b Board) count(side Side, kind PieceKind) int {
	n := 0
	for sq := Square(0); sq < 64; sq++ {
		if b[sq].Kind == kind && b[sq].Side == side {
			n++
		}
	}
	return n
}

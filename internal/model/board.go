package model

// Board owns the 64 piece slots plus the move history and capture list.
// Everything history dependent (whose turn, castling rights, en passant)
// is derived from the history rather than stored as flags, so replaying
// the serialized history reconstructs the full state.
type Board struct {
	squares  [64]Piece
	history  []Move
	captures []Piece
}

var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard seeds the standard starting position. White occupies ranks 1-2
// (squares 0..15), black ranks 7-8.
func NewBoard() *Board {
	b := &Board{}
	for file := 0; file < 8; file++ {
		b.squares[squareAt(file, 0)] = Piece{Type: backRank[file], Color: ColorWhite}
		b.squares[squareAt(file, 1)] = Piece{Type: Pawn, Color: ColorWhite}
		b.squares[squareAt(file, 6)] = Piece{Type: Pawn, Color: ColorBlack}
		b.squares[squareAt(file, 7)] = Piece{Type: backRank[file], Color: ColorBlack}
	}
	return b
}

func (b *Board) PieceAt(sq Square) Piece {
	return b.squares[sq]
}

// Place and Clear mutate a slot directly with no legality check. Apply and
// test setup are the only callers.
func (b *Board) Place(sq Square, p Piece) {
	b.squares[sq] = p
}

func (b *Board) Clear(sq Square) {
	b.squares[sq] = Piece{}
}

// Clone returns an independent deep copy. Probing a hypothetical move on the
// clone must never leak into the board it was cloned from.
func (b *Board) Clone() *Board {
	clone := &Board{squares: b.squares}
	clone.history = append([]Move(nil), b.history...)
	clone.captures = append([]Piece(nil), b.captures...)
	return clone
}

// HasEverMoved reports whether sq was the origin or destination of any
// applied move. Linear in history length, which is bounded by game length.
func (b *Board) HasEverMoved(sq Square) bool {
	for _, m := range b.history {
		if m.From == sq || m.To == sq {
			return true
		}
	}
	return false
}

func (b *Board) LastMove() (Move, bool) {
	if len(b.history) == 0 {
		return Move{}, false
	}
	return b.history[len(b.history)-1], true
}

// Turn derives the side to move from the history length: white moves first.
func (b *Board) Turn() Color {
	if len(b.history)%2 == 0 {
		return ColorWhite
	}
	return ColorBlack
}

func (b *Board) History() []Move {
	return append([]Move(nil), b.history...)
}

// Captures returns the captured pieces in capture order. Display only.
func (b *Board) Captures() []Piece {
	return append([]Piece(nil), b.captures...)
}

func (b *Board) findKing(color Color) (Square, bool) {
	for sq := Square(0); sq < 64; sq++ {
		p := b.squares[sq]
		if p.Type == King && p.Color == color {
			return sq, true
		}
	}
	return 0, false
}

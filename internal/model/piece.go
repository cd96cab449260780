package model

import "fmt"

type Color string

const (
	ColorWhite Color = "white"
	ColorBlack Color = "black"
)

func (c Color) Opponent() Color {
	if c == ColorWhite {
		return ColorBlack
	}
	return ColorWhite
}

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

// Piece is the value stored in one board slot. The zero value is the empty
// square, so copying a board copies every square with no aliasing.
type Piece struct {
	Type  PieceType `json:"type"`
	Color Color     `json:"color"`
}

func (p Piece) IsEmpty() bool {
	return p.Type == ""
}

// Square indexes the board 0..63, row-major from the white corner, ascending
// by file then rank. Square 0 is "11" in move notation.
type Square int

func (s Square) File() int {
	return int(s) % 8
}

func (s Square) Rank() int {
	return int(s) / 8
}

func (s Square) Valid() bool {
	return s >= 0 && s < 64
}

func squareAt(file, rank int) Square {
	return Square(rank*8 + file)
}

func (s Square) String() string {
	return fmt.Sprintf("%d%d", s.File()+1, s.Rank()+1)
}

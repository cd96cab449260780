package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// boardSnapshot captures everything observable about a board through its
// public surface, for asserting that an operation did not mutate it.
type boardSnapshot struct {
	Squares  []Piece
	History  []Move
	Captures []Piece
}

func snapshotBoard(b *Board) boardSnapshot {
	s := boardSnapshot{
		History:  b.History(),
		Captures: b.Captures(),
	}
	for sq := Square(0); sq < 64; sq++ {
		s.Squares = append(s.Squares, b.PieceAt(sq))
	}
	return s
}

func TestValidateNeverMutates(t *testing.T) {
	b := NewBoard()
	applyAll(t, b, "52-54", "47-45")
	before := snapshotBoard(b)

	probes := []string{
		"54-45", // legal capture
		"54-55", // legal advance
		"11-14", // blocked rook
		"51-71", // blocked castle
		"48-84", // out of turn
	}
	for _, notation := range probes {
		m, _ := ParseMove(notation)
		b.Validate(m)
	}

	if diff := cmp.Diff(before, snapshotBoard(b)); diff != "" {
		t.Errorf("Validate mutated the board (-before +after):\n%s", diff)
	}
}

func TestValidateTurnGate(t *testing.T) {
	b := NewBoard()

	black, _ := ParseMove("57-55")
	if b.Validate(black) {
		t.Error("black move accepted on white's turn")
	}

	applyAll(t, b, "52-54")
	if !b.Validate(black) {
		t.Error("black move rejected on black's turn")
	}
	white, _ := ParseMove("42-44")
	if b.Validate(white) {
		t.Error("white move accepted on black's turn")
	}
}

func TestAcceptedMovesNeverLeaveOwnKingInCheck(t *testing.T) {
	boards := map[string]*Board{
		"starting position": NewBoard(),
	}

	opened := NewBoard()
	applyAll(t, opened, "52-54", "57-55", "71-63", "28-36")
	boards["open game"] = opened

	pinned := &Board{}
	pinned.Place(sq(t, "51"), Piece{Type: King, Color: ColorWhite})
	pinned.Place(sq(t, "52"), Piece{Type: Rook, Color: ColorWhite})
	pinned.Place(sq(t, "58"), Piece{Type: Rook, Color: ColorBlack})
	pinned.Place(sq(t, "18"), Piece{Type: King, Color: ColorBlack})
	boards["pinned rook"] = pinned

	for name, b := range boards {
		t.Run(name, func(t *testing.T) {
			mover := b.Turn()
			for from := Square(0); from < 64; from++ {
				if piece := b.PieceAt(from); piece.IsEmpty() || piece.Color != mover {
					continue
				}
				for to := Square(0); to < 64; to++ {
					m := Move{From: from, To: to}
					if !b.Validate(m) {
						continue
					}
					probe := b.Clone()
					probe.Apply(m)
					if kingSq, in := probe.InCheck(mover); in {
						t.Errorf("accepted move %v -> %v leaves own king in check on %v", from, to, kingSq)
					}
				}
			}
		})
	}
}

func TestPinnedPieceCannotMoveOffLine(t *testing.T) {
	b := &Board{}
	b.Place(sq(t, "51"), Piece{Type: King, Color: ColorWhite})
	b.Place(sq(t, "52"), Piece{Type: Rook, Color: ColorWhite})
	b.Place(sq(t, "58"), Piece{Type: Rook, Color: ColorBlack})
	b.Place(sq(t, "18"), Piece{Type: King, Color: ColorBlack})

	if b.Validate(Move{From: sq(t, "52"), To: sq(t, "62")}) {
		t.Error("pinned rook allowed to leave the pin line")
	}
	if !b.Validate(Move{From: sq(t, "52"), To: sq(t, "53")}) {
		t.Error("pinned rook rejected moving along the pin line")
	}
	if !b.Validate(Move{From: sq(t, "52"), To: sq(t, "58")}) {
		t.Error("pinned rook rejected capturing the pinning piece")
	}
}

func TestPromotion(t *testing.T) {
	setup := func(t *testing.T) *Board {
		b := &Board{}
		b.Place(sq(t, "47"), Piece{Type: Pawn, Color: ColorWhite})
		b.Place(sq(t, "11"), Piece{Type: King, Color: ColorWhite})
		b.Place(sq(t, "88"), Piece{Type: King, Color: ColorBlack})
		return b
	}

	t.Run("auto-queen without code", func(t *testing.T) {
		b := setup(t)
		m, _ := ParseMove("47-48")
		if !b.Validate(m) {
			t.Fatal("promotion move rejected")
		}
		b.Apply(m)
		want := Piece{Type: Queen, Color: ColorWhite}
		if got := b.PieceAt(sq(t, "48")); got != want {
			t.Errorf("promoted piece = %v, want %v", got, want)
		}
	})

	t.Run("explicit code", func(t *testing.T) {
		b := setup(t)
		m, _ := ParseMove("47-48-4")
		if !b.Validate(m) {
			t.Fatal("promotion move rejected")
		}
		b.Apply(m)
		want := Piece{Type: Knight, Color: ColorWhite}
		if got := b.PieceAt(sq(t, "48")); got != want {
			t.Errorf("promoted piece = %v, want %v", got, want)
		}
	})

	t.Run("code on a non-pawn", func(t *testing.T) {
		b := setup(t)
		if b.Validate(Move{From: sq(t, "11"), To: sq(t, "12"), Promotion: Queen}) {
			t.Error("promotion code accepted for a king move")
		}
	})

	t.Run("code short of the far rank", func(t *testing.T) {
		b := setup(t)
		b.Place(sq(t, "42"), Piece{Type: Pawn, Color: ColorWhite})
		if b.Validate(Move{From: sq(t, "42"), To: sq(t, "43"), Promotion: Queen}) {
			t.Error("promotion code accepted for a mid-board pawn move")
		}
	})

	t.Run("bogus promotion type", func(t *testing.T) {
		b := setup(t)
		if b.Validate(Move{From: sq(t, "47"), To: sq(t, "48"), Promotion: King}) {
			t.Error("promotion to king accepted")
		}
	})
}

func TestApplyRecordsCapture(t *testing.T) {
	b := NewBoard()
	applyAll(t, b, "52-54", "47-45", "54-45")

	if got := b.PieceAt(sq(t, "45")); got.Type != Pawn || got.Color != ColorWhite {
		t.Errorf("capturing pawn not on destination: %v", got)
	}
	captures := b.Captures()
	if len(captures) != 1 || captures[0] != (Piece{Type: Pawn, Color: ColorBlack}) {
		t.Errorf("captures = %v, want one black pawn", captures)
	}
}

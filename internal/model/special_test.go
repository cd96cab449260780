package model

import "testing"

func TestCastleKingside(t *testing.T) {
	b := NewBoard()
	b.Clear(sq(t, "61"))
	b.Clear(sq(t, "71"))

	m, _ := ParseMove("51-71")
	if !b.Validate(m) {
		t.Fatal("kingside castle rejected with a clear, unattacked path")
	}
	b.Apply(m)

	if got := b.PieceAt(sq(t, "71")); got.Type != King || got.Color != ColorWhite {
		t.Errorf("king square after castle = %v", got)
	}
	if got := b.PieceAt(sq(t, "61")); got.Type != Rook || got.Color != ColorWhite {
		t.Errorf("rook square after castle = %v", got)
	}
	if got := b.PieceAt(sq(t, "81")); !got.IsEmpty() {
		t.Errorf("rook origin still occupied: %v", got)
	}
	if got := b.PieceAt(sq(t, "51")); !got.IsEmpty() {
		t.Errorf("king origin still occupied: %v", got)
	}
	if len(b.History()) != 1 {
		t.Errorf("castle recorded %d history entries, want 1", len(b.History()))
	}
}

func TestCastleQueenside(t *testing.T) {
	b := NewBoard()
	b.Clear(sq(t, "21"))
	b.Clear(sq(t, "31"))
	b.Clear(sq(t, "41"))

	m, _ := ParseMove("51-31")
	if !b.Validate(m) {
		t.Fatal("queenside castle rejected with a clear, unattacked path")
	}
	b.Apply(m)

	if got := b.PieceAt(sq(t, "31")); got.Type != King {
		t.Errorf("king square after castle = %v", got)
	}
	if got := b.PieceAt(sq(t, "41")); got.Type != Rook {
		t.Errorf("rook square after castle = %v", got)
	}
	if got := b.PieceAt(sq(t, "11")); !got.IsEmpty() {
		t.Errorf("rook origin still occupied: %v", got)
	}
}

func TestCastleRejectedAfterRookMoved(t *testing.T) {
	b := NewBoard()
	b.Clear(sq(t, "61"))
	b.Clear(sq(t, "71"))

	// Rook shuffles out and back; the right is gone even though the board
	// looks identical.
	applyAll(t, b, "81-71", "17-16", "71-81", "16-15")

	m, _ := ParseMove("51-71")
	if b.Validate(m) {
		t.Error("castle accepted after the rook had moved")
	}
}

func TestCastleRejectedAfterKingMoved(t *testing.T) {
	b := NewBoard()
	b.Clear(sq(t, "61"))
	b.Clear(sq(t, "71"))

	applyAll(t, b, "51-61", "17-16", "61-51", "16-15")

	m, _ := ParseMove("51-71")
	if b.Validate(m) {
		t.Error("castle accepted after the king had moved")
	}
}

func TestCastleRejectedUnderAttack(t *testing.T) {
	setup := func(t *testing.T, attackFile string) *Board {
		b := &Board{}
		b.Place(sq(t, "51"), Piece{Type: King, Color: ColorWhite})
		b.Place(sq(t, "81"), Piece{Type: Rook, Color: ColorWhite})
		b.Place(sq(t, "18"), Piece{Type: King, Color: ColorBlack})
		b.Place(sq(t, attackFile+"7"), Piece{Type: Rook, Color: ColorBlack})
		return b
	}

	tests := []struct {
		name       string
		attackFile string
	}{
		{"king in check", "5"},
		{"passes through attacked square", "6"},
		{"lands on attacked square", "7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := setup(t, tt.attackFile)
			m, _ := ParseMove("51-71")
			if b.Validate(m) {
				t.Errorf("castle accepted with file %s covered by a rook", tt.attackFile)
			}
		})
	}

	// Control: the same position with the attacker on an irrelevant file.
	b := setup(t, "1")
	m, _ := ParseMove("51-71")
	if !b.Validate(m) {
		t.Error("castle rejected with no relevant attack")
	}
}

func TestEnPassant(t *testing.T) {
	b := NewBoard()
	// 1. e4 a6 2. e5 d5: the black d-pawn lands beside the white e-pawn.
	applyAll(t, b, "52-54", "17-16", "54-55", "47-45")

	m, _ := ParseMove("55-46")
	if !b.Validate(m) {
		t.Fatal("en passant rejected immediately after the double advance")
	}
	b.Apply(m)

	if got := b.PieceAt(sq(t, "46")); got.Type != Pawn || got.Color != ColorWhite {
		t.Errorf("capturing pawn not on destination: %v", got)
	}
	if got := b.PieceAt(sq(t, "45")); !got.IsEmpty() {
		t.Errorf("en passant victim still on the board: %v", got)
	}

	captures := b.Captures()
	if len(captures) != 1 || captures[0].Type != Pawn || captures[0].Color != ColorBlack {
		t.Errorf("captures after en passant = %v", captures)
	}
}

func TestEnPassantExpiresAfterOneMove(t *testing.T) {
	b := NewBoard()
	// Same position, but a knight move intervenes before the capture try.
	applyAll(t, b, "52-54", "17-16", "54-55", "47-45", "21-33", "16-15")

	m, _ := ParseMove("55-46")
	if b.Validate(m) {
		t.Error("en passant accepted one half-move too late")
	}
}

func TestEnPassantRequiresDoubleAdvance(t *testing.T) {
	b := NewBoard()
	// The black d-pawn arrives beside the white pawn in two single steps.
	applyAll(t, b, "52-54", "47-46", "54-55", "46-45")

	m, _ := ParseMove("55-46")
	if b.Validate(m) {
		t.Error("en passant accepted against a single-step pawn")
	}
}

package model

// validateOptions suppresses individual orchestrator gates. The oracle is
// the only caller that sets them: skipping the safety gate terminates the
// recursion between validation and check probing, and skipping the turn
// gate lets mate enumeration and attack probes run out of turn context.
type validateOptions struct {
	skipTurn   bool
	skipSafety bool
}

// Validate reports whether the move is fully legal for the side to move.
// It never mutates the board: the safety gate runs on a probe clone.
func (b *Board) Validate(m Move) bool {
	return b.validate(m, validateOptions{})
}

func (b *Board) validate(m Move, opts validateOptions) bool {
	if !m.From.Valid() || !m.To.Valid() || m.From == m.To {
		return false
	}
	piece := b.PieceAt(m.From)
	if piece.IsEmpty() {
		return false
	}
	if target := b.PieceAt(m.To); !target.IsEmpty() && target.Color == piece.Color {
		return false
	}
	if m.Promotion != "" {
		if piece.Type != Pawn || !validPromotion(m.Promotion) || m.To.Rank() != farRank(piece.Color) {
			return false
		}
	}

	if !opts.skipTurn && piece.Color != b.Turn() {
		return false
	}

	if !shapeRules[piece.Type](b, m) {
		return false
	}

	if !opts.skipSafety {
		probe := b.Clone()
		probe.Apply(m)
		if _, in := probe.InCheck(piece.Color); in {
			return false
		}
	}
	return true
}

// Apply executes a move the caller has already validated; it never
// re-validates. Side effects land before the principal piece moves: the
// en passant victim is lifted off its own square and the castle rook is
// relocated, then the destination occupant (if any) is recorded as
// captured, the piece moves, promotion substitutes the type, and the move
// is appended to history.
func (b *Board) Apply(m Move) {
	piece := b.PieceAt(m.From)

	if piece.Type == Pawn {
		if captured, ok := detectEnPassant(b, m); ok {
			b.captures = append(b.captures, b.PieceAt(captured))
			b.Clear(captured)
		}
	}
	if piece.Type == King {
		if rm, ok := detectCastle(b, m); ok {
			rook := b.PieceAt(rm.From)
			b.Clear(rm.From)
			b.Place(rm.To, rook)
		}
	}

	if target := b.PieceAt(m.To); !target.IsEmpty() {
		b.captures = append(b.captures, target)
	}

	b.Clear(m.From)
	if piece.Type == Pawn && m.To.Rank() == farRank(piece.Color) {
		// Auto-queen when the notation carried no promotion code.
		piece.Type = Queen
		if m.Promotion != "" {
			piece.Type = m.Promotion
		}
	}
	b.Place(m.To, piece)
	b.history = append(b.history, m)
}

func validPromotion(t PieceType) bool {
	for _, p := range promotionCodes {
		if p == t {
			return true
		}
	}
	return false
}

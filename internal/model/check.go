package model

// InCheck reports whether color's king square is attacked, returning the
// king square when it is. An attack is a mechanically legal move onto the
// king with both the turn gate and the safety gate suppressed: whether the
// attacker's own king hangs is irrelevant to the attack, and suppressing the
// safety gate is what breaks the recursion between validation and check
// probing.
func (b *Board) InCheck(color Color) (Square, bool) {
	kingSq, ok := b.findKing(color)
	if !ok {
		return 0, false
	}
	for sq := Square(0); sq < 64; sq++ {
		attacker := b.PieceAt(sq)
		if attacker.IsEmpty() || attacker.Color == color {
			continue
		}
		m := Move{From: sq, To: kingSq}
		if b.validate(m, validateOptions{skipTurn: true, skipSafety: true}) {
			return kingSq, true
		}
	}
	return 0, false
}

// IsCheckmate reports whether color is in check with no escaping move.
// Escape candidates are every from/to pair (plus promotion variants for
// pawns reaching the far rank) run through full validation; the turn gate is
// suppressed because mate is probed out of turn context, the safety gate is
// not, so a candidate only counts if the resulting position is check free.
func (b *Board) IsCheckmate(color Color) bool {
	if _, in := b.InCheck(color); !in {
		return false
	}
	opts := validateOptions{skipTurn: true}
	for from := Square(0); from < 64; from++ {
		piece := b.PieceAt(from)
		if piece.IsEmpty() || piece.Color != color {
			continue
		}
		for to := Square(0); to < 64; to++ {
			m := Move{From: from, To: to}
			if b.validate(m, opts) {
				return false
			}
			if piece.Type == Pawn && to.Rank() == farRank(color) {
				for _, promotion := range promotionCodes {
					m.Promotion = promotion
					if b.validate(m, opts) {
						return false
					}
				}
			}
		}
	}
	return true
}

func farRank(color Color) int {
	if color == ColorWhite {
		return 7
	}
	return 0
}

package model

// rookMove is the rook relocation a castle implies alongside the king move.
type rookMove struct {
	From Square
	To   Square
}

// detectCastle recognizes a king moving exactly two squares along its rank
// and decides full castle eligibility. It never mutates b: the attack checks
// run on probe clones, and Apply performs the rook relocation it returns.
func detectCastle(b *Board, m Move) (rookMove, bool) {
	king := b.PieceAt(m.From)
	if king.Type != King {
		return rookMove{}, false
	}
	if rankDelta(m) != 0 || abs(fileDelta(m)) != 2 {
		return rookMove{}, false
	}
	// A castle never captures. This also keeps the oracle's attack probes
	// from re-entering castle detection: the probed target square always
	// holds the attacked king.
	if !b.PieceAt(m.To).IsEmpty() {
		return rookMove{}, false
	}

	var rm rookMove
	if fileDelta(m) > 0 {
		rm = rookMove{From: m.From + 3, To: m.To - 1}
	} else {
		rm = rookMove{From: m.From - 4, To: m.To + 1}
	}
	if !rm.From.Valid() {
		return rookMove{}, false
	}

	rook := b.PieceAt(rm.From)
	if rook.Type != Rook || rook.Color != king.Color {
		return rookMove{}, false
	}
	if b.HasEverMoved(m.From) || b.HasEverMoved(rm.From) {
		return rookMove{}, false
	}
	if !pathClear(b, Move{From: m.From, To: rm.From}) {
		return rookMove{}, false
	}

	// The king may not castle out of, through, or into an attacked square.
	if _, in := b.InCheck(king.Color); in {
		return rookMove{}, false
	}
	midpoint := (m.From + m.To) / 2
	probe := b.Clone()
	probe.Clear(m.From)
	probe.Place(midpoint, king)
	if _, in := probe.InCheck(king.Color); in {
		return rookMove{}, false
	}
	probe = b.Clone()
	probe.Clear(m.From)
	probe.Place(m.To, king)
	probe.Clear(rm.From)
	probe.Place(rm.To, rook)
	if _, in := probe.InCheck(king.Color); in {
		return rookMove{}, false
	}

	return rm, true
}

// detectEnPassant recognizes a pawn moving diagonally onto an empty square
// and returns the square actually captured, one rank behind the destination.
// This is the one move where the capture target is not the move target.
func detectEnPassant(b *Board, m Move) (Square, bool) {
	pawn := b.PieceAt(m.From)
	if pawn.Type != Pawn {
		return 0, false
	}
	dir := 1
	if pawn.Color == ColorBlack {
		dir = -1
	}
	if abs(fileDelta(m)) != 1 || rankDelta(m) != dir {
		return 0, false
	}
	if !b.PieceAt(m.To).IsEmpty() {
		return 0, false
	}

	captured := squareAt(m.To.File(), m.From.Rank())
	victim := b.PieceAt(captured)
	if victim.Type != Pawn || victim.Color == pawn.Color {
		return 0, false
	}

	// Only capturable on the half-move immediately after the two-square
	// advance that put the victim beside us.
	last, ok := b.LastMove()
	if !ok || last.To != captured {
		return 0, false
	}
	if abs(last.To.Rank()-last.From.Rank()) != 2 {
		return 0, false
	}
	return captured, true
}

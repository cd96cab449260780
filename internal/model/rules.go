package model

// Shape predicates decide whether a move fits a piece type's geometry,
// including path clearance. The generic gates (non-empty origin, correct
// turn, destination not same color) are applied once in validate before
// dispatching here, so a predicate only ever sees an otherwise eligible
// move. Dispatch is table driven: adding a piece type is one entry.
type shapeFunc func(b *Board, m Move) bool

var shapeRules map[PieceType]shapeFunc

func init() {
	shapeRules = map[PieceType]shapeFunc{
		King:   kingShape,
		Queen:  queenShape,
		Rook:   rookShape,
		Bishop: bishopShape,
		Knight: knightShape,
		Pawn:   pawnShape,
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func fileDelta(m Move) int {
	return m.To.File() - m.From.File()
}

func rankDelta(m Move) int {
	return m.To.Rank() - m.From.Rank()
}

func isStraight(m Move) bool {
	return m.From.File() == m.To.File() || m.From.Rank() == m.To.Rank()
}

func isDiagonal(m Move) bool {
	return abs(fileDelta(m)) == abs(rankDelta(m))
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// pathClear walks the squares strictly between the endpoints of a straight
// or diagonal move. Stepping off the board here means the caller fed it a
// malformed line, which a valid endpoint pair cannot produce.
func pathClear(b *Board, m Move) bool {
	df := sign(fileDelta(m))
	dr := sign(rankDelta(m))
	file := m.From.File() + df
	rank := m.From.Rank() + dr
	for file != m.To.File() || rank != m.To.Rank() {
		if file < 0 || file > 7 || rank < 0 || rank > 7 {
			panic(ErrInternalInconsistency)
		}
		if !b.PieceAt(squareAt(file, rank)).IsEmpty() {
			return false
		}
		file += df
		rank += dr
	}
	return true
}

func kingShape(b *Board, m Move) bool {
	if abs(fileDelta(m)) <= 1 && abs(rankDelta(m)) <= 1 {
		return true
	}
	_, ok := detectCastle(b, m)
	return ok
}

func queenShape(b *Board, m Move) bool {
	return (isStraight(m) || isDiagonal(m)) && pathClear(b, m)
}

func rookShape(b *Board, m Move) bool {
	return isStraight(m) && pathClear(b, m)
}

func bishopShape(b *Board, m Move) bool {
	return isDiagonal(m) && pathClear(b, m)
}

func knightShape(b *Board, m Move) bool {
	df, dr := abs(fileDelta(m)), abs(rankDelta(m))
	return (df == 1 && dr == 2) || (df == 2 && dr == 1)
}

func pawnShape(b *Board, m Move) bool {
	pawn := b.PieceAt(m.From)
	dir := 1
	if pawn.Color == ColorBlack {
		dir = -1
	}

	df := fileDelta(m)
	dr := rankDelta(m)

	// Straight advances must land on an empty square.
	if df == 0 {
		if !b.PieceAt(m.To).IsEmpty() {
			return false
		}
		if dr == dir {
			return true
		}
		// The double advance is tied to the pawn never having moved, not to
		// its rank: once the history shows it moved, two squares are out.
		if dr == 2*dir {
			return !b.HasEverMoved(m.From) && pathClear(b, m)
		}
		return false
	}

	// Diagonal one step: a plain capture or en passant.
	if abs(df) == 1 && dr == dir {
		target := b.PieceAt(m.To)
		if !target.IsEmpty() {
			return target.Color != pawn.Color
		}
		_, ok := detectEnPassant(b, m)
		return ok
	}
	return false
}

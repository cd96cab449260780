package model

import "strings"

// Move notation is the numeric form the original web client submits:
// "FF-TT" or "FF-TT-P", where FF and TT are file-rank digit pairs in
// "11".."88" and P picks the promotion piece. An incoming move may carry a
// single leading checkmate marker, which is display decoration; checkmate is
// derived from the position, never trusted from input.
const checkmateMarker = "#"

var promotionCodes = map[byte]PieceType{
	'1': Queen,
	'2': Rook,
	'3': Bishop,
	'4': Knight,
}

// Move is one half-move. Promotion is empty unless the notation carried a
// promotion code.
type Move struct {
	From      Square    `json:"from"`
	To        Square    `json:"to"`
	Promotion PieceType `json:"promotion,omitempty"`
}

// ParseMove decodes move notation. It never touches a board.
func ParseMove(text string) (Move, error) {
	text = strings.TrimPrefix(text, checkmateMarker)

	if len(text) != 5 && len(text) != 7 {
		return Move{}, ErrInvalidNotation
	}
	if text[2] != '-' {
		return Move{}, ErrInvalidNotation
	}

	from, ok := parseSquare(text[0:2])
	if !ok {
		return Move{}, ErrInvalidNotation
	}
	to, ok := parseSquare(text[3:5])
	if !ok {
		return Move{}, ErrInvalidNotation
	}

	move := Move{From: from, To: to}
	if len(text) == 7 {
		if text[5] != '-' {
			return Move{}, ErrInvalidNotation
		}
		promotion, ok := promotionCodes[text[6]]
		if !ok {
			return Move{}, ErrInvalidPromotionCode
		}
		move.Promotion = promotion
	}
	return move, nil
}

// FormatMove is the inverse of ParseMove, used to serialize history.
func FormatMove(m Move) string {
	text := m.From.String() + "-" + m.To.String()
	if m.Promotion != "" {
		for code, piece := range promotionCodes {
			if piece == m.Promotion {
				return text + "-" + string(code)
			}
		}
	}
	return text
}

func parseSquare(s string) (Square, bool) {
	file := s[0]
	rank := s[1]
	if file < '1' || file > '8' || rank < '1' || rank > '8' {
		return 0, false
	}
	return squareAt(int(file-'1'), int(rank-'1')), true
}

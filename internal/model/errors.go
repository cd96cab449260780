package model

import "errors"

var (
	ErrInvalidNotation      = errors.New("invalid move notation")
	ErrInvalidPromotionCode = errors.New("invalid promotion code")
	ErrIllegalMove          = errors.New("illegal move")
	// ErrInternalInconsistency is panicked, not returned: a path probe walking
	// off the board means an earlier invariant was already broken.
	ErrInternalInconsistency = errors.New("internal board inconsistency")
)

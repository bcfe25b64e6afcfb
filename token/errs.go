package token

import "errors"

var (
	ErrBadUTF8      = errors.New("bad utf8")
	ErrUnterminated = errors.New("unterminated")
	ErrNumber       = errors.New("bad number")
	ErrCannotQuote  = errors.New("cannot quote")
)

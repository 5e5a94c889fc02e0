package token

import "errors"

var (
	ErrUnbalanced   = errors.New("unbalanced input")
	ErrUnterminated = errors.New("unterminated")
)

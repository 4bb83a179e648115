package frac

import "errors"

// The three error kinds the engine produces. Every failing path returns one
// of these, possibly wrapped; callers match with errors.Is.
var (
	ErrZeroDivisor   = errors.New("denominator cannot be zero")
	ErrOverflow      = errors.New("integer overflow detected")
	ErrInvalidFormat = errors.New("accepted forms: \"1/2\", \"25\", \"3 1/2\"")
)

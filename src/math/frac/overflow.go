package frac

import "golang.org/x/exp/constraints"

// AddOverflows reports whether a+b wraps the range of T.
func AddOverflows[T constraints.Signed](a, b T) bool {
	sum := a + b
	return (b > 0 && sum < a) || (b < 0 && sum > a)
}

// SubOverflows reports whether a-b wraps the range of T.
func SubOverflows[T constraints.Signed](a, b T) bool {
	diff := a - b
	return (b < 0 && diff < a) || (b > 0 && diff > a)
}

// MulOverflows reports whether a*b wraps the range of T, including the
// most-negative-value * -1 case that survives the division check.
func MulOverflows[T constraints.Signed](a, b T) bool {
	if a == 0 || b == 0 {
		return false
	}
	if (a == -1 && b < 0 && -b == b) || (b == -1 && a < 0 && -a == a) {
		return true
	}
	p := a * b
	return p/b != a
}

package frac

import (
	"io"
	"strings"
)

// Parse reads a fraction from its textual form:
//
//	N        a whole number, stored as N/1
//	N/D      a plain fraction
//	W N/D    a mixed fraction
//
// Spaces and tabs may surround the numbers. The result is not reduced.
func Parse(s string) (Frac, error) {
	return scanFrac(strings.NewReader(s))
}

func scanFrac(r io.ByteScanner) (Frac, error) {
	var whole int32
	den := int32(1)

	skipSpace(r)
	num, err := scanNumber(r)
	if err != nil {
		return Frac{}, err
	}

	ch, err := r.ReadByte()
	if err != nil {
		// Lone integer: a whole number over 1.
		return Frac{Num: num, Den: 1}, nil
	}

	switch ch {
	case ' ':
		// Mixed form: the first number was the whole part.
		whole = num
		skipSpace(r)
		num, err = scanNumber(r)
		if err != nil {
			return Frac{}, err
		}
		ch, err = r.ReadByte()
		if err != nil || ch != '/' {
			return Frac{}, ErrInvalidFormat
		}
		skipSpace(r)
		den, err = scanNumber(r)
		if err != nil {
			return Frac{}, err
		}
	case '/':
		skipSpace(r)
		den, err = scanNumber(r)
		if err != nil {
			return Frac{}, err
		}
	default:
		return Frac{}, ErrInvalidFormat
	}

	skipSpace(r)
	if _, err := r.ReadByte(); err == nil {
		return Frac{}, ErrInvalidFormat
	}

	if den == 0 {
		return Frac{}, ErrZeroDivisor
	}

	if whole != 0 {
		if MulOverflows(den, whole) {
			return Frac{}, ErrOverflow
		}
		n := den * whole
		if AddOverflows(n, num) {
			return Frac{}, ErrOverflow
		}
		num = n + num
	}
	return Frac{Num: num, Den: den}, nil
}

// scanNumber consumes a run of digits. A missing leading digit is a format
// error; a value past int32 is an overflow.
func scanNumber(r io.ByteScanner) (int32, error) {
	var n int32
	seen := false
	for {
		ch, err := r.ReadByte()
		if err != nil {
			break
		}
		if ch < '0' || ch > '9' {
			r.UnreadByte()
			break
		}
		seen = true
		d := int32(ch - '0')
		if MulOverflows(n, int32(10)) {
			return 0, ErrOverflow
		}
		n *= 10
		if AddOverflows(n, d) {
			return 0, ErrOverflow
		}
		n += d
	}
	if !seen {
		return 0, ErrInvalidFormat
	}
	return n, nil
}

func skipSpace(r io.ByteScanner) {
	for {
		ch, err := r.ReadByte()
		if err != nil {
			return
		}
		if ch != ' ' && ch != '\t' {
			r.UnreadByte()
			return
		}
	}
}

package frac

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Reader reads fractions from line-oriented input. Each read consumes one
// full line, trims surrounding whitespace, and accepts either a decimal
// floating value covering the whole line or the fraction grammar. Any
// failure marks the reader failed: further reads return the same error.
type Reader struct {
	s   *bufio.Scanner
	err error
}

func NewReader(r io.Reader) *Reader {
	return &Reader{s: bufio.NewScanner(r)}
}

// Err returns the error that failed the reader, if any.
func (r *Reader) Err() error {
	return r.err
}

// ReadFrac reads the next fraction. At end of input it returns io.EOF.
func (r *Reader) ReadFrac() (Frac, error) {
	if r.err != nil {
		return Frac{}, r.err
	}
	if !r.s.Scan() {
		err := r.s.Err()
		if err == nil {
			err = io.EOF
		}
		r.err = err
		return Frac{}, err
	}

	line := strings.TrimSpace(r.s.Text())
	if line == "" || (!isDigit(line[0]) && line[0] != '-') {
		return Frac{}, r.fail(ErrInvalidFormat)
	}

	if v, err := strconv.ParseFloat(line, 64); err == nil {
		f, err := FromFloat(v)
		if err != nil {
			return Frac{}, r.fail(err)
		}
		return f, nil
	}

	f, err := Parse(line)
	if err != nil {
		return Frac{}, r.fail(err)
	}
	return f, nil
}

func (r *Reader) fail(err error) error {
	r.err = fmt.Errorf("read fraction: %w", err)
	return r.err
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// Package frac implements mixed-number rational arithmetic over int32
// numerators and denominators. Every arithmetic step is checked for
// overflow before it is committed, reduction is explicit rather than
// implicit, and comparison works on unreduced operands by
// cross-multiplication.
package frac

// Frac is a fraction with an optional whole part. The value it represents
// is (Whole*Den + Num) / Den. Fracs are plain values: copying one yields an
// independent fraction.
//
// The zero value has a zero denominator and is not a valid fraction;
// obtain Fracs from the constructors.
type Frac struct {
	Whole int32
	Num   int32
	Den   int32
}

// FromInt returns n as a fraction over 1.
func FromInt(n int32) Frac {
	return Frac{Num: n, Den: 1}
}

// New returns n/d without reducing it. Callers that want canonical form
// call Simplify on the result.
func New(n, d int32) (Frac, error) {
	if d == 0 {
		return Frac{}, ErrZeroDivisor
	}
	return Frac{Num: n, Den: d}, nil
}

// NewMixed returns the mixed fraction w n/d without reducing it.
func NewMixed(w, n, d int32) (Frac, error) {
	if d == 0 {
		return Frac{}, ErrZeroDivisor
	}
	return Frac{Whole: w, Num: n, Den: d}, nil
}

// Of converts a supported operand type to a Frac: Frac itself, any signed
// integer, float32/float64 (via FromFloat), or a string in the fraction
// grammar (via Parse, unreduced).
func Of(v any) (Frac, error) {
	switch x := v.(type) {
	case Frac:
		return x, nil
	case int:
		return fromInt64(int64(x))
	case int8:
		return FromInt(int32(x)), nil
	case int16:
		return FromInt(int32(x)), nil
	case int32:
		return FromInt(x), nil
	case int64:
		return fromInt64(x)
	case float32:
		return FromFloat(float64(x))
	case float64:
		return FromFloat(x)
	case string:
		return Parse(x)
	default:
		return Frac{}, ErrInvalidFormat
	}
}

func fromInt64(n int64) (Frac, error) {
	if n > maxInt32 || n < minInt32 {
		return Frac{}, ErrOverflow
	}
	return FromInt(int32(n)), nil
}

// Must unwraps a (Frac, error) pair, panicking on error. Intended for
// literals known to be valid.
func Must(f Frac, err error) Frac {
	if err != nil {
		panic(err)
	}
	return f
}

// improper folds the whole part into the numerator, leaving the value over
// the same denominator. The fold itself is overflow-checked.
func (f Frac) improper() (int32, error) {
	if f.Whole == 0 {
		return f.Num, nil
	}
	if MulOverflows(f.Whole, f.Den) {
		return 0, ErrOverflow
	}
	wd := f.Whole * f.Den
	if AddOverflows(wd, f.Num) {
		return 0, ErrOverflow
	}
	return wd + f.Num, nil
}

// Improper returns the fraction with its whole part folded into the
// numerator.
func (f Frac) Improper() (Frac, error) {
	n, err := f.improper()
	if err != nil {
		return Frac{}, err
	}
	return Frac{Num: n, Den: f.Den}, nil
}

// Reciprocal returns Den/Num of the improper form of f.
func (f Frac) Reciprocal() (Frac, error) {
	n, err := f.improper()
	if err != nil {
		return Frac{}, err
	}
	if n == 0 {
		return Frac{}, ErrZeroDivisor
	}
	return Frac{Num: f.Den, Den: n}, nil
}

// Float64 returns the fraction as a floating value.
func (f Frac) Float64() float64 {
	n := int64(f.Whole)*int64(f.Den) + int64(f.Num)
	return float64(n) / float64(f.Den)
}

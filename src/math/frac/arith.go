package frac

// Binary operators fold both operands to improper form, check every
// intermediate product and sum against int32 before computing, and return
// an unreduced result. Callers reduce explicitly with Simplify.

// Add returns f + o.
func (f Frac) Add(o Frac) (Frac, error) {
	an, err := f.improper()
	if err != nil {
		return Frac{}, err
	}
	bn, err := o.improper()
	if err != nil {
		return Frac{}, err
	}
	if MulOverflows(an, o.Den) || MulOverflows(bn, f.Den) || MulOverflows(f.Den, o.Den) {
		return Frac{}, ErrOverflow
	}
	if AddOverflows(an*o.Den, bn*f.Den) {
		return Frac{}, ErrOverflow
	}
	return Frac{Num: an*o.Den + bn*f.Den, Den: f.Den * o.Den}, nil
}

// Sub returns f - o.
func (f Frac) Sub(o Frac) (Frac, error) {
	an, err := f.improper()
	if err != nil {
		return Frac{}, err
	}
	bn, err := o.improper()
	if err != nil {
		return Frac{}, err
	}
	if MulOverflows(an, o.Den) || MulOverflows(bn, f.Den) || MulOverflows(f.Den, o.Den) {
		return Frac{}, ErrOverflow
	}
	if SubOverflows(an*o.Den, bn*f.Den) {
		return Frac{}, ErrOverflow
	}
	return Frac{Num: an*o.Den - bn*f.Den, Den: f.Den * o.Den}, nil
}

// Mul returns f * o.
func (f Frac) Mul(o Frac) (Frac, error) {
	an, err := f.improper()
	if err != nil {
		return Frac{}, err
	}
	bn, err := o.improper()
	if err != nil {
		return Frac{}, err
	}
	if MulOverflows(an, bn) || MulOverflows(f.Den, o.Den) {
		return Frac{}, ErrOverflow
	}
	return Frac{Num: an * bn, Den: f.Den * o.Den}, nil
}

// Div returns f / o, multiplying by the reciprocal of o.
func (f Frac) Div(o Frac) (Frac, error) {
	an, err := f.improper()
	if err != nil {
		return Frac{}, err
	}
	bn, err := o.improper()
	if err != nil {
		return Frac{}, err
	}
	if bn == 0 || f.Den == 0 {
		return Frac{}, ErrZeroDivisor
	}
	if MulOverflows(an, o.Den) || MulOverflows(f.Den, bn) {
		return Frac{}, ErrOverflow
	}
	return Frac{Num: an * o.Den, Den: f.Den * bn}, nil
}

// Integer fast paths: no Frac operand is materialized and the checks are
// limited to the terms the formula actually needs.

// AddInt returns f + n.
func (f Frac) AddInt(n int32) (Frac, error) {
	an, err := f.improper()
	if err != nil {
		return Frac{}, err
	}
	if MulOverflows(f.Den, n) {
		return Frac{}, ErrOverflow
	}
	if AddOverflows(an, f.Den*n) {
		return Frac{}, ErrOverflow
	}
	return Frac{Num: an + f.Den*n, Den: f.Den}, nil
}

// SubInt returns f - n.
func (f Frac) SubInt(n int32) (Frac, error) {
	an, err := f.improper()
	if err != nil {
		return Frac{}, err
	}
	if MulOverflows(f.Den, n) {
		return Frac{}, ErrOverflow
	}
	if SubOverflows(an, f.Den*n) {
		return Frac{}, ErrOverflow
	}
	return Frac{Num: an - f.Den*n, Den: f.Den}, nil
}

// MulInt returns f * n.
func (f Frac) MulInt(n int32) (Frac, error) {
	an, err := f.improper()
	if err != nil {
		return Frac{}, err
	}
	if MulOverflows(an, n) {
		return Frac{}, ErrOverflow
	}
	return Frac{Num: an * n, Den: f.Den}, nil
}

// DivInt returns f / n by scaling the denominator.
func (f Frac) DivInt(n int32) (Frac, error) {
	if n == 0 {
		return Frac{}, ErrZeroDivisor
	}
	an, err := f.improper()
	if err != nil {
		return Frac{}, err
	}
	if MulOverflows(f.Den, n) {
		return Frac{}, ErrOverflow
	}
	return Frac{Num: an, Den: f.Den * n}, nil
}

// Mixed-operand forms. Integers take the fast path; everything else is
// converted to a Frac once, at the boundary.

// AddValue returns f + v for a Frac, integer, floating, or string operand.
func (f Frac) AddValue(v any) (Frac, error) {
	if n, ok := asInt32(v); ok {
		return f.AddInt(n)
	}
	o, err := Of(v)
	if err != nil {
		return Frac{}, err
	}
	return f.Add(o)
}

// SubValue returns f - v.
func (f Frac) SubValue(v any) (Frac, error) {
	if n, ok := asInt32(v); ok {
		return f.SubInt(n)
	}
	o, err := Of(v)
	if err != nil {
		return Frac{}, err
	}
	return f.Sub(o)
}

// MulValue returns f * v.
func (f Frac) MulValue(v any) (Frac, error) {
	if n, ok := asInt32(v); ok {
		return f.MulInt(n)
	}
	o, err := Of(v)
	if err != nil {
		return Frac{}, err
	}
	return f.Mul(o)
}

// DivValue returns f / v.
func (f Frac) DivValue(v any) (Frac, error) {
	if n, ok := asInt32(v); ok {
		return f.DivInt(n)
	}
	o, err := Of(v)
	if err != nil {
		return Frac{}, err
	}
	return f.Div(o)
}

func asInt32(v any) (int32, bool) {
	switch x := v.(type) {
	case int:
		if x > maxInt32 || x < minInt32 {
			return 0, false
		}
		return int32(x), true
	case int8:
		return int32(x), true
	case int16:
		return int32(x), true
	case int32:
		return x, true
	case int64:
		if x > maxInt32 || x < minInt32 {
			return 0, false
		}
		return int32(x), true
	}
	return 0, false
}

// Reversed-operand forms: the primitive comes first, is converted, and the
// standard operator does the work.

// Add returns v + f.
func Add(v any, f Frac) (Frac, error) {
	o, err := Of(v)
	if err != nil {
		return Frac{}, err
	}
	return o.Add(f)
}

// Sub returns v - f.
func Sub(v any, f Frac) (Frac, error) {
	o, err := Of(v)
	if err != nil {
		return Frac{}, err
	}
	return o.Sub(f)
}

// Mul returns v * f.
func Mul(v any, f Frac) (Frac, error) {
	o, err := Of(v)
	if err != nil {
		return Frac{}, err
	}
	return o.Mul(f)
}

// Div returns v / f.
func Div(v any, f Frac) (Frac, error) {
	o, err := Of(v)
	if err != nil {
		return Frac{}, err
	}
	return o.Div(f)
}

// Compound forms compute first and commit only on success, so a failed
// operation leaves the receiver unchanged.

func (f *Frac) AddAssign(v any) error {
	r, err := f.AddValue(v)
	if err != nil {
		return err
	}
	*f = r
	return nil
}

func (f *Frac) SubAssign(v any) error {
	r, err := f.SubValue(v)
	if err != nil {
		return err
	}
	*f = r
	return nil
}

func (f *Frac) MulAssign(v any) error {
	r, err := f.MulValue(v)
	if err != nil {
		return err
	}
	*f = r
	return nil
}

func (f *Frac) DivAssign(v any) error {
	r, err := f.DivValue(v)
	if err != nil {
		return err
	}
	*f = r
	return nil
}

// Neg returns f with its sign flipped. The sign rides on the whole part
// when one is present, otherwise on the numerator.
func (f Frac) Neg() Frac {
	if f.Whole != 0 {
		return Frac{Whole: -f.Whole, Num: f.Num, Den: f.Den}
	}
	return Frac{Num: -f.Num, Den: f.Den}
}

// Inc adds one to f in place.
func (f *Frac) Inc() error { return f.step(1) }

// Dec subtracts one from f in place.
func (f *Frac) Dec() error { return f.step(-1) }

// PostInc adds one to f in place and returns the value f held before.
func (f *Frac) PostInc() (Frac, error) {
	prev := *f
	return prev, f.step(1)
}

// PostDec subtracts one from f in place and returns the value f held before.
func (f *Frac) PostDec() (Frac, error) {
	prev := *f
	return prev, f.step(-1)
}

func (f *Frac) step(delta int32) error {
	if f.Whole != 0 {
		n, err := f.improper()
		if err != nil {
			return err
		}
		if AddOverflows(n, delta) {
			return ErrOverflow
		}
		n += delta

		// Back to mixed form, denominator positive.
		w := n / f.Den
		n %= f.Den
		d := f.Den
		if d < 0 {
			n = -n
			d = -d
		}
		f.Whole, f.Num, f.Den = w, n, d
		return nil
	}
	if AddOverflows(f.Num, delta) {
		return ErrOverflow
	}
	f.Num += delta
	return nil
}

package frac

// Cmp orders f against o by cross-multiplication of their improper forms,
// so neither operand needs to be reduced first. It returns -1, 0, or 1.
// Both the whole-part folds and the cross-products are overflow-checked.
func (f Frac) Cmp(o Frac) (int, error) {
	ln, err := f.improper()
	if err != nil {
		return 0, err
	}
	rn, err := o.improper()
	if err != nil {
		return 0, err
	}
	if MulOverflows(ln, o.Den) || MulOverflows(rn, f.Den) {
		return 0, ErrOverflow
	}
	a, b := ln*o.Den, rn*f.Den
	switch {
	case a < b:
		return -1, nil
	case a > b:
		return 1, nil
	}
	return 0, nil
}

// CmpValue is Cmp against an integer, floating value, or textual literal,
// converted once at the boundary.
func (f Frac) CmpValue(v any) (int, error) {
	o, err := Of(v)
	if err != nil {
		return 0, err
	}
	return f.Cmp(o)
}

func (f Frac) Equal(o Frac) (bool, error) {
	c, err := f.Cmp(o)
	return c == 0, err
}

func (f Frac) Less(o Frac) (bool, error) {
	c, err := f.Cmp(o)
	return c < 0, err
}

func (f Frac) LessEqual(o Frac) (bool, error) {
	c, err := f.Cmp(o)
	return c <= 0, err
}

func (f Frac) Greater(o Frac) (bool, error) {
	c, err := f.Cmp(o)
	return c > 0, err
}

func (f Frac) GreaterEqual(o Frac) (bool, error) {
	c, err := f.Cmp(o)
	return c >= 0, err
}

package frac

// Simplify reduces f to canonical form in place: the whole part absorbs the
// integer portion of the numerator, numerator and denominator lose their
// common factor, and the denominator ends positive. A zero denominator is
// left untouched; constructors reject that state before it gets here.
func (f *Frac) Simplify() {
	if f.Den == 0 {
		return
	}
	if f.Num == 0 {
		f.Den = 1
		return
	}

	f.Whole += f.Num / f.Den
	f.Num %= f.Den

	// Keep the fractional remainder non-negative when the whole part
	// carries the sign.
	if f.Num < 0 && f.Whole != 0 {
		f.Num += abs32(f.Den)
		if f.Num > 0 {
			f.Whole--
		}
	}

	// The fold can leave nothing behind (e.g. 12/4).
	if f.Num == 0 {
		f.Den = 1
		return
	}

	// Euclid in int64: |minInt32| does not fit int32.
	a, b := abs64(int64(f.Num)), abs64(int64(f.Den))
	var g int64
	for {
		if a > b {
			a %= b
			if a == 0 {
				g = b
				break
			}
		} else {
			b %= a
			if b == 0 {
				g = a
				break
			}
		}
	}
	f.Num = int32(int64(f.Num) / g)
	f.Den = int32(int64(f.Den) / g)

	if f.Den < 0 {
		f.Num = -f.Num
		f.Den = -f.Den
	}
}

// Simplified returns the canonical form of f, leaving f unchanged.
func (f Frac) Simplified() Frac {
	f.Simplify()
	return f
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

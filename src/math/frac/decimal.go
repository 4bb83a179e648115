package frac

import (
	"math"

	"github.com/shopspring/decimal"
)

// floatPlaces is how many decimal digits of the input survive the
// conversion, matching the original fixed-width decimal rendering.
const floatPlaces = 6

// FromFloat approximates v as a fraction: the decimal digits of v (up to
// floatPlaces, trailing zeros stripped) become the numerator over the
// matching power of ten. The result is always reduced.
func FromFloat(v float64) (Frac, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Frac{}, ErrInvalidFormat
	}
	if math.Abs(v) > maxInt32 {
		return Frac{}, ErrOverflow
	}

	d := decimal.NewFromFloat(math.Abs(v)).Round(floatPlaces)
	n := d.Mul(decimal.New(1, floatPlaces)).IntPart()

	p := floatPlaces
	for p > 0 && n%10 == 0 {
		n /= 10
		p--
	}
	den := int64(1)
	for i := 0; i < p; i++ {
		den *= 10
	}
	if den == 0 {
		return Frac{}, ErrZeroDivisor
	}
	if n > maxInt32 {
		return Frac{}, ErrOverflow
	}
	if math.Signbit(v) {
		n = -n
	}

	f := Frac{Num: int32(n), Den: int32(den)}
	f.Simplify()
	return f, nil
}

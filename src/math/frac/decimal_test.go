package frac

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromFloat(t *testing.T) {
	for idx, tc := range []struct {
		in   float64
		want Frac
	}{
		{0.75, mk(3, 4)},
		{0.5, mk(1, 2)},
		{0.1, mk(1, 10)},
		{1.5, mix(1, 1, 2)},
		{25, mix(25, 0, 1)},
		{0, mk(0, 1)},
		{-0.75, mk(-3, 4)},
		{-1.25, mix(-2, 3, 4)}, // -2 + 3/4 == -5/4
		{0.625, mk(5, 8)},
		{1.0 / 3.0, mk(333333, 1000000)},
	} {
		t.Run(fmt.Sprintf("%d/%v", idx, tc.in), func(t *testing.T) {
			got, err := FromFloat(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestFromFloat32Operand(t *testing.T) {
	got, err := Of(float32(0.2))
	require.NoError(t, err)
	require.Equal(t, mk(1, 5), got)
}

func TestFromFloatRejectsNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := FromFloat(v)
		require.ErrorIs(t, err, ErrInvalidFormat, "input %v", v)
	}
}

func TestFromFloatOverflow(t *testing.T) {
	_, err := FromFloat(1e10)
	require.ErrorIs(t, err, ErrOverflow)

	_, err = FromFloat(-1e10)
	require.ErrorIs(t, err, ErrOverflow)
}

func TestFromFloatAlwaysCanonical(t *testing.T) {
	for _, v := range []float64{0.2, 0.25, 1.75, -0.6, 12.125, 100} {
		f, err := FromFloat(v)
		require.NoError(t, err)
		require.Equal(t, f.Simplified(), f, "input %v", v)
		require.InDelta(t, v, f.Float64(), 1e-6, "input %v", v)
	}
}

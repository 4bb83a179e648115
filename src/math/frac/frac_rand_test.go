package frac

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// randIterations should keep the oracle runs comfortably under a second
// while still sweeping a useful slice of the operand space.
const randIterations = 20000

func bigRatOf(f Frac) *big.Rat {
	n := int64(f.Whole)*int64(f.Den) + int64(f.Num)
	return big.NewRat(n, int64(f.Den))
}

func randFrac(rng *rand.Rand) Frac {
	f := Frac{
		Num: int32(rng.Intn(1999) - 999),
		Den: int32(rng.Intn(999) + 1),
	}
	if rng.Intn(2) == 1 {
		f.Whole = int32(rng.Intn(199) - 99)
	}
	return f
}

func TestArithmeticAgainstBigRat(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < randIterations; i++ {
		a, b := randFrac(rng), randFrac(rng)

		got, err := a.Add(b)
		require.NoError(t, err)
		require.Zero(t, bigRatOf(got).Cmp(new(big.Rat).Add(bigRatOf(a), bigRatOf(b))), "%s + %s", a, b)

		got, err = a.Sub(b)
		require.NoError(t, err)
		require.Zero(t, bigRatOf(got).Cmp(new(big.Rat).Sub(bigRatOf(a), bigRatOf(b))), "%s - %s", a, b)

		got, err = a.Mul(b)
		require.NoError(t, err)
		require.Zero(t, bigRatOf(got).Cmp(new(big.Rat).Mul(bigRatOf(a), bigRatOf(b))), "%s * %s", a, b)

		c, err := a.Cmp(b)
		require.NoError(t, err)
		require.Equal(t, bigRatOf(a).Cmp(bigRatOf(b)), c, "%s vs %s", a, b)
	}
}

func TestCommutativity(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < randIterations; i++ {
		a, b := randFrac(rng), randFrac(rng)

		ab, err := a.Add(b)
		require.NoError(t, err)
		ba, err := b.Add(a)
		require.NoError(t, err)
		eq, err := ab.Equal(ba)
		require.NoError(t, err)
		require.True(t, eq, "%s + %s", a, b)

		ab, err = a.Mul(b)
		require.NoError(t, err)
		ba, err = b.Mul(a)
		require.NoError(t, err)
		eq, err = ab.Equal(ba)
		require.NoError(t, err)
		require.True(t, eq, "%s * %s", a, b)
	}
}

func TestSimplifyAgainstBigRat(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < randIterations; i++ {
		f := randFrac(rng)
		s := f.Simplified()
		require.Zero(t, bigRatOf(f).Cmp(bigRatOf(s)), "input %s", f)
		require.Greater(t, s.Den, int32(0), "input %s", f)
	}
}

// boundary32 is the operand set most likely to expose a broken predicate.
var boundary32 = []int32{minInt32, minInt32 + 1, -2, -1, 0, 1, 2, maxInt32 - 1, maxInt32}

func TestOverflowPredicatesAgainstInt64(t *testing.T) {
	check := func(a, b int32) {
		wide := func(v int64) bool { return v > maxInt32 || v < minInt32 }
		require.Equal(t, wide(int64(a)+int64(b)), AddOverflows(a, b), "add %d %d", a, b)
		require.Equal(t, wide(int64(a)-int64(b)), SubOverflows(a, b), "sub %d %d", a, b)
		require.Equal(t, wide(int64(a)*int64(b)), MulOverflows(a, b), "mul %d %d", a, b)
	}

	for _, a := range boundary32 {
		for _, b := range boundary32 {
			check(a, b)
		}
	}

	rng := rand.New(rand.NewSource(4))
	for i := 0; i < randIterations; i++ {
		check(int32(rng.Uint32()), int32(rng.Uint32()))
	}
}

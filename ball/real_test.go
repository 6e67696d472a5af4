package ball_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holonomic/dfeval/ball"
)

// TestReal_ExactConstructors verifies that exact constructors carry a
// zero radius and the expected midpoint.
func TestReal_ExactConstructors(t *testing.T) {
	assert.True(t, ball.RealZero().IsExact(), "zero must be exact")
	assert.True(t, ball.RealOne().IsExact(), "one must be exact")
	assert.Equal(t, 1.0, ball.RealOne().Float64())
	assert.Equal(t, 0.25, ball.Pow2(-2).Float64(), "2^-2 must be exact")
	assert.Equal(t, -3.0, ball.RealFromInt64(-3).Float64())
}

// TestReal_FromRat checks that irrational-in-binary rationals pick up a
// one-ulp radius and still contain the true value.
func TestReal_FromRat(t *testing.T) {
	third := big.NewRat(1, 3)
	b := ball.RealFromRat(third, 64)

	assert.False(t, b.IsExact(), "1/3 is not a binary float")
	assert.True(t, b.ContainsRat(third), "enclosure must contain 1/3")

	half := ball.RealFromRat(big.NewRat(1, 2), 64)
	assert.True(t, half.IsExact(), "1/2 is a binary float")
}

// TestReal_AddSubEnclosure samples the arithmetic enclosure property on
// dyadic values where exact answers are known.
func TestReal_AddSubEnclosure(t *testing.T) {
	a := ball.RealFromRat(big.NewRat(1, 3), 64)
	b := ball.RealFromRat(big.NewRat(1, 6), 64)

	sum := a.Add(b)
	assert.True(t, sum.ContainsRat(big.NewRat(1, 2)), "1/3+1/6 must contain 1/2")

	diff := a.Sub(b)
	assert.True(t, diff.ContainsRat(big.NewRat(1, 6)), "1/3-1/6 must contain 1/6")
}

// TestReal_MulDivEnclosure verifies products and quotients of thick balls
// contain the exact rational results.
func TestReal_MulDivEnclosure(t *testing.T) {
	a := ball.RealFromRat(big.NewRat(2, 3), 64)
	b := ball.RealFromRat(big.NewRat(3, 7), 64)

	assert.True(t, a.Mul(b).ContainsRat(big.NewRat(2, 7)))
	assert.True(t, a.Div(b).ContainsRat(big.NewRat(14, 9)))
}

// TestReal_DivByZeroBall confirms division by a ball containing zero is
// total and indeterminate rather than panicking.
func TestReal_DivByZeroBall(t *testing.T) {
	z := ball.RealFromMidRad(big.NewFloat(0.1), big.NewFloat(0.5))
	q := ball.RealOne().Div(z)

	assert.False(t, q.IsFinite(), "division by straddling ball must be indeterminate")
	assert.False(t, ball.SafeLt(q, ball.RealOne()), "no comparison is provable on indeterminate")
}

// TestReal_SafeComparisons exercises the conservative-comparison contract:
// true only when provable, false on any overlap.
func TestReal_SafeComparisons(t *testing.T) {
	lo := ball.RealFromMidRad(big.NewFloat(1), big.NewFloat(0.25))
	hi := ball.RealFromMidRad(big.NewFloat(2), big.NewFloat(0.25))
	mid := ball.RealFromMidRad(big.NewFloat(1.4), big.NewFloat(0.5))

	assert.True(t, ball.SafeLt(lo, hi))
	assert.True(t, ball.SafeLe(lo, hi))
	assert.True(t, ball.SafeGt(hi, lo))

	// Overlapping balls: nothing is provable, in either direction.
	assert.False(t, ball.SafeLt(lo, mid))
	assert.False(t, ball.SafeGt(lo, mid))
	assert.False(t, ball.SafeLe(mid, lo))

	// Touching endpoints: ≤ holds, < does not.
	a := ball.RealFromMidRad(big.NewFloat(1), big.NewFloat(1))
	b := ball.RealFromMidRad(big.NewFloat(3), big.NewFloat(1))
	assert.True(t, ball.SafeLe(a, b))
	assert.False(t, ball.SafeLt(a, b))
}

// TestReal_ContainsOverlaps verifies the set predicates.
func TestReal_ContainsOverlaps(t *testing.T) {
	outer := ball.RealFromMidRad(big.NewFloat(0), big.NewFloat(2))
	inner := ball.RealFromMidRad(big.NewFloat(0.5), big.NewFloat(1))
	apart := ball.RealFromMidRad(big.NewFloat(5), big.NewFloat(1))

	assert.True(t, outer.Contains(inner))
	assert.False(t, inner.Contains(outer))
	assert.True(t, outer.Overlaps(inner))
	assert.False(t, outer.Overlaps(apart))
	assert.True(t, outer.ContainsZero())
	assert.False(t, apart.ContainsZero())

	// Closed-ball endpoints: an exactly representable boundary point of an
	// exactly representable ball is certified inside.
	dy := ball.RealFromMidRad(big.NewFloat(1), big.NewFloat(0.125))
	assert.True(t, dy.ContainsFloat(big.NewFloat(1.125)), "upper endpoint")
	assert.True(t, dy.ContainsFloat(big.NewFloat(0.875)), "lower endpoint")
	assert.False(t, dy.ContainsFloat(big.NewFloat(1.1875)), "beyond the endpoint")
}

// TestReal_AbsSqrt checks |·| and √ enclosures on straddling and
// positive balls.
func TestReal_AbsSqrt(t *testing.T) {
	straddle := ball.RealFromMidRad(big.NewFloat(-0.5), big.NewFloat(1))
	abs := straddle.Abs()
	assert.True(t, abs.ContainsFloat(big.NewFloat(0)))
	assert.True(t, abs.ContainsFloat(big.NewFloat(1.5)))
	assert.False(t, abs.ContainsFloat(big.NewFloat(2)))

	four := ball.RealFromFloat64(4)
	assert.True(t, four.Sqrt().ContainsFloat(big.NewFloat(2)))

	two := ball.RealFromFloat64(2)
	rt := two.Sqrt()
	sq := rt.Mul(rt)
	assert.True(t, sq.ContainsFloat(big.NewFloat(2)), "√2² must contain 2, got %v", sq)
}

// TestReal_MulPow2Exact verifies that power-of-two scaling is exact.
func TestReal_MulPow2Exact(t *testing.T) {
	a := ball.RealFromRat(big.NewRat(1, 3), 64)
	scaled := a.MulPow2(3)
	assert.True(t, scaled.ContainsRat(big.NewRat(8, 3)))
	want := new(big.Float).SetMantExp(a.Rad(), 3) // rad · 2³
	assert.Equal(t, 0, scaled.Rad().Cmp(want), "radius must scale exactly")
}

// TestReal_RoundExactness: re-rounding widens the radius only when the
// midpoint actually loses bits.
func TestReal_RoundExactness(t *testing.T) {
	two := ball.RealFromInt64(2).Round(96)
	assert.True(t, two.IsExact(), "2 fits any precision without widening")

	lossy := ball.RealFromRat(big.NewRat(1, 3), 64).Round(24)
	assert.False(t, lossy.IsExact())
	assert.True(t, lossy.ContainsRat(big.NewRat(1, 3)))
}

// TestReal_AddError confirms the widened ball contains perturbed values.
func TestReal_AddError(t *testing.T) {
	a := ball.RealOne().AddError(ball.RealFromFloat64(0.125))
	assert.True(t, a.ContainsFloat(big.NewFloat(1.125)))
	assert.True(t, a.ContainsFloat(big.NewFloat(0.875)))
	assert.False(t, a.ContainsFloat(big.NewFloat(1.25)))
}

// TestReal_Accuracy spot-checks the certified-bits measure used by the
// monotone cache rule.
func TestReal_Accuracy(t *testing.T) {
	assert.Equal(t, ball.MaxAccuracy, ball.RealOne().Accuracy())

	coarse := ball.RealFromMidRad(big.NewFloat(1), big.NewFloat(0.25))
	fine := ball.RealFromMidRad(big.NewFloat(1), big.NewFloat(1.0/1024))
	assert.Greater(t, fine.Accuracy(), coarse.Accuracy())
	assert.Equal(t, 0, ball.Indeterminate().Accuracy())
}

// TestReal_Log2UpperCeil drives exponent selection in the disk locator.
func TestReal_Log2UpperCeil(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{1, 0},   // 2^0 = 1 exactly
		{1.5, 1}, // 2 is the least power of two ≥ 1.5
		{2, 1},
		{0.75, 0},
		{0.5, -1},
		{0.3, -1},
		{10, 4},
	}
	for _, tc := range cases {
		e, ok := ball.RealFromFloat64(tc.in).Log2UpperCeil()
		require.True(t, ok, "in=%v", tc.in)
		assert.Equal(t, tc.want, e, "ceil(log2(%v))", tc.in)
	}

	_, ok := ball.RealZero().Log2UpperCeil()
	assert.False(t, ok, "log2 of zero is undefined")
	_, ok = ball.RealInf().Log2UpperCeil()
	assert.False(t, ok, "log2 of ∞ is undefined")
}

// TestReal_MinMaxInf verifies endpoint-wise min/max, including the
// infinite distances produced for singularity-free operators.
func TestReal_MinMaxInf(t *testing.T) {
	fin := ball.RealFromFloat64(3)
	inf := ball.RealInf()

	m := inf.Min(fin)
	assert.True(t, m.ContainsFloat(big.NewFloat(3)))
	assert.True(t, m.IsFinite())

	assert.True(t, ball.SafeGe(inf, fin), "+∞ ≥ 3 must be provable")
	assert.False(t, inf.Min(inf).IsFinite(), "min(+∞,+∞) stays +∞")
}

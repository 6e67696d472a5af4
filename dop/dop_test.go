package dop_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holonomic/dfeval/ball"
	"github.com/holonomic/dfeval/dop"
	"github.com/holonomic/dfeval/point"
)

// arctanOp builds (x²+1)·D² + 2x·D, the defining operator of arctan.
func arctanOp(t *testing.T) *dop.Operator {
	t.Helper()
	op, err := dop.New([]dop.RatPoly{
		{},                              // 0 · f
		dop.RatPolyFromInt64(0, 2),      // 2x · f'
		dop.RatPolyFromInt64(1, 0, 1),   // (1+x²) · f''
	})
	require.NoError(t, err)
	return op
}

// TestNew_Validation covers the construction sentinels.
func TestNew_Validation(t *testing.T) {
	_, err := dop.New([]dop.RatPoly{{}, {}})
	assert.ErrorIs(t, err, dop.ErrEmptyOperator)

	_, err = dop.New([]dop.RatPoly{dop.RatPolyFromInt64(1)})
	assert.ErrorIs(t, err, dop.ErrOrderZero)

	// Trailing zero coefficients are trimmed before the order check.
	op, err := dop.New([]dop.RatPoly{dop.RatPolyFromInt64(-1), dop.RatPolyFromInt64(1), {}})
	require.NoError(t, err)
	assert.Equal(t, 1, op.Order())
}

// TestRatPoly_TaylorShift checks p(x+c) on (x-1)², which collapses to x²
// when shifted by 1.
func TestRatPoly_TaylorShift(t *testing.T) {
	p := dop.RatPolyFromInt64(1, -2, 1) // x² - 2x + 1
	s := p.TaylorShift(big.NewRat(1, 1))

	assert.Zero(t, s.Coeff(0).Sign(), "constant term must vanish")
	assert.Zero(t, s.Coeff(1).Sign(), "linear term must vanish")
	assert.Zero(t, s.Coeff(2).Cmp(big.NewRat(1, 1)))
}

// TestRatPoly_Eval verifies ball evaluation encloses the exact value.
func TestRatPoly_Eval(t *testing.T) {
	p := dop.RatPolyFromInt64(1, 0, 1) // 1 + x²
	x := ball.RealFromRat(big.NewRat(1, 3), 64)
	assert.True(t, p.EvalReal(x).ContainsRat(big.NewRat(10, 9)))

	z := ball.ComplexFromFloat64(0, 1) // p(i) = 0
	assert.True(t, p.EvalComplex(z).ContainsZero())

	dp := p.Derivative() // (1+x²)' = 2x
	assert.Equal(t, 1, dp.Degree())
	assert.Zero(t, dp.Coeff(1).Cmp(big.NewRat(2, 1)))
}

// TestOperator_Singularities: (x²+1) vanishes at ±i and nowhere else.
func TestOperator_Singularities(t *testing.T) {
	op := arctanOp(t)
	sings := op.Singularities()
	require.Len(t, sings, 2)

	plusI := ball.ComplexFromFloat64(0, 1)
	minusI := ball.ComplexFromFloat64(0, -1)
	foundPlus, foundMinus := false, false
	for _, s := range sings {
		if s.Contains(plusI) {
			foundPlus = true
		}
		if s.Contains(minusI) {
			foundMinus = true
		}
	}
	assert.True(t, foundPlus, "one enclosure must contain +i")
	assert.True(t, foundMinus, "one enclosure must contain -i")
}

// TestOperator_DistToSing: dist(x, ±i) = √(x²+1) for real x.
func TestOperator_DistToSing(t *testing.T) {
	op := arctanOp(t)

	d0 := op.DistToSing(point.FromInt64(0))
	assert.True(t, d0.ContainsFloat(big.NewFloat(1)), "dist(0, ±i) = 1, got %v", d0)

	d1 := op.DistToSing(point.FromInt64(1))
	sqrt2 := ball.RealFromFloat64(2).Sqrt()
	assert.True(t, d1.Overlaps(sqrt2), "dist(1, ±i) = √2, got %v", d1)

	// No finite singularity: distance is +∞.
	expOp, err := dop.New([]dop.RatPoly{dop.RatPolyFromInt64(-1), dop.RatPolyFromInt64(1)})
	require.NoError(t, err)
	assert.False(t, expOp.DistToSing(point.FromInt64(5)).IsFinite())
	assert.Empty(t, expOp.Singularities())
}

// TestOperator_LocalAt re-expands the arctan operator at 1: the leading
// constant becomes (1+x)²+... evaluated at the origin, i.e. 2.
func TestOperator_LocalAt(t *testing.T) {
	op := arctanOp(t)
	lo := op.LocalAt(dop.GaussFromRat(big.NewRat(1, 1)))

	require.Equal(t, 2, lo.Order())
	lead := lo.LeadingConstant()
	assert.True(t, lead.IsReal())
	assert.Zero(t, lead.Re.Cmp(big.NewRat(2, 1)), "(1+1²) = 2")

	// Complex expansion point: leading constant of 1+x² at x=i is 0
	// (a singular expansion point must be detectable).
	atI := op.LocalAt(dop.GaussFromRats(new(big.Rat), big.NewRat(1, 1)))
	assert.True(t, atI.LeadingConstant().IsZero())
}

// TestSmallestNonzeroRootModulus on (x-2)(x+3)·x² = x⁴+x³-6x²: the
// smallest nonzero root has modulus 2, and the x² factor is ignored.
func TestSmallestNonzeroRootModulus(t *testing.T) {
	p := dop.RatPolyFromInt64(0, 0, -6, 1, 1)
	m, err := dop.SmallestNonzeroRootModulus(p)
	require.NoError(t, err)
	assert.True(t, m.ContainsFloat(big.NewFloat(2)), "got %v", m)

	_, err = dop.SmallestNonzeroRootModulus(dop.RatPolyFromInt64(0, 0, 3))
	assert.ErrorIs(t, err, dop.ErrNoNonzeroRoot)
}

// TestOperator_DistToSing_SpreadSingularities: singularities at 1/10 and
// 100 lie far apart; the distance reported next to the large root must
// be bounded by it and never leak toward the small one.
func TestOperator_DistToSing_SpreadSingularities(t *testing.T) {
	// (x - 1/10)(x - 100) = x² - (1001/10)x + 10
	lead := dop.NewRatPoly(big.NewRat(10, 1), big.NewRat(-1001, 10), big.NewRat(1, 1))
	op, err := dop.New([]dop.RatPoly{dop.RatPolyFromInt64(1), lead})
	require.NoError(t, err)

	d := op.DistToSing(point.FromInt64(99))
	assert.True(t, d.ContainsFloat(big.NewFloat(1)), "dist(99, 100) = 1, got %v", d)
	assert.True(t, ball.SafeLe(d, ball.RealFromFloat64(2)),
		"the root at 100 caps the distance, got %v", d)

	d0 := op.DistToSing(point.FromInt64(0))
	assert.True(t, d0.ContainsRat(big.NewRat(1, 10)), "dist(0, 1/10) = 1/10, got %v", d0)
}

// TestSmallestNonzeroRootModulus_DoubleRoot: on (x-2)² the iteration ends
// with two approximations on one root; the enclosures must still cover it.
func TestSmallestNonzeroRootModulus_DoubleRoot(t *testing.T) {
	p := dop.RatPolyFromInt64(4, -4, 1)
	m, err := dop.SmallestNonzeroRootModulus(p)
	require.NoError(t, err)
	assert.True(t, m.ContainsFloat(big.NewFloat(2)), "got %v", m)
}

// TestGaussRat_Algebra spot-checks the exact complex rational scalar.
func TestGaussRat_Algebra(t *testing.T) {
	i := dop.GaussFromRats(new(big.Rat), big.NewRat(1, 1))
	sq := i.Mul(i)
	assert.Zero(t, sq.Re.Cmp(big.NewRat(-1, 1)), "i² = -1")
	assert.Zero(t, sq.Im.Sign())

	inv := i.Inv()
	assert.Zero(t, inv.Im.Cmp(big.NewRat(-1, 1)), "1/i = -i")

	one := i.Mul(inv)
	assert.Zero(t, one.Re.Cmp(big.NewRat(1, 1)))
	assert.Zero(t, one.Im.Sign())
}

package growth_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holonomic/dfeval/ball"
	"github.com/holonomic/dfeval/dop"
	"github.com/holonomic/dfeval/growth"
)

func mustOp(t *testing.T, coeffs []dop.RatPoly) *dop.Operator {
	t.Helper()
	op, err := dop.New(coeffs)
	require.NoError(t, err)
	return op
}

// TestParameters_Exp: D - 1 (solution e^x) has κ = 1, α = 1.
func TestParameters_Exp(t *testing.T) {
	op := mustOp(t, []dop.RatPoly{
		dop.RatPolyFromInt64(-1),
		dop.RatPolyFromInt64(1),
	})
	kappa, alpha, err := growth.Parameters(op)
	require.NoError(t, err)
	assert.Zero(t, kappa.Cmp(big.NewRat(1, 1)), "κ = 1")
	assert.True(t, alpha.ContainsFloat(big.NewFloat(1)), "α = 1, got %v", alpha)
}

// TestParameters_Erf: D² + 2x·D (solution erf-like) has κ = 1/2, α = √2.
func TestParameters_Erf(t *testing.T) {
	op := mustOp(t, []dop.RatPoly{
		{},
		dop.RatPolyFromInt64(0, 2),
		dop.RatPolyFromInt64(1),
	})
	kappa, alpha, err := growth.Parameters(op)
	require.NoError(t, err)
	assert.Zero(t, kappa.Cmp(big.NewRat(1, 2)), "κ = 1/2")

	sqrt2 := ball.RealFromFloat64(2).Sqrt()
	assert.True(t, alpha.Overlaps(sqrt2), "α = √2 ≈ 1.414, got %v", alpha)
}

// TestParameters_Airy: D² - x has κ = 2/3, α ≈ 1.
func TestParameters_Airy(t *testing.T) {
	op := mustOp(t, []dop.RatPoly{
		dop.RatPolyFromInt64(0, -1),
		{},
		dop.RatPolyFromInt64(1),
	})
	kappa, alpha, err := growth.Parameters(op)
	require.NoError(t, err)
	assert.Zero(t, kappa.Cmp(big.NewRat(2, 3)), "κ = 2/3")
	assert.True(t, alpha.ContainsFloat(big.NewFloat(1)), "α = 1, got %v", alpha)
}

// TestParameters_Degenerate: D² alone has a single support point, so the
// polygon has no edge and the analysis must fail.
func TestParameters_Degenerate(t *testing.T) {
	op := mustOp(t, []dop.RatPoly{{}, {}, dop.RatPolyFromInt64(1)})
	_, _, err := growth.Parameters(op)
	assert.ErrorIs(t, err, growth.ErrDegenerateOperator)

	_, err = growth.MaxRadius(op, ball.RealInf())
	assert.ErrorIs(t, err, growth.ErrDegenerateOperator)
}

// TestMaxRadius_Exp: for D - 1 the cap 1/(α·κ^κ) is 1.
func TestMaxRadius_Exp(t *testing.T) {
	op := mustOp(t, []dop.RatPoly{
		dop.RatPolyFromInt64(-1),
		dop.RatPolyFromInt64(1),
	})
	rad, err := growth.MaxRadius(op, ball.RealInf())
	require.NoError(t, err)
	assert.True(t, rad.IsFinite(), "cap must be finite with no singularities")
	assert.True(t, rad.ContainsFloat(big.NewFloat(1)), "cap = 1, got %v", rad)

	// A tighter user bound wins.
	tight, err := growth.MaxRadius(op, ball.RealFromFloat64(0.25))
	require.NoError(t, err)
	assert.True(t, ball.SafeLe(tight, ball.RealFromFloat64(0.3)))
}

// TestMaxRadius_ErfPositiveFinite: the growth cap for D² + 2x·D must be
// strictly positive and finite.
func TestMaxRadius_ErfPositiveFinite(t *testing.T) {
	op := mustOp(t, []dop.RatPoly{
		{},
		dop.RatPolyFromInt64(0, 2),
		dop.RatPolyFromInt64(1),
	})
	rad, err := growth.MaxRadius(op, ball.RealInf())
	require.NoError(t, err)
	assert.True(t, rad.IsFinite())
	assert.Equal(t, 1, rad.Sign(), "cap must be provably positive, got %v", rad)
	// 1/(√2·(1/2)^(1/2)) = 1.
	assert.True(t, rad.ContainsFloat(big.NewFloat(1)), "got %v", rad)
}

// TestMaxRadius_SingularOperatorPassthrough: with finite singularities
// the user bound is returned unchanged, including +∞.
func TestMaxRadius_SingularOperatorPassthrough(t *testing.T) {
	op := mustOp(t, []dop.RatPoly{
		{},
		dop.RatPolyFromInt64(0, 2),
		dop.RatPolyFromInt64(1, 0, 1),
	})
	rad, err := growth.MaxRadius(op, ball.RealInf())
	require.NoError(t, err)
	assert.False(t, rad.IsFinite(), "singular operators need no growth cap")
}

package poly_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holonomic/dfeval/ball"
	"github.com/holonomic/dfeval/poly"
)

// TestPoly_EvalEncloses: (1 + 2x + x²)(x=1/3) = 16/9.
func TestPoly_EvalEncloses(t *testing.T) {
	p := poly.FromReal(
		ball.RealOne(),
		ball.RealFromFloat64(2),
		ball.RealOne(),
	)
	x := ball.RealFromRat(big.NewRat(1, 3), 64)

	v, err := p.EvalReal(x)
	require.NoError(t, err)
	assert.True(t, v.ContainsRat(big.NewRat(16, 9)), "got %v", v)

	// Complex evaluation at i: 1 + 2i + i² = 2i.
	vi := p.Eval(ball.ComplexFromFloat64(0, 1))
	assert.True(t, vi.Contains(ball.ComplexFromFloat64(0, 2)), "got %v", vi)
}

// TestPoly_ScaleUnscaleRoundTrip: p(r·x) then p(x/r) must still enclose
// the original values.
func TestPoly_ScaleUnscaleRoundTrip(t *testing.T) {
	p := poly.FromReal(ball.RealOne(), ball.RealFromFloat64(3), ball.RealFromFloat64(-2))
	r := ball.RealFromFloat64(0.5)

	rt := p.ScaleArg(r).UnscaleArg(r)
	x := ball.RealFromFloat64(0.7)

	want, err := p.EvalReal(x)
	require.NoError(t, err)
	got, err := rt.EvalReal(x)
	require.NoError(t, err)
	assert.True(t, got.Overlaps(want), "round trip must preserve values: %v vs %v", got, want)
	assert.True(t, got.Contains(want), "round trip only widens enclosures")
}

// TestPoly_AddConstError widens only the constant term.
func TestPoly_AddConstError(t *testing.T) {
	p := poly.FromReal(ball.RealOne(), ball.RealOne())
	q := p.AddConstError(ball.RealFromFloat64(0.01))

	assert.True(t, q.Coef(0).Real().ContainsFloat(big.NewFloat(1.01)))
	assert.True(t, q.Coef(1).IsExact(), "degree-1 coefficient untouched")
}

// TestPoly_DegreeTrim: exact zeros trim, thick zeros do not.
func TestPoly_DegreeTrim(t *testing.T) {
	thickZero := ball.ComplexFromReal(ball.RealFromMidRad(big.NewFloat(0), big.NewFloat(0.1)))

	p := poly.New(ball.ComplexOne(), thickZero, ball.ComplexZero())
	assert.Equal(t, 1, p.Degree(), "thick zero coefficient still counts")
	assert.Equal(t, 2, p.Trim().Len())

	q := poly.New(ball.ComplexOne(), ball.ComplexZero())
	assert.Equal(t, 0, q.Degree())
	assert.Equal(t, -1, poly.New().Degree())
}

// TestPoly_EvalRealRejectsComplex: a certifiably complex value cannot be
// projected.
func TestPoly_EvalRealRejectsComplex(t *testing.T) {
	p := poly.New(ball.ComplexFromFloat64(0, 1)) // constant i
	_, err := p.EvalReal(ball.RealOne())
	assert.ErrorIs(t, err, poly.ErrComplexValue)
}

package approx_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holonomic/dfeval/ancont"
	"github.com/holonomic/dfeval/approx"
	"github.com/holonomic/dfeval/ball"
	"github.com/holonomic/dfeval/dop"
	"github.com/holonomic/dfeval/point"
)

func expOp(t *testing.T) *dop.Operator {
	t.Helper()
	op, err := dop.New([]dop.RatPoly{
		dop.RatPolyFromInt64(-1),
		dop.RatPolyFromInt64(1),
	})
	require.NoError(t, err)
	return op
}

func one() []ball.Complex { return []ball.Complex{ball.ComplexOne()} }

func origin() []point.Point { return []point.Point{point.FromInt64(0)} }

// TestOnDisk_Exp: the classic example — e^x on the unit disk at 1e-3
// economizes to degree 6 and encloses the function.
func TestOnDisk_Exp(t *testing.T) {
	pol, err := approx.OnDisk(expOp(t), one(), origin(), ball.RealOne(), ball.RealFromFloat64(1e-3))
	require.NoError(t, err)
	assert.Equal(t, 6, pol.Degree())

	half := ball.ComplexFromReal(ball.RealFromRat(big.NewRat(1, 2), 64))
	v := pol.Eval(half)
	assert.True(t, v.Real().ContainsFloat(big.NewFloat(math.Exp(0.5))), "got %v", v)

	// Complex points of the disk are covered too.
	z := ball.ComplexFromRats(big.NewRat(3, 5), big.NewRat(4, 5), 64)
	vz := pol.Eval(z)
	assert.True(t, vz.Real().ContainsFloat(big.NewFloat(math.Exp(0.6)*math.Cos(0.8))), "got %v", vz)
	assert.True(t, vz.Imag().ContainsFloat(big.NewFloat(math.Exp(0.6)*math.Sin(0.8))), "got %v", vz)
}

// TestOnDisk_ComplexCenter: continuation to i, then a disk expansion
// there; pol(b) must enclose e^(i+b).
func TestOnDisk_ComplexCenter(t *testing.T) {
	path := []point.Point{
		point.FromInt64(0),
		point.FromRats(big.NewRat(0, 1), big.NewRat(1, 1)),
	}
	pol, err := approx.OnDisk(expOp(t), one(), path, ball.RealOne(), ball.RealFromFloat64(1e-10))
	require.NoError(t, err)

	v := pol.Eval(ball.ComplexFromReal(ball.RealFromRat(big.NewRat(1, 2), 64)))
	want := math.Exp(0.5)
	assert.True(t, v.Real().ContainsFloat(big.NewFloat(want*math.Cos(1))), "got %v", v)
	assert.True(t, v.Imag().ContainsFloat(big.NewFloat(want*math.Sin(1))), "got %v", v)
}

// TestOnInterval_ExplicitRadius: e^x on [-1, 1] at 1e-3; Chebyshev
// economization reaches degree 5.
func TestOnInterval_ExplicitRadius(t *testing.T) {
	rad := ball.RealOne()
	pol, err := approx.OnInterval(expOp(t), one(), origin(), ball.RealFromFloat64(1e-3), &rad)
	require.NoError(t, err)
	assert.Equal(t, 5, pol.Degree())

	for _, x := range []float64{-1, -0.25, 0, 0.5, 1} {
		v, err := pol.EvalReal(ball.RealFromFloat64(x))
		require.NoError(t, err)
		assert.True(t, v.ContainsFloat(big.NewFloat(math.Exp(x))), "x=%v: %v", x, v)
	}
}

// TestOnInterval_Descriptor: the last path element [1, 2] supplies both
// the center 3/2 and the radius 1/2.
func TestOnInterval_Descriptor(t *testing.T) {
	iv, err := point.FromEndpoints(big.NewRat(1, 1), big.NewRat(2, 1))
	require.NoError(t, err)
	path := []point.Point{point.FromInt64(0), iv}

	pol, err := approx.OnInterval(expOp(t), one(), path, ball.RealFromFloat64(1e-3), nil)
	require.NoError(t, err)

	// pol(b) encloses e^(3/2+b) for |b| ≤ 1/2.
	for _, b := range []float64{-0.5, 0, 0.5} {
		v, err := pol.EvalReal(ball.RealFromFloat64(b))
		require.NoError(t, err)
		assert.True(t, v.ContainsFloat(big.NewFloat(math.Exp(1.5+b))), "b=%v: %v", b, v)
	}
}

// TestOnInterval_MissingRadius: no radius and an exact last vertex.
func TestOnInterval_MissingRadius(t *testing.T) {
	_, err := approx.OnInterval(expOp(t), one(), origin(), ball.RealFromFloat64(1e-3), nil)
	assert.ErrorIs(t, err, approx.ErrMissingDomainParameter)
}

// TestCompute_MergeVertex: every path vertex is reported exactly once,
// in order, with a certified vector.
func TestCompute_MergeVertex(t *testing.T) {
	path := []point.Point{point.FromInt64(0), point.FromInt64(1), point.FromInt64(2)}
	var seen []ancont.VertexValue
	polys, err := approx.Compute(expOp(t), one(), path,
		ball.RealFromFloat64(1e-10), approx.OnDiskKind, ball.RealOne(),
		approx.WithMergeVertex(func(vv ancont.VertexValue) { seen = append(seen, vv) }))
	require.NoError(t, err)
	require.Len(t, polys, 1)
	require.Len(t, seen, 3)

	assert.Equal(t, "q:0", seen[0].Vertex.Key())
	assert.Equal(t, "q:1", seen[1].Vertex.Key())
	assert.True(t, seen[1].Values[0].Real().ContainsFloat(big.NewFloat(math.E)),
		"intermediate vertex carries e: %v", seen[1].Values[0])
}

// TestCompute_Derivatives: for e^x every derivative series matches the
// function.
func TestCompute_Derivatives(t *testing.T) {
	polys, err := approx.Compute(expOp(t), one(), origin(),
		ball.RealFromFloat64(1e-10), approx.OnDiskKind, ball.RealOne(),
		approx.WithDerivatives(1))
	require.NoError(t, err)
	require.Len(t, polys, 2)

	x := ball.ComplexFromReal(ball.RealFromRat(big.NewRat(1, 4), 64))
	want := big.NewFloat(math.Exp(0.25))
	assert.True(t, polys[0].Eval(x).Real().ContainsFloat(want))
	assert.True(t, polys[1].Eval(x).Real().ContainsFloat(want))
}

// TestCompute_Validation covers the argument sentinels.
func TestCompute_Validation(t *testing.T) {
	eps := ball.RealFromFloat64(1e-3)

	_, err := approx.Compute(nil, one(), origin(), eps, approx.OnDiskKind, ball.RealOne())
	assert.ErrorIs(t, err, approx.ErrNilOperator)

	_, err = approx.Compute(expOp(t), one(), nil, eps, approx.OnDiskKind, ball.RealOne())
	assert.ErrorIs(t, err, approx.ErrEmptyPath)

	_, err = approx.Compute(expOp(t), one(), origin(), eps, approx.Kind(99), ball.RealOne())
	assert.ErrorIs(t, err, approx.ErrUnknownKind)

	// Collaborator failures propagate verbatim.
	_, err = approx.Compute(expOp(t), []ball.Complex{}, origin(), eps, approx.OnDiskKind, ball.RealOne())
	assert.ErrorIs(t, err, ancont.ErrBadInitialVector)
}

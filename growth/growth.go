package growth

import (
	"errors"
	"math"
	"math/big"

	"github.com/holonomic/dfeval/ball"
	"github.com/holonomic/dfeval/dop"
)

// ErrDegenerateOperator indicates that the Newton-polygon analysis
// cannot determine a finite growth rate for the operator.
var ErrDegenerateOperator = errors.New("growth: degenerate Newton polygon, growth rate undefined")

// widen is the symmetric relative widening applied to float64 endpoint
// computations; the cap never carries correctness, only sharpness.
const widen = 1e-9

// supportPoint is one nonzero coefficient of x^j·D^i, recorded as
// (h, i) with h = j - i.
type supportPoint struct {
	h, i int
	c    *big.Rat
}

// Parameters computes κ and α such that the solutions of op grow at most
// like Σ α^n·x^n/(n!)^κ ≈ exp(κ·(α·x)^(1/κ)) for large |x|.
//
// Returns ErrDegenerateOperator when the polygon has no edge of negative
// slope or the edge polynomial has no usable nonzero root.
func Parameters(op *dop.Operator) (kappa *big.Rat, alpha ball.Real, err error) {
	// 1) Collect the support of the operator as (h, i) points.
	var pts []supportPoint
	maxI := 0
	for i := 0; i <= op.Order(); i++ {
		p := op.Coeff(i)
		for j := 0; j <= p.Degree(); j++ {
			if c := p.Coeff(j); c.Sign() != 0 {
				pts = append(pts, supportPoint{h: j - i, i: i, c: c})
				if i > maxI {
					maxI = i
				}
			}
		}
	}

	// 2) Base point: minimal h, ties broken by the smallest derivative
	//    order (this can only enlarge the slope, hence shrink the cap).
	h0, i0 := pts[0].h, pts[0].i
	for _, p := range pts[1:] {
		if p.h < h0 || (p.h == h0 && p.i < i0) {
			h0, i0 = p.h, p.i
		}
	}

	// 3) Slope: steepest rise of i relative to h among points right of
	//    the base.
	var slope *big.Rat
	for _, p := range pts {
		if p.h <= h0 {
			continue
		}
		s := big.NewRat(int64(p.i-i0), int64(p.h-h0))
		if slope == nil || s.Cmp(slope) > 0 {
			slope = s
		}
	}
	if slope == nil {
		return nil, ball.Real{}, ErrDegenerateOperator
	}
	kappa = new(big.Rat).Neg(slope)
	if kappa.Sign() <= 0 {
		return nil, ball.Real{}, ErrDegenerateOperator
	}

	// 4) Edge polynomial: points lying exactly on the maximal slope from
	//    the base, keyed by derivative order.
	edge := make([]*big.Rat, maxI+1)
	onEdge := new(big.Rat)
	for _, p := range pts {
		onEdge.SetInt64(int64(p.h - h0))
		onEdge.Mul(onEdge, slope)
		if onEdge.Cmp(big.NewRat(int64(p.i-i0), 1)) == 0 {
			edge[p.i] = p.c
		}
	}
	eqn := dop.NewRatPoly(edge...)

	// 5) α = (smallest nonzero root modulus)^κ.
	rootMod, rerr := dop.SmallestNonzeroRootModulus(eqn)
	if rerr != nil || rootMod.ContainsZero() || !rootMod.IsFinite() {
		return nil, ball.Real{}, ErrDegenerateOperator
	}
	kf, _ := kappa.Float64()
	lo, _ := rootMod.LowerBound().Float64()
	hi, _ := rootMod.UpperBound().Float64()
	aLo := math.Pow(lo, kf) * (1 - widen)
	aHi := math.Pow(hi, kf) * (1 + widen)
	if !(aLo > 0) || math.IsInf(aHi, 0) || math.IsNaN(aHi) {
		return nil, ball.Real{}, ErrDegenerateOperator
	}
	alpha = ball.RealFromEndpoints(big.NewFloat(aLo), big.NewFloat(aHi))
	return kappa, alpha, nil
}

// MaxRadius returns the largest safe approximation radius for op: for an
// operator with no finite singular point, min(userMax, 1/(α·κ^κ));
// otherwise userMax unchanged (singularity distances bound disks there).
//
// The returned ball is strictly positive; it is finite whenever the
// operator has no finite singular point.
func MaxRadius(op *dop.Operator, userMax ball.Real) (ball.Real, error) {
	if !op.IsConstantLeading() {
		return userMax, nil
	}
	kappa, alpha, err := Parameters(op)
	if err != nil {
		return ball.Real{}, err
	}
	kf, _ := kappa.Float64()
	kk := math.Pow(kf, kf)
	aLo, _ := alpha.LowerBound().Float64()
	aHi, _ := alpha.UpperBound().Float64()
	capLo := 1 / (aHi * kk) * (1 - widen)
	capHi := 1 / (aLo * kk) * (1 + widen)
	if !(capLo > 0) || math.IsInf(capHi, 0) || math.IsNaN(capHi) {
		return ball.Real{}, ErrDegenerateOperator
	}
	capBall := ball.RealFromEndpoints(big.NewFloat(capLo), big.NewFloat(capHi))
	return userMax.Min(capBall), nil
}

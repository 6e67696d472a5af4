package dop

import (
	"math"
	"math/big"
	"math/cmplx"

	"github.com/holonomic/dfeval/ball"
)

// Root enclosure machinery for the leading coefficient. Approximate
// roots come from a float64 Durand–Kerner iteration; the set is then
// certified with a-posteriori simultaneous-inclusion radii evaluated in
// ball arithmetic from the exact coefficients, so the union of the
// enclosures covers all roots. Clusters or ill-conditioned roots only
// enlarge the enclosures, which shrinks distance lower bounds, the
// conservative direction.

const (
	dkMaxIters = 500
	dkTol      = 1e-13
	rootPrec   = 64
)

// rootEnclosures returns enclosures of all roots of p (p of degree ≥ 1).
// Roots at the origin are reported as a single exact zero.
func rootEnclosures(p RatPoly) []ball.Complex {
	d := p.Degree()
	if d < 1 {
		return nil
	}

	// 1) Deflate roots at the origin; they need no numeric work.
	v := 0
	for v <= d && p.coeff(v).Sign() == 0 {
		v++
	}
	var out []ball.Complex
	if v > 0 {
		out = append(out, ball.ComplexZero())
	}
	deflated := make(RatPoly, d-v+1)
	for i := range deflated {
		deflated[i] = p.Coeff(v + i)
	}
	dd := deflated.Degree()
	if dd < 1 {
		return out
	}

	// 2) Durand–Kerner in complex128 on normalized coefficients.
	approx := durandKerner(deflated)

	// 3) Certify with simultaneous-inclusion radii: scale the Weierstrass
	//    correction |p(z_k)| / (|lead|·∏_{j≠k}|z_k − z_j|) by the degree.
	//    The resulting disks jointly cover every root of the polynomial,
	//    so no root can escape all enclosures even when the iteration
	//    stalls with several approximations on one root.
	lead := ball.RealFromRat(deflated.Coeff(dd), rootPrec).Abs()
	fallback := cauchyRadius(deflated)
	zbs := make([]ball.Complex, len(approx))
	for k, z := range approx {
		zbs[k] = ball.ComplexFromFloat64(real(z), imag(z)).Round(rootPrec)
	}
	for k, z := range approx {
		num := deflated.EvalComplex(zbs[k]).Abs()
		den := lead
		for j := range zbs {
			if j != k {
				den = den.Mul(zbs[k].Sub(zbs[j]).Abs())
			}
		}
		rad := num.Div(den).Mul(ball.RealFromInt64(int64(dd)))
		radUp := rad.UpperBound()
		if !rad.IsFinite() || radUp.IsInf() {
			// Coincident approximations collapse the denominator: fall
			// back to a Cauchy-style bound covering every root.
			radUp = new(big.Float).Add(big.NewFloat(cmplx.Abs(z)), big.NewFloat(fallback))
		}
		out = append(out, ball.NewComplex(
			ball.RealFromMidRad(big.NewFloat(real(z)), radUp),
			ball.RealFromMidRad(big.NewFloat(imag(z)), radUp),
		))
	}
	return out
}

// durandKerner runs the simultaneous-iteration root finder on p
// (nonzero constant term, degree ≥ 1) in complex128 arithmetic.
func durandKerner(p RatPoly) []complex128 {
	d := p.Degree()
	cf := make([]complex128, d+1)
	lead, _ := p.coeff(d).Float64()
	for i := 0; i <= d; i++ {
		f, _ := p.coeff(i).Float64()
		cf[i] = complex(f/lead, 0)
	}
	eval := func(z complex128) complex128 {
		acc := complex(0, 0)
		for i := d; i >= 0; i-- {
			acc = acc*z + cf[i]
		}
		return acc
	}

	roots := make([]complex128, d)
	seed := complex(0.4, 0.9)
	roots[0] = seed
	for k := 1; k < d; k++ {
		roots[k] = roots[k-1] * seed
	}
	for iter := 0; iter < dkMaxIters; iter++ {
		maxStep := 0.0
		for k := 0; k < d; k++ {
			den := complex(1, 0)
			for j := 0; j < d; j++ {
				if j != k {
					den *= roots[k] - roots[j]
				}
			}
			if den == 0 {
				roots[k] += complex(dkTol, dkTol) // nudge coincident guesses
				continue
			}
			step := eval(roots[k]) / den
			roots[k] -= step
			if s := cmplx.Abs(step) / (1 + cmplx.Abs(roots[k])); s > maxStep {
				maxStep = s
			}
		}
		if maxStep < dkTol {
			break
		}
	}
	return roots
}

// cauchyRadius returns 1 + max|a_i/a_d|, a classical bound on the
// modulus of every root of p.
func cauchyRadius(p RatPoly) float64 {
	d := p.Degree()
	lead, _ := p.coeff(d).Float64()
	maxRatio := 0.0
	for i := 0; i < d; i++ {
		f, _ := p.coeff(i).Float64()
		if r := math.Abs(f / lead); r > maxRatio {
			maxRatio = r
		}
	}
	return 1 + maxRatio
}

// SmallestNonzeroRootModulus returns an enclosure of the smallest
// modulus among the nonzero roots of p. Fails with ErrNoNonzeroRoot when
// p is x^v times a constant.
func SmallestNonzeroRootModulus(p RatPoly) (ball.Real, error) {
	d := p.Degree()
	if d < 0 {
		return ball.Real{}, ErrNoNonzeroRoot
	}
	v := 0
	for v <= d && p.coeff(v).Sign() == 0 {
		v++
	}
	deflated := make(RatPoly, d-v+1)
	for i := range deflated {
		deflated[i] = p.Coeff(v + i)
	}
	if deflated.Degree() < 1 {
		return ball.Real{}, ErrNoNonzeroRoot
	}
	min := ball.RealInf()
	for _, r := range rootEnclosures(deflated) {
		min = min.Min(r.Abs())
	}
	return min, nil
}

package econ

import (
	"errors"

	"github.com/holonomic/dfeval/ball"
	"github.com/holonomic/dfeval/poly"
)

// Sentinel errors returned by the economization engine.
var (
	// ErrNonPositiveEps indicates an error budget that is not provably
	// positive; no term can ever be dropped under it.
	ErrNonPositiveEps = errors.New("econ: error budget must be provably positive")

	// ErrBadFamily indicates a reference family whose k-th polynomial is
	// not of degree exactly k (its leading coefficient may contain zero).
	ErrBadFamily = errors.New("econ: reference polynomial of wrong degree")
)

// ReferenceFamily produces the reference polynomials E[0], …, E[n-1] at
// midpoint precision prec. E[k] must have degree exactly k and satisfy
// |E[k](x)| ≤ 1 on the family's domain of validity.
type ReferenceFamily func(prec uint, n int) []poly.Poly

// General decreases the degree of pol by subtracting a linear
// combination of reference polynomials, keeping the accumulated bound on
// the dropped terms provably below eps, and folds that bound into the
// constant coefficient. For every x in the family's domain, the value of
// the result at x contains that of pol.
func General(fam ReferenceFamily, pol poly.Poly, eps ball.Real) (poly.Poly, error) {
	if !ball.SafeLt(ball.RealZero(), eps) {
		return poly.Poly{}, ErrNonPositiveEps
	}
	n := pol.Degree()
	if n < 0 {
		return pol.AddConstError(ball.RealZero()), nil
	}
	eco := fam(coefPrec(pol), n+1)

	work := make([]ball.Complex, n+1)
	for k := 0; k <= n; k++ {
		work[k] = pol.Coef(k)
	}

	delta := ball.RealZero()
	for k := n; k >= 0; k-- {
		lc := eco[k].Coef(k)
		if lc.ContainsZero() {
			return poly.Poly{}, ErrBadFamily
		}
		c := work[k].Div(lc)
		tmp := delta.Add(c.Abs())
		if !ball.SafeLt(tmp, eps) {
			break // this term would exhaust the budget
		}
		// Subtracting c·E[k] cancels degree k exactly and perturbs only
		// the lower coefficients.
		delta = tmp
		for j := 0; j < k; j++ {
			work[j] = work[j].Sub(c.Mul(eco[k].Coef(j)))
		}
		work[k] = ball.ComplexZero()
	}
	return poly.New(work...).AddConstError(delta).Trim(), nil
}

// Taylor removes terms from pol, starting with the high-order ones, so
// that its value on the complex unit disk |z| ≤ 1 changes at most by
// eps; the bound on the dropped terms is added to the constant term.
// This is General with E[k] = x^k, where the subtraction degenerates to
// plain dropping.
func Taylor(pol poly.Poly, eps ball.Real) (poly.Poly, error) {
	if !ball.SafeLt(ball.RealZero(), eps) {
		return poly.Poly{}, ErrNonPositiveEps
	}
	n := pol.Degree()
	if n < 0 {
		return pol.AddConstError(ball.RealZero()), nil
	}
	work := make([]ball.Complex, n+1)
	for k := 0; k <= n; k++ {
		work[k] = pol.Coef(k)
	}
	delta := ball.RealZero()
	for k := n; k >= 0; k-- {
		tmp := delta.Add(work[k].Abs())
		if !ball.SafeLt(tmp, eps) {
			break // this term would exhaust the budget
		}
		delta = tmp
		work[k] = ball.ComplexZero()
	}
	return poly.New(work...).AddConstError(delta).Trim(), nil
}

// Chebyshev decreases the degree of pol so that its value on the real
// interval [-1, 1] changes at most by eps. Complex evaluation of the
// result is sound only when pol already had complex coefficients.
func Chebyshev(pol poly.Poly, eps ball.Real) (poly.Poly, error) {
	return General(ChebyshevPolynomials, pol, eps)
}

// ChebyshevPolynomials returns T[0], …, T[n-1] by the three-term
// recurrence T[k+1] = 2x·T[k] - T[k-1]. The integer coefficients stay
// exact: the working precision is raised to cover their growth.
func ChebyshevPolynomials(prec uint, n int) []poly.Poly {
	if need := uint(2*n + 32); prec < need {
		prec = need
	}
	out := make([]poly.Poly, n)
	if n >= 1 {
		out[0] = poly.New(ball.ComplexOne())
	}
	if n >= 2 {
		out[1] = poly.New(ball.ComplexZero(), ball.ComplexOne())
	}
	two := ball.RealFromInt64(2).Round(prec)
	for k := 1; k < n-1; k++ {
		coef := make([]ball.Complex, k+2)
		for j := 0; j <= k+1; j++ {
			// 2x·T[k] shifts T[k] up one degree and doubles it.
			c := ball.ComplexZero()
			if j >= 1 {
				c = out[k].Coef(j - 1).MulReal(two)
			}
			coef[j] = c.Sub(out[k-1].Coef(j))
		}
		out[k+1] = poly.New(coef...)
	}
	return out
}

// coefPrec returns the largest midpoint precision among pol's
// coefficients, the natural working precision for family generation.
func coefPrec(pol poly.Poly) uint {
	p := uint(ball.DefaultPrec)
	for k := 0; k < pol.Len(); k++ {
		c := pol.Coef(k)
		if q := c.Real().Prec(); q > p {
			p = q
		}
		if q := c.Imag().Prec(); q > p {
			p = q
		}
	}
	return p
}

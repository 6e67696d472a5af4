package dop

import (
	"math/big"
	"strings"

	"github.com/holonomic/dfeval/ball"
)

// RatPoly is a dense univariate polynomial over the rationals;
// element i is the coefficient of x^i. A nil or all-zero slice is the
// zero polynomial. RatPoly values are treated as immutable.
type RatPoly []*big.Rat

// NewRatPoly copies the given coefficients (low degree first).
func NewRatPoly(coeffs ...*big.Rat) RatPoly {
	p := make(RatPoly, len(coeffs))
	for i, c := range coeffs {
		if c == nil {
			p[i] = new(big.Rat)
			continue
		}
		p[i] = new(big.Rat).Set(c)
	}
	return p
}

// RatPolyFromInt64 builds a polynomial from integer coefficients
// (low degree first): RatPolyFromInt64(-1, 0, 2) is 2x² - 1.
func RatPolyFromInt64(coeffs ...int64) RatPoly {
	p := make(RatPoly, len(coeffs))
	for i, c := range coeffs {
		p[i] = new(big.Rat).SetInt64(c)
	}
	return p
}

// coeff returns the i-th coefficient without allocation (shared value,
// do not mutate).
func (p RatPoly) coeff(i int) *big.Rat {
	if i < 0 || i >= len(p) || p[i] == nil {
		return new(big.Rat)
	}
	return p[i]
}

// Coeff returns a copy of the coefficient of x^i (zero beyond the
// degree).
func (p RatPoly) Coeff(i int) *big.Rat { return new(big.Rat).Set(p.coeff(i)) }

// Degree returns the degree, with -1 for the zero polynomial.
func (p RatPoly) Degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != nil && p[i].Sign() != 0 {
			return i
		}
	}
	return -1
}

// IsZero reports whether p is the zero polynomial.
func (p RatPoly) IsZero() bool { return p.Degree() < 0 }

// IsConstant reports whether deg p ≤ 0.
func (p RatPoly) IsConstant() bool { return p.Degree() <= 0 }

// Derivative returns p'.
func (p RatPoly) Derivative() RatPoly {
	d := p.Degree()
	if d <= 0 {
		return RatPoly{}
	}
	out := make(RatPoly, d)
	for i := 1; i <= d; i++ {
		out[i-1] = new(big.Rat).Mul(p.coeff(i), new(big.Rat).SetInt64(int64(i)))
	}
	return out
}

// EvalReal returns an enclosure of p(x) by Horner's rule at the ball's
// midpoint precision.
func (p RatPoly) EvalReal(x ball.Real) ball.Real {
	prec := x.Prec()
	acc := ball.RealZero()
	for i := p.Degree(); i >= 0; i-- {
		acc = acc.Mul(x).Add(ball.RealFromRat(p.coeff(i), prec))
	}
	return acc
}

// EvalComplex returns an enclosure of p(z) by Horner's rule.
func (p RatPoly) EvalComplex(z ball.Complex) ball.Complex {
	prec := z.Real().Prec()
	acc := ball.ComplexZero()
	for i := p.Degree(); i >= 0; i-- {
		acc = acc.Mul(z).Add(ball.ComplexFromReal(ball.RealFromRat(p.coeff(i), prec)))
	}
	return acc
}

// TaylorShift returns p(x + c), computed exactly by repeated synthetic
// division. O(d²) rational operations.
func (p RatPoly) TaylorShift(c *big.Rat) RatPoly {
	d := p.Degree()
	if d < 0 {
		return RatPoly{}
	}
	work := make([]*big.Rat, d+1)
	for i := 0; i <= d; i++ {
		work[i] = new(big.Rat).Set(p.coeff(i))
	}
	out := make(RatPoly, d+1)
	tmp := new(big.Rat)
	// out[j] collects the remainder of the j-th division of p by (x - c).
	for j := 0; j <= d; j++ {
		for i := d - 1; i >= j; i-- {
			work[i].Add(work[i], tmp.Mul(work[i+1], c))
		}
		out[j] = new(big.Rat).Set(work[j])
	}
	return out
}

// String renders the polynomial for logs and test failures.
func (p RatPoly) String() string {
	d := p.Degree()
	if d < 0 {
		return "0"
	}
	var sb strings.Builder
	first := true
	for i := d; i >= 0; i-- {
		c := p.coeff(i)
		if c.Sign() == 0 {
			continue
		}
		if !first {
			sb.WriteString(" + ")
		}
		first = false
		sb.WriteString(c.RatString())
		switch i {
		case 0:
		case 1:
			sb.WriteString("·x")
		default:
			sb.WriteString("·x^")
			sb.WriteString(big.NewInt(int64(i)).String())
		}
	}
	return sb.String()
}

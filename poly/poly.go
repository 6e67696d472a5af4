package poly

import (
	"errors"
	"strconv"
	"strings"

	"github.com/holonomic/dfeval/ball"
)

// ErrComplexValue indicates that a real evaluation was requested but the
// result's imaginary part does not certifiably vanish.
var ErrComplexValue = errors.New("poly: value is not certifiably real")

// Poly is a dense polynomial with complex-ball coefficients, low degree
// first. The zero value is the zero polynomial. Poly values are
// immutable; methods return fresh polynomials.
type Poly struct {
	coef []ball.Complex
}

// New builds a polynomial from coefficients (low degree first).
func New(coef ...ball.Complex) Poly {
	cp := make([]ball.Complex, len(coef))
	copy(cp, coef)
	return Poly{coef: cp}
}

// FromReal builds a polynomial with real-ball coefficients.
func FromReal(coef ...ball.Real) Poly {
	cp := make([]ball.Complex, len(coef))
	for i, c := range coef {
		cp[i] = ball.ComplexFromReal(c)
	}
	return Poly{coef: cp}
}

// Len returns the length of the coefficient slice (degree bound + 1).
func (p Poly) Len() int { return len(p.coef) }

// Coef returns the k-th coefficient (zero beyond the slice).
func (p Poly) Coef(k int) ball.Complex {
	if k < 0 || k >= len(p.coef) {
		return ball.ComplexZero()
	}
	return p.coef[k]
}

// Degree returns the index of the highest coefficient that is not
// exactly zero, or -1 for the (exact) zero polynomial. A thick
// coefficient containing zero still counts: only exact zeros trim.
func (p Poly) Degree() int {
	for k := len(p.coef) - 1; k >= 0; k-- {
		c := p.coef[k]
		if !(c.IsExact() && c.ContainsZero()) {
			return k
		}
	}
	return -1
}

// IsReal reports whether every coefficient has exactly zero imaginary
// part.
func (p Poly) IsReal() bool {
	for _, c := range p.coef {
		if !c.HasZeroImag() {
			return false
		}
	}
	return true
}

// Eval returns an enclosure of p(z) by Horner's rule.
func (p Poly) Eval(z ball.Complex) ball.Complex {
	acc := ball.ComplexZero()
	for k := len(p.coef) - 1; k >= 0; k-- {
		acc = acc.Mul(z).Add(p.coef[k])
	}
	return acc
}

// EvalReal evaluates at a real ball and projects onto the real line.
// It fails with ErrComplexValue unless the imaginary part of the result
// certifiably contains only zero contributions (exactly real input and
// coefficients whose imaginary enclosures contain 0 yield an imaginary
// enclosure containing 0; the real part then encloses the true value
// for real-coefficient members).
func (p Poly) EvalReal(x ball.Real) (ball.Real, error) {
	v := p.Eval(ball.ComplexFromReal(x))
	if !v.Imag().ContainsZero() {
		return ball.Real{}, ErrComplexValue
	}
	// Fold the imaginary uncertainty into the real radius: for members
	// with complex coefficients the true value may sit anywhere in the
	// rectangle, and a real answer must cover its projection.
	return v.Real().AddError(v.Imag().Abs()), nil
}

// ScaleArg returns p(r·x): coefficient k is multiplied by r^k.
func (p Poly) ScaleArg(r ball.Real) Poly {
	out := make([]ball.Complex, len(p.coef))
	pow := ball.RealOne()
	for k, c := range p.coef {
		out[k] = c.MulReal(pow)
		pow = pow.Mul(r)
	}
	return Poly{coef: out}
}

// UnscaleArg returns p(x/r): coefficient k is divided by r^k. A scale
// ball containing zero poisons every coefficient past degree 0 with
// indeterminate values, as it must.
func (p Poly) UnscaleArg(r ball.Real) Poly {
	out := make([]ball.Complex, len(p.coef))
	pow := ball.RealOne()
	for k, c := range p.coef {
		out[k] = c.DivReal(pow)
		pow = pow.Mul(r)
	}
	return Poly{coef: out}
}

// AddConstError widens the constant coefficient by delta, enclosing
// every polynomial of the family perturbed by at most delta anywhere.
func (p Poly) AddConstError(delta ball.Real) Poly {
	out := make([]ball.Complex, len(p.coef))
	copy(out, p.coef)
	if len(out) == 0 {
		out = []ball.Complex{ball.ComplexZero()}
	}
	out[0] = out[0].AddError(delta)
	return Poly{coef: out}
}

// Trim drops trailing exactly-zero coefficients.
func (p Poly) Trim() Poly {
	d := p.Degree()
	out := make([]ball.Complex, d+1)
	copy(out, p.coef[:d+1])
	return Poly{coef: out}
}

// String renders the polynomial for logs and test failures.
func (p Poly) String() string {
	if len(p.coef) == 0 {
		return "0"
	}
	var sb strings.Builder
	for k := len(p.coef) - 1; k >= 0; k-- {
		if sb.Len() > 0 {
			sb.WriteString(" + ")
		}
		sb.WriteString("(")
		sb.WriteString(p.coef[k].String())
		sb.WriteString(")·x^")
		sb.WriteString(strconv.Itoa(k))
	}
	return sb.String()
}

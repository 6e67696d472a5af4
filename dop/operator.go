package dop

import (
	"math/big"
	"strings"
	"sync"

	"github.com/holonomic/dfeval/ball"
	"github.com/holonomic/dfeval/point"
)

// Operator is a linear differential operator with rational polynomial
// coefficients: coeffs[i] multiplies the i-th derivative. Immutable once
// constructed.
type Operator struct {
	coeffs []RatPoly
	order  int

	singOnce sync.Once
	sings    []ball.Complex
}

// New validates and builds an operator. The slice is indexed by
// derivative order, low first; trailing zero polynomials are trimmed.
//
// Validation (in order):
//  1. At least one coefficient must be nonzero (ErrEmptyOperator).
//  2. The trimmed order must be ≥ 1 (ErrOrderZero).
func New(coeffs []RatPoly) (*Operator, error) {
	top := -1
	for i, p := range coeffs {
		if !p.IsZero() {
			top = i
		}
	}
	if top < 0 {
		return nil, ErrEmptyOperator
	}
	if top == 0 {
		return nil, ErrOrderZero
	}
	cp := make([]RatPoly, top+1)
	for i := 0; i <= top; i++ {
		if i < len(coeffs) {
			cp[i] = NewRatPoly(coeffs[i]...)
		} else {
			cp[i] = RatPoly{}
		}
	}
	return &Operator{coeffs: cp, order: top}, nil
}

// Order returns the order of the operator (the highest derivative).
func (op *Operator) Order() int { return op.order }

// Coeff returns the coefficient polynomial of the i-th derivative
// (the zero polynomial beyond the order).
func (op *Operator) Coeff(i int) RatPoly {
	if i < 0 || i > op.order {
		return RatPoly{}
	}
	return op.coeffs[i]
}

// LeadingCoeff returns the coefficient of the highest derivative.
func (op *Operator) LeadingCoeff() RatPoly { return op.coeffs[op.order] }

// IsConstantLeading reports whether the leading coefficient is constant,
// i.e. the operator has no finite singular point.
func (op *Operator) IsConstantLeading() bool { return op.LeadingCoeff().IsConstant() }

// String renders the operator for logs.
func (op *Operator) String() string {
	var sb strings.Builder
	for i := op.order; i >= 0; i-- {
		if op.coeffs[i].IsZero() {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(" + ")
		}
		sb.WriteString("(")
		sb.WriteString(op.coeffs[i].String())
		sb.WriteString(")")
		if i > 0 {
			sb.WriteString("·D^")
			sb.WriteString(big.NewInt(int64(i)).String())
		}
	}
	return sb.String()
}

// LocalOperator is an operator re-expanded at a new origin c: the
// coefficient of x^j in the i-th derivative's polynomial is the exact
// Gaussian rational Coeffs[i][j]. Series recurrences run off this form.
type LocalOperator struct {
	// Coeffs[i][j] is the coefficient of x^j·D^i.
	Coeffs [][]GaussRat
	order  int
}

// Order returns the order of the local operator.
func (lo *LocalOperator) Order() int { return lo.order }

// LeadingConstant returns the constant term of the leading coefficient,
// i.e. the value of the original leading coefficient at the expansion
// point. The point is ordinary exactly when this is nonzero.
func (lo *LocalOperator) LeadingConstant() GaussRat {
	lead := lo.Coeffs[lo.order]
	if len(lead) == 0 {
		return GaussRat{Re: new(big.Rat), Im: new(big.Rat)}
	}
	return lead[0]
}

// LocalAt returns the operator with every coefficient polynomial shifted
// to the expansion point c, so that local series live in the variable
// x - c. The shift is exact.
func (op *Operator) LocalAt(c GaussRat) *LocalOperator {
	lo := &LocalOperator{order: op.order, Coeffs: make([][]GaussRat, op.order+1)}
	if c.IsReal() {
		for i, p := range op.coeffs {
			shifted := p.TaylorShift(c.Re)
			row := make([]GaussRat, len(shifted))
			for j := range shifted {
				row[j] = GaussFromRat(shifted.coeff(j))
			}
			lo.Coeffs[i] = row
		}
		return lo
	}
	for i, p := range op.coeffs {
		lo.Coeffs[i] = taylorShiftGauss(p, c)
	}
	return lo
}

// taylorShiftGauss computes p(x + c) for a complex rational c, exactly,
// by the same synthetic-division scheme as RatPoly.TaylorShift.
func taylorShiftGauss(p RatPoly, c GaussRat) []GaussRat {
	d := p.Degree()
	if d < 0 {
		return nil
	}
	work := make([]GaussRat, d+1)
	for i := 0; i <= d; i++ {
		work[i] = GaussFromRat(p.coeff(i))
	}
	out := make([]GaussRat, d+1)
	for j := 0; j <= d; j++ {
		for i := d - 1; i >= j; i-- {
			work[i] = work[i].Add(work[i+1].Mul(c))
		}
		out[j] = work[j]
	}
	return out
}

// Singularities returns certified enclosures of the operator's finite
// singular points (the roots of the leading coefficient). The result is
// computed once and cached; it is empty when the leading coefficient is
// constant.
func (op *Operator) Singularities() []ball.Complex {
	op.singOnce.Do(func() {
		if op.IsConstantLeading() {
			return
		}
		op.sings = rootEnclosures(op.LeadingCoeff())
	})
	return op.sings
}

// DistToSing returns an enclosure of the distance from pt to the nearest
// finite singular point, or +∞ when there is none. The lower bound is
// certified, which is the direction disk selection relies on.
func (op *Operator) DistToSing(pt point.Point) ball.Real {
	sings := op.Singularities()
	if len(sings) == 0 {
		return ball.RealInf()
	}
	const distPrec = 64
	z := pt.ComplexBall(distPrec)
	dist := ball.RealInf()
	for _, s := range sings {
		dist = dist.Min(z.Sub(s).Abs())
	}
	return dist
}

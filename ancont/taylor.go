package ancont

import (
	"math/big"

	"github.com/holonomic/dfeval/ball"
	"github.com/holonomic/dfeval/dop"
	"github.com/holonomic/dfeval/point"
	"github.com/holonomic/dfeval/poly"
)

// tailStride is the window length for the geometric tail validation:
// convergence is declared once the running maximum of the per-term bounds
// halves from one window of tailStride terms to the next.
const tailStride = 8

// TaylorMethod is the reference Continuator and Summator: plain Taylor
// series at ordinary points, transported step by step along the path.
// Safe for concurrent use.
type TaylorMethod struct {
	opts Options
}

// NewTaylor builds the reference method with the given options.
func NewTaylor(opts ...Option) *TaylorMethod {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return &TaylorMethod{opts: o}
}

// Sum expands the solution with derivative values ini at the exact point
// at, producing one truncated series (in the local variable x - at) per
// derivative order 0, …, derivatives, valid on |x - at| ≤ rad with the
// tail bound folded into each constant coefficient.
func (tm *TaylorMethod) Sum(op *dop.Operator, at point.Point, ini []ball.Complex, eps, rad ball.Real, derivatives int) ([]poly.Poly, error) {
	if op == nil {
		return nil, ErrNilOperator
	}
	re, im, ok := at.Rats()
	if !ok {
		return nil, ErrInexactPoint
	}
	return tm.sumLocal(op, dop.GaussFromRats(re, im), ini, eps, rad, derivatives, workPrec(eps))
}

// sumLocal runs the coefficient recurrence of op at the exact expansion
// point. With p_i(x) = Σ_j c_{i,j}·x^j locally and f = Σ_m a_m·x^m,
// collecting the coefficient of x^n in Σ_i p_i·f^(i) = 0 yields
//
//	a_{n+r} = -( Σ_{(i,j)≠(r,0)} c_{i,j}·ff(n-j+i, i)·a_{n-j+i} )
//	          / ( c_{r,0}·ff(n+r, r) )
//
// with ff the falling factorial. The c_{i,j} are exact; the only rounding
// lives in the ball coefficients a_m.
func (tm *TaylorMethod) sumLocal(op *dop.Operator, at dop.GaussRat, ini []ball.Complex, eps, rad ball.Real, derivatives int, wp uint) ([]poly.Poly, error) {
	r := op.Order()
	if len(ini) != r {
		return nil, ErrBadInitialVector
	}
	if derivatives < 0 {
		derivatives = 0
	}
	lo := op.LocalAt(at)
	lead := lo.LeadingConstant()
	if lead.IsZero() {
		return nil, ErrSingularPath
	}
	invLead := lead.Inv().Ball(wp)

	cij := make([][]ball.Complex, r+1)
	for i, row := range lo.Coeffs {
		cij[i] = make([]ball.Complex, len(row))
		for j, c := range row {
			cij[i][j] = c.Ball(wp)
		}
	}

	// Taylor coefficients from derivative values: a_k = ini[k]/k!.
	a := make([]ball.Complex, r, r+4*tailStride)
	fact := big.NewInt(1)
	for k := 0; k < r; k++ {
		if k > 1 {
			fact = new(big.Int).Mul(fact, big.NewInt(int64(k)))
		}
		a[k] = ini[k].MulReal(ball.RealFromRat(new(big.Rat).SetFrac(big.NewInt(1), fact), wp))
	}

	// powD[d] tracks rad^{m-d} once m has reached d.
	powD := make([]ball.Real, derivatives+1)
	powInit := make([]bool, derivatives+1)
	for d := 0; d <= derivatives && d <= r; d++ {
		powD[d] = powInt(rad, r-d)
		powInit[d] = true
	}

	var (
		uppers    []*big.Float
		tail      ball.Real
		converged bool
	)
	for m := r; m < tm.opts.MaxTerms; m++ {
		if m > r {
			for d := 0; d <= derivatives; d++ {
				switch {
				case m == d:
					powD[d] = ball.RealOne()
					powInit[d] = true
				case m > d && powInit[d]:
					powD[d] = powD[d].Mul(rad)
				}
			}
		}

		n := m - r
		sum := ball.ComplexZero()
		for i := 0; i <= r; i++ {
			for j := range cij[i] {
				if i == r && j == 0 {
					continue
				}
				idx := n - j + i
				if idx < i {
					// ff(idx, i) vanishes (or the coefficient does not exist)
					continue
				}
				sum = sum.Add(cij[i][j].Mul(a[idx]).MulReal(ffBall(idx, i)))
			}
		}
		am := sum.Neg().Mul(invLead).DivReal(ffBall(m, r))
		a = append(a, am)

		// largest per-derivative term bound on the target radius
		tmax := new(big.Float)
		for d := 0; d <= derivatives; d++ {
			if m < d {
				continue
			}
			t := am.Abs().Mul(ffBall(m, d)).Mul(powD[d])
			if u := t.UpperBound(); u.Cmp(tmax) > 0 {
				tmax = u
			}
		}
		uppers = append(uppers, tmax)

		if w := len(uppers); w >= 2*tailStride {
			recent := windowMax(uppers[w-tailStride:])
			previous := windowMax(uppers[w-2*tailStride : w-tailStride])
			half := new(big.Float).SetMode(big.ToPositiveInf).SetPrec(64)
			half.Quo(previous, big.NewFloat(2))
			if recent.Cmp(half) > 0 {
				continue
			}
			// Sustained halving: extrapolate the geometric decay past m.
			tb := new(big.Float).SetMode(big.ToPositiveInf).SetPrec(64)
			tb.Mul(recent, big.NewFloat(2*tailStride))
			tail = ball.RealFromMidRad(tb, new(big.Float))
			if ball.SafeLe(tail, eps) {
				converged = true
				break
			}
		}
	}
	if !converged {
		return nil, ErrNoConvergence
	}

	polys := make([]poly.Poly, derivatives+1)
	for d := 0; d <= derivatives; d++ {
		coefs := make([]ball.Complex, 0, len(a))
		for n := 0; n+d < len(a); n++ {
			coefs = append(coefs, a[n+d].MulReal(ffBall(n+d, d)))
		}
		polys[d] = poly.New(coefs...).AddConstError(tail)
	}
	return polys, nil
}

// ffBall returns the falling factorial m·(m-1)·…·(m-i+1) as an exact-mid
// ball; i = 0 yields 1.
func ffBall(m, i int) ball.Real {
	out := ball.RealOne()
	for t := 0; t < i; t++ {
		out = out.Mul(ball.RealFromInt64(int64(m - t)))
	}
	return out
}

// powInt returns r^k for k ≥ 0.
func powInt(r ball.Real, k int) ball.Real {
	out := ball.RealOne()
	for t := 0; t < k; t++ {
		out = out.Mul(r)
	}
	return out
}

func windowMax(w []*big.Float) *big.Float {
	out := w[0]
	for _, u := range w[1:] {
		if u.Cmp(out) > 0 {
			out = u
		}
	}
	return out
}

// workPrec derives the midpoint working precision from the accuracy goal.
func workPrec(eps ball.Real) uint {
	p := uint(ball.DefaultPrec)
	if e, ok := eps.Log2UpperCeil(); ok && e < 0 && uint(-e)+32 > p {
		p = uint(-e) + 32
	}
	return p
}

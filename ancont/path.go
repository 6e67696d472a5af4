package ancont

import (
	"math/big"

	"github.com/holonomic/dfeval/ball"
	"github.com/holonomic/dfeval/dop"
	"github.com/holonomic/dfeval/point"
)

// stepDenom is the dyadic resolution used when a leg must be subdivided:
// partial steps are m/stepDenom of the remaining displacement, keeping
// every intermediate expansion point an exact Gaussian rational.
const stepDenom = 64

// Continue transports ini (derivative values at path[0]) along the path,
// returning one certified vector per vertex. Every vertex but the last
// must be exact; a thick last vertex is handled by anchoring at a nearby
// exact dyadic point and evaluating the local series on the ball offset.
func (tm *TaylorMethod) Continue(op *dop.Operator, ini []ball.Complex, path []point.Point, eps ball.Real) ([]VertexValue, error) {
	if op == nil {
		return nil, ErrNilOperator
	}
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	r := op.Order()
	if len(ini) != r {
		return nil, ErrBadInitialVector
	}
	cur, ok := gaussOf(path[0])
	if !ok {
		return nil, ErrInexactPoint
	}
	wp := workPrec(eps)
	vals := append([]ball.Complex(nil), ini...)
	out := make([]VertexValue, 0, len(path))
	out = append(out, VertexValue{Vertex: path[0], Values: append([]ball.Complex(nil), vals...)})
	if len(path) == 1 {
		return out, nil
	}

	epsLeg := eps.Div(ball.RealFromInt64(int64(len(path) - 1)))
	for t := 1; t < len(path); t++ {
		v := path[t]
		if target, exact := gaussOf(v); exact {
			var err error
			cur, vals, err = tm.continueLeg(op, cur, vals, target, epsLeg, wp)
			if err != nil {
				return nil, err
			}
			out = append(out, VertexValue{Vertex: v, Values: append([]ball.Complex(nil), vals...)})
			continue
		}
		if t != len(path)-1 {
			return nil, ErrInexactPoint
		}
		thick, err := tm.endAtBall(op, cur, vals, v, epsLeg, wp)
		if err != nil {
			return nil, err
		}
		out = append(out, thick)
	}
	return out, nil
}

// continueLeg walks from cur to target in steps no longer than half the
// local distance to the singularities (and the step cap), updating the
// derivative vector at each intermediate expansion point.
func (tm *TaylorMethod) continueLeg(op *dop.Operator, cur dop.GaussRat, vals []ball.Complex, target dop.GaussRat, eps ball.Real, wp uint) (dop.GaussRat, []ball.Complex, error) {
	steps, err := tm.planSteps(op, cur, target)
	if err != nil {
		return cur, nil, err
	}
	if len(steps) == 0 {
		return cur, vals, nil
	}
	tm.opts.Logger.Debug("continuation leg", "steps", len(steps))
	epsStep := eps.Div(ball.RealFromInt64(int64(2 * len(steps))))
	r := op.Order()
	for _, next := range steps {
		offset := next.Add(cur.Neg()).Ball(wp)
		polys, err := tm.sumLocal(op, cur, vals, epsStep, offset.Abs(), r-1, wp)
		if err != nil {
			return cur, nil, err
		}
		nv := make([]ball.Complex, r)
		for d := 0; d < r; d++ {
			nv[d] = polys[d].Eval(offset)
		}
		vals = nv
		cur = next
	}
	return cur, vals, nil
}

// planSteps precomputes the intermediate expansion points of one leg.
// The whole plan is laid out before any series runs, so the per-step
// accuracy budget can be split by the true step count.
func (tm *TaylorMethod) planSteps(op *dop.Operator, from, to dop.GaussRat) ([]dop.GaussRat, error) {
	const planPrec = 64
	var steps []dop.GaussRat
	cur := from
	for i := 0; i < tm.opts.MaxSteps; i++ {
		rem := to.Add(cur.Neg())
		if rem.IsZero() {
			return steps, nil
		}
		dist := op.DistToSing(pointOf(cur))
		if dist.ContainsZero() {
			return nil, ErrSingularPath
		}
		allowed := dist.MulPow2(-1).Min(tm.opts.StepCap)
		remAbs := rem.Ball(planPrec).Abs()
		if ball.SafeLe(remAbs, allowed) {
			return append(steps, to), nil
		}
		lo, _ := allowed.LowerBound().Float64()
		hi, _ := remAbs.UpperBound().Float64()
		m := int(stepDenom * lo / hi)
		if m < 1 {
			return nil, ErrSingularPath
		}
		if m >= stepDenom {
			m = stepDenom - 1
		}
		cur = cur.Add(rem.MulRat(big.NewRat(int64(m), stepDenom)))
		steps = append(steps, cur)
	}
	return nil, ErrSingularPath
}

// endAtBall finishes a path at a thick vertex: continue to the exact
// dyadic anchor under its midpoint, then evaluate the local series and
// its derivatives on the remaining ball offset.
func (tm *TaylorMethod) endAtBall(op *dop.Operator, cur dop.GaussRat, vals []ball.Complex, v point.Point, eps ball.Real, wp uint) (VertexValue, error) {
	z := v.ComplexBall(wp)
	if !z.IsFinite() {
		return VertexValue{}, ErrInexactPoint
	}
	re, _ := z.Real().Mid().Rat(nil)
	im, _ := z.Imag().Mid().Rat(nil)
	anchor := dop.GaussFromRats(re, im)
	half := eps.MulPow2(-1)
	cur, vals, err := tm.continueLeg(op, cur, vals, anchor, half, wp)
	if err != nil {
		return VertexValue{}, err
	}
	offset := z.Sub(anchor.Ball(wp))
	polys, err := tm.sumLocal(op, cur, vals, half, offset.Abs(), op.Order()-1, wp)
	if err != nil {
		return VertexValue{}, err
	}
	nv := make([]ball.Complex, op.Order())
	for d := range nv {
		nv[d] = polys[d].Eval(offset)
	}
	return VertexValue{Vertex: v, Values: nv}, nil
}

func gaussOf(p point.Point) (dop.GaussRat, bool) {
	re, im, ok := p.Rats()
	if !ok {
		return dop.GaussRat{}, false
	}
	return dop.GaussFromRats(re, im), true
}

func pointOf(g dop.GaussRat) point.Point {
	return point.FromRats(g.Re, g.Im)
}

// Package approx orchestrates a full polynomial approximation: analytic
// continuation to the expansion point, local series summation, and
// economization to the target domain. The total accuracy budget eps is
// split in fixed shares — half for continuation, a quarter for summation,
// a quarter for economization. The split is deliberately non-adaptive:
// it keeps reruns of the same query bit-for-bit comparable, and the ball
// radii carry the truth regardless of how the budget is spent.
package approx

import (
	"math/big"

	"github.com/holonomic/dfeval/ball"
	"github.com/holonomic/dfeval/dop"
	"github.com/holonomic/dfeval/econ"
	"github.com/holonomic/dfeval/point"
	"github.com/holonomic/dfeval/poly"
)

// Compute approximates the solution of op with initial vector ini
// (derivative values at path[0]) around the last path vertex: one
// polynomial in the local variable per derivative order up to
// opts.Derivatives, each valid within eps on the domain of radius rad
// selected by kind. Collaborator failures propagate verbatim; there are
// no retries.
func Compute(op *dop.Operator, ini []ball.Complex, path []point.Point, eps ball.Real, kind Kind, rad ball.Real, opts ...Option) ([]poly.Poly, error) {
	if op == nil {
		return nil, ErrNilOperator
	}
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	if kind != OnDiskKind && kind != OnIntervalKind {
		return nil, ErrUnknownKind
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	epsCont := eps.MulPow2(-1)
	epsSum := eps.MulPow2(-2)
	epsEcon := eps.MulPow2(-2)
	o.Logger.Debug("approximation", "kind", kind.String(), "rad", rad.String(), "eps", eps.String())

	verts, err := o.Continuator.Continue(op, ini, path, epsCont)
	if err != nil {
		return nil, err
	}
	if o.MergeVertex != nil {
		for _, vv := range verts {
			o.MergeVertex(vv)
		}
	}

	last := verts[len(verts)-1]
	polys, err := o.Summator.Sum(op, last.Vertex, last.Values, epsSum, rad, o.Derivatives)
	if err != nil {
		return nil, err
	}

	out := make([]poly.Poly, len(polys))
	for i, p := range polys {
		scaled := p.ScaleArg(rad)
		var eco poly.Poly
		if kind == OnDiskKind {
			eco, err = econ.Taylor(scaled, epsEcon)
		} else {
			eco, err = econ.Chebyshev(scaled, epsEcon)
		}
		if err != nil {
			return nil, err
		}
		out[i] = eco.UnscaleArg(rad)
	}
	return out, nil
}

// OnDisk returns a single polynomial enclosing the solution on the
// complex disk of radius rad around the last path vertex.
func OnDisk(op *dop.Operator, ini []ball.Complex, path []point.Point, rad, eps ball.Real, opts ...Option) (poly.Poly, error) {
	polys, err := Compute(op, ini, path, eps, OnDiskKind, rad, opts...)
	if err != nil {
		return poly.Poly{}, err
	}
	return polys[0], nil
}

// OnInterval returns a single polynomial enclosing the solution on the
// real interval of radius rad around the last path vertex. When rad is
// nil the last path element must be an interval descriptor — a thick
// real point; its midpoint replaces it on the path and its radius is
// used. Otherwise ErrMissingDomainParameter.
func OnInterval(op *dop.Operator, ini []ball.Complex, path []point.Point, eps ball.Real, rad *ball.Real, opts ...Option) (poly.Poly, error) {
	if len(path) == 0 {
		return poly.Poly{}, ErrEmptyPath
	}
	var r ball.Real
	if rad != nil {
		r = *rad
	} else {
		last := path[len(path)-1]
		if !last.IsReal() || last.IsExact() {
			return poly.Poly{}, ErrMissingDomainParameter
		}
		r = last.Radius()
		mid, _ := last.RealBall(last.NativePrec()).Mid().Rat(nil)
		if mid == nil {
			return poly.Poly{}, ErrMissingDomainParameter
		}
		repath := make([]point.Point, len(path))
		copy(repath, path)
		repath[len(path)-1] = point.FromRat(new(big.Rat).Set(mid))
		path = repath
	}
	polys, err := Compute(op, ini, path, eps, OnIntervalKind, r, opts...)
	if err != nil {
		return poly.Poly{}, err
	}
	return polys[0], nil
}

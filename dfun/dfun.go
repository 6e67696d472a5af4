package dfun

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	gocache "github.com/patrickmn/go-cache"

	"github.com/holonomic/dfeval/ancont"
	"github.com/holonomic/dfeval/approx"
	"github.com/holonomic/dfeval/ball"
	"github.com/holonomic/dfeval/disk"
	"github.com/holonomic/dfeval/dop"
	"github.com/holonomic/dfeval/growth"
	"github.com/holonomic/dfeval/point"
	"github.com/holonomic/dfeval/poly"
)

// PolApprox is one cached polynomial approximation: valid on the real
// trace of its disk, at the precision it was computed for.
type PolApprox struct {
	Pol  poly.Poly
	Prec uint
}

// Function is a lazily evaluated solution of a linear ODE, pinned down
// by one vector of initial values. Evaluations at moderate precision are
// served from two caches — polynomial approximations keyed by disk
// center, initial vectors keyed by vertex — both filled as queries come
// in and both monotone: an entry is only ever replaced by a sharper one.
// Safe for concurrent use.
type Function struct {
	op      *dop.Operator
	seed    Seed
	opts    Options
	maxRad  ball.Real
	locator *disk.Locator

	mu      sync.Mutex // guards all cache writes
	inivecs *gocache.Cache
	polys   *gocache.Cache

	polyHits    atomic.Uint64
	polyMisses  atomic.Uint64
	iniHits     atomic.Uint64
	directEvals atomic.Uint64
}

// New builds a Function from derivative values at the seed point
// (0 unless overridden with WithSeed).
func New(op *dop.Operator, ini []ball.Complex, opts ...Option) (*Function, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return NewWithSeeds(op, []Seed{{Point: o.Seed, Values: ini}}, opts...)
}

// NewWithSeeds builds a Function from explicit seed vectors. Only a
// single seed is supported for now; anything else fails with
// ErrUnsupportedConfiguration.
func NewWithSeeds(op *dop.Operator, seeds []Seed, opts ...Option) (*Function, error) {
	if op == nil {
		return nil, ErrNilOperator
	}
	if len(seeds) != 1 {
		return nil, ErrUnsupportedConfiguration
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	s := seeds[0]
	if len(s.Values) != op.Order() {
		return nil, ErrBadInitialVector
	}

	// For equations without finite singular points the growth analysis
	// caps the disk radii, keeping the series terms from humping before
	// they decay; the user cap applies on top in every case.
	maxRad, err := growth.MaxRadius(op, o.MaxRadius)
	if err != nil {
		return nil, err
	}
	loc, err := disk.New(op, disk.WithMaxRadius(maxRad), disk.WithLogger(o.Logger))
	if err != nil {
		return nil, err
	}

	f := &Function{
		op:      op,
		seed:    Seed{Point: s.Point, Values: append([]ball.Complex(nil), s.Values...)},
		opts:    o,
		maxRad:  maxRad,
		locator: loc,
		inivecs: gocache.New(gocache.NoExpiration, 0),
		polys:   gocache.New(gocache.NoExpiration, 0),
	}
	f.mu.Lock()
	f.mergeIniLocked(ancont.VertexValue{Vertex: f.seed.Point, Values: f.seed.Values})
	f.mu.Unlock()
	return f, nil
}

// MaxRadius returns the effective disk radius cap (growth analysis
// combined with the user cap).
func (f *Function) MaxRadius() ball.Real { return f.maxRad }

// Stats returns a snapshot of the cache counters.
func (f *Function) Stats() Stats {
	return Stats{
		PolyHits:    f.polyHits.Load(),
		PolyMisses:  f.polyMisses.Load(),
		IniHits:     f.iniHits.Load(),
		DirectEvals: f.directEvals.Load(),
	}
}

// Evaluate returns an enclosure of the solution at pt, accurate to about
// 2^-prec. prec 0 means the point's native precision, or 53 for exact
// points. Real points below the precision ceiling go through the disk
// caches; complex points and queries at or above the ceiling run a
// direct continuation and leave the caches untouched.
func (f *Function) Evaluate(pt point.Point, prec uint) (ball.Complex, error) {
	if prec == 0 {
		prec = pt.NativePrec()
		if prec == 0 {
			prec = ball.DefaultPrec
		}
	}
	eps := ball.Pow2(-int(prec))
	if prec >= f.opts.MaxPrec || !pt.IsReal() {
		f.directEvals.Add(1)
		f.opts.Logger.Debug("direct evaluation", "pt", pt.String(), "prec", prec)
		return f.direct(pt, eps)
	}

	d, err := f.locator.Locate(pt)
	if err != nil {
		if errors.Is(err, disk.ErrNoDisk) {
			return ball.Complex{}, fmt.Errorf("%w: %s", ErrUnboundedPoint, pt.String())
		}
		return ball.Complex{}, err
	}

	pa, ok := f.lookupPol(d.Key(), prec)
	if !ok {
		pa, err = f.computePol(d, prec, eps)
		if err != nil {
			return ball.Complex{}, err
		}
	}
	guard := prec + 16
	offset := pt.RealBall(guard).Sub(ball.RealFromRat(d.Center, guard))
	return pa.Pol.Eval(ball.ComplexFromReal(offset)), nil
}

// EvaluateReal evaluates at a real point and projects onto the real
// line, folding any residual imaginary uncertainty into the radius.
func (f *Function) EvaluateReal(x point.Point, prec uint) (ball.Real, error) {
	v, err := f.Evaluate(x, prec)
	if err != nil {
		return ball.Real{}, err
	}
	if !v.Imag().ContainsZero() {
		return ball.Real{}, poly.ErrComplexValue
	}
	return v.Real().AddError(v.Imag().Abs()), nil
}

// direct runs a plain continuation from the seed to pt, bypassing the
// caches.
func (f *Function) direct(pt point.Point, eps ball.Real) (ball.Complex, error) {
	path := []point.Point{f.seed.Point, pt}
	verts, err := f.opts.Continuator.Continue(f.op, f.seed.Values, path, eps)
	if err != nil {
		return ball.Complex{}, err
	}
	return verts[len(verts)-1].Values[0], nil
}

// computePol builds, commits and returns the polynomial approximation
// for disk d at the requested precision.
func (f *Function) computePol(d *disk.Disk, prec uint, eps ball.Real) (PolApprox, error) {
	f.polyMisses.Add(1)
	center := point.FromRat(d.Center)
	ini, path := f.pathTo(center, prec)
	rad := d.Radius()
	f.opts.Logger.Debug("computing polynomial approximation",
		"disk", d.String(), "prec", prec, "pathLen", len(path))

	// Vertex vectors are staged during the computation and committed
	// only once the whole approximation has succeeded: a failed run
	// leaves no cache state behind.
	var staged []ancont.VertexValue
	pol, err := approx.OnInterval(f.op, ini, path, eps, &rad,
		approx.WithContinuator(f.opts.Continuator),
		approx.WithSummator(f.opts.Summator),
		approx.WithLogger(f.opts.Logger),
		approx.WithMergeVertex(func(vv ancont.VertexValue) {
			staged = append(staged, vv)
		}))
	if err != nil {
		return PolApprox{}, err
	}
	pa := PolApprox{Pol: pol, Prec: prec}
	f.commit(staged, d.Key(), pa)
	return pa, nil
}

// pathTo picks the continuation path to dest: directly from a cached
// initial vector at dest when one sharp enough exists, from the seed
// otherwise.
func (f *Function) pathTo(dest point.Point, prec uint) ([]ball.Complex, []point.Point) {
	if v, ok := f.inivecs.Get(dest.Key()); ok {
		vals := v.([]ball.Complex)
		if vecAccuracy(vals) >= int(prec) {
			f.iniHits.Add(1)
			return append([]ball.Complex(nil), vals...), []point.Point{dest}
		}
	}
	return append([]ball.Complex(nil), f.seed.Values...), []point.Point{f.seed.Point, dest}
}

// lookupPol returns the cached polynomial for the disk when its stored
// precision covers the request.
func (f *Function) lookupPol(key string, prec uint) (PolApprox, bool) {
	if v, ok := f.polys.Get(key); ok {
		pa := v.(PolApprox)
		if pa.Prec >= prec {
			f.polyHits.Add(1)
			return pa, true
		}
	}
	return PolApprox{}, false
}

// commit is the single write path of both caches.
func (f *Function) commit(staged []ancont.VertexValue, key string, pa PolApprox) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, vv := range staged {
		f.mergeIniLocked(vv)
	}
	if v, ok := f.polys.Get(key); ok && v.(PolApprox).Prec >= pa.Prec {
		// a concurrent query stored a sharper polynomial meanwhile
		return
	}
	f.polys.Set(key, pa, gocache.NoExpiration)
}

// mergeIniLocked keeps the sharper of the stored and incoming vectors
// for a vertex. Callers hold f.mu.
func (f *Function) mergeIniLocked(vv ancont.VertexValue) {
	key := vv.Vertex.Key()
	vals := append([]ball.Complex(nil), vv.Values...)
	if v, ok := f.inivecs.Get(key); ok && vecAccuracy(v.([]ball.Complex)) >= vecAccuracy(vals) {
		return
	}
	f.inivecs.Set(key, vals, gocache.NoExpiration)
}

// vecAccuracy is the certified accuracy of a vector: the worst accuracy
// among its components.
func vecAccuracy(vals []ball.Complex) int {
	acc := ball.MaxAccuracy
	for _, v := range vals {
		if a := v.Accuracy(); a < acc {
			acc = a
		}
	}
	return acc
}

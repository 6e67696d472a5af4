package dfun

import (
	"errors"
	"io"
	"log/slog"

	"github.com/holonomic/dfeval/ancont"
	"github.com/holonomic/dfeval/ball"
	"github.com/holonomic/dfeval/point"
)

// Sentinel errors returned by the cached evaluator.
var (
	// ErrNilOperator indicates a nil operator.
	ErrNilOperator = errors.New("dfun: operator is nil")

	// ErrBadInitialVector indicates a seed vector whose length does not
	// match the operator's order.
	ErrBadInitialVector = errors.New("dfun: initial vector length must equal the operator order")

	// ErrUnsupportedConfiguration indicates a configuration outside the
	// supported shape — currently anything but exactly one seed vector.
	ErrUnsupportedConfiguration = errors.New("dfun: exactly one seed vector is supported")

	// ErrUnboundedPoint indicates that no certified approximation disk
	// contains the point, typically because it is too close to a
	// singularity of the operator.
	ErrUnboundedPoint = errors.New("dfun: no certified disk contains the point")
)

// Seed is a vector of derivative values pinning down one solution:
// Values[k] encloses the k-th derivative at Point.
type Seed struct {
	Point  point.Point
	Values []ball.Complex
}

// Options configures a Function.
//
// Seed        – the point the initial vector refers to. Default 0.
// MaxPrec     – precision ceiling (bits) for cached approximations;
// queries at or above it bypass the caches entirely. Default 256.
// MaxRadius   – user cap on approximation disk radii, combined with the
// growth-analysis cap. Default +∞.
// Continuator / Summator – collaborator backends; default to the
// reference ancont.TaylorMethod.
// Logger      – structured logger; defaults to a discarding logger.
type Options struct {
	Seed        point.Point
	MaxPrec     uint
	MaxRadius   ball.Real
	Continuator ancont.Continuator
	Summator    ancont.Summator
	Logger      *slog.Logger
}

// Option represents a functional option for configuring a Function.
type Option func(*Options)

// WithSeed sets the point the initial vector refers to.
func WithSeed(pt point.Point) Option {
	return func(o *Options) {
		o.Seed = pt
	}
}

// WithMaxPrec sets the precision ceiling for cached approximations.
func WithMaxPrec(prec uint) Option {
	return func(o *Options) {
		if prec > 0 {
			o.MaxPrec = prec
		}
	}
}

// WithMaxRadius caps the radius of approximation disks.
func WithMaxRadius(r ball.Real) Option {
	return func(o *Options) {
		o.MaxRadius = r
	}
}

// WithContinuator swaps the continuation backend.
func WithContinuator(c ancont.Continuator) Option {
	return func(o *Options) {
		o.Continuator = c
	}
}

// WithSummator swaps the summation backend.
func WithSummator(s ancont.Summator) Option {
	return func(o *Options) {
		o.Summator = s
	}
}

// WithLogger attaches a structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns the evaluator defaults.
func DefaultOptions() Options {
	tm := ancont.NewTaylor()
	return Options{
		Seed:        point.FromInt64(0),
		MaxPrec:     256,
		MaxRadius:   ball.RealInf(),
		Continuator: tm,
		Summator:    tm,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Stats is a snapshot of the cache counters, mostly for tests and
// monitoring.
type Stats struct {
	PolyHits    uint64 // evaluations served from a cached polynomial
	PolyMisses  uint64 // evaluations that had to build a polynomial
	IniHits     uint64 // paths shortened by a cached initial vector
	DirectEvals uint64 // cache bypasses (high precision or complex point)
}

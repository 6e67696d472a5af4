package ancont

import (
	"errors"
	"io"
	"log/slog"

	"github.com/holonomic/dfeval/ball"
	"github.com/holonomic/dfeval/dop"
	"github.com/holonomic/dfeval/point"
	"github.com/holonomic/dfeval/poly"
)

// Sentinel errors returned by the analytic continuation engine.
var (
	// ErrNilOperator indicates a nil operator.
	ErrNilOperator = errors.New("ancont: operator is nil")

	// ErrBadInitialVector indicates an initial vector whose length does not
	// match the operator's order.
	ErrBadInitialVector = errors.New("ancont: initial vector length must equal the operator order")

	// ErrEmptyPath indicates a continuation path with no vertices.
	ErrEmptyPath = errors.New("ancont: path is empty")

	// ErrInexactPoint indicates that an expansion point that must be exact
	// (a path vertex before the last, or a Sum center) is a ball.
	ErrInexactPoint = errors.New("ancont: expansion point must be exact")

	// ErrSingularPath indicates that the path cannot be followed: a vertex
	// or step lands where the leading coefficient may vanish, or step
	// planning stalls against a singularity.
	ErrSingularPath = errors.New("ancont: path passes too close to a singular point")

	// ErrNoConvergence indicates that the series term cap was reached
	// before the tail bound dropped below the requested accuracy.
	ErrNoConvergence = errors.New("ancont: series did not converge within the term limit")
)

// VertexValue is the certified solution vector at one path vertex:
// Values[k] encloses the k-th derivative of the solution there.
type VertexValue struct {
	Vertex point.Point
	Values []ball.Complex
}

// Continuator transports an initial vector along a path. The input
// ini[k] is the k-th derivative of the solution at path[0]; the result
// holds one certified vector per path vertex, in path order. Every
// vertex but the last must be exact. Implementations must fail with
// ErrSingularPath rather than silently widen near singularities.
type Continuator interface {
	Continue(op *dop.Operator, ini []ball.Complex, path []point.Point, eps ball.Real) ([]VertexValue, error)
}

// Summator produces truncated local series at an exact expansion point:
// one polynomial in the local variable x - at per derivative order
// 0, …, derivatives, each valid on |x - at| ≤ rad with truncation error
// within eps (folded into the constant coefficient's radius).
// The input ini[k] is the k-th derivative of the solution at the point.
type Summator interface {
	Sum(op *dop.Operator, at point.Point, ini []ball.Complex, eps, rad ball.Real, derivatives int) ([]poly.Poly, error)
}

// Options configures a TaylorMethod.
//
// StepCap  – upper bound on continuation step lengths, independent of the
// distance to singularities. Default 1: inside the unit step the terms of
// an ordinary-point expansion decay fast enough to observe.
// MaxTerms – series term cap before ErrNoConvergence. Default 8192.
// MaxSteps – per-leg step cap before ErrSingularPath. Default 1024.
// Logger   – structured logger; defaults to a discarding logger.
type Options struct {
	StepCap  ball.Real
	MaxTerms int
	MaxSteps int
	Logger   *slog.Logger
}

// Option represents a functional option for configuring a TaylorMethod.
type Option func(*Options)

// WithStepCap caps the length of individual continuation steps.
func WithStepCap(r ball.Real) Option {
	return func(o *Options) {
		o.StepCap = r
	}
}

// WithMaxTerms sets the series term cap.
func WithMaxTerms(n int) Option {
	return func(o *Options) {
		o.MaxTerms = n
	}
}

// WithMaxSteps sets the per-leg step cap.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		o.MaxSteps = n
	}
}

// WithLogger attaches a structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns the TaylorMethod defaults.
func DefaultOptions() Options {
	return Options{
		StepCap:  ball.RealOne(),
		MaxTerms: 8192,
		MaxSteps: 1024,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

package disk

import (
	"errors"
	"io"
	"log/slog"

	"github.com/holonomic/dfeval/ball"
)

// Sentinel errors returned by the disk locator.
var (
	// ErrNilOperator indicates that a nil operator was passed to New.
	ErrNilOperator = errors.New("disk: operator is nil")

	// ErrComplexPoint indicates that Locate was called with a point that is
	// not certifiably real; the canonical packing covers the real line only.
	ErrComplexPoint = errors.New("disk: point is not real")

	// ErrNoDisk indicates that no disk of the canonical packing provably
	// contains the point: the point is too close to a singularity, too
	// thick, or the refinement limit was reached.
	ErrNoDisk = errors.New("disk: no valid disk contains the point")

	// ErrBadWorkPrec indicates a zero working precision passed to
	// WithWorkPrec.
	ErrBadWorkPrec = errors.New("disk: working precision must be positive")
)

// Options configures a Locator.
//
// MaxRadius – upper bound on disk radii, combined with the distance to the
// nearest singularity. Default is +∞ (singularities alone limit the radii).
// WorkPrec  – base midpoint precision for distance certificates.
// Logger    – structured logger for candidate tracing; defaults to a
// discarding logger.
type Options struct {
	MaxRadius ball.Real
	WorkPrec  uint
	Logger    *slog.Logger
}

// Option represents a functional option for configuring a Locator.
type Option func(*Options)

// WithMaxRadius caps the radius of every disk the locator returns.
// Callers typically pass the growth-analysis cap here.
func WithMaxRadius(r ball.Real) Option {
	return func(o *Options) {
		o.MaxRadius = r
	}
}

// WithWorkPrec sets the base precision (in bits) used for distance
// certificates. Must be positive; zero causes ErrBadWorkPrec.
func WithWorkPrec(prec uint) Option {
	return func(o *Options) {
		if prec == 0 {
			panic(ErrBadWorkPrec.Error())
		}
		o.WorkPrec = prec
	}
}

// WithLogger attaches a structured logger to the locator.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns the locator defaults: no radius cap beyond the
// operator's singularities, 64-bit certificates, discarding logger.
func DefaultOptions() Options {
	return Options{
		MaxRadius: ball.RealInf(),
		WorkPrec:  64,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

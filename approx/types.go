package approx

import (
	"errors"
	"io"
	"log/slog"

	"github.com/holonomic/dfeval/ancont"
)

// Sentinel errors returned by the orchestrator.
var (
	// ErrNilOperator indicates a nil operator.
	ErrNilOperator = errors.New("approx: operator is nil")

	// ErrEmptyPath indicates a path with no vertices.
	ErrEmptyPath = errors.New("approx: path is empty")

	// ErrUnknownKind indicates a Kind value outside the enum.
	ErrUnknownKind = errors.New("approx: unknown approximation kind")

	// ErrMissingDomainParameter indicates that OnInterval was called
	// without a radius and the last path element is not an interval
	// descriptor (a thick real point) either.
	ErrMissingDomainParameter = errors.New("approx: missing radius or interval descriptor")
)

// Kind selects the validity domain of the approximation and, with it,
// the economization variant.
type Kind int

const (
	// OnDiskKind targets a complex disk around the expansion point
	// (Taylor economization).
	OnDiskKind Kind = iota

	// OnIntervalKind targets a real interval around the expansion point
	// (Chebyshev economization).
	OnIntervalKind
)

// String implements fmt.Stringer for logs.
func (k Kind) String() string {
	switch k {
	case OnDiskKind:
		return "disk"
	case OnIntervalKind:
		return "interval"
	default:
		return "unknown"
	}
}

// Options configures a computation.
//
// Continuator / Summator – the collaborators to orchestrate; default to
// the reference ancont.TaylorMethod.
// Derivatives – highest derivative order to approximate; the result has
// Derivatives+1 polynomials. Default 0 (the function only).
// MergeVertex – called once per path vertex with the certified vector
// computed there; the single place where callers may harvest
// intermediate values (for caching, say). May be nil.
// Logger – structured logger; defaults to a discarding logger.
type Options struct {
	Continuator ancont.Continuator
	Summator    ancont.Summator
	Derivatives int
	MergeVertex func(ancont.VertexValue)
	Logger      *slog.Logger
}

// Option represents a functional option for configuring a computation.
type Option func(*Options)

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

// WithDerivatives requests approximations of the first n derivatives
// alongside the function.
func WithDerivatives(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.Derivatives = n
	}
}

// WithMergeVertex installs the per-vertex harvest hook.
func WithMergeVertex(fn func(ancont.VertexValue)) Option {
	return func(o *Options) {
		o.MergeVertex = fn
	}
}

// WithLogger attaches a structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns the orchestrator defaults.
func DefaultOptions() Options {
	tm := ancont.NewTaylor()
	return Options{
		Continuator: tm,
		Summator:    tm,
		Derivatives: 0,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

package point

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/spf13/cast"

	"github.com/holonomic/dfeval/ball"
)

// ErrUnsupportedPointRepresentation indicates that a value handed to
// FromAny (or a path element) is neither a plain point nor a two-point
// interval descriptor.
var ErrUnsupportedPointRepresentation = errors.New("point: unsupported point representation")

// Kind tags the four point variants.
type Kind uint8

const (
	// ExactReal is a rational point on the real line.
	ExactReal Kind = iota

	// ExactComplex is a Gaussian-rational point.
	ExactComplex

	// BallReal is a real interval point with nonzero radius.
	BallReal

	// BallComplex is a complex interval point.
	BallComplex
)

// Point is an immutable location on the real or complex line.
// The zero value is the exact real point 0.
type Point struct {
	kind Kind

	// Exact coordinates (ExactReal, ExactComplex).
	re, im *big.Rat

	// Interval coordinates (BallReal, BallComplex).
	bre, bim ball.Real

	// prec is the native precision of interval points, in bits.
	prec uint
}

// ---------- constructors ----------

// FromRat returns the exact real point q.
func FromRat(q *big.Rat) Point {
	return Point{kind: ExactReal, re: new(big.Rat).Set(q)}
}

// FromRats returns the exact complex point re + im·i; a zero imaginary
// part degrades to an exact real point.
func FromRats(re, im *big.Rat) Point {
	if im.Sign() == 0 {
		return FromRat(re)
	}
	return Point{kind: ExactComplex, re: new(big.Rat).Set(re), im: new(big.Rat).Set(im)}
}

// FromInt64 returns the exact real point n.
func FromInt64(n int64) Point { return FromRat(new(big.Rat).SetInt64(n)) }

// FromFloat64 returns the exact real point f (finite float64 values are
// dyadic rationals). Non-finite inputs degrade to 0.
func FromFloat64(f float64) Point {
	q := new(big.Rat)
	if q.SetFloat64(f) == nil {
		q = new(big.Rat)
	}
	return Point{kind: ExactReal, re: q}
}

// FromBall returns a real interval point. An exact ball (radius zero)
// with a dyadic midpoint stays a BallReal point; exactness is tracked by
// the radius, not the kind.
func FromBall(x ball.Real, prec uint) Point {
	if prec == 0 {
		prec = x.Prec()
	}
	return Point{kind: BallReal, bre: x, prec: prec}
}

// FromComplexBall returns a complex interval point; a ball with exactly
// zero imaginary part degrades to a real interval point.
func FromComplexBall(z ball.Complex, prec uint) Point {
	if z.HasZeroImag() {
		return FromBall(z.Real(), prec)
	}
	if prec == 0 {
		prec = z.Real().Prec()
	}
	return Point{kind: BallComplex, bre: z.Real(), bim: z.Imag(), prec: prec}
}

// FromEndpoints returns the two-point interval descriptor [lo, hi] as a
// real interval point centered at the midpoint.
func FromEndpoints(lo, hi *big.Rat) (Point, error) {
	if lo.Cmp(hi) > 0 {
		return Point{}, fmt.Errorf("%w: descriptor endpoints out of order", ErrUnsupportedPointRepresentation)
	}
	two := big.NewRat(2, 1)
	mid := new(big.Rat).Add(lo, hi)
	mid.Quo(mid, two)
	rad := new(big.Rat).Sub(hi, lo)
	rad.Quo(rad, two)
	prec := uint(ball.DefaultPrec)
	b := ball.RealFromRat(mid, prec).AddError(ball.RealFromRat(rad, prec))
	return Point{kind: BallReal, bre: b, prec: prec}, nil
}

// FromAny coerces a plain Go value into a point: Point itself, *big.Rat,
// integer and float types, and decimal or rational strings ("1.25",
// "22/7"). Anything else fails with ErrUnsupportedPointRepresentation.
func FromAny(v any) (Point, error) {
	switch x := v.(type) {
	case Point:
		return x, nil
	case *big.Rat:
		return FromRat(x), nil
	case ball.Real:
		return FromBall(x, 0), nil
	case ball.Complex:
		return FromComplexBall(x, 0), nil
	case string:
		if q, ok := new(big.Rat).SetString(x); ok {
			return FromRat(q), nil
		}
		return Point{}, fmt.Errorf("%w: cannot parse %q", ErrUnsupportedPointRepresentation, x)
	}
	if n, err := cast.ToInt64E(v); err == nil {
		return FromInt64(n), nil
	}
	if f, err := cast.ToFloat64E(v); err == nil {
		return FromFloat64(f), nil
	}
	return Point{}, fmt.Errorf("%w: %T", ErrUnsupportedPointRepresentation, v)
}

// ---------- queries ----------

// Kind returns the variant tag.
func (p Point) Kind() Kind { return p.kind }

// IsExact reports whether the point carries no uncertainty.
func (p Point) IsExact() bool {
	switch p.kind {
	case ExactReal, ExactComplex:
		return true
	case BallReal:
		return p.bre.IsExact()
	default:
		return p.bre.IsExact() && p.bim.IsExact()
	}
}

// IsReal reports whether the point lies exactly on the real line.
func (p Point) IsReal() bool {
	return p.kind == ExactReal || p.kind == BallReal
}

// Rat returns the exact rational coordinate of an exact real point and
// whether the point is one.
func (p Point) Rat() (*big.Rat, bool) {
	if p.kind != ExactReal {
		return nil, false
	}
	return new(big.Rat).Set(p.re), true
}

// Rats returns the exact rational coordinates of an exact point
// (imaginary part zero for ExactReal) and whether the point is exact
// rational at all.
func (p Point) Rats() (re, im *big.Rat, ok bool) {
	switch p.kind {
	case ExactReal:
		return new(big.Rat).Set(p.re), new(big.Rat), true
	case ExactComplex:
		return new(big.Rat).Set(p.re), new(big.Rat).Set(p.im), true
	default:
		return nil, nil, false
	}
}

// NativePrec returns the precision the point was constructed at, or 0
// for exact points (callers substitute their default).
func (p Point) NativePrec() uint {
	if p.kind == ExactReal || p.kind == ExactComplex {
		return 0
	}
	return p.prec
}

// Radius returns an upper bound on the point's uncertainty radius.
func (p Point) Radius() ball.Real {
	switch p.kind {
	case ExactReal, ExactComplex:
		return ball.RealZero()
	case BallReal:
		return ball.RealFromMidRad(new(big.Float), p.bre.Rad())
	default:
		re := ball.RealFromMidRad(new(big.Float), p.bre.Rad())
		im := ball.RealFromMidRad(new(big.Float), p.bim.Rad())
		return re.Mul(re).Add(im.Mul(im)).Sqrt()
	}
}

// RealBall returns an enclosure of the point's real part at midpoint
// precision prec.
func (p Point) RealBall(prec uint) ball.Real {
	switch p.kind {
	case ExactReal, ExactComplex:
		return ball.RealFromRat(p.re, prec)
	default:
		return p.bre.Round(prec)
	}
}

// ComplexBall returns an enclosure of the point at midpoint precision
// prec.
func (p Point) ComplexBall(prec uint) ball.Complex {
	switch p.kind {
	case ExactReal:
		return ball.ComplexFromReal(ball.RealFromRat(p.re, prec))
	case ExactComplex:
		return ball.ComplexFromRats(p.re, p.im, prec)
	case BallReal:
		return ball.ComplexFromReal(p.bre.Round(prec))
	default:
		return ball.NewComplex(p.bre.Round(prec), p.bim.Round(prec))
	}
}

// Key returns a stable identity string for cache keying: equal points
// yield equal keys, and exact points of equal value share one key.
func (p Point) Key() string {
	switch p.kind {
	case ExactReal:
		return "q:" + p.re.RatString()
	case ExactComplex:
		return "q:" + p.re.RatString() + "," + p.im.RatString()
	case BallReal:
		return "b:" + p.bre.Mid().Text('p', 0) + "±" + p.bre.Rad().Text('p', 0)
	default:
		return "b:" + p.bre.Mid().Text('p', 0) + "±" + p.bre.Rad().Text('p', 0) +
			"," + p.bim.Mid().Text('p', 0) + "±" + p.bim.Rad().Text('p', 0)
	}
}

// String renders the point for logs.
func (p Point) String() string {
	switch p.kind {
	case ExactReal:
		return p.re.RatString()
	case ExactComplex:
		return p.re.RatString() + " + " + p.im.RatString() + "·i"
	case BallReal:
		return p.bre.String()
	default:
		return ball.NewComplex(p.bre, p.bim).String()
	}
}

package disk

import (
	"math/big"
	"strconv"

	"github.com/holonomic/dfeval/ball"
	"github.com/holonomic/dfeval/dop"
	"github.com/holonomic/dfeval/point"
)

// maxRefinements bounds the number of radius halvings Locate attempts
// before giving up with ErrNoDisk.
const maxRefinements = 128

// Disk is a closed disk of the canonical packing: radius 2^Expo, center
// an odd multiple of the radius. The packing makes disks of one radius
// pairwise disjoint in their interiors and gives every real point a
// deterministic home, so Center doubles as a cache key.
type Disk struct {
	Center *big.Rat
	Expo   int
}

// Radius returns the disk radius 2^Expo as an exact ball.
func (d *Disk) Radius() ball.Real { return ball.Pow2(d.Expo) }

// Key returns the cache key for the disk. Within the packing the center
// determines the radius (Expo is the 2-adic valuation of the center), so
// the center alone identifies the disk.
func (d *Disk) Key() string { return d.Center.RatString() }

// ContainsRat reports whether the rational q lies in the closed disk.
// The comparison is exact.
func (d *Disk) ContainsRat(q *big.Rat) bool {
	diff := new(big.Rat).Sub(q, d.Center)
	return diff.Abs(diff).Cmp(pow2Rat(d.Expo)) <= 0
}

// String renders the disk for logs and test failures.
func (d *Disk) String() string {
	return "D(" + d.Center.RatString() + ", 2^" + strconv.Itoa(d.Expo) + ")"
}

// Locator selects disks of the canonical packing for one operator.
// A Locator is safe for concurrent use: Locate keeps no mutable state.
type Locator struct {
	op   *dop.Operator
	opts Options
}

// New builds a Locator for op. Radius caps, certificate precision and
// logging are set through functional options.
func New(op *dop.Operator, opts ...Option) (*Locator, error) {
	if op == nil {
		return nil, ErrNilOperator
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return &Locator{op: op, opts: o}, nil
}

// Locate returns the largest disk of the canonical packing that provably
// contains pt and keeps twice its radius within the center's distance to
// the nearest singularity. The result depends only on pt and the locator
// configuration, never on call history.
func (l *Locator) Locate(pt point.Point) (*Disk, error) {
	if !pt.IsReal() {
		return nil, ErrComplexPoint
	}
	// Any acceptable disk containing pt has rad ≤ dist(pt, sing): the
	// margin condition 2·rad ≤ dist(center, sing) forces it. Start the
	// search from that bound.
	maxRad := l.op.DistToSing(pt).Min(l.opts.MaxRadius)
	// Anchor the first candidate radius on the certified part of the
	// bound: a cap enclosure hanging just over a power of two must not
	// bump the search one level up.
	lower := ball.RealFromMidRad(maxRad.LowerBound(), new(big.Float))
	expo, ok := lower.Log2UpperCeil()
	if !ok {
		return nil, ErrNoDisk
	}
	l.opts.Logger.Debug("disk search", "pt", pt.String(), "maxRad", maxRad.String(), "expo", expo)

	for i := 0; i < maxRefinements; i++ {
		center := l.candidate(pt, expo)
		dist := l.op.DistToSing(point.FromRat(center))
		l.opts.Logger.Debug("candidate disk",
			"center", center.RatString(), "expo", expo, "dist", dist.String())
		if !ball.SafeGe(dist.MulPow2(-1), ball.Pow2(expo)) {
			expo--
			continue
		}
		// pt may be a ball with nonzero radius: it must provably fit in
		// the candidate before the disk is usable.
		if !l.contains(pt, center, expo) {
			return nil, ErrNoDisk
		}
		d := &Disk{Center: center, Expo: expo}
		l.opts.Logger.Debug("disk found", "disk", d.String())
		return d, nil
	}
	return nil, ErrNoDisk
}

// candidate rounds pt's midpoint to the nearest odd multiple of 2^expo
// below it, the canonical center at that radius.
func (l *Locator) candidate(pt point.Point, expo int) *big.Rat {
	mid := pt.RealBall(l.certBits(pt, expo)).Mid()
	scaled := new(big.Float).SetMantExp(mid, -expo)
	mantissa, acc := scaled.Int(nil)
	if acc == big.Above {
		// Int truncates toward zero; shift negatives down to the floor.
		mantissa.Sub(mantissa, big.NewInt(1))
	}
	if mantissa.Bit(0) == 0 {
		mantissa.Add(mantissa, big.NewInt(1))
	}
	center := new(big.Rat)
	if expo >= 0 {
		center.SetInt(new(big.Int).Lsh(mantissa, uint(expo)))
	} else {
		center.SetFrac(mantissa, new(big.Int).Lsh(big.NewInt(1), uint(-expo)))
	}
	return center
}

// contains certifies |pt − center| ≤ 2^expo, exactly for rational points
// and by conservative ball comparison otherwise.
func (l *Locator) contains(pt point.Point, center *big.Rat, expo int) bool {
	if q, ok := pt.Rat(); ok {
		d := Disk{Center: center, Expo: expo}
		return d.ContainsRat(q)
	}
	prec := l.certBits(pt, expo)
	dist := pt.RealBall(prec).Sub(ball.RealFromRat(center, prec)).Abs()
	return ball.SafeLe(dist, ball.Pow2(expo))
}

// certBits returns the certificate precision for pt at radius 2^expo:
// the configured base plus enough guard bits to resolve 2^expo at pt's
// magnitude.
func (l *Locator) certBits(pt point.Point, expo int) uint {
	prec := l.opts.WorkPrec
	mid := pt.RealBall(prec).Mid()
	if mid.Sign() != 0 {
		if e := mid.MantExp(nil); e > expo {
			prec += uint(e - expo)
		}
	}
	return prec + 16
}

func pow2Rat(e int) *big.Rat {
	one := big.NewInt(1)
	if e >= 0 {
		return new(big.Rat).SetInt(new(big.Int).Lsh(one, uint(e)))
	}
	return new(big.Rat).SetFrac(one, new(big.Int).Lsh(one, uint(-e)))
}

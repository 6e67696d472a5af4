package ball

import (
	"fmt"
	"math/big"
)

const (
	// radPrec is the precision of radius computations. Radii are bounds,
	// not values; 32 bits with upward rounding is ample.
	radPrec = 32

	// DefaultPrec is the midpoint precision used when no other precision
	// can be inferred from the operands.
	DefaultPrec = 53

	// MaxAccuracy is the accuracy reported for exact balls (radius zero).
	MaxAccuracy = 1 << 30
)

// Real is a real ball: the set of real numbers within rad of mid.
// The zero value is the exact number 0. Real values are immutable;
// all methods return fresh balls and never mutate their receiver.
type Real struct {
	mid *big.Float
	rad *big.Float
}

// ---------- internal helpers ----------

// newMid returns a zero-valued midpoint accumulator at precision p
// (round-to-nearest-even, the big.Float default).
func newMid(p uint) *big.Float {
	return new(big.Float).SetPrec(p)
}

// newRad returns a zero-valued radius accumulator: low precision, rounded
// toward +∞ so that every radius computation is an upper bound.
func newRad() *big.Float {
	return new(big.Float).SetPrec(radPrec).SetMode(big.ToPositiveInf)
}

// zeroFloat is a shared exact zero; big.Float values are never mutated
// through it.
var zeroFloat = new(big.Float)

func (a Real) midOrZero() *big.Float {
	if a.mid == nil {
		return zeroFloat
	}
	return a.mid
}

func (a Real) radOrZero() *big.Float {
	if a.rad == nil {
		return zeroFloat
	}
	return a.rad
}

func maxPrec(a, b Real) uint {
	p := a.midOrZero().Prec()
	if q := b.midOrZero().Prec(); q > p {
		p = q
	}
	if p == 0 {
		p = DefaultPrec
	}
	return p
}

// ulp returns an upper bound on the rounding error committed when x was
// produced at its own precision: one unit in the last place of x.
// Exact zeros and infinities carry no rounding error.
func ulp(x *big.Float) *big.Float {
	if x.Sign() == 0 || x.IsInf() {
		return new(big.Float)
	}
	exp := x.MantExp(nil)
	u := newRad()
	return u.SetMantExp(big.NewFloat(1), exp-int(x.Prec()))
}

// upAbs returns an upper bound on |x| at radius precision.
func upAbs(x *big.Float) *big.Float {
	return newRad().Abs(x)
}

// ---------- constructors ----------

// RealZero returns the exact ball 0.
func RealZero() Real { return Real{} }

// RealOne returns the exact ball 1.
func RealOne() Real { return RealFromFloat64(1) }

// RealInf returns the exact ball +∞.
func RealInf() Real {
	return Real{mid: new(big.Float).SetInf(false), rad: new(big.Float)}
}

// Indeterminate returns the full-line ball ⟨0 ± ∞⟩, the result of
// operations whose range cannot be bounded.
func Indeterminate() Real {
	return Real{mid: new(big.Float), rad: new(big.Float).SetInf(false)}
}

// RealFromFloat64 returns the exact ball with midpoint f (every float64 is
// exactly representable).
func RealFromFloat64(f float64) Real {
	return Real{mid: big.NewFloat(f), rad: new(big.Float)}
}

// RealFromInt64 returns the exact ball with midpoint n.
func RealFromInt64(n int64) Real {
	return Real{mid: newMid(64).SetInt64(n), rad: new(big.Float)}
}

// RealFromRat returns a ball enclosing the rational q at midpoint
// precision prec; the radius is zero when q is exactly representable and
// one ulp otherwise.
func RealFromRat(q *big.Rat, prec uint) Real {
	if prec == 0 {
		prec = DefaultPrec
	}
	mid := newMid(prec).SetRat(q)
	rad := new(big.Float)
	if mid.Acc() != big.Exact {
		rad = ulp(mid)
	}
	return Real{mid: mid, rad: rad}
}

// RealFromEndpoints returns a ball enclosing the interval [lo, hi].
// It does not require lo ≤ hi to be provable in advance; the enclosure is
// taken over both orderings' span.
func RealFromEndpoints(lo, hi *big.Float) Real {
	p := lo.Prec()
	if q := hi.Prec(); q > p {
		p = q
	}
	if p == 0 {
		p = DefaultPrec
	}
	if lo.IsInf() || hi.IsInf() {
		return Indeterminate()
	}
	mid := newMid(p).Add(lo, hi)
	mid.Quo(mid, big.NewFloat(2))
	half := newRad().Sub(hi, lo)
	half.Abs(half)
	half.Quo(half, big.NewFloat(2))
	rad := newRad().Add(half, ulp(mid))
	rad.Add(rad, ulp(mid)) // midpoint rounding counted on both sides
	return Real{mid: mid, rad: rad}
}

// RealFromMidRad returns the ball ⟨mid ± rad⟩. Negative rad is rejected
// by taking its absolute value.
func RealFromMidRad(mid, rad *big.Float) Real {
	m := new(big.Float).Copy(mid)
	r := newRad().Abs(rad)
	return Real{mid: m, rad: r}
}

// Pow2 returns the exact ball 2^e.
func Pow2(e int) Real {
	return Real{
		mid: new(big.Float).SetMantExp(big.NewFloat(1), e),
		rad: new(big.Float),
	}
}

// ---------- queries ----------

// IsExact reports whether the ball has radius zero.
func (a Real) IsExact() bool { return a.radOrZero().Sign() == 0 }

// IsFinite reports whether both midpoint and radius are finite.
func (a Real) IsFinite() bool {
	return !a.midOrZero().IsInf() && !a.radOrZero().IsInf()
}

// ContainsZero reports whether 0 may lie in the ball.
func (a Real) ContainsZero() bool {
	if a.radOrZero().IsInf() {
		return true
	}
	return upAbs(a.midOrZero()).Cmp(a.radOrZero()) <= 0
}

// Sign reports the provable sign of the ball: +1 if every member is
// positive, -1 if every member is negative, 0 otherwise.
func (a Real) Sign() int {
	if a.ContainsZero() {
		return 0
	}
	return a.midOrZero().Sign()
}

// Prec returns the midpoint precision in bits.
func (a Real) Prec() uint {
	p := a.midOrZero().Prec()
	if p == 0 {
		p = DefaultPrec
	}
	return p
}

// LowerBound returns a lower bound on every member of the ball.
func (a Real) LowerBound() *big.Float {
	l := new(big.Float).SetPrec(a.Prec() + radPrec).SetMode(big.ToNegativeInf)
	return l.Sub(a.midOrZero(), a.radOrZero())
}

// UpperBound returns an upper bound on every member of the ball.
func (a Real) UpperBound() *big.Float {
	u := new(big.Float).SetPrec(a.Prec() + radPrec).SetMode(big.ToPositiveInf)
	return u.Add(a.midOrZero(), a.radOrZero())
}

// Mid returns a copy of the midpoint.
func (a Real) Mid() *big.Float { return new(big.Float).Copy(a.midOrZero()) }

// Rad returns a copy of the radius.
func (a Real) Rad() *big.Float { return new(big.Float).Copy(a.radOrZero()) }

// Float64 returns the midpoint rounded to float64.
func (a Real) Float64() float64 {
	f, _ := a.midOrZero().Float64()
	return f
}

// Accuracy returns the number of certified relative bits: roughly
// log2(|mid|/rad). Exact balls report MaxAccuracy, indeterminate ones 0.
func (a Real) Accuracy() int {
	mid, rad := a.midOrZero(), a.radOrZero()
	if rad.Sign() == 0 {
		return MaxAccuracy
	}
	if rad.IsInf() || mid.IsInf() {
		return 0
	}
	radExp := rad.MantExp(nil)
	if mid.Sign() == 0 {
		if radExp >= 0 {
			return 0
		}
		return -radExp
	}
	acc := mid.MantExp(nil) - radExp
	if acc < 0 {
		return 0
	}
	return acc
}

// Log2UpperCeil returns the smallest integer e with 2^e ≥ UpperBound().
// ok is false for nonpositive or infinite upper bounds.
func (a Real) Log2UpperCeil() (e int, ok bool) {
	up := a.UpperBound()
	if up.Sign() <= 0 || up.IsInf() {
		return 0, false
	}
	var mant big.Float
	exp := up.MantExp(&mant)
	// up = mant·2^exp with mant ∈ [0.5, 1); 2^exp ≥ up, and the bound is
	// one off exactly when up is itself a power of two.
	if mant.Cmp(big.NewFloat(0.5)) == 0 {
		return exp - 1, true
	}
	return exp, true
}

// String renders the ball as "[mid ± rad]" for logs and test failures.
func (a Real) String() string {
	return fmt.Sprintf("[%s ± %s]", a.midOrZero().Text('g', 12), a.radOrZero().Text('g', 3))
}

// ---------- arithmetic ----------

// Round returns the ball re-rounded to midpoint precision prec, widening
// the radius by the committed rounding error. A midpoint that fits prec
// exactly keeps its radius unchanged.
func (a Real) Round(prec uint) Real {
	if prec == 0 {
		prec = DefaultPrec
	}
	mid := newMid(prec).Set(a.midOrZero())
	rad := new(big.Float).Copy(a.radOrZero())
	if mid.Acc() != big.Exact {
		rad = newRad().Add(a.radOrZero(), ulp(mid))
	}
	return Real{mid: mid, rad: rad}
}

// Neg returns -a.
func (a Real) Neg() Real {
	return Real{
		mid: new(big.Float).Neg(a.midOrZero()),
		rad: new(big.Float).Copy(a.radOrZero()),
	}
}

// Add returns an enclosure of a + b.
func (a Real) Add(b Real) Real {
	am, bm := a.midOrZero(), b.midOrZero()
	if a.radOrZero().IsInf() || b.radOrZero().IsInf() {
		return Indeterminate()
	}
	if am.IsInf() || bm.IsInf() {
		if am.IsInf() && bm.IsInf() && am.Signbit() != bm.Signbit() {
			return Indeterminate() // ∞ − ∞
		}
		inf := am
		if !inf.IsInf() {
			inf = bm
		}
		return Real{mid: new(big.Float).Copy(inf), rad: new(big.Float)}
	}
	mid := newMid(maxPrec(a, b)).Add(am, bm)
	rad := newRad().Add(a.radOrZero(), b.radOrZero())
	rad.Add(rad, ulp(mid))
	return Real{mid: mid, rad: rad}
}

// Sub returns an enclosure of a - b.
func (a Real) Sub(b Real) Real { return a.Add(b.Neg()) }

// Mul returns an enclosure of a · b.
func (a Real) Mul(b Real) Real {
	am, bm := a.midOrZero(), b.midOrZero()
	if a.radOrZero().IsInf() || b.radOrZero().IsInf() {
		return Indeterminate()
	}
	if am.IsInf() || bm.IsInf() {
		// ∞ · x is only well defined for provably nonzero exact-signed x.
		fin, inf := a, b
		if am.IsInf() {
			fin, inf = b, a
		}
		s := fin.Sign()
		if s == 0 {
			return Indeterminate()
		}
		out := new(big.Float).SetInf(inf.midOrZero().Signbit() != (s < 0))
		return Real{mid: out, rad: new(big.Float)}
	}
	mid := newMid(maxPrec(a, b)).Mul(am, bm)
	rad := newRad().Mul(upAbs(am), b.radOrZero())
	t := newRad().Mul(upAbs(bm), a.radOrZero())
	rad.Add(rad, t)
	t = newRad().Mul(a.radOrZero(), b.radOrZero())
	rad.Add(rad, t)
	rad.Add(rad, ulp(mid))
	return Real{mid: mid, rad: rad}
}

// Div returns an enclosure of a / b. If b may contain zero (or either
// operand is not finite) the result is Indeterminate.
func (a Real) Div(b Real) Real {
	if !a.IsFinite() || !b.IsFinite() || b.ContainsZero() {
		return Indeterminate()
	}
	am, bm := a.midOrZero(), b.midOrZero()
	mid := newMid(maxPrec(a, b)).Quo(am, bm)
	// |a/b − â/b̂| ≤ (rad_a + |â/b̂|·rad_b) / (|b̂| − rad_b)
	den := new(big.Float).SetPrec(radPrec).SetMode(big.ToNegativeInf)
	den.Abs(bm)
	den.Sub(den, b.radOrZero())
	num := newRad().Mul(upAbs(mid), b.radOrZero())
	num.Add(num, a.radOrZero())
	rad := newRad().Quo(num, den)
	rad.Add(rad, ulp(mid))
	return Real{mid: mid, rad: rad}
}

// MulPow2 returns the exact scaling a · 2^e.
func (a Real) MulPow2(e int) Real {
	shift := func(x *big.Float) *big.Float {
		if x.Sign() == 0 || x.IsInf() {
			return new(big.Float).Copy(x)
		}
		var mant big.Float
		mant.SetPrec(x.Prec())
		exp := x.MantExp(&mant)
		return new(big.Float).SetPrec(x.Prec()).SetMantExp(&mant, exp+e)
	}
	return Real{mid: shift(a.midOrZero()), rad: shift(a.radOrZero())}
}

// Abs returns an enclosure of |a|.
func (a Real) Abs() Real {
	if !a.IsFinite() {
		if a.radOrZero().IsInf() {
			return Indeterminate()
		}
		return RealInf()
	}
	if !a.ContainsZero() {
		return Real{
			mid: new(big.Float).Abs(a.midOrZero()),
			rad: new(big.Float).Copy(a.radOrZero()),
		}
	}
	// Straddles zero: |a| ⊆ [0, max(|lo|, |hi|)].
	hi := upAbs(a.LowerBound())
	if u := upAbs(a.UpperBound()); u.Cmp(hi) > 0 {
		hi = u
	}
	return RealFromEndpoints(new(big.Float), hi)
}

// Sqrt returns an enclosure of the square root, clamping the lower
// endpoint at zero. A provably negative ball yields Indeterminate.
func (a Real) Sqrt() Real {
	if !a.IsFinite() {
		if a.radOrZero().IsInf() {
			return Indeterminate()
		}
		return RealInf()
	}
	up := a.UpperBound()
	if up.Sign() < 0 {
		return Indeterminate()
	}
	lo := a.LowerBound()
	if lo.Sign() < 0 {
		lo = new(big.Float)
	}
	p := a.Prec() + radPrec
	sLo := new(big.Float).SetPrec(p).SetMode(big.ToNegativeInf)
	sLo.Sqrt(lo)
	sHi := new(big.Float).SetPrec(p).SetMode(big.ToPositiveInf)
	sHi.Sqrt(up)
	return RealFromEndpoints(sLo, sHi)
}

// Min returns an enclosure of min(a, b), taken endpoint-wise.
func (a Real) Min(b Real) Real {
	if a.radOrZero().IsInf() || b.radOrZero().IsInf() {
		return Indeterminate()
	}
	lo := a.LowerBound()
	if bl := b.LowerBound(); bl.Cmp(lo) < 0 {
		lo = bl
	}
	hi := a.UpperBound()
	if bu := b.UpperBound(); bu.Cmp(hi) < 0 {
		hi = bu
	}
	if lo.IsInf() || hi.IsInf() {
		if hi.IsInf() && !hi.Signbit() && lo.IsInf() && !lo.Signbit() {
			return RealInf() // min(+∞, +∞)
		}
		return Indeterminate()
	}
	return RealFromEndpoints(lo, hi)
}

// Max returns an enclosure of max(a, b), taken endpoint-wise.
func (a Real) Max(b Real) Real {
	return a.Neg().Min(b.Neg()).Neg()
}

// AddError widens the radius by an upper bound on delta, enclosing every
// number within |delta| of the current ball. Used to fold truncation
// bounds into a result.
func (a Real) AddError(delta Real) Real {
	d := delta.Abs().UpperBound()
	rad := newRad().Add(a.radOrZero(), d)
	return Real{mid: new(big.Float).Copy(a.midOrZero()), rad: rad}
}

// ---------- set predicates ----------

// Contains reports whether every member of b provably lies in a.
func (a Real) Contains(b Real) bool {
	if a.radOrZero().IsInf() {
		return true
	}
	if b.radOrZero().IsInf() || a.midOrZero().IsInf() || b.midOrZero().IsInf() {
		return false
	}
	// |mid_a − mid_b| + rad_b ≤ rad_a, all rounded against us. An exact
	// midpoint difference commits no rounding error, so boundary points
	// of exactly representable balls stay certified.
	p := maxPrec(a, b) + radPrec
	d := new(big.Float).SetPrec(p).Sub(a.midOrZero(), b.midOrZero())
	bound := newRad().Abs(d)
	if d.Acc() != big.Exact {
		bound.Add(bound, ulp(d))
	}
	bound.Add(bound, b.radOrZero())
	return bound.Cmp(a.radOrZero()) <= 0
}

// ContainsFloat reports whether the exact number x provably lies in a.
func (a Real) ContainsFloat(x *big.Float) bool {
	return a.Contains(Real{mid: new(big.Float).Copy(x), rad: new(big.Float)})
}

// ContainsRat reports whether the rational q provably lies in a.
func (a Real) ContainsRat(q *big.Rat) bool {
	return a.Contains(RealFromRat(q, a.Prec()+radPrec))
}

// Overlaps reports whether a and b may intersect; it is false only when
// the balls are provably disjoint.
func (a Real) Overlaps(b Real) bool {
	return !(SafeLt(a, b) || SafeLt(b, a))
}

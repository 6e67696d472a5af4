package ball

import (
	"fmt"
	"math/big"
)

// Complex is a complex ball: a rectangle re × im of two real balls.
// The rectangle representation encloses the disk-shaped error regions
// produced by AddError, so every operation remains an enclosure.
// Like Real, Complex values are immutable.
type Complex struct {
	re, im Real
}

// ---------- constructors ----------

// NewComplex returns the complex ball with the given real and imaginary
// parts.
func NewComplex(re, im Real) Complex { return Complex{re: re, im: im} }

// ComplexFromReal embeds a real ball on the real line.
func ComplexFromReal(re Real) Complex { return Complex{re: re} }

// ComplexZero returns the exact ball 0.
func ComplexZero() Complex { return Complex{} }

// ComplexOne returns the exact ball 1.
func ComplexOne() Complex { return Complex{re: RealOne()} }

// ComplexFromFloat64 returns the exact ball re + im·i.
func ComplexFromFloat64(re, im float64) Complex {
	return Complex{re: RealFromFloat64(re), im: RealFromFloat64(im)}
}

// ComplexFromRats returns a ball enclosing the Gaussian rational
// re + im·i at midpoint precision prec.
func ComplexFromRats(re, im *big.Rat, prec uint) Complex {
	return Complex{re: RealFromRat(re, prec), im: RealFromRat(im, prec)}
}

// ---------- queries ----------

// Real returns the real part.
func (z Complex) Real() Real { return z.re }

// Imag returns the imaginary part.
func (z Complex) Imag() Real { return z.im }

// IsExact reports whether both parts have radius zero.
func (z Complex) IsExact() bool { return z.re.IsExact() && z.im.IsExact() }

// IsFinite reports whether both parts are finite.
func (z Complex) IsFinite() bool { return z.re.IsFinite() && z.im.IsFinite() }

// HasZeroImag reports whether the imaginary part is exactly zero, i.e.
// the ball lies on the real line.
func (z Complex) HasZeroImag() bool {
	return z.im.IsExact() && z.im.midOrZero().Sign() == 0
}

// ContainsZero reports whether 0 may lie in the ball.
func (z Complex) ContainsZero() bool {
	return z.re.ContainsZero() && z.im.ContainsZero()
}

// Contains reports whether every member of w provably lies in z.
func (z Complex) Contains(w Complex) bool {
	return z.re.Contains(w.re) && z.im.Contains(w.im)
}

// Overlaps reports whether z and w may intersect.
func (z Complex) Overlaps(w Complex) bool {
	return z.re.Overlaps(w.re) && z.im.Overlaps(w.im)
}

// Accuracy returns the certified relative bits of the less accurate part.
func (z Complex) Accuracy() int {
	a, b := z.re.Accuracy(), z.im.Accuracy()
	if b < a {
		return b
	}
	return a
}

// String renders the ball as "re + im·i".
func (z Complex) String() string {
	return fmt.Sprintf("%v + %v·i", z.re, z.im)
}

// ---------- arithmetic ----------

// Neg returns -z.
func (z Complex) Neg() Complex { return Complex{re: z.re.Neg(), im: z.im.Neg()} }

// Conj returns the complex conjugate.
func (z Complex) Conj() Complex { return Complex{re: z.re, im: z.im.Neg()} }

// Add returns an enclosure of z + w.
func (z Complex) Add(w Complex) Complex {
	return Complex{re: z.re.Add(w.re), im: z.im.Add(w.im)}
}

// Sub returns an enclosure of z - w.
func (z Complex) Sub(w Complex) Complex {
	return Complex{re: z.re.Sub(w.re), im: z.im.Sub(w.im)}
}

// Mul returns an enclosure of z · w (schoolbook four-multiplication form,
// which keeps the enclosure tight for balls).
func (z Complex) Mul(w Complex) Complex {
	return Complex{
		re: z.re.Mul(w.re).Sub(z.im.Mul(w.im)),
		im: z.re.Mul(w.im).Add(z.im.Mul(w.re)),
	}
}

// MulReal scales both parts by the real ball r.
func (z Complex) MulReal(r Real) Complex {
	return Complex{re: z.re.Mul(r), im: z.im.Mul(r)}
}

// MulPow2 returns the exact scaling z · 2^e.
func (z Complex) MulPow2(e int) Complex {
	return Complex{re: z.re.MulPow2(e), im: z.im.MulPow2(e)}
}

// DivReal divides both parts by the real ball r.
func (z Complex) DivReal(r Real) Complex {
	return Complex{re: z.re.Div(r), im: z.im.Div(r)}
}

// Div returns an enclosure of z / w, computed as z·conj(w)/|w|².
// A divisor possibly containing zero yields indeterminate parts.
func (z Complex) Div(w Complex) Complex {
	return z.Mul(w.Conj()).DivReal(w.AbsSq())
}

// AbsSq returns an enclosure of |z|² = re² + im².
func (z Complex) AbsSq() Real {
	return z.re.Mul(z.re).Add(z.im.Mul(z.im))
}

// Abs returns an enclosure of the modulus |z|.
func (z Complex) Abs() Real {
	if z.HasZeroImag() {
		return z.re.Abs()
	}
	return z.AbsSq().Sqrt()
}

// AddError widens both parts' radii by an upper bound on delta, so the
// rectangle encloses the disk of radius delta around every prior member.
func (z Complex) AddError(delta Real) Complex {
	return Complex{re: z.re.AddError(delta), im: z.im.AddError(delta)}
}

// Round re-rounds both parts to midpoint precision prec.
func (z Complex) Round(prec uint) Complex {
	return Complex{re: z.re.Round(prec), im: z.im.Round(prec)}
}

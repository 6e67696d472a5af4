package dop

import (
	"math/big"

	"github.com/holonomic/dfeval/ball"
)

// GaussRat is an exact Gaussian rational re + im·i. Local expansions at
// complex rational points stay exact thanks to this type, so the only
// rounding in a series recurrence comes from the ball coefficients
// themselves.
type GaussRat struct {
	Re, Im *big.Rat
}

// GaussFromRat embeds a real rational.
func GaussFromRat(re *big.Rat) GaussRat {
	return GaussRat{Re: new(big.Rat).Set(re), Im: new(big.Rat)}
}

// GaussFromRats builds re + im·i.
func GaussFromRats(re, im *big.Rat) GaussRat {
	return GaussRat{Re: new(big.Rat).Set(re), Im: new(big.Rat).Set(im)}
}

// IsZero reports whether the value is 0.
func (g GaussRat) IsZero() bool { return g.Re.Sign() == 0 && g.Im.Sign() == 0 }

// IsReal reports whether the imaginary part is 0.
func (g GaussRat) IsReal() bool { return g.Im.Sign() == 0 }

// Add returns g + h.
func (g GaussRat) Add(h GaussRat) GaussRat {
	return GaussRat{
		Re: new(big.Rat).Add(g.Re, h.Re),
		Im: new(big.Rat).Add(g.Im, h.Im),
	}
}

// Mul returns g · h.
func (g GaussRat) Mul(h GaussRat) GaussRat {
	re := new(big.Rat).Mul(g.Re, h.Re)
	re.Sub(re, new(big.Rat).Mul(g.Im, h.Im))
	im := new(big.Rat).Mul(g.Re, h.Im)
	im.Add(im, new(big.Rat).Mul(g.Im, h.Re))
	return GaussRat{Re: re, Im: im}
}

// MulRat returns g scaled by the real rational r.
func (g GaussRat) MulRat(r *big.Rat) GaussRat {
	return GaussRat{
		Re: new(big.Rat).Mul(g.Re, r),
		Im: new(big.Rat).Mul(g.Im, r),
	}
}

// Neg returns -g.
func (g GaussRat) Neg() GaussRat {
	return GaussRat{Re: new(big.Rat).Neg(g.Re), Im: new(big.Rat).Neg(g.Im)}
}

// Inv returns 1/g; g must be nonzero.
func (g GaussRat) Inv() GaussRat {
	n := new(big.Rat).Mul(g.Re, g.Re)
	n.Add(n, new(big.Rat).Mul(g.Im, g.Im))
	re := new(big.Rat).Quo(g.Re, n)
	im := new(big.Rat).Quo(new(big.Rat).Neg(g.Im), n)
	return GaussRat{Re: re, Im: im}
}

// Ball returns an enclosure of g at midpoint precision prec.
func (g GaussRat) Ball(prec uint) ball.Complex {
	return ball.ComplexFromRats(g.Re, g.Im, prec)
}

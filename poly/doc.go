// Package poly provides dense polynomials with complex-ball
// coefficients — the common currency between series summation,
// economization and the polynomial cache.
//
// A Poly encloses a family of true polynomials: any polynomial whose
// k-th coefficient lies in Coef(k) for every k. Evaluation by Horner's
// rule therefore encloses the value of every member, which is exactly
// the guarantee the cached evaluator hands out.
//
// Domain rescaling is the one operation with a subtlety worth naming:
// economization bounds are stated on the unit disk or unit interval, so
// a series valid on |x| ≤ r is first composed with r·x (ScaleArg), then
// economized, then composed with x/r (UnscaleArg). Both compositions are
// coefficient-wise multiplications by powers of r and preserve
// enclosures.
package poly

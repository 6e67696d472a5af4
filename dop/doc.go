// Package dop represents linear differential operators with polynomial
// coefficients — the defining data of a D-finite function — together
// with the little algebra the evaluation pipeline needs from them.
//
// 🚀 What is an operator here?
//
//	An operator L = p_r(x)·D^r + … + p_1(x)·D + p_0(x) is stored as its
//	coefficient polynomials p_i over exact rationals (math/big.Rat).
//	Solutions of L·f = 0 are analytic away from the roots of the leading
//	coefficient p_r; those roots are the operator's finite singular
//	points, and everything in the caching layer is phrased in terms of
//	distances to them.
//
// ✨ What the package provides:
//
//   - RatPoly — dense rational polynomials: evaluation on balls,
//     derivatives, Taylor shifts.
//   - GaussRat — exact Gaussian-rational scalars, so local expansions at
//     complex rational points stay exact.
//   - Operator — validation, order, leading coefficient, LocalAt
//     (re-expansion of the operator at a new origin).
//   - Singularity estimation — certified enclosures of the roots of the
//     leading coefficient (float64 Durand–Kerner iteration, then an
//     a-posteriori residual bound evaluated in exact ball arithmetic),
//     DistToSing lower bounds, and the smallest-nonzero-root-modulus
//     primitive the growth estimator builds on.
//
// The root enclosures are conservative: a cluster of nearby roots only
// ever *enlarges* the reported enclosures, which *shrinks* the distance
// lower bounds — the safe direction for disk selection.
package dop

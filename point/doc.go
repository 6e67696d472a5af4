// Package point represents locations on the real or complex line, either
// exactly (as rationals) or as intervals with nonzero radius.
//
// 🚀 Why a dedicated type?
//
//	Evaluation points flow through disk selection, continuation paths and
//	cache keys. Each consumer needs to know two independent things about a
//	point: is it exact or thick (an interval), and is it real or complex?
//	Instead of runtime type inspection, Point is a tagged variant
//	{Exact, Ball} × {Real, Complex} with explicit conversions:
//
//	  • FromRat / FromRats    — exact rational (real / complex) points
//	  • FromFloat64           — exact dyadic point
//	  • FromBall / FromComplexBall — thick interval points
//	  • FromEndpoints         — the two-point interval descriptor [lo, hi]
//	  • FromAny               — coercion from plain Go values
//
// Invariants:
//
//   - An exact point has radius zero.
//   - RealBall / ComplexBall conversions at precision p always enclose the
//     true location, so distance and disk computations stay valid even
//     when the input point itself carries uncertainty.
//   - Key() is a stable identity string: equal points (same kind, same
//     data) produce equal keys, which is what the initial-value cache is
//     keyed by.
package point

// Package ball implements arbitrary-precision midpoint–radius interval
// ("ball") arithmetic for real and complex numbers.
//
// 🚀 What is a ball?
//
//	A ball ⟨m ± r⟩ is the set of numbers within distance r of the midpoint
//	m. Every operation in this package is an *enclosure*: applying it to
//	any members of the input balls yields a number contained in the output
//	ball. Midpoints are math/big.Float values at a caller-chosen working
//	precision; radii are low-precision floats that only ever round upward.
//
// ✨ Key guarantees:
//
//   - Enclosure: Add/Sub/Mul/Div/Sqrt/Abs/... account for both the input
//     radii and the rounding of their own midpoint computation.
//   - Conservative comparisons: SafeLt/SafeLe/SafeGt/SafeGe return true
//     only when the relation is provable from the endpoints. Indeterminate
//     overlap yields false — they never guess and never panic.
//   - Totality: operations whose interval result would be unbounded
//     (division by a ball containing zero, ∞−∞, ...) return the
//     indeterminate ball ⟨0 ± ∞⟩ instead of failing.
//
// Complex balls are pairs of real balls (a rectangle, not a disk); the
// rectangle encloses the disk-shaped error regions produced by AddError,
// which keeps every derived enclosure sound.
//
// ⚙️ Usage:
//
//	a := ball.RealFromRat(big.NewRat(1, 3), 128) // ⟨0.333… ± ulp⟩
//	b := a.Mul(a)                                // encloses 1/9
//	if ball.SafeLt(b, ball.RealOne()) { ... }    // provably < 1
//
// The package is the number substrate for every other dfeval package; it
// deliberately exposes only what disk selection, economization and series
// summation need.
package ball

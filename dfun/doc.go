// Package dfun evaluates D-finite functions — solutions of linear ODEs
// with polynomial coefficients — at arbitrary real or complex points,
// returning rigorous enclosures.
//
// A Function is pinned down by its operator and one vector of initial
// values. Nothing is computed up front: the first query at a point
// selects the canonical approximation disk around it, runs analytic
// continuation from the seed to the disk center, sums the local series
// and economizes it to the disk's real trace. The resulting polynomial
// is cached by disk center, and the certified solution vectors obtained
// along the way are cached by vertex, so later queries on the same
// stretch of the real line reduce to a polynomial evaluation.
//
// 🚀 Cache discipline:
//
//	Both caches are monotone — an entry is only ever replaced by one
//	computed at higher precision (polynomials) or higher certified
//	accuracy (initial vectors) — and are committed only after a whole
//	computation has succeeded. A query that fails leaves no trace, and
//	a lower-precision query after a higher-precision one is always a
//	cache hit.
//
// ✨ Escape hatches:
//
//	Complex points and queries at or above the precision ceiling bypass
//	the caches with a direct continuation; points too close to a
//	singularity to own a certified disk fail with ErrUnboundedPoint.
//
// The collaborating machinery lives in the sibling packages: ball
// arithmetic in ball, operators in dop, disk selection in disk, growth
// analysis in growth, continuation and summation in ancont, and the
// orchestration in approx.
package dfun

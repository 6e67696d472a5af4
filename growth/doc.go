// Package growth bounds how fast the solutions of a differential
// operator can grow, via a Newton-polygon argument on the operator's
// coefficient support.
//
// 🚀 Why bound growth at all?
//
//	For an operator with no finite singular point (constant leading
//	coefficient), solutions are entire and every disk is "safe" — but a
//	polynomial approximation on a huge disk suffers catastrophic
//	cancellation: the partial sums of the series climb a hump of size
//	roughly exp(κ·(α·x)^(1/κ)) before settling. Capping the disk radius
//	at 1/(α·κ^κ) keeps the hump, and therefore interval blowup, at bay.
//
// ⚙️ The analysis (Parameters):
//
//	Each nonzero coefficient of x^j·D^i contributes a point (h, i) with
//	h = j - i. The base point minimizes h (ties: smallest derivative
//	order i, the conservative choice). The slope is the largest rate of
//	increase of i relative to h among points right of the base; the edge
//	polynomial collects the points lying exactly on that slope. Then
//	κ = -slope and α is the smallest nonzero root modulus of the edge
//	polynomial raised to the power κ, so that solutions grow at most like
//	Σ α^n·x^n/(n!)^κ ≈ exp(κ·(α·x)^(1/κ)).
//
// The resulting cap is only ever used to LIMIT approximation radii; no
// enclosure's correctness depends on it, so the α endpoint arithmetic is
// deliberately allowed to be a (widened) floating-point estimate.
//
// Failure mode: a degenerate polygon — every support point at one
// abscissa, or an edge polynomial with no nonzero root — yields
// ErrDegenerateOperator. For operators *with* finite singular points the
// cap is optional and callers fall back to singularity distances alone.
package growth

// Package ancont transports certified solution vectors of a linear ODE
// along paths in the complex plane and sums local power series, the two
// collaborator roles behind every evaluation: a Continuator moves
// "initial" derivative values from a point where they are known to a
// point where they are wanted, and a Summator turns such values into a
// truncated series valid on a disk.
//
// ✨ The reference implementation, TaylorMethod, does both with plain
// Taylor expansions at ordinary points:
//
//	Continuation subdivides each path leg into steps no longer than half
//	the local distance to the operator's singularities (and a fixed step
//	cap), re-expanding at every intermediate point. The intermediate
//	points are exact Gaussian rationals, so every local operator is exact
//	and rounding enters only through the ball coefficients.
//
//	Summation runs the ordinary-point coefficient recurrence and stops
//	once the per-term bounds on the target radius show sustained
//	geometric decay and the extrapolated tail drops below the accuracy
//	goal. If the term cap is hit first, Sum fails with ErrNoConvergence
//	rather than returning a doubtful polynomial. The tail bound is an
//	observed-decay extrapolation, not a majorant series; its rigor rests
//	on the step discipline keeping every summation radius at most half
//	the distance to the singularities, which forces the term bounds into
//	eventual geometric decay.
//
// ⚙️ Near a singular point no step can make progress (the allowed step
// length shrinks with the distance) and continuation fails with
// ErrSingularPath. That failure is part of the contract: enclosures are
// never silently degraded to keep a path alive.
package ancont

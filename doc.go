// Package dfeval evaluates D-finite functions — solutions of linear ODEs
// with polynomial coefficients — at arbitrary real or complex points,
// returning rigorous enclosures instead of floating approximations.
//
// 🚀 What is dfeval?
//
//	A pure-Go library built around a deterministic caching layer that makes
//	repeated arbitrary-precision evaluation of the same function practical:
//	  • ball/   — midpoint–radius interval arithmetic on math/big
//	  • point/  — exact and interval points on the real/complex line
//	  • dop/    — differential operators, singularities, local expansions
//	  • growth/ — Newton-polygon growth bounds capping safe disk radii
//	  • disk/   — canonical dyadic disk selection around a query point
//	  • poly/   — ball-coefficient polynomials
//	  • econ/   — Taylor/Chebyshev polynomial economization
//	  • ancont/ — analytic continuation & series summation collaborators
//	  • approx/ — continuation → summation → economization orchestration
//	  • dfun/   — the cached evaluator (public entry point)
//
// ✨ Why choose dfeval?
//
//   - Every result is an enclosure: an interval or disk guaranteed to
//     contain the true value of the function at the query point.
//   - Evaluations near each other share work: polynomial approximations are
//     cached per canonical disk and reused at any lower precision.
//   - The continuation and summation backends are interfaces; the bundled
//     Taylor-method backend can be swapped for an external solver.
//
// Quick example, the exponential as a D-finite function (f' = f, f(0) = 1):
//
//	op, _ := dop.New([]dop.RatPoly{
//	    dop.RatPolyFromInt64(-1), // -1 · f
//	    dop.RatPolyFromInt64(1),  // +1 · f'
//	})
//	f, _ := dfun.New(op, []ball.Complex{ball.ComplexOne()})
//	v, _ := f.EvaluateReal(point.FromFloat64(1), 53)
//	// v encloses 2.718281828459045...
//
// Dive into each package's doc.go for algorithms, invariants and complexity
// notes.
package dfeval

// Package econ shrinks certified polynomials: it removes high-degree
// terms from a ball-coefficient polynomial while folding a bound on
// everything it removed into the constant coefficient's error radius, so
// the result still encloses the original polynomial's values on the
// domain of interest.
//
// 🚀 The algorithm (General):
//
//	A reference family E[0], E[1], … supplies, for each degree k, a
//	polynomial of degree exactly k bounded by 1 in modulus on the domain.
//	Scanning from the top degree down, the current coefficient c_k is
//	normalized by E[k]'s leading coefficient and, while the running sum
//	of dropped moduli stays provably below eps, c·E[k] is subtracted —
//	cancelling degree k exactly and perturbing only lower degrees. The
//	final sum is added to the constant term as an error radius: on the
//	domain, |Σ c·E[k](x)| ≤ Σ|c| < eps.
//
// Two instantiations:
//
//   - Taylor: E[k] = x^k, domain the complex unit disk. The subtraction
//     degenerates to plain coefficient dropping (fast path, no family).
//   - Chebyshev: E[k] = T_k by the three-term recurrence
//     T[k+1] = 2x·T[k] - T[k-1], domain the real interval [-1, 1].
//     Valid at complex points only when the input polynomial already has
//     complex coefficients — Chebyshev bounds fail off the real line for
//     real inputs, so callers must not evaluate there.
//
// Everything is phrased on the unit domain; callers rescale with
// poly.ScaleArg/UnscaleArg around the call.
package econ

package ball

// Conservative comparisons. Each predicate returns true only when the
// relation holds for *every* pair of members of the two balls; any
// indeterminate overlap yields false. Disk selection and economization
// rely on this one-sided contract: a false answer may cost sharpness,
// never soundness.

// SafeLt reports whether a < b provably holds.
func SafeLt(a, b Real) bool {
	if a.radOrZero().IsInf() || b.radOrZero().IsInf() {
		return false
	}
	return a.UpperBound().Cmp(b.LowerBound()) < 0
}

// SafeLe reports whether a ≤ b provably holds.
func SafeLe(a, b Real) bool {
	if a.radOrZero().IsInf() || b.radOrZero().IsInf() {
		return false
	}
	return a.UpperBound().Cmp(b.LowerBound()) <= 0
}

// SafeGt reports whether a > b provably holds.
func SafeGt(a, b Real) bool { return SafeLt(b, a) }

// SafeGe reports whether a ≥ b provably holds.
func SafeGe(a, b Real) bool { return SafeLe(b, a) }

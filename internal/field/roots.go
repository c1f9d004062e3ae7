// Root-of-unity tables for the number-theoretic transform.
//
// The tables are filled once at package load and never mutated
// afterwards; every later access is read-only, so they are safe to
// share between goroutines without synchronization.
package field

// roots[k] is a primitive 2^k-th root of unity, invRoots[k] its
// modular inverse, and invPow2[k] the modular inverse of 2^k (used to
// undo the scale factor left behind by the unnormalized inverse
// transform). Index 0 is unused; valid indices are 1..MaxOrderLog.
var (
	roots    [MaxOrderLog + 1]uint32
	invRoots [MaxOrderLog + 1]uint32
	invPow2  [MaxOrderLog + 1]uint32
)

func init() {
	for k := 1; k <= MaxOrderLog; k++ {
		roots[k] = Exp(Generator, (P-1)>>k)
		invRoots[k] = Inv(roots[k])
		invPow2[k] = Exp(inv2, uint32(k))
	}
}

// checkOrder panics if k is outside the supported table range.
// Callers are bounded by MaxOrderLog by construction, so an
// out-of-range k is a programming error, not a runtime condition.
func checkOrder(k int) {
	if k < 1 || k > MaxOrderLog {
		panic("field: root order out of range")
	}
}

// Root returns a primitive 2^k-th root of unity for forward
// transforms of length 2^k. k must be in [1, MaxOrderLog].
func Root(k int) uint32 {
	checkOrder(k)
	return roots[k]
}

// InvRoot returns the modular inverse of Root(k), used by inverse
// transforms of length 2^k.
func InvRoot(k int) uint32 {
	checkOrder(k)
	return invRoots[k]
}

// InvPow2 returns the modular inverse of 2^k, used to normalize the
// result of an unnormalized length-2^k inverse transform.
func InvPow2(k int) uint32 {
	checkOrder(k)
	return invPow2[k]
}

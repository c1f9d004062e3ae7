// Package field provides modular arithmetic over the prime field Z_P
// where P = 3*2^30 + 1.
//
// P is a Proth prime whose multiplicative group contains a subgroup of
// order 2^30, which makes roots of unity of every 2-power order up to
// 2^30 available. That structure is what allows the number-theoretic
// transform in internal/ntt to run on coefficient arrays of any
// power-of-two length up to 2^30.
//
// Elements are plain uint32 values in [0, P). All intermediate
// arithmetic widens to uint64 so that no operation can overflow before
// reduction.
package field

const (
	// P is the prime modulus: 3*2^30 + 1.
	P uint32 = 3221225473

	// Generator is a quadratic non-residue modulo P. Its order in the
	// multiplicative group carries the full 2^30 factor of P-1, so
	// Exp(Generator, (P-1)>>k) is a primitive 2^k-th root of unity for
	// every k up to MaxOrderLog.
	Generator uint32 = 5

	// MaxOrderLog is the largest k for which Z_P contains a primitive
	// 2^k-th root of unity.
	MaxOrderLog = 30

	// inv2 is the modular inverse of 2, i.e. (P+1)/2.
	inv2 uint32 = 1610612737
)

// Add returns (a + b) mod P.
func Add(a, b uint32) uint32 {
	s := uint64(a) + uint64(b)
	if s >= uint64(P) {
		s -= uint64(P)
	}
	return uint32(s)
}

// Sub returns (a - b) mod P. The result is biased by +P before the
// conditional reduction so it never goes negative.
func Sub(a, b uint32) uint32 {
	if a >= b {
		return a - b
	}
	return P - b + a
}

// Mul returns (a * b) mod P.
func Mul(a, b uint32) uint32 {
	return uint32(uint64(a) * uint64(b) % uint64(P))
}

// Exp returns base^e mod P using binary exponentiation.
func Exp(base, e uint32) uint32 {
	result := uint32(1)
	b := base % P
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			result = Mul(result, b)
		}
		b = Mul(b, b)
	}
	return result
}

// Inv returns the modular inverse of a, computed as a^(P-2) by
// Fermat's little theorem. The inverse of 0 is undefined; Inv(0)
// returns 0.
func Inv(a uint32) uint32 {
	return Exp(a, P-2)
}

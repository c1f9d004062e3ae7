package ntt

import (
	"fmt"

	"github.com/agbru/ntmul/internal/field"
)

// PointwiseMul multiplies two transformed sequences elementwise,
// storing the result in place into a. Both slices must have the same
// length. a and b may alias, which is how squaring reuses a single
// forward transform.
func PointwiseMul(a, b []uint32) error {
	if len(a) != len(b) {
		return fmt.Errorf("ntt: pointwise length mismatch (%d vs %d)", len(a), len(b))
	}
	for i := range a {
		a[i] = field.Mul(a[i], b[i])
	}
	return nil
}

// Normalize divides every element of a by 2^k, compensating for the
// scale factor accumulated by the unnormalized inverse transform of
// length 2^k.
func Normalize(a []uint32, k int) {
	inv := field.InvPow2(k)
	for i := range a {
		a[i] = field.Mul(a[i], inv)
	}
}

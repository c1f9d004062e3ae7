// Package ntt implements an in-place radix-2 number-theoretic
// transform over the prime field of internal/field, together with the
// pointwise-multiplication and normalization steps that turn a pair of
// transforms into a convolution.
//
// The transform is the decimation-in-frequency Cooley-Tukey variant:
// it accepts naturally ordered input and produces output in
// bit-reversed order. No reordering pass is needed because the only
// consumer of a forward transform is the elementwise product with
// another forward transform (order-independent as long as both sides
// share the permutation), and the matching inverse transform restores
// natural order by itself.
package ntt

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/agbru/ntmul/internal/field"
)

// MaxLength is the largest supported transform length, bounded by the
// order of the largest 2-power subgroup of the field.
const MaxLength = 1 << field.MaxOrderLog

// DefaultParallelThreshold is the minimum segment length at which the
// two halves of a recursion level are handed to separate goroutines.
// Below it the goroutine overhead outweighs the split.
const DefaultParallelThreshold = 1 << 15

// concurrencySemaphore bounds the number of transform goroutines to
// the number of CPUs. The recursion falls back to sequential execution
// whenever no token is available.
var (
	concurrencySemaphore chan struct{}
	concurrencyOnce      sync.Once
)

func getSemaphore() chan struct{} {
	concurrencyOnce.Do(func() {
		concurrencySemaphore = make(chan struct{}, runtime.NumCPU())
	})
	return concurrencySemaphore
}

// Transform applies the in-place transform to a. The length of a must
// be a power of two in [2, MaxLength]. With inverse=true it applies
// the unnormalized inverse transform; the caller is expected to follow
// up with Normalize.
//
// Recursion levels above DefaultParallelThreshold may execute their
// two halves concurrently. Each recursive call owns a disjoint slice
// segment and the root tables are immutable, so no synchronization
// beyond the final wait is needed.
func Transform(a []uint32, inverse bool) error {
	return TransformWithThreshold(a, inverse, DefaultParallelThreshold)
}

// TransformWithThreshold is Transform with an explicit parallelism
// cutoff. Segments shorter than parallelMin are processed on the
// calling goroutine; parallelMin <= 0 disables parallelism entirely.
func TransformWithThreshold(a []uint32, inverse bool, parallelMin int) error {
	k, err := lengthLog2(len(a))
	if err != nil {
		return err
	}
	if parallelMin <= 0 {
		parallelMin = MaxLength + 1
	}
	transform(a, k, inverse, parallelMin)
	return nil
}

// lengthLog2 validates that n is a supported transform length and
// returns log2(n).
func lengthLog2(n int) (int, error) {
	if n < 2 || n > MaxLength || n&(n-1) != 0 {
		return 0, fmt.Errorf("ntt: invalid transform length %d (want a power of two in [2, %d])", n, MaxLength)
	}
	k := 0
	for 1<<k < n {
		k++
	}
	return k, nil
}

// transform is the recursive worker. seg has length 2^k and k selects
// the root-table entry of matching order; each level recurses with
// k-1. Forward levels combine first and recurse after
// (decimation-in-frequency); inverse levels recurse first, because the
// inverse butterfly needs the sub-transforms' outputs before it can
// apply the twiddle factor to the second operand.
func transform(seg []uint32, k int, inverse bool, parallelMin int) {
	if len(seg) == 2 {
		a0, a1 := seg[0], seg[1]
		seg[0] = field.Add(a0, a1)
		seg[1] = field.Sub(a0, a1)
		return
	}

	half := len(seg) >> 1
	lo, hi := seg[:half], seg[half:]

	if inverse {
		recursePair(lo, hi, k-1, true, parallelMin)

		// Undo one forward level: t = hi[i] * w^-i, then the
		// add/sub butterfly. The running multiplier replaces a
		// modular exponentiation per element.
		w := field.InvRoot(k)
		wi := uint32(1)
		for i := 0; i < half; i++ {
			t := field.Mul(hi[i], wi)
			x := lo[i]
			lo[i] = field.Add(x, t)
			hi[i] = field.Sub(x, t)
			wi = field.Mul(wi, w)
		}
		return
	}

	w := field.Root(k)
	wi := uint32(1)
	for i := 0; i < half; i++ {
		x, y := lo[i], hi[i]
		lo[i] = field.Add(x, y)
		hi[i] = field.Mul(field.Sub(x, y), wi)
		wi = field.Mul(wi, w)
	}
	recursePair(lo, hi, k-1, false, parallelMin)
}

// recursePair runs the two half-transforms, concurrently when the
// halves are large enough and a semaphore token is available.
func recursePair(lo, hi []uint32, k int, inverse bool, parallelMin int) {
	if len(lo) >= parallelMin {
		select {
		case getSemaphore() <- struct{}{}:
			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer func() { <-getSemaphore() }()
				transform(hi, k, inverse, parallelMin)
			}()
			transform(lo, k, inverse, parallelMin)
			wg.Wait()
			return
		default:
			// No token free, fall through to sequential.
		}
	}
	transform(lo, k, inverse, parallelMin)
	transform(hi, k, inverse, parallelMin)
}

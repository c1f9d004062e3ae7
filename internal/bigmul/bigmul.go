// Package bigmul multiplies arbitrary-precision decimal integers in
// O(n log n) time using a number-theoretic transform.
//
// Operands and results are ASCII digit strings, most significant digit
// first, no sign. A multiplication is a linear pipeline: validate,
// guard sizes, encode both operands into power-of-two coefficient
// arrays, forward-transform, multiply pointwise, inverse-transform,
// normalize, decode. Squaring follows the same pipeline with a single
// forward transform, halving both the transform count and the peak
// memory of a general multiply.
//
// Calls are independent and side-effect-free apart from transient
// buffers; nothing persists between calls except the read-only root
// tables in internal/field.
package bigmul

import (
	"golang.org/x/sync/errgroup"

	"github.com/agbru/ntmul/internal/decimal"
	apperrors "github.com/agbru/ntmul/internal/errors"
	"github.com/agbru/ntmul/internal/field"
	"github.com/agbru/ntmul/internal/ntt"
)

// MaxConvolutionLength is the largest supported transform length. The
// sum of the operands' digit counts must not require a longer one.
const MaxConvolutionLength = ntt.MaxLength

// MaxSafeDigits is the digit-count bound ensuring convolution
// coefficients stay true integers before their first reduction: each
// coefficient is at most min(n, m)*9*9, which must remain below the
// field modulus. Equal to floor(P/81).
const MaxSafeDigits = int(field.P / 81)

// Options controls a single multiplication.
type Options struct {
	// Validate enables the digit-character check on operands. When
	// false the caller asserts well-formedness.
	Validate bool
	// ParallelThreshold is the minimum transform segment length at
	// which the recursion runs its halves concurrently. Zero selects
	// ntt.DefaultParallelThreshold; negative disables parallelism.
	ParallelThreshold int
}

func (o Options) parallelMin() int {
	switch {
	case o.ParallelThreshold == 0:
		return ntt.DefaultParallelThreshold
	case o.ParallelThreshold < 0:
		return 0
	default:
		return o.ParallelThreshold
	}
}

// Multiply returns the decimal product of a and b without validating
// the operands. See MultiplyWithOptions.
func Multiply(a, b string) (string, error) {
	return MultiplyWithOptions(a, b, Options{})
}

// MultiplyWithOptions returns the decimal product of a and b.
//
// The returned string has no leading zeros unless the product is
// exactly "0". Possible failures are InvalidOperandError (validation
// enabled and an operand malformed), OperandTooLargeError (both
// operands exceed MaxSafeDigits) and ConvolutionTooLargeError (the
// combined digit count needs a transform longer than
// MaxConvolutionLength). All checks run before any coefficient array
// is allocated, so the error path cannot leak buffers.
func MultiplyWithOptions(a, b string, opts Options) (string, error) {
	if opts.Validate {
		if err := checkOperand("a", a); err != nil {
			return "", err
		}
		if err := checkOperand("b", b); err != nil {
			return "", err
		}
	}
	if err := checkOperandSize(len(a), len(b)); err != nil {
		return "", err
	}
	k, err := transformSizeLog2(len(a) + len(b))
	if err != nil {
		return "", err
	}

	length := 1 << k
	ca := decimal.Encode(a, length)
	cb := decimal.Encode(b, length)

	// The two forward transforms touch disjoint arrays and share only
	// the immutable root tables, so they can run concurrently.
	var g errgroup.Group
	g.Go(func() error { return ntt.TransformWithThreshold(ca, false, opts.parallelMin()) })
	g.Go(func() error { return ntt.TransformWithThreshold(cb, false, opts.parallelMin()) })
	if err := g.Wait(); err != nil {
		return "", apperrors.WrapError(err, "forward transform failed")
	}

	if err := ntt.PointwiseMul(ca, cb); err != nil {
		return "", err
	}
	// cb is not needed past the pointwise step; dropping the reference
	// lets the runtime reclaim the buffer while the inverse transform
	// runs (it can be gigabytes for maximal operands).
	cb = nil

	if err := ntt.TransformWithThreshold(ca, true, opts.parallelMin()); err != nil {
		return "", apperrors.WrapError(err, "inverse transform failed")
	}
	ntt.Normalize(ca, k)

	return decimal.Decode(ca), nil
}

// Square returns the decimal square of a without validating the
// operand. See SquareWithOptions.
func Square(a string) (string, error) {
	return SquareWithOptions(a, Options{})
}

// SquareWithOptions returns the decimal square of a. It transforms the
// operand once and multiplies the transform pointwise with itself,
// which saves one forward transform and one coefficient array compared
// to MultiplyWithOptions(a, a).
func SquareWithOptions(a string, opts Options) (string, error) {
	if opts.Validate {
		if err := checkOperand("x", a); err != nil {
			return "", err
		}
	}
	if err := checkOperandSize(len(a), len(a)); err != nil {
		return "", err
	}
	k, err := transformSizeLog2(2 * len(a))
	if err != nil {
		return "", err
	}

	ca := decimal.Encode(a, 1<<k)
	if err := ntt.TransformWithThreshold(ca, false, opts.parallelMin()); err != nil {
		return "", apperrors.WrapError(err, "forward transform failed")
	}
	if err := ntt.PointwiseMul(ca, ca); err != nil {
		return "", err
	}
	if err := ntt.TransformWithThreshold(ca, true, opts.parallelMin()); err != nil {
		return "", apperrors.WrapError(err, "inverse transform failed")
	}
	ntt.Normalize(ca, k)

	return decimal.Decode(ca), nil
}

// checkOperand validates a single operand string.
func checkOperand(name, s string) error {
	if len(s) == 0 {
		return apperrors.NewInvalidOperandError(name, "empty string")
	}
	if !decimal.IsValid(s) {
		return apperrors.NewInvalidOperandError(name, "contains a non-digit character")
	}
	return nil
}

// checkOperandSize applies the overflow size guard. Only the smaller
// operand's digit count matters: each convolution coefficient is a sum
// of at most min(n, m) digit products, so the bound is exceeded only
// when both operands are oversized. Rejecting on the minimum is the
// stated policy, deliberately asymmetric.
func checkOperandSize(lenA, lenB int) error {
	smaller := lenA
	if lenB < smaller {
		smaller = lenB
	}
	if smaller > MaxSafeDigits {
		return apperrors.OperandTooLargeError{Digits: smaller, Limit: MaxSafeDigits}
	}
	return nil
}

// transformSizeLog2 returns the minimal k with 2^k >= resultLength.
// The transform needs at least length 2, so k is never below 1.
func transformSizeLog2(resultLength int) (int, error) {
	k := 1
	for 1<<k < resultLength {
		k++
		if 1<<k > MaxConvolutionLength {
			return 0, apperrors.ConvolutionTooLargeError{Required: resultLength, Max: MaxConvolutionLength}
		}
	}
	return k, nil
}

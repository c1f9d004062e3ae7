package bigmul

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genOperand generates canonical decimal operands: either "0" or a digit
// string with a non-zero leading digit, up to a few hundred digits.
func genOperand() gopter.Gen {
	return gen.SliceOfN(300, gen.UInt8Range(0, 9)).Map(func(digits []uint8) string {
		// Trim to a pseudo-random length derived from the slice itself
		// so shorter operands appear too.
		n := 1 + int(digits[0])*int(digits[1])%300
		if n > len(digits) {
			n = len(digits)
		}
		buf := make([]byte, n)
		for i := 0; i < n; i++ {
			buf[i] = '0' + digits[i]
		}
		if buf[0] == '0' {
			if n == 1 {
				return "0"
			}
			buf[0] = '1'
		}
		return string(buf)
	})
}

// TestMultiplicationProperties verifies the algebraic laws of multiplication
// using property-based testing: agreement with math/big, commutativity, the
// identity element, and the zero element.
func TestMultiplicationProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("product matches math/big", prop.ForAll(
		func(a, b string) bool {
			got, err := Multiply(a, b)
			if err != nil {
				return false
			}
			x, _ := new(big.Int).SetString(a, 10)
			y, _ := new(big.Int).SetString(b, 10)
			return got == new(big.Int).Mul(x, y).String()
		},
		genOperand(), genOperand(),
	))

	properties.Property("multiplication commutes", prop.ForAll(
		func(a, b string) bool {
			ab, err1 := Multiply(a, b)
			ba, err2 := Multiply(b, a)
			return err1 == nil && err2 == nil && ab == ba
		},
		genOperand(), genOperand(),
	))

	properties.Property("one is the identity", prop.ForAll(
		func(a string) bool {
			got, err := Multiply(a, "1")
			return err == nil && got == a
		},
		genOperand(),
	))

	properties.Property("zero annihilates", prop.ForAll(
		func(a string) bool {
			got, err := Multiply(a, "0")
			return err == nil && got == "0"
		},
		genOperand(),
	))

	properties.Property("squaring matches the general path", prop.ForAll(
		func(a string) bool {
			sq, err1 := Square(a)
			mul, err2 := Multiply(a, a)
			return err1 == nil && err2 == nil && sq == mul
		},
		genOperand(),
	))

	properties.TestingRun(t)
}

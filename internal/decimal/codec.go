// Package decimal converts between ASCII decimal digit strings and
// the little-endian coefficient arrays consumed by the transform.
//
// A digit string "d_{n-1} ... d_1 d_0" (most significant first) maps
// to the coefficient array [d_0, d_1, ..., d_{n-1}, 0, ...], i.e. one
// field element per digit with the ones place at index 0. After a
// convolution the coefficients are no longer single digits; Decode
// folds them back into digits with a running carry.
package decimal

// Encode places the digits of s into a fresh coefficient array of the
// given length, least-significant digit at index 0, remaining
// positions zero. length must be at least len(s); the orchestration
// layer guarantees this when it pads to the transform length.
func Encode(s string, length int) []uint32 {
	if length < len(s) {
		panic("decimal: coefficient array shorter than digit string")
	}
	a := make([]uint32, length)
	last := len(s) - 1
	for i := 0; i <= last; i++ {
		a[i] = uint32(s[last-i] - '0')
	}
	return a
}

// Decode folds a coefficient array back into a canonical decimal
// string. Positions are processed from the lowest-order coefficient
// upward, accumulating a running carry; whatever carry remains after
// the last position is decomposed into further digits rather than
// assumed to fit in one (convolution coefficients near the operand
// size limit can leave a carry of several digits).
//
// Leading zeros are stripped; a value of zero decodes to "0".
func Decode(a []uint32) string {
	buf := make([]byte, 0, len(a)+16)
	carry := uint64(0)
	for _, c := range a {
		carry += uint64(c)
		buf = append(buf, byte('0'+carry%10))
		carry /= 10
	}
	for carry > 0 {
		buf = append(buf, byte('0'+carry%10))
		carry /= 10
	}

	// buf holds digits least-significant first, so trailing zeros
	// here are the leading zeros of the result.
	end := len(buf)
	for end > 1 && buf[end-1] == '0' {
		end--
	}
	buf = buf[:end]
	if len(buf) == 0 {
		return "0"
	}

	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// IsValid reports whether s is a well-formed operand: non-empty and
// composed solely of ASCII decimal digits (no sign, no whitespace).
func IsValid(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

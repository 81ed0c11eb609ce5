package bigint

import (
	"fmt"
	"strings"
)

// FromStringRadix parses s as a signed integer in the given base (2..64)
// using alphabet to map characters to digit values. A leading '-' sets the
// negative sign; the rest of s must consist solely of characters present in
// alphabet[:base].
func FromStringRadix(s string, base int, alphabet string) (Int, error) {
	if base < 2 || base > 64 || base > len(alphabet) {
		return Int{}, fmt.Errorf("bigint: invalid base %d", base)
	}
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	if s == "" {
		return Int{}, fmt.Errorf("bigint: empty digit string")
	}
	digitValue := make(map[byte]int, base)
	for i := 0; i < base; i++ {
		digitValue[alphabet[i]] = i
	}

	acc := Zero()
	baseInt := FromU32(uint32(base))
	for i := 0; i < len(s); i++ {
		v, ok := digitValue[s[i]]
		if !ok {
			return Int{}, fmt.Errorf("bigint: invalid digit %q for base %d", s[i], base)
		}
		acc = Mul(acc, baseInt)
		acc = Add(acc, FromU32(uint32(v)))
	}
	if neg {
		acc = acc.Negate()
	}
	return acc, nil
}

// ToStringRadix renders |a| as big-endian digits in the given base (2..64)
// using alphabet to map digit values to characters, prefixing a '-' for
// negative values. Leading zero digits are stripped except that the value
// zero itself renders as a single zero digit.
func ToStringRadix(a Int, base int, alphabet string) (string, error) {
	if base < 2 || base > 64 || base > len(alphabet) {
		return "", fmt.Errorf("bigint: invalid base %d", base)
	}
	if a.isZeroMag() {
		return string(alphabet[0]), nil
	}

	mag := append([]byte(nil), a.Mag...)
	baseByte := byte(base)
	var digits []byte
	for !(len(mag) == 1 && mag[0] == 0) {
		q, r := shortDivMag(mag, baseByte)
		digits = append(digits, r[0])
		mag = q
	}

	var sb strings.Builder
	if a.Neg {
		sb.WriteByte('-')
	}
	for i := len(digits) - 1; i >= 0; i-- {
		sb.WriteByte(alphabet[digits[i]])
	}
	return sb.String(), nil
}

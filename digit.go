// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexnum

// Sign is the sign of a parsed integer or float literal; a literal with
// no leading sign, or with a leading '+', is Positive.
type Sign int8

const (
	Positive Sign = iota
	Negative
)

// MinRadix and MaxRadix bound every radix parameter accepted by this
// package, matching the digit alphabet '0'-'9' then 'a'-'z'/'A'-'Z'.
const (
	MinRadix = 2
	MaxRadix = 36
)

// DigitValue reports the numeric value of c in the given radix and
// whether c is a valid digit at all. Letters are accepted in either
// case ('a'..'z', 'A'..'Z') for radixes above 10.
func DigitValue(c byte, radix int) (int, bool) {
	var v int
	switch {
	case c >= '0' && c <= '9':
		v = int(c - '0')
	case c >= 'a' && c <= 'z':
		v = int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		v = int(c-'A') + 10
	default:
		return 0, false
	}
	if v >= radix {
		return 0, false
	}
	return v, true
}

// isDigit is DigitValue without the value, used by the grammar scanners
// in floatstate.go where only membership matters.
func isDigit(c byte, radix int) bool {
	_, ok := DigitValue(c, radix)
	return ok
}

// ExponentMarker returns the byte that introduces an exponent for the
// given radix: 'e' for radix <= 10 (so it never collides with a digit,
// since radix <= 10 never uses letters), '^' above that, where 'e' and
// the rest of the alphabet are already live digits.
func ExponentMarker(radix int) byte {
	if radix <= 10 {
		return 'e'
	}
	return '^'
}

// CaseInsensitiveEqual compares two bytes ignoring ASCII case, used to
// match the exponent marker regardless of how the caller's literal
// capitalizes it.
func CaseInsensitiveEqual(a, b byte) bool {
	return toLowerASCII(a) == toLowerASCII(b)
}

func toLowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// consumeDigits returns the length of the longest prefix of bytes that
// are valid digits in radix.
func consumeDigits(radix int, bytes []byte) int {
	n := 0
	for n < len(bytes) && isDigit(bytes[n], radix) {
		n++
	}
	return n
}

// ltrimZero drops leading '0' bytes, returning the trimmed slice.
func ltrimZero(b []byte) []byte {
	i := 0
	for i < len(b) && b[i] == '0' {
		i++
	}
	return b[i:]
}

// rtrimZero drops trailing '0' bytes, returning the trimmed slice.
func rtrimZero(b []byte) []byte {
	i := len(b)
	for i > 0 && b[i-1] == '0' {
		i--
	}
	return b[:i]
}

// countLeadingZero returns the number of leading '0' bytes in b.
func countLeadingZero(b []byte) int {
	i := 0
	for i < len(b) && b[i] == '0' {
		i++
	}
	return i
}

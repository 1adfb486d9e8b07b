// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexnum

import (
	"math/big"
	"math/bits"
	"unsafe"
)

// ParseInteger parses a signed or unsigned integer literal in the given
// radix out of bytes into T, using checked magnitude accumulation so
// that overflow is caught digit-by-digit instead of wrapping silently.
//
// A leading '+' is always accepted and consumed. A leading '-' is only
// accepted (and consumed) when isSigned is true; otherwise it is an
// invalid digit at index 0. Most callers want the named wrappers
// ParseUnsigned/ParseSigned, which fix isSigned to match T (api.go's
// named wrappers are built on those); ParseInteger itself exists for
// callers building their own width-polymorphic helpers.
func ParseInteger[T Integer](radix int, bytes []byte, isSigned bool) (T, error) {
	var zero T
	if len(bytes) == 0 {
		return zero, newParseError(Empty, 0)
	}

	sign := Positive
	signOffset := 0
	switch bytes[0] {
	case '+':
		signOffset = 1
	case '-':
		if isSigned {
			sign = Negative
			signOffset = 1
		}
	}

	digits := bytes[signOffset:]
	if len(digits) == 0 {
		return zero, newParseError(Empty, signOffset)
	}

	maxPos, maxNeg := integerBounds[T]()
	bound := maxPos
	errCode := Overflow
	if sign == Negative {
		bound = maxNeg
		errCode = Underflow
	}

	var mag uint64
	for i, c := range digits {
		idx := signOffset + i
		d, ok := DigitValue(c, radix)
		if !ok {
			return zero, newParseError(InvalidDigit, idx)
		}
		next, mulOverflow := checkedMulU64(mag, uint64(radix))
		if mulOverflow || next > bound {
			return zero, newParseError(errCode, idx)
		}
		next, addOverflow := checkedAddU64(next, uint64(d))
		if addOverflow || next > bound {
			return zero, newParseError(errCode, idx)
		}
		mag = next
	}

	return fromMagnitude[T](mag, sign == Negative), nil
}

// ParseUnsigned parses bytes as an unsigned integer literal; a leading
// '-' is always an error (InvalidDigit at index 0 once a following
// digit would otherwise be valid falls through to ParseInteger's own
// handling, which treats it as an ordinary invalid byte).
func ParseUnsigned[T Unsigned](radix int, bytes []byte) (T, error) {
	return ParseInteger[T](radix, bytes, false)
}

// ParseSigned parses bytes as a signed integer literal, accepting an
// optional leading '+' or '-'.
func ParseSigned[T Signed](radix int, bytes []byte) (T, error) {
	return ParseInteger[T](radix, bytes, true)
}

// ParseBigInt parses bytes as a signed, arbitrary-width integer
// literal: unlike ParseInteger's fixed native widths, accumulation
// here never overflows.
func ParseBigInt(radix int, bytes []byte) (*big.Int, error) {
	if len(bytes) == 0 {
		return nil, newParseError(Empty, 0)
	}
	sign := Positive
	signOffset := 0
	switch bytes[0] {
	case '+':
		signOffset = 1
	case '-':
		sign = Negative
		signOffset = 1
	}
	digits := bytes[signOffset:]
	if len(digits) == 0 {
		return nil, newParseError(Empty, signOffset)
	}
	v := new(big.Int)
	r := big.NewInt(int64(radix))
	d := new(big.Int)
	for i, c := range digits {
		dv, ok := DigitValue(c, radix)
		if !ok {
			return nil, newParseError(InvalidDigit, signOffset+i)
		}
		v.Mul(v, r)
		d.SetInt64(int64(dv))
		v.Add(v, d)
	}
	if sign == Negative {
		v.Neg(v)
	}
	return v, nil
}

// accumulateMantissa accumulates digits (already validated for radix)
// into a uint64, stopping at the first digit that would overflow and
// reporting how many digits were left unconsumed. This is the
// truncating variant the accurate float path uses to build its
// moderate-precision estimate.
func accumulateMantissa(radix int, digits []byte) (value uint64, truncated int) {
	for i, c := range digits {
		d, _ := DigitValue(c, radix)
		next, mulOverflow := checkedMulU64(value, uint64(radix))
		if mulOverflow {
			return value, len(digits) - i
		}
		next, addOverflow := checkedAddU64(next, uint64(d))
		if addOverflow {
			return value, len(digits) - i
		}
		value = next
	}
	return value, 0
}

func checkedMulU64(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi != 0
}

func checkedAddU64(a, b uint64) (uint64, bool) {
	sum := a + b
	return sum, sum < a
}

// integerBounds returns the maximum representable positive magnitude
// and the maximum representable negative magnitude (i.e. -math.MinIntN
// as a uint64; 0 for unsigned T, which never takes the negative path)
// for T's width and signedness. It dispatches on unsafe.Sizeof and a
// runtime comparison rather than a type switch on T's dynamic type, so
// a defined type such as "type Word uint32" gets uint32's bounds
// instead of falling through to a default case: the Integer constraint
// is built from approximation elements (~uint8 and so on), and a type
// switch keyed on the exact type would only ever match the predeclared
// types themselves.
//
// Signedness is tested with ^z < 0 on T's zero value: the complement is
// all ones, which is -1 for a signed T and the maximum value for an
// unsigned one. (T(-1) would not compile, since the constant -1 is not
// representable in every type in T's type set.)
func integerBounds[T Integer]() (maxPos, maxNeg uint64) {
	var z T
	bits := uint(unsafe.Sizeof(z)) * 8
	if ^z < 0 {
		return uint64(1)<<(bits-1) - 1, uint64(1) << (bits - 1)
	}
	return uint64(1)<<bits - 1, 0
}

// fromMagnitude builds a T from an accumulated magnitude and sign. For
// the negative case it negates mag via two's complement in 64-bit space
// before truncating to T's width, which yields the correct bit pattern
// for any of the supported widths including the most-negative value
// (e.g. mag==128, neg==true, T==int8 must yield -128). The final
// conversion needs no dispatch on T's underlying type: Go's integer
// conversion rules (sign/zero-extend to infinite precision, truncate to
// the destination width) apply the same way to a type-parameter target
// as they would to any concrete integer type.
func fromMagnitude[T Integer](mag uint64, neg bool) T {
	if neg {
		mag = ^mag + 1
	}
	return T(mag)
}

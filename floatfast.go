// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexnum

import "math"

// synthesizeFast computes the fast, native-arithmetic approximation of
// a float literal's value: accumulate the integer part and the
// fraction part separately as native floats, add them, then scale by
// radix^exponent. Every step uses ordinary floating-point arithmetic,
// so the result can be off by more than half a ULP for long mantissas
// or extreme exponents. Callers that need a correctly-rounded result
// use the accurate path in synth.go instead.
func synthesizeFast[F Floatish](radix int, state RawFloatState, exponent int32) F {
	value := processIntegerFast[F](radix, state.Integer) + processFractionFast[F](radix, state.Fraction)
	if value == 0 {
		return 0
	}
	switch exponent {
	case math.MaxInt32:
		return F(math.Inf(1))
	case math.MinInt32:
		return 0
	}
	if exponent != 0 {
		value = iterativePow(value, radix, int(exponent))
	}
	return value
}

// processIntegerFast accumulates digits as F via repeated
// multiply-and-add; an empty slice yields 0.
func processIntegerFast[F Floatish](radix int, digits []byte) F {
	var v F
	r := F(radix)
	for _, c := range digits {
		d, _ := DigitValue(c, radix)
		v = v*r + F(d)
	}
	return v
}

// processFractionFast accumulates fraction digits in chunks of up to 12
// at a time: each chunk is parsed as a plain unsigned integer (which
// fits a uint64 comfortably for any radix <= 36 and chunk size 12,
// since 36^12 < 2^63), then scaled by radix^(-digitsSoFar) and added in.
// Chunking like this keeps the running value from losing precision one
// digit at a time the way a pure digit-by-digit float accumulation
// would for long fractions.
func processFractionFast[F Floatish](radix int, fraction []byte) F {
	if len(fraction) == 0 {
		return 0
	}
	const chunkSize = 12
	var frac F
	digitsSoFar := 0
	for i := 0; i < len(fraction); i += chunkSize {
		end := i + chunkSize
		if end > len(fraction) {
			end = len(fraction)
		}
		chunk := fraction[i:end]
		digitsSoFar += len(chunk)
		value, err := ParseUnsigned[uint64](radix, chunk)
		if err != nil {
			// chunk is a substring of an already grammar-validated
			// fraction, and at most 12 digits in radix<=36 cannot
			// overflow a uint64: any error here is a contract
			// violation, not a reportable parse failure.
			panic("lexnum: fraction chunk grammar violation: " + err.Error())
		}
		if value != 0 {
			frac += iterativePow(F(value), radix, -digitsSoFar)
		}
	}
	return frac
}

// iterativePow computes value * radix^exponent (exponent may be
// negative) via exponentiation by squaring, using native F arithmetic
// throughout.
func iterativePow[F Floatish](value F, radix int, exponent int) F {
	if exponent == 0 {
		return value
	}
	neg := exponent < 0
	e := exponent
	if neg {
		e = -e
	}
	base := F(radix)
	result := F(1)
	for e > 0 {
		if e&1 == 1 {
			result *= base
		}
		base *= base
		e >>= 1
	}
	if neg {
		return value / result
	}
	return value * result
}

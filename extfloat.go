// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexnum

import "math/bits"

// extendedFloat is an unnormalized-on-construction, 64-bit-mantissa
// extended float: value == mant * 2^exp, with mant not required to
// have its top bit set until normalize is called. It is the
// moderate-precision type the accurate path's first estimate is built
// in, cheap to compute and usually precise enough to decide rounding
// without falling back to arbitrary-precision arithmetic.
type extendedFloat struct {
	mant bigWord
	exp  int32
}

// normalize left-shifts mant until its top bit is set (or mant is
// zero), adjusting exp to compensate.
func (e extendedFloat) normalize() extendedFloat {
	if e.mant == 0 {
		return e
	}
	shift := bits.LeadingZeros64(e.mant)
	return extendedFloat{mant: e.mant << uint(shift), exp: e.exp - int32(shift)}
}

// mulExtended computes the (rounded) product of two extendedFloats: the
// true 128-bit product is truncated to its high 64 bits, rounding up
// when the discarded half was >= the halfway point. Each multiply can
// introduce at most one ULP (at the 64-bit mantissa's own precision) of
// rounding error, which is what makes this path "moderate precision"
// rather than exact.
func mulExtended(a, b extendedFloat) extendedFloat {
	hi, lo := bits.Mul64(a.mant, b.mant)
	if lo >= 1<<63 {
		hi++
	}
	return extendedFloat{mant: hi, exp: a.exp + b.exp + bigWordBits}
}

// extendedPowRadix computes an approximate extendedFloat for
// radix^exponent (exponent may be negative), via exponentiation by
// squaring in 64-bit mantissa space. Each squaring/multiply step
// normalizes and rounds, so the result accumulates a small number of
// ULPs of error that grows with the number of squaring steps. That is
// acceptable for the moderate-precision estimate: synth.go trusts it
// only when it lies well clear of a rounding boundary, and otherwise
// settles the rounding with the exact bigInt path.
func extendedPowRadix(radix int, exponent int32) extendedFloat {
	neg := exponent < 0
	e := exponent
	if neg {
		e = -e
	}
	base := extendedFloat{mant: uint64(radix), exp: 0}.normalize()
	result := extendedFloat{mant: 1 << 63, exp: -63} // 1.0
	for e > 0 {
		if e&1 == 1 {
			result = mulExtended(result, base).normalize()
		}
		base = mulExtended(base, base).normalize()
		e >>= 1
	}
	if neg {
		return reciprocalExtended(result)
	}
	return result
}

// reciprocalExtended computes an approximate extendedFloat for 1/x by a
// 128-by-64 division of 2^127 by the normalized mantissa, rounded to
// nearest, so the reciprocal keeps the full 64-bit precision (and the
// same within-one-ULP error) as mulExtended.
func reciprocalExtended(x extendedFloat) extendedFloat {
	x = x.normalize()
	if x.mant == 1<<63 {
		return extendedFloat{mant: 1 << 63, exp: -126 - x.exp}
	}
	q, r := bits.Div64(1<<63, 0, x.mant)
	if r >= x.mant-r {
		q++
	}
	return extendedFloat{mant: q, exp: -127 - x.exp}
}

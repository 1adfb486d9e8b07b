// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexnum

import "math"

// floatLayout describes the bit layout FloatSynthesizer targets:
// mantissaBits is the number of significant bits including the implicit
// leading one, floorExp2 is the exponent of the least significant bit
// of the smallest nonzero subnormal (e.g. -1074 for float64, matching
// math.SmallestNonzeroFloat64 == 2^-1074), and maxExp2 is the LSB
// exponent beyond which the value is certain to overflow to infinity.
type floatLayout struct {
	mantissaBits uint
	floorExp2    int32
	maxExp2      int32
}

var float64Layout = floatLayout{mantissaBits: 53, floorExp2: -1074, maxExp2: 972}
var float32Layout = floatLayout{mantissaBits: 24, floorExp2: -149, maxExp2: 105}

func layoutFor[F Floatish]() floatLayout {
	var z F
	switch any(z).(type) {
	case float32:
		return float32Layout
	case float64:
		return float64Layout
	default:
		panic("lexnum: unsupported float width")
	}
}

// ambiguityMarginBits bounds, in ULPs of extendedFloat's 64-bit
// mantissa, how much accumulated rounding error extendedPowRadix's
// repeated squaring can introduce. Exponent magnitudes this package
// ever squares through are bounded well under 2^31 (RawExponent
// saturates at int32's range), so the squaring depth is at most 31;
// each squaring/multiply step can round by at most 1 ULP, so 128 is a
// generous multiple of the realistic worst case and only ever causes
// extra (never incorrect, since it only ever triggers the exact
// big-math fallback, never skips it) calls into the slow path.
const ambiguityMarginBits = 128

// synthesizeAccurate computes the correctly-rounded (round-half-to-even)
// value of the literal described by raw and rawExponent: accumulate a
// 64-bit mantissa estimate, multiply it by an approximate power of the
// radix, and only fall back to exact arbitrary-precision comparison
// when that estimate could plausibly be wrong.
func synthesizeAccurate[F Floatish](radix int, raw RawFloatState, rawExponent int32) F {
	mantissaDigits := concatMantissaDigits(raw)
	mantissaU64, truncated := accumulateMantissa(radix, mantissaDigits)
	if mantissaU64 == 0 {
		return 0
	}
	// A saturated exponent already puts the literal's magnitude well
	// past any finite radix-power table this package could build; treat
	// it as the overflow/underflow verdict it represents instead of
	// feeding it through extendedPowRadix's squaring, which would
	// overflow int32 exponents of its own.
	switch rawExponent {
	case math.MaxInt32:
		return F(math.Inf(1))
	case math.MinInt32:
		return 0
	}
	state := raw.Process(truncated, rawExponent)
	mantExp := state.MantissaExponent()
	// With a mantissa in [1, 2^64), any radix >= 2 puts these exponents
	// beyond every float format's range (above 2^1100, or below 2^-1136),
	// and extendedPowRadix's int32 binary exponent would wrap long before
	// exponents near int32's own limits were reached.
	switch {
	case mantExp > 1100:
		return F(math.Inf(1))
	case mantExp < -1200:
		return 0
	}
	layout := layoutFor[F]()

	est := extendedFloat{mant: mantissaU64, exp: 0}.normalize()
	est = mulExtended(est, extendedPowRadix(radix, mantExp)).normalize()

	shift := bigWordBits - layout.mantissaBits
	exp2 := est.exp + int32(shift)
	if exp2 < layout.floorExp2 {
		extra := uint(layout.floorExp2 - exp2)
		shift += extra
		exp2 = layout.floorExp2
	}
	if shift > bigWordBits {
		return 0
	}

	floorMant := est.mant >> shift
	half := bigWord(1) << (shift - 1)
	remainder := est.mant & (half<<1 - 1)

	trustEstimate := truncated == 0 &&
		exp2 <= layout.maxExp2+ambiguityMarginBits &&
		exp2 >= layout.floorExp2-ambiguityMarginBits &&
		!nearAny(remainder, ambiguityMarginBits, 0, half, half<<1)

	var mant bigWord
	if trustEstimate {
		switch {
		case remainder > half:
			mant = floorMant + 1
		case remainder < half:
			mant = floorMant
		default:
			mant = floorMant + (floorMant & 1) // round to even on an exact-looking tie
		}
	} else {
		mant, exp2 = resolveExact(radix, &state, floorMant, exp2)
	}

	if mant == 1<<layout.mantissaBits {
		mant >>= 1
		exp2++
	}

	return F(math.Ldexp(float64(mant), int(exp2)))
}

func nearAny(v bigWord, margin bigWord, targets ...bigWord) bool {
	for _, t := range targets {
		var d bigWord
		if v > t {
			d = v - t
		} else {
			d = t - v
		}
		if d <= margin {
			return true
		}
	}
	return false
}

// concatMantissaDigits returns the literal's integer digits followed by
// its fraction digits (leading/trailing zeros already trimmed by
// ExtractRawFloatState), the exact digit sequence the mantissa encodes.
func concatMantissaDigits(raw RawFloatState) []byte {
	switch {
	case len(raw.Integer) == 0:
		return raw.Fraction
	case len(raw.Fraction) == 0:
		return raw.Integer
	default:
		buf := make([]byte, 0, len(raw.Integer)+len(raw.Fraction))
		buf = append(buf, raw.Integer...)
		buf = append(buf, raw.Fraction...)
		return buf
	}
}

// resolveExact recomputes the correctly-rounded mantissa for state's
// exact value using arbitrary-precision comparison against the
// boundary between floorMant and floorMant+1 at exp2, the slow path
// the moderate estimate falls back to whenever it cannot prove its own
// rounding decision correct.
func resolveExact(radix int, state *FloatState, floorMant bigWord, exp2 int32) (bigWord, int32) {
	digits := concatMantissaDigits(RawFloatState{Integer: state.Integer, Fraction: state.Fraction})
	d := bigIntFromDigits(radix, digits)
	e := state.RawExponent_ - int32(len(state.Fraction))

	cmp := compareExactToHalfUlp(radix, d, e, 2*floorMant+1, exp2-1)
	switch {
	case cmp < 0:
		return floorMant, exp2
	case cmp > 0:
		return floorMant + 1, exp2
	default:
		if floorMant&1 == 1 {
			return floorMant + 1, exp2
		}
		return floorMant, exp2
	}
}

// compareExactToHalfUlp compares the exact value D*radix^E against
// M2*2^exp2 (the candidate-plus-half-ULP boundary, pre-multiplied by 2
// so it stays an integer), returning -1, 0 or 1 the way cmpBigInt does.
// One side absorbs the radix scaling via bigFloat.imulPowRadix
// (whichever side has E >= 0 keeps an exact integer exponent of the
// radix to fold in); the two resulting bigFloats are then aligned to a
// common binary exponent before their mantissas are compared directly.
func compareExactToHalfUlp(radix int, d *bigInt, e int32, m2 uint64, exp2 int32) int {
	v := &bigFloat{mant: new(bigInt).set(d), exp: 0}
	c := &bigFloat{mant: newBigIntFromUint64(m2), exp: exp2}
	if e >= 0 {
		v.imulPowRadix(radix, uint32(e))
	} else {
		c.imulPowRadix(radix, uint32(-e))
	}
	switch {
	case v.exp > c.exp:
		v.mant = new(bigInt).shl(v.mant, uint(v.exp-c.exp))
		v.exp = c.exp
	case c.exp > v.exp:
		c.mant = new(bigInt).shl(c.mant, uint(c.exp-v.exp))
		c.exp = v.exp
	}
	return cmpBigInt(v.mant, c.mant)
}

// ParseFloat parses bytes (no leading sign; callers strip that first,
// see ParseFloat32/ParseFloat64 in api.go) as an unsigned float literal
// in the given radix, via the correctly-rounded accurate path.
func ParseFloat[F Floatish](radix int, bytes []byte) (F, error) {
	raw, err := ExtractRawFloatState(radix, bytes, 0)
	if err != nil {
		var zero F
		return zero, err
	}
	rawExponent := raw.RawExponent(radix)
	return synthesizeAccurate[F](radix, raw, rawExponent), nil
}

// ParseFloatFast is ParseFloat's fast, not-necessarily-correctly-rounded
// counterpart, exposed for callers that have independently verified
// their inputs never need the accurate path's guarantees (e.g. short,
// bounded-precision machine-generated literals).
func ParseFloatFast[F Floatish](radix int, bytes []byte) (F, error) {
	raw, err := ExtractRawFloatState(radix, bytes, 0)
	if err != nil {
		var zero F
		return zero, err
	}
	rawExponent := raw.RawExponent(radix)
	return synthesizeFast[F](radix, raw, rawExponent), nil
}

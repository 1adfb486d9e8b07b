// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexnum

import "math"

// RawFloatState is the raw, ungrammared split of a float literal into
// its component substrings, as produced by ExtractRawFloatState: the
// integer digits, the fraction digits and the exponent (including its
// optional sign, excluding the marker byte itself). Any of the three
// may be empty (an empty Integer means the literal started with '.' or
// its integer digits were all zeros; an empty Fraction means there was
// no '.', nothing followed it, or only zeros did; an empty exponent
// means there was no exponent marker at all).
//
// Integer has had its leading zeros trimmed and Fraction its trailing
// zeros trimmed by the time ExtractRawFloatState returns it, so that
// downstream digit counts reflect only significant digits.
type RawFloatState struct {
	Integer          []byte
	Fraction         []byte
	ExponentWithSign []byte
}

// ExtractRawFloatState splits bytes, a float literal already known to
// be non-empty, into a RawFloatState. baseOffset is added to every
// error index, letting a caller that extracted bytes as a sub-slice of
// a larger buffer report errors in the outer buffer's coordinates.
//
// Grammar (radix fixed for the whole literal):
//
//	float      = (integer ["." [fraction]] | "." fraction) [exponent]
//	integer    = digit+
//	fraction   = digit+
//	exponent   = marker ["+" | "-"] digit+
//
// where marker is ExponentMarker(radix) in either case.
func ExtractRawFloatState(radix int, bytes []byte, baseOffset int) (RawFloatState, error) {
	if len(bytes) == 0 {
		panic("lexnum: ExtractRawFloatState requires non-empty input")
	}

	var state RawFloatState
	rest := bytes

	switch {
	case rest[0] == '.':
		rest = rest[1:]
		n := consumeDigits(radix, rest)
		state.Fraction = rest[:n]
		rest = rest[n:]
		if len(state.Fraction) == 0 {
			return RawFloatState{}, newParseError(EmptyFraction, baseOffset+1)
		}
	case isDigit(rest[0], radix):
		n := consumeDigits(radix, rest)
		state.Integer = rest[:n]
		rest = rest[n:]
		if len(rest) > 0 && rest[0] == '.' {
			rest = rest[1:]
			n2 := consumeDigits(radix, rest)
			state.Fraction = rest[:n2]
			rest = rest[n2:]
		}
	default:
		return RawFloatState{}, newParseError(InvalidDigit, baseOffset)
	}

	if len(rest) > 0 && CaseInsensitiveEqual(rest[0], ExponentMarker(radix)) {
		markerPos := baseOffset + (len(bytes) - len(rest))
		expBody := rest[1:]
		if len(expBody) == 0 {
			return RawFloatState{}, newParseError(EmptyExponent, markerPos+1)
		}
		signLen := 0
		if expBody[0] == '+' || expBody[0] == '-' {
			signLen = 1
		}
		rawDigits := expBody[signLen:]
		if len(rawDigits) == 0 {
			return RawFloatState{}, newParseError(EmptyExponent, markerPos+1+signLen)
		}
		n3 := consumeDigits(radix, rawDigits)
		expLen := signLen + n3
		state.ExponentWithSign = expBody[:expLen]
		rest = expBody[expLen:]
	}

	if len(rest) > 0 {
		idx := baseOffset + (len(bytes) - len(rest))
		return RawFloatState{}, newParseError(InvalidDigit, idx)
	}

	state.Integer = ltrimZero(state.Integer)
	state.Fraction = rtrimZero(state.Fraction)
	return state, nil
}

// RawExponent parses the extracted exponent substring as a signed
// int32, saturating to math.MaxInt32/math.MinInt32 on overflow rather
// than surfacing a float-level error. This package resolves that Open
// Question in favor of silent saturation, since an exponent that wide
// already sends the literal's value to +/-Inf or to 0 once applied.
// Any other error from the underlying integer parse means the grammar
// in ExtractRawFloatState let an invalid exponent substring through,
// which is a contract violation, not a reportable parse error.
func (s RawFloatState) RawExponent(radix int) int32 {
	if len(s.ExponentWithSign) == 0 {
		return 0
	}
	v, err := ParseSigned[int32](radix, s.ExponentWithSign)
	if err == nil {
		return v
	}
	pe, ok := err.(*ParseError)
	if !ok {
		panic(err)
	}
	switch pe.Code {
	case Overflow:
		return math.MaxInt32
	case Underflow:
		return math.MinInt32
	default:
		panic("lexnum: malformed exponent substring (grammar violation): " + pe.Error())
	}
}

// FloatState is the fully processed split of a float literal, adding
// the bookkeeping the synthesizers need: where the first significant
// mantissa digit starts when Integer is empty, how many trailing
// mantissa digits were dropped during a truncating accumulation, and
// the exponent actually carried by the literal.
type FloatState struct {
	Integer      []byte
	Fraction     []byte
	DigitsStart  int
	Truncated    int
	RawExponent_ int32
}

// Process turns a RawFloatState plus the bookkeeping from a mantissa
// accumulation pass (truncated digit count) and the parsed raw exponent
// into a FloatState.
func (s RawFloatState) Process(truncated int, rawExponent int32) FloatState {
	digitsStart := 0
	if len(s.Integer) == 0 {
		digitsStart = countLeadingZero(s.Fraction)
	}
	return FloatState{
		Integer:      s.Integer,
		Fraction:     s.Fraction,
		DigitsStart:  digitsStart,
		Truncated:    truncated,
		RawExponent_: rawExponent,
	}
}

// IntegerDigits is the number of significant integer digits.
func (s FloatState) IntegerDigits() int { return len(s.Integer) }

// FractionDigits is the number of significant fraction digits, i.e.
// excluding the leading zeros counted in DigitsStart when Integer is
// empty.
func (s FloatState) FractionDigits() int { return len(s.Fraction) - s.DigitsStart }

// MantissaDigits is the total count of significant digits contributing
// to the mantissa.
func (s FloatState) MantissaDigits() int { return s.IntegerDigits() + s.FractionDigits() }

// TruncatedDigits is how many trailing mantissa digits a truncating
// accumulation (accumulateMantissa) dropped.
func (s FloatState) TruncatedDigits() int { return s.Truncated }

// MantissaBytes returns the significant mantissa digits in order
// (integer digits followed by fraction digits, skipping DigitsStart
// leading fraction zeros when Integer is empty) without allocating
// unless the two pieces both have content.
func (s FloatState) MantissaBytes() []byte {
	frac := s.Fraction[s.DigitsStart:]
	switch {
	case len(s.Integer) == 0:
		return frac
	case len(frac) == 0:
		return s.Integer
	default:
		buf := make([]byte, 0, len(s.Integer)+len(frac))
		buf = append(buf, s.Integer...)
		buf = append(buf, frac...)
		return buf
	}
}

// MantissaExponent is the power of the radix by which the integer
// formed from MantissaBytes (as accumulated, including any truncation)
// must be scaled to reconstruct the literal's value. The result
// saturates to math.MinInt32/math.MaxInt32 rather than wrapping, since
// RawExponent_ may itself already be a saturated boundary value.
func (s FloatState) MantissaExponent() int32 {
	e := int64(s.RawExponent_) - int64(len(s.Fraction)) + int64(s.Truncated)
	return saturateInt32(e)
}

// ScientificExponent is the exponent the literal would carry in
// normalized scientific notation (one nonzero digit before the point).
// DigitsStart only ever contributes when Integer is empty (it is 0
// otherwise), in which case each leading fraction zero pushes the
// first significant digit one place further right of the point, i.e.
// one exponent step more negative. Hence the subtraction, not the
// addition (0.00123 is 1.23e-3: two leading zeros, exponent -3). Like
// MantissaExponent, the result saturates rather than wrapping.
func (s FloatState) ScientificExponent() int32 {
	e := int64(s.RawExponent_) + int64(s.IntegerDigits()) - int64(s.DigitsStart) - 1
	return saturateInt32(e)
}

func saturateInt32(e int64) int32 {
	switch {
	case e > math.MaxInt32:
		return math.MaxInt32
	case e < math.MinInt32:
		return math.MinInt32
	default:
		return int32(e)
	}
}

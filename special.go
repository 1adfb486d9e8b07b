// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexnum

import "math"

// SpecialValues holds the spellings a caller recognizes for the
// non-finite float values. The core digit-grammar parsers never
// special-case a reserved word; this type makes the spelling of NaN
// and the two infinities an explicit, caller-supplied parameter instead
// of a package global.
type SpecialValues struct {
	NaN              string
	Infinity         string
	NegativeInfinity string
}

// DefaultSpecialValues returns the spellings "nan", "inf" and "-inf"
// (matched case-insensitively by ParseSpecialFloat64). The longer
// "infinity" and a "+inf" with an explicit plus sign, both of which
// strconv accepts, are not among them.
func DefaultSpecialValues() SpecialValues {
	return SpecialValues{NaN: "nan", Infinity: "inf", NegativeInfinity: "-inf"}
}

// ParseSpecialFloat64 checks bytes against sv's spellings (ASCII
// case-insensitively) before falling back to ParseFloat64, the outer
// layer a caller puts in front of the core when its literal grammar
// allows NaN/Inf tokens that the core's own digit grammar has no
// business knowing about.
func ParseSpecialFloat64(radix int, bytes []byte, sv SpecialValues) (float64, error) {
	switch {
	case equalFoldASCII(bytes, sv.NaN):
		return math.NaN(), nil
	case equalFoldASCII(bytes, sv.Infinity):
		return math.Inf(1), nil
	case equalFoldASCII(bytes, sv.NegativeInfinity):
		return math.Inf(-1), nil
	default:
		return ParseFloat64(radix, bytes)
	}
}

func equalFoldASCII(bytes []byte, spelling string) bool {
	if spelling == "" || len(bytes) != len(spelling) {
		return false
	}
	for i := 0; i < len(bytes); i++ {
		if toLowerASCII(bytes[i]) != toLowerASCII(spelling[i]) {
			return false
		}
	}
	return true
}

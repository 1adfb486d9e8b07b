// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexnum

// This file provides one named, concretely-typed entry point per width
// and signedness, written out explicitly rather than generated, so
// callers get ordinary Go function signatures instead of having to
// instantiate the generic parsers themselves.

func ParseU8(radix int, bytes []byte) (uint8, error)   { return ParseUnsigned[uint8](radix, bytes) }
func ParseU16(radix int, bytes []byte) (uint16, error) { return ParseUnsigned[uint16](radix, bytes) }
func ParseU32(radix int, bytes []byte) (uint32, error) { return ParseUnsigned[uint32](radix, bytes) }
func ParseU64(radix int, bytes []byte) (uint64, error) { return ParseUnsigned[uint64](radix, bytes) }
func ParseUint(radix int, bytes []byte) (uint, error)  { return ParseUnsigned[uint](radix, bytes) }

func ParseI8(radix int, bytes []byte) (int8, error)   { return ParseSigned[int8](radix, bytes) }
func ParseI16(radix int, bytes []byte) (int16, error) { return ParseSigned[int16](radix, bytes) }
func ParseI32(radix int, bytes []byte) (int32, error) { return ParseSigned[int32](radix, bytes) }
func ParseI64(radix int, bytes []byte) (int64, error) { return ParseSigned[int64](radix, bytes) }
func ParseInt(radix int, bytes []byte) (int, error)   { return ParseSigned[int](radix, bytes) }

// splitSign consumes a leading '+' or '-' from bytes (an empty bytes is
// left alone; the caller's subsequent parse reports Empty at index 0).
// It returns the sign, the remaining bytes, and how many bytes were
// consumed (0 or 1), which the caller adds back into any error index it
// surfaces so positions stay in the original input's coordinates.
func splitSign(bytes []byte) (Sign, []byte, int) {
	if len(bytes) == 0 {
		return Positive, bytes, 0
	}
	switch bytes[0] {
	case '+':
		return Positive, bytes[1:], 1
	case '-':
		return Negative, bytes[1:], 1
	default:
		return Positive, bytes, 0
	}
}

func reindex(err error, offset int) error {
	if offset == 0 || err == nil {
		return err
	}
	if pe, ok := err.(*ParseError); ok {
		return newParseError(pe.Code, pe.Index+offset)
	}
	return err
}

// ParseFloat64 parses bytes as a float64 literal in the given radix,
// accepting an optional leading sign, via the correctly-rounded
// accurate path. NaN/Inf spellings are not recognized here; see
// ParseSpecialFloat64 in special.go for that outer layer.
func ParseFloat64(radix int, bytes []byte) (float64, error) {
	return parseSignedFloat[float64](radix, bytes, ParseFloat[float64])
}

// ParseFloat32 is ParseFloat64 for float32.
func ParseFloat32(radix int, bytes []byte) (float32, error) {
	return parseSignedFloat[float32](radix, bytes, ParseFloat[float32])
}

// ParseFloat64Fast is ParseFloat64 via the fast, not-necessarily-exact
// path (see ParseFloatFast).
func ParseFloat64Fast(radix int, bytes []byte) (float64, error) {
	return parseSignedFloat[float64](radix, bytes, ParseFloatFast[float64])
}

// ParseFloat32Fast is ParseFloat32 via the fast path.
func ParseFloat32Fast(radix int, bytes []byte) (float32, error) {
	return parseSignedFloat[float32](radix, bytes, ParseFloatFast[float32])
}

func parseSignedFloat[F Floatish](radix int, bytes []byte, body func(int, []byte) (F, error)) (F, error) {
	sign, rest, offset := splitSign(bytes)
	if len(rest) == 0 {
		var zero F
		return zero, newParseError(Empty, offset)
	}
	v, err := body(radix, rest)
	if err != nil {
		var zero F
		return zero, reindex(err, offset)
	}
	if sign == Negative {
		v = -v
	}
	return v, nil
}

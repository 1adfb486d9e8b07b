// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexnum

import "fmt"

// debugAssertions gates extra invariant checks (currently the limb
// normalization check in bigInt.norm) that a release build skips.
const debugAssertions = false

// ErrorCode classifies why a parse failed. The zero value, Empty, is
// deliberately also the error for an empty input so a default
// ParseError never silently reads as a successful parse.
type ErrorCode int

const (
	// Empty means the input (or, for an integer or a signed float, the
	// part after its leading sign) contained no bytes. An empty fraction
	// or exponent is reported as EmptyFraction or EmptyExponent instead.
	Empty ErrorCode = iota
	// InvalidDigit means a byte was encountered that is not a valid
	// digit for the given radix and not part of the grammar at that
	// position (sign, dot, exponent marker).
	InvalidDigit
	// Overflow means the accumulated magnitude exceeded the maximum
	// representable value for the requested positive result.
	Overflow
	// Underflow means the accumulated magnitude exceeded the maximum
	// representable magnitude for the requested negative result.
	Underflow
	// EmptyFraction means a '.' was found with no digits following it
	// (and no integer part preceding it either).
	EmptyFraction
	// EmptyExponent means an exponent marker was found with no digits
	// following it (after an optional sign).
	EmptyExponent
)

func (c ErrorCode) String() string {
	switch c {
	case Empty:
		return "empty"
	case InvalidDigit:
		return "invalid digit"
	case Overflow:
		return "overflow"
	case Underflow:
		return "underflow"
	case EmptyFraction:
		return "empty fraction"
	case EmptyExponent:
		return "empty exponent"
	default:
		return fmt.Sprintf("ErrorCode(%d)", int(c))
	}
}

// ParseError is the result of a failed parse: a classification plus the
// 0-based byte index into the caller's input at which the failure was
// detected. Index is the first invalid byte for InvalidDigit, the byte
// that would have overflowed for Overflow/Underflow, the position just
// past any leading sign for Empty, the position immediately after the
// '.' for EmptyFraction, and the position after the exponent marker
// and its sign, if any, for EmptyExponent.
type ParseError struct {
	Code  ErrorCode
	Index int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("lexnum: %s at byte %d", e.Code, e.Index)
}

func newParseError(code ErrorCode, index int) *ParseError {
	return &ParseError{Code: code, Index: index}
}

// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ffi provides the two boundary call shapes lexnum's core is
// meant to sit behind: a plain byte slice already isolated to exactly
// one literal (Slice), and a sub-range of a larger buffer the caller
// wants error positions reported against in the larger buffer's own
// coordinates (Range). Neither type does anything lexnum's exported
// functions don't already do directly; they exist only to give an
// outer collaborator (a JSON decoder, a CSV reader, an FFI-facing C
// shim) one place to express "here is my literal" without hand-rolling
// the offset bookkeeping every time.
package ffi

import "github.com/kloudlabs/lexnum"

// Slice is a literal already isolated to its own byte range.
type Slice struct {
	Bytes []byte
	Radix int
}

// Range is a literal that lives inside a larger buffer, identified by
// its absolute start/end offsets; errors from RangeParseInt64 and
// RangeParseFloat64 are reported using those absolute offsets rather
// than 0-based ones.
type Range struct {
	Buffer     []byte
	Start, End int
	Radix      int
}

func (s Slice) bytes() []byte { return s.Bytes }
func (r Range) bytes() []byte { return r.Buffer[r.Start:r.End] }

type shape interface {
	bytes() []byte
}

// ParseInt64 parses shape's bytes as a signed 64-bit integer.
func ParseInt64(s Slice) (int64, error) {
	return lexnum.ParseI64(s.Radix, s.bytes())
}

// ParseUint64 parses shape's bytes as an unsigned 64-bit integer.
func ParseUint64(s Slice) (uint64, error) {
	return lexnum.ParseU64(s.Radix, s.bytes())
}

// ParseFloat64 parses shape's bytes as a float64, rejecting a bare
// NaN/Inf token (see lexnum.ParseSpecialFloat64 for that layer).
func ParseFloat64(s Slice) (float64, error) {
	return lexnum.ParseFloat64(s.Radix, s.bytes())
}

// RangeParseInt64 is ParseInt64 for a Range, translating any resulting
// error's index from the sub-range's local coordinates into the
// buffer's absolute coordinates.
func RangeParseInt64(r Range) (int64, error) {
	v, err := lexnum.ParseI64(r.Radix, r.bytes())
	return v, reindex(err, r.Start)
}

// RangeParseFloat64 is ParseFloat64 for a Range.
func RangeParseFloat64(r Range) (float64, error) {
	v, err := lexnum.ParseFloat64(r.Radix, r.bytes())
	return v, reindex(err, r.Start)
}

func reindex(err error, offset int) error {
	if err == nil || offset == 0 {
		return err
	}
	if pe, ok := err.(*lexnum.ParseError); ok {
		shifted := *pe
		shifted.Index += offset
		return &shifted
	}
	return err
}

var _ shape = Slice{}
var _ shape = Range{}

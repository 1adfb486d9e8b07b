// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package lexnum implements the core of a radix-generic numeric literal
parser: byte sequences in, native integers and floats out, without going
through the standard library's strconv machinery.

It exists for callers that parse a lot of numbers: JSON decoders, CSV
readers, structured log scanners, the kind of caller for whom
strconv.ParseFloat's generality (locale-free, but still allocation-heavy
for some call shapes) or its base-10-only ParseInt costs more than a
specialized reader wants to pay, and who already has the exact byte
range of the literal in hand instead of a string.

The package is organized around three pieces, leaves-first:

  - DigitValue / ExponentMarker (digit.go) classify single bytes.
  - ParseInteger / ParseUnsigned / ParseSigned (integer.go) consume a
    signed or unsigned integer literal, reporting the byte offset of
    the first invalid byte or overflowing digit.
  - ExtractRawFloatState (floatstate.go) splits a float literal into its
    integer/fraction/exponent substrings, and ParseFloat/ParseFloatFast
    (synth.go) turn those substrings into a native float, either via a
    correctly-rounded path backed by the arbitrary-precision integer in
    bigint.go or a fast native-arithmetic path. ParseFloat32/ParseFloat64
    and their Fast variants (api.go) add leading-sign handling on top.

As with most parsers in this shape, every entry point takes a radix in
[2, 36] (10 is always valid) and the raw bytes of the literal; it is the
caller's job to have already located where the literal starts and ends.

The zero value of every result type here is meaningless on its own.
These are return values, not builders; there is nothing to construct
incrementally.
*/
package lexnum

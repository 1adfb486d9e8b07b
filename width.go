// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexnum

// Unsigned is the set of native unsigned integer types the integer
// parser accepts as a type argument.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Signed is the set of native signed integer types the integer parser
// accepts.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// Integer is the union Signed|Unsigned, the full width surface that
// ParseInteger accepts directly; ParseSigned/ParseUnsigned are the
// narrower, named entry points most callers want (and the ones
// api.go's ParseU8..ParseI64 are built from).
type Integer interface {
	Signed | Unsigned
}

// Floatish is the set of native float types FloatSynthesizer targets.
type Floatish interface {
	~float32 | ~float64
}

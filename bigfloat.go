// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexnum

// bigFloat pairs an exact bigInt mantissa with a binary exponent:
// value == mant * 2^exp. It is used on the accurate float path's slow
// leg to represent both the literal's exact value and the
// candidate-plus-half-ULP boundary it is compared against.
type bigFloat struct {
	mant *bigInt
	exp  int32
}

// imulPow2 multiplies by 2^n by incrementing exp alone: no limb work at
// all, since a binary bigInt's value is unaffected by a power-of-two
// scale factor other than through its exponent.
func (z *bigFloat) imulPow2(n int32) {
	z.exp += n
}

// imulPowRadix multiplies by radix^n, n >= 0, via the cached radix
// powers in powtab.go. For a power-of-two radix this degenerates to a
// pure exponent bump (via imulPow2) instead of a limb multiply.
func (z *bigFloat) imulPowRadix(radix int, n uint32) {
	if n == 0 {
		return
	}
	if shift, ok := isPowerOfTwoRadix(radix); ok {
		z.imulPow2(int32(shift) * int32(n))
		return
	}
	z.mant = new(bigInt).mul(z.mant, bigPowRadix(radix, n))
}

// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexnum

import "math/bits"

// bigWord is this package's limb type for the arbitrary-precision
// integer arithmetic the accurate float path needs. These bigints are
// only ever compared and scaled, never formatted back to a string, so
// there is no reason to pick a decimal-friendly limb base: limbs are
// plain binary base-2^64 words regardless of host platform, built on
// math/bits' 64-bit carry-propagating primitives.
type bigWord = uint64

const bigWordBits = 64

// bigInt is an arbitrary-precision non-negative integer stored as
// little-endian limbs with no leading (most-significant) zero limb;
// the zero value represents 0.
type bigInt struct {
	limbs []bigWord
}

func newBigIntFromUint64(v uint64) *bigInt {
	z := &bigInt{}
	if v != 0 {
		z.limbs = []bigWord{v}
	}
	return z
}

// bigIntFromDigits builds the exact big integer formed by interpreting
// digits (already grammar-validated for radix) as a base-radix number,
// most significant digit first.
func bigIntFromDigits(radix int, digits []byte) *bigInt {
	z := &bigInt{}
	r := bigWord(radix)
	for _, c := range digits {
		d, _ := DigitValue(c, radix)
		z.mulAddSmall(r, bigWord(d))
	}
	return z
}

func (z *bigInt) isZero() bool { return len(z.limbs) == 0 }

func (z *bigInt) set(x *bigInt) *bigInt {
	z.limbs = append(z.limbs[:0], x.limbs...)
	return z
}

func (z *bigInt) norm() *bigInt {
	n := len(z.limbs)
	for n > 0 && z.limbs[n-1] == 0 {
		n--
	}
	z.limbs = z.limbs[:n]
	if debugAssertions && n > 0 && z.limbs[n-1] == 0 {
		panic("lexnum: bigInt.norm left a zero top limb")
	}
	return z
}

// mulAddSmall computes z = z*m + a in place, for a single-limb
// multiplier and addend; the digit-by-digit accumulation primitive
// bigIntFromDigits folds every input digit through.
func (z *bigInt) mulAddSmall(m, a bigWord) {
	carry := a
	for i, zi := range z.limbs {
		hi, lo := bits.Mul64(zi, m)
		lo, c := bits.Add64(lo, carry, 0)
		z.limbs[i] = lo
		carry = hi + bigWord(c)
	}
	if carry != 0 {
		z.limbs = append(z.limbs, carry)
	}
}

// add sets z = x + y and returns z.
func (z *bigInt) add(x, y *bigInt) *bigInt {
	n := len(x.limbs)
	if len(y.limbs) > n {
		n = len(y.limbs)
	}
	limbs := make([]bigWord, n)
	var carry uint64
	for i := 0; i < n; i++ {
		var xi, yi bigWord
		if i < len(x.limbs) {
			xi = x.limbs[i]
		}
		if i < len(y.limbs) {
			yi = y.limbs[i]
		}
		s, c := bits.Add64(xi, yi, carry)
		limbs[i] = s
		carry = c
	}
	if carry != 0 {
		limbs = append(limbs, bigWord(carry))
	}
	z.limbs = limbs
	return z.norm()
}

// mul sets z = x * y (schoolbook) and returns z.
func (z *bigInt) mul(x, y *bigInt) *bigInt {
	if x.isZero() || y.isZero() {
		z.limbs = nil
		return z
	}
	limbs := make([]bigWord, len(x.limbs)+len(y.limbs))
	for i, xi := range x.limbs {
		if xi == 0 {
			continue
		}
		var carry bigWord
		for j, yj := range y.limbs {
			hi, lo := bits.Mul64(xi, yj)
			lo, c1 := bits.Add64(lo, limbs[i+j], 0)
			lo, c2 := bits.Add64(lo, carry, 0)
			limbs[i+j] = lo
			carry = hi + bigWord(c1) + bigWord(c2)
		}
		limbs[i+len(y.limbs)] += carry
	}
	z.limbs = limbs
	return z.norm()
}

// shl sets z = x << n (bits) and returns z.
func (z *bigInt) shl(x *bigInt, n uint) *bigInt {
	if x.isZero() {
		z.limbs = nil
		return z
	}
	wordShift := n / bigWordBits
	bitShift := n % bigWordBits
	limbs := make([]bigWord, uint(len(x.limbs))+wordShift+1)
	if bitShift == 0 {
		copy(limbs[wordShift:], x.limbs)
	} else {
		var carry bigWord
		for i, xi := range x.limbs {
			limbs[uint(i)+wordShift] = (xi << bitShift) | carry
			carry = xi >> (bigWordBits - bitShift)
		}
		limbs[uint(len(x.limbs))+wordShift] = carry
	}
	z.limbs = limbs
	return z.norm()
}

// shr sets z = x >> n (bits), discarding the shifted-out low bits, and
// returns z.
func (z *bigInt) shr(x *bigInt, n uint) *bigInt {
	wordShift := n / bigWordBits
	bitShift := n % bigWordBits
	if uint(len(x.limbs)) <= wordShift {
		z.limbs = nil
		return z
	}
	src := x.limbs[wordShift:]
	limbs := make([]bigWord, len(src))
	if bitShift == 0 {
		copy(limbs, src)
	} else {
		for i := range src {
			lo := src[i] >> bitShift
			var hi bigWord
			if i+1 < len(src) {
				hi = src[i+1] << (bigWordBits - bitShift)
			}
			limbs[i] = lo | hi
		}
	}
	z.limbs = limbs
	return z.norm()
}

// cmpBigInt returns -1, 0 or 1 as x is less than, equal to or greater
// than y.
func cmpBigInt(x, y *bigInt) int {
	if len(x.limbs) != len(y.limbs) {
		if len(x.limbs) < len(y.limbs) {
			return -1
		}
		return 1
	}
	for i := len(x.limbs) - 1; i >= 0; i-- {
		if x.limbs[i] != y.limbs[i] {
			if x.limbs[i] < y.limbs[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// bitLen returns the number of bits required to represent x, or 0 if
// x is zero.
func (x *bigInt) bitLen() int {
	n := len(x.limbs)
	if n == 0 {
		return 0
	}
	return (n-1)*bigWordBits + bits.Len64(x.limbs[n-1])
}

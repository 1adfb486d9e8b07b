// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexnum

import "testing"

func TestBigIntFromDigits(t *testing.T) {
	cases := map[string]struct {
		radix int
		in    string
		want  []bigWord
	}{
		"small decimal":     {10, "12345", []bigWord{12345}},
		"hex":                {16, "ff", []bigWord{255}},
		"zero":               {10, "0", nil},
		"two to the sixty four": {10, "18446744073709551616", []bigWord{0, 1}},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			got := bigIntFromDigits(c.radix, []byte(c.in))
			if !limbsEqual(got.limbs, c.want) {
				t.Errorf("bigIntFromDigits(%d, %q).limbs = %v, want %v", c.radix, c.in, got.limbs, c.want)
			}
		})
	}
}

func TestBigIntAdd(t *testing.T) {
	x := newBigIntFromUint64(1)
	y := newBigIntFromUint64(^uint64(0))
	z := new(bigInt).add(x, y)
	if !limbsEqual(z.limbs, []bigWord{0, 1}) {
		t.Errorf("1 + maxuint64 = %v, want [0 1]", z.limbs)
	}

	z2 := new(bigInt).add(newBigIntFromUint64(2), newBigIntFromUint64(3))
	if !limbsEqual(z2.limbs, []bigWord{5}) {
		t.Errorf("2 + 3 = %v, want [5]", z2.limbs)
	}
}

func TestBigIntMul(t *testing.T) {
	z := new(bigInt).mul(newBigIntFromUint64(3), newBigIntFromUint64(4))
	if !limbsEqual(z.limbs, []bigWord{12}) {
		t.Errorf("3 * 4 = %v, want [12]", z.limbs)
	}

	big := bigIntFromDigits(10, []byte("18446744073709551616")) // 2^64
	z2 := new(bigInt).mul(big, big)                             // 2^128
	want := new(bigInt).shl(newBigIntFromUint64(1), 128)
	if cmpBigInt(z2, want) != 0 {
		t.Errorf("2^64 * 2^64 != 2^128: got %v want %v", z2.limbs, want.limbs)
	}

	z3 := new(bigInt).mul(newBigIntFromUint64(0), newBigIntFromUint64(5))
	if !z3.isZero() {
		t.Errorf("0 * 5 should be zero, got %v", z3.limbs)
	}
}

func TestBigIntShift(t *testing.T) {
	one := newBigIntFromUint64(1)
	shifted := new(bigInt).shl(one, 64)
	if !limbsEqual(shifted.limbs, []bigWord{0, 1}) {
		t.Errorf("1 << 64 = %v, want [0 1]", shifted.limbs)
	}

	back := new(bigInt).shr(shifted, 64)
	if !limbsEqual(back.limbs, []bigWord{1}) {
		t.Errorf("(1<<64) >> 64 = %v, want [1]", back.limbs)
	}

	dropped := new(bigInt).shr(newBigIntFromUint64(5), 1)
	if !limbsEqual(dropped.limbs, []bigWord{2}) {
		t.Errorf("5 >> 1 = %v, want [2]", dropped.limbs)
	}

	shiftedBits := new(bigInt).shl(newBigIntFromUint64(1), 65)
	if !limbsEqual(shiftedBits.limbs, []bigWord{0, 2}) {
		t.Errorf("1 << 65 = %v, want [0 2]", shiftedBits.limbs)
	}
}

func TestCmpBigInt(t *testing.T) {
	a := newBigIntFromUint64(5)
	b := newBigIntFromUint64(10)
	if cmpBigInt(a, b) >= 0 {
		t.Errorf("cmpBigInt(5, 10) should be negative")
	}
	if cmpBigInt(b, a) <= 0 {
		t.Errorf("cmpBigInt(10, 5) should be positive")
	}
	if cmpBigInt(a, a) != 0 {
		t.Errorf("cmpBigInt(5, 5) should be 0")
	}
	big := bigIntFromDigits(10, []byte("18446744073709551616"))
	if cmpBigInt(big, b) <= 0 {
		t.Errorf("cmpBigInt(2^64, 10) should be positive")
	}
}

func TestBigIntBitLen(t *testing.T) {
	if got := new(bigInt).bitLen(); got != 0 {
		t.Errorf("bitLen(0) = %d, want 0", got)
	}
	if got := bigIntFromDigits(10, []byte("255")).bitLen(); got != 8 {
		t.Errorf("bitLen(255) = %d, want 8", got)
	}
	if got := bigIntFromDigits(10, []byte("256")).bitLen(); got != 9 {
		t.Errorf("bitLen(256) = %d, want 9", got)
	}
	if got := newBigIntFromUint64(1).bitLen(); got != 1 {
		t.Errorf("bitLen(1) = %d, want 1", got)
	}
}

func limbsEqual(a, b []bigWord) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

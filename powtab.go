// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexnum

import "sync"

// radixPowCache memoizes bigPowRadix results: rather than
// hand-transcribing a constant power table per radix, this package
// generates each power on first use with its own bigInt and keeps it
// around for the remainder of the program's lifetime. A sync.Map is
// appropriate here since lookups vastly outnumber misses once a
// program has warmed up for the radixes it actually parses.
var radixPowCache sync.Map // map[radixPowKey]*bigInt

type radixPowKey struct {
	radix int
	n     uint32
}

// bigPowRadix returns radix^n as an exact bigInt, computed by
// exponentiation by squaring and cached for reuse.
func bigPowRadix(radix int, n uint32) *bigInt {
	key := radixPowKey{radix, n}
	if v, ok := radixPowCache.Load(key); ok {
		return v.(*bigInt)
	}
	z := computeBigPowRadix(radix, n)
	actual, _ := radixPowCache.LoadOrStore(key, z)
	return actual.(*bigInt)
}

func computeBigPowRadix(radix int, n uint32) *bigInt {
	result := newBigIntFromUint64(1)
	if n == 0 {
		return result
	}
	base := newBigIntFromUint64(uint64(radix))
	e := n
	for {
		if e&1 == 1 {
			result = new(bigInt).mul(result, base)
		}
		e >>= 1
		if e == 0 {
			break
		}
		base = new(bigInt).mul(base, base)
	}
	return result
}

// isPowerOfTwoRadix reports whether radix is itself a power of two,
// in which case the accurate path's radix-power multiplications can be
// folded into a pure binary exponent shift instead of big-integer
// multiplication.
func isPowerOfTwoRadix(radix int) (shift uint, ok bool) {
	if radix < MinRadix || radix > MaxRadix {
		return 0, false
	}
	for s := uint(1); s <= 5; s++ {
		if 1<<s == radix {
			return s, true
		}
	}
	return 0, false
}

// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexnum

import "testing"

func TestNamedIntegerWrappers(t *testing.T) {
	if v, err := ParseU8(10, []byte("200")); err != nil || v != 200 {
		t.Errorf("ParseU8 = (%v, %v), want (200, nil)", v, err)
	}
	if v, err := ParseI32(10, []byte("-42")); err != nil || v != -42 {
		t.Errorf("ParseI32 = (%v, %v), want (-42, nil)", v, err)
	}
	if v, err := ParseUint(16, []byte("ff")); err != nil || v != 255 {
		t.Errorf("ParseUint = (%v, %v), want (255, nil)", v, err)
	}
	if v, err := ParseInt(10, []byte("+7")); err != nil || v != 7 {
		t.Errorf("ParseInt = (%v, %v), want (7, nil)", v, err)
	}
}

func TestSplitSign(t *testing.T) {
	sign, rest, n := splitSign([]byte("-5"))
	if sign != Negative || string(rest) != "5" || n != 1 {
		t.Errorf("splitSign(-5) = (%v, %q, %d), want (Negative, \"5\", 1)", sign, rest, n)
	}
	sign, rest, n = splitSign([]byte("5"))
	if sign != Positive || string(rest) != "5" || n != 0 {
		t.Errorf("splitSign(5) = (%v, %q, %d), want (Positive, \"5\", 0)", sign, rest, n)
	}
	sign, rest, n = splitSign(nil)
	if sign != Positive || rest != nil || n != 0 {
		t.Errorf("splitSign(nil) = (%v, %v, %d), want (Positive, nil, 0)", sign, rest, n)
	}
}

func TestParseFloat64Signed(t *testing.T) {
	got, err := ParseFloat64(10, []byte("-3.5"))
	if err != nil {
		t.Fatalf("ParseFloat64(-3.5) error: %v", err)
	}
	if got != -3.5 {
		t.Errorf("ParseFloat64(-3.5) = %v, want -3.5", got)
	}

	got2, err := ParseFloat64(10, []byte("+2.25"))
	if err != nil {
		t.Fatalf("ParseFloat64(+2.25) error: %v", err)
	}
	if got2 != 2.25 {
		t.Errorf("ParseFloat64(+2.25) = %v, want 2.25", got2)
	}
}

func TestParseFloat64EmptyAfterSign(t *testing.T) {
	_, err := ParseFloat64(10, []byte("-"))
	pe := requireParseError(t, err)
	if pe.Code != Empty || pe.Index != 1 {
		t.Errorf("got (%v, %d), want (Empty, 1)", pe.Code, pe.Index)
	}
}

func TestParseFloat64ReindexesError(t *testing.T) {
	_, err := ParseFloat64(10, []byte("-1.2.3"))
	pe := requireParseError(t, err)
	if pe.Code != InvalidDigit {
		t.Errorf("Code = %v, want InvalidDigit", pe.Code)
	}
	if pe.Index != 4 {
		t.Errorf("Index = %d, want 4 (offset by the leading '-')", pe.Index)
	}
}

func TestParseFloat64Fast(t *testing.T) {
	got, err := ParseFloat64Fast(10, []byte("1.5"))
	if err != nil {
		t.Fatalf("ParseFloat64Fast error: %v", err)
	}
	if got != 1.5 {
		t.Errorf("ParseFloat64Fast(1.5) = %v, want 1.5", got)
	}
}

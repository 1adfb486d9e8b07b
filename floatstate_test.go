// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexnum

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestExtractRawFloatStateOK(t *testing.T) {
	cases := map[string]struct {
		radix int
		input string
		want  RawFloatState
	}{
		"integer, fraction, exponent": {
			10, "123.456e10",
			RawFloatState{Integer: []byte("123"), Fraction: []byte("456"), ExponentWithSign: []byte("10")},
		},
		"trims leading integer zero": {
			10, "0.100",
			RawFloatState{Integer: nil, Fraction: []byte("1")},
		},
		"fraction only": {
			10, ".5",
			RawFloatState{Fraction: []byte("5")},
		},
		"integer only": {
			10, "42",
			RawFloatState{Integer: []byte("42")},
		},
		"signed exponent": {
			10, "1e-10",
			RawFloatState{Integer: []byte("1"), ExponentWithSign: []byte("-10")},
		},
		"positive signed exponent": {
			10, "1e+10",
			RawFloatState{Integer: []byte("1"), ExponentWithSign: []byte("+10")},
		},
		"radix 16 caret exponent": {
			16, "ff^a",
			RawFloatState{Integer: []byte("ff"), ExponentWithSign: []byte("a")},
		},
		"uppercase exponent marker": {
			10, "1E5",
			RawFloatState{Integer: []byte("1"), ExponentWithSign: []byte("5")},
		},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := ExtractRawFloatState(c.radix, []byte(c.input), 0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(c.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("ExtractRawFloatState(%q) mismatch (-want +got):\n%s", c.input, diff)
			}
		})
	}
}

func TestExtractRawFloatStateErrors(t *testing.T) {
	cases := map[string]struct {
		input string
		code  ErrorCode
		index int
	}{
		"bare dot":                {".", EmptyFraction, 1},
		"marker with no exponent": {"5e", EmptyExponent, 2},
		"marker with bare sign":   {"5e+", EmptyExponent, 3},
		"trailing garbage":        {"5z", InvalidDigit, 1},
		"leading garbage":         {"abc", InvalidDigit, 0},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ExtractRawFloatState(10, []byte(c.input), 0)
			pe, ok := err.(*ParseError)
			if !ok {
				t.Fatalf("expected *ParseError, got %v", err)
			}
			if pe.Code != c.code || pe.Index != c.index {
				t.Errorf("got (%v,%d), want (%v,%d)", pe.Code, pe.Index, c.code, c.index)
			}
		})
	}
}

func TestExtractRawFloatStateBaseOffset(t *testing.T) {
	_, err := ExtractRawFloatState(10, []byte("."), 100)
	pe := err.(*ParseError)
	if pe.Index != 101 {
		t.Errorf("Index = %d, want 101", pe.Index)
	}
}

func TestScientificExponent(t *testing.T) {
	cases := map[string]struct {
		integer, fraction string
		rawExponent       int32
		want              int32
	}{
		"1.2345":   {"1", "2345", 0, 0},
		"0.12345":  {"", "12345", 0, -1},
		"0.00123":  {"", "00123", 0, -3},
		"123.0":    {"123", "", 0, 2},
		"1.5e3":    {"1", "5", 3, 3},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			raw := RawFloatState{Integer: []byte(c.integer), Fraction: []byte(c.fraction)}
			state := raw.Process(0, c.rawExponent)
			if got := state.ScientificExponent(); got != c.want {
				t.Errorf("ScientificExponent() = %d, want %d", got, c.want)
			}
		})
	}
}

func TestMantissaExponent(t *testing.T) {
	raw := RawFloatState{Integer: []byte("1"), Fraction: []byte("2345")}
	state := raw.Process(0, 0)
	if got := state.MantissaExponent(); got != -4 {
		t.Errorf("MantissaExponent() = %d, want -4", got)
	}

	raw2 := RawFloatState{Fraction: []byte("00123")}
	state2 := raw2.Process(0, 0)
	if got := state2.MantissaExponent(); got != -5 {
		t.Errorf("MantissaExponent() = %d, want -5", got)
	}
}

func TestMantissaExponentSaturatesInsteadOfWrapping(t *testing.T) {
	raw := RawFloatState{Fraction: []byte("1")}
	state := raw.Process(0, math.MinInt32)
	if got := state.MantissaExponent(); got != math.MinInt32 {
		t.Errorf("MantissaExponent() = %d, want MinInt32", got)
	}

	raw2 := RawFloatState{Integer: []byte("1")}
	state2 := raw2.Process(0, math.MaxInt32)
	if got := state2.ScientificExponent(); got != math.MaxInt32 {
		t.Errorf("ScientificExponent() = %d, want MaxInt32", got)
	}
}

func TestRawExponentSaturates(t *testing.T) {
	raw := RawFloatState{Integer: []byte("1"), ExponentWithSign: []byte("99999999999999999999")}
	if got := raw.RawExponent(10); got != 1<<31-1 {
		t.Errorf("RawExponent() = %d, want MaxInt32", got)
	}
	raw2 := RawFloatState{Integer: []byte("1"), ExponentWithSign: []byte("-99999999999999999999")}
	if got := raw2.RawExponent(10); got != -(1 << 31) {
		t.Errorf("RawExponent() = %d, want MinInt32", got)
	}
}

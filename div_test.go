// Copyright (c) 2025 The bignum Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum

import "testing"

func TestDivMod(t *testing.T) {
	tests := []struct {
		a, b, quo, rem string
	}{
		{"10", "3", "3", "1"},
		{"-10", "3", "-3", "-1"},
		{"10", "-3", "-3", "1"},
		{"-10", "-3", "3", "-1"},
		{"0", "7", "0", "0"},
		{"7", "7", "1", "0"},
		{"3", "10", "0", "3"},
		{"18446744073709551616", "4294967296", "4294967296", "0"},
	}
	for _, tc := range tests {
		a, _ := New().Parse(tc.a, Decimal)
		b, _ := New().Parse(tc.b, Decimal)
		quo, rem := New(), New()
		if err := a.DivMod(b, quo, rem); err != nil {
			t.Fatalf("DivMod(%s, %s): %v", tc.a, tc.b, err)
		}
		if got := quo.String(); got != tc.quo {
			t.Errorf("DivMod(%s, %s) quotient = %s, want %s", tc.a, tc.b, got, tc.quo)
		}
		if got := rem.String(); got != tc.rem {
			t.Errorf("DivMod(%s, %s) remainder = %s, want %s", tc.a, tc.b, got, tc.rem)
		}
	}
}

func TestDivModByZero(t *testing.T) {
	a, _ := New().Parse("10", Decimal)
	z, _ := New().Parse("0", Decimal)
	quo, rem := New(), New()
	if err := a.DivMod(z, quo, rem); err == nil {
		t.Fatalf("expected error dividing by zero")
	}
}

func TestDivideOnce(t *testing.T) {
	a, _ := New().Parse("f", Hex)
	b, _ := New().Parse("3", Hex)
	rem := New()
	q, err := a.divideOnce(b, rem)
	if err != nil {
		t.Fatalf("divideOnce: %v", err)
	}
	if q != 5 || !rem.IsZero() {
		t.Errorf("divideOnce(0xf, 0x3) = (%d, %s), want (5, 0)", q, rem.String())
	}
}

func TestPushHexDigitAndReadback(t *testing.T) {
	z := New()
	for _, d := range []uint32{1, 0xa, 0xf} {
		if err := z.pushHexDigit(d); err != nil {
			t.Fatalf("pushHexDigit(%x): %v", d, err)
		}
	}
	want := "1AF"
	got, err := z.Text(Hex)
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if got != want {
		t.Errorf("pushHexDigit sequence = %s, want %s", got, want)
	}
	if got, ok := z.hexDigitFromLSB(0); !ok || got != 0xf {
		t.Errorf("hexDigitFromLSB(0) = (%x, %v), want (f, true)", got, ok)
	}
}

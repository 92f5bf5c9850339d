// Copyright (c) 2025 The bignum Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum

import (
	"errors"
	"testing"
)

func TestModEuclidean(t *testing.T) {
	tests := []struct {
		a, m, want string
	}{
		{"10", "3", "1"},
		{"-10", "3", "2"},
		{"10", "-3", "-2"},
		{"-10", "-3", "-1"},
	}
	for _, tc := range tests {
		a, _ := New().Parse(tc.a, Decimal)
		m, _ := New().Parse(tc.m, Decimal)
		z := New()
		if err := z.Mod(a, m); err != nil {
			t.Fatalf("Mod(%s, %s): %v", tc.a, tc.m, err)
		}
		if got := z.String(); got != tc.want {
			t.Errorf("Mod(%s, %s) = %s, want %s", tc.a, tc.m, got, tc.want)
		}
	}
}

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b, want string
	}{
		{"0", "0", "0"},
		{"0", "5", "5"},
		{"5", "0", "5"},
		{"48", "18", "6"},
		{"17", "5", "1"},
	}
	for _, tc := range tests {
		a, _ := New().Parse(tc.a, Decimal)
		b, _ := New().Parse(tc.b, Decimal)
		z := New().GCD(a, b)
		if got := z.String(); got != tc.want {
			t.Errorf("GCD(%s, %s) = %s, want %s", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestInverse(t *testing.T) {
	// 15 * 7 mod 26 = 105 mod 26 = 1.
	x, _ := New().Parse("15", Decimal)
	m, _ := New().Parse("26", Decimal)
	z := New()
	if err := z.Inverse(x, m); err != nil {
		t.Fatalf("Inverse(15, 26): %v", err)
	}
	if got, want := z.String(), "7"; got != want {
		t.Errorf("Inverse(15, 26) = %s, want %s", got, want)
	}
}

func TestInverseNotCoprime(t *testing.T) {
	x, _ := New().Parse("4", Decimal)
	m, _ := New().Parse("8", Decimal)
	z := New()
	if err := z.Inverse(x, m); err == nil {
		t.Fatalf("expected error for non-coprime inverse")
	}
}

func TestInverseZeroModulus(t *testing.T) {
	x, _ := New().Parse("4", Decimal)
	m := New()
	z := New()
	err := z.Inverse(x, m)
	if !errors.Is(err, ErrNotInvertible) {
		t.Errorf("Inverse(4, 0) error = %v, want ErrNotInvertible", err)
	}
}

func TestPowMod(t *testing.T) {
	tests := []struct {
		base, exp, mod, want string
	}{
		{"4", "13", "497", "445"},
		{"2", "10", "1000", "24"},
		{"5", "0", "7", "1"},
	}
	for _, tc := range tests {
		base, _ := New().Parse(tc.base, Decimal)
		exp, _ := New().Parse(tc.exp, Decimal)
		mod, _ := New().Parse(tc.mod, Decimal)
		z := New()
		if err := z.PowMod(base, exp, mod); err != nil {
			t.Fatalf("PowMod(%s, %s, %s): %v", tc.base, tc.exp, tc.mod, err)
		}
		if got := z.String(); got != tc.want {
			t.Errorf("PowMod(%s, %s, %s) = %s, want %s", tc.base, tc.exp, tc.mod, got, tc.want)
		}
	}
}

func TestPowModZeroModulus(t *testing.T) {
	base, _ := New().Parse("4", Decimal)
	exp, _ := New().Parse("2", Decimal)
	mod := New()
	z := New()
	err := z.PowMod(base, exp, mod)
	if !errors.Is(err, ErrRangeError) {
		t.Errorf("PowMod(4, 2, 0) error = %v, want ErrRangeError", err)
	}
}

func TestPowModNegativeExponent(t *testing.T) {
	// 4^-1 mod 7 == Inverse(4, 7) == 2, since 4*2 = 8 = 1 mod 7.
	base, _ := New().Parse("4", Decimal)
	exp, _ := New().Parse("-1", Decimal)
	mod, _ := New().Parse("7", Decimal)
	z := New()
	if err := z.PowMod(base, exp, mod); err != nil {
		t.Fatalf("PowMod negative exponent: %v", err)
	}
	if got, want := z.String(), "2"; got != want {
		t.Errorf("PowMod(4, -1, 7) = %s, want %s", got, want)
	}
}

// Copyright (c) 2025 The bignum Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		a, b, want string
	}{
		{"1", "1", "2"},
		{"5", "-3", "2"},
		{"-5", "3", "-2"},
		{"-5", "-3", "-8"},
		{"0", "0", "0"},
		{"4294967295", "1", "4294967296"},
	}
	for _, tc := range tests {
		a, _ := New().Parse(tc.a, Decimal)
		b, _ := New().Parse(tc.b, Decimal)
		z := New().Add(a, b)
		if got := z.String(); got != tc.want {
			t.Errorf("Add(%s, %s) = %s, want %s\n%s", tc.a, tc.b, got, tc.want, spew.Sdump(z))
		}
	}
}

func TestSub(t *testing.T) {
	tests := []struct {
		a, b, want string
	}{
		{"5", "3", "2"},
		{"3", "5", "-2"},
		{"-5", "-3", "-2"},
		{"0", "5", "-5"},
	}
	for _, tc := range tests {
		a, _ := New().Parse(tc.a, Decimal)
		b, _ := New().Parse(tc.b, Decimal)
		z := New().Sub(a, b)
		if got := z.String(); got != tc.want {
			t.Errorf("Sub(%s, %s) = %s, want %s\n%s", tc.a, tc.b, got, tc.want, spew.Sdump(z))
		}
	}
}

func TestMul(t *testing.T) {
	tests := []struct {
		a, b, want string
	}{
		{"0", "5", "0"},
		{"6", "7", "42"},
		{"-6", "7", "-42"},
		{"4294967296", "4294967296", "18446744073709551616"},
	}
	for _, tc := range tests {
		a, _ := New().Parse(tc.a, Decimal)
		b, _ := New().Parse(tc.b, Decimal)
		z := New().Mul(a, b)
		if got := z.String(); got != tc.want {
			t.Errorf("Mul(%s, %s) = %s, want %s\n%s", tc.a, tc.b, got, tc.want, spew.Sdump(z))
		}
	}
}

func TestPowUint32(t *testing.T) {
	tests := []struct {
		base string
		exp  uint32
		want string
	}{
		{"0", 0, "1"},
		{"0", 3, "0"},
		{"2", 10, "1024"},
		{"3", 0, "1"},
	}
	for _, tc := range tests {
		base, _ := New().Parse(tc.base, Decimal)
		z := New().PowUint32(base, tc.exp)
		if got := z.String(); got != tc.want {
			t.Errorf("PowUint32(%s, %d) = %s, want %s", tc.base, tc.exp, got, tc.want)
		}
	}
}

func TestShiftLeftRight(t *testing.T) {
	x, _ := New().Parse("1", Decimal)
	z := New().ShiftLeft(x, 40)
	if got, want := z.String(), "1099511627776"; got != want {
		t.Errorf("ShiftLeft(1, 40) = %s, want %s", got, want)
	}
	back := New().ShiftRight(z, 40)
	if got, want := back.String(), "1"; got != want {
		t.Errorf("ShiftRight round trip = %s, want %s", got, want)
	}
}

func TestFastHalve(t *testing.T) {
	x, _ := New().Parse("7", Decimal)
	z := New()
	bit := z.FastHalve(x)
	if bit != 1 || z.String() != "3" {
		t.Errorf("FastHalve(7) = (%d, %s), want (1, 3)", bit, z.String())
	}
}

func TestCmp(t *testing.T) {
	a, _ := New().Parse("-5", Decimal)
	b, _ := New().Parse("3", Decimal)
	if a.Cmp(b) >= 0 {
		t.Errorf("expected -5 < 3")
	}
	if b.Cmp(a) <= 0 {
		t.Errorf("expected 3 > -5")
	}
	if a.Cmp(a) != 0 {
		t.Errorf("expected a == a")
	}
}

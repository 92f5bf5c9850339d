// Copyright (c) 2025 The bignum Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum

import "strings"

// Parse sets z to the value represented by s in the given base and returns
// z. s may carry a leading '-' or '+', and, for Hex, an optional following
// "0x"/"0X" prefix. Digits are accumulated the way original_source's
// BaseConverter peels a digit string apart — here expressed directly
// against the limb engine as z = z*base + digit for each digit left to
// right — rather than by a second, string-only base conversion, since the
// engine already performs arbitrary-precision multiply and add.
func (z *Bignum) Parse(s string, base Base) (*Bignum, error) {
	if base != Binary && base != Decimal && base != Hex {
		return nil, makeError(ErrInvalidArgument, "unsupported base")
	}
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg, s = true, s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	if base == Hex && (strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")) {
		s = s[2:]
	}
	if s == "" {
		return nil, makeError(ErrInvalidDigit, "empty digit string")
	}

	acc := New()
	baseBi := NewUint32(uint32(base), false)
	for i := 0; i < len(s); i++ {
		d, ok := digitValue(s[i], base)
		if !ok {
			return nil, makeError(ErrInvalidDigit, "invalid digit for base")
		}
		acc.Mul(acc, baseBi)
		acc.Add(acc, NewUint32(d, false))
	}
	acc.neg = neg && !acc.IsZero()
	z.swap(acc)
	return z, nil
}

// Text returns the magnitude of z rendered in the given base, with a
// leading '-' for negative values. Text of zero is "0". Digits are peeled
// off the low end by repeated division against the requested base,
// following the same repeated-divide principle original_source's
// BaseConverter::Convert uses, driven here by the package's own DivMod
// instead of a separate string-digit division.
func (z *Bignum) Text(base Base) (string, error) {
	if base != Binary && base != Decimal && base != Hex {
		return "", makeError(ErrInvalidArgument, "unsupported base")
	}
	if z.IsZero() {
		return "0", nil
	}

	mag := New().Set(z)
	mag.neg = false
	baseBi := NewUint32(uint32(base), false)

	var digits []byte
	quo, rem := New(), New()
	for !mag.IsZero() {
		if err := mag.DivMod(baseBi, quo, rem); err != nil {
			return "", err
		}
		v := uint32(0)
		if len(rem.limbs) > 0 {
			v = rem.limbs[0]
		}
		digits = append(digits, digitChar(v, base))
		mag, quo = quo, mag
	}

	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	if z.neg {
		return "-" + string(digits), nil
	}
	return string(digits), nil
}

// String implements fmt.Stringer, rendering z in base 10. Errors from Text
// cannot occur for the fixed base 10, so String never reports one.
func (z *Bignum) String() string {
	s, _ := z.Text(Decimal)
	return s
}

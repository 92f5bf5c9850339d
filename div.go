// Copyright (c) 2025 The bignum Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum

// pushHexDigit appends a single base-16 digit (0-15) to the low end of the
// magnitude of b, ported from original_source's _big_int_push_back_hex_chars:
// shift left by a nibble, then add the digit into the freshly vacated low
// bits.
func (b *Bignum) pushHexDigit(digit uint32) error {
	if digit > 0xF {
		return makeError(ErrInvalidDigit, "hex digit out of range")
	}
	if digit == 0 && b.IsZero() {
		return nil
	}
	b.ShiftLeft(b, 4)
	if len(b.limbs) == 0 {
		b.push(digit)
	} else {
		b.limbs[0] += digit
	}
	return nil
}

// hexDigitFromLSB returns the hex digit at nibble index idx counted from
// the least-significant nibble (index 0), ported from original_source's
// _big_int_get_hex_char_from_lsb.
func (b *Bignum) hexDigitFromLSB(idx int) (uint32, bool) {
	if idx < 0 {
		return 0, false
	}
	limbIdx := idx / (limbBits / 4)
	nibbleIdx := idx % (limbBits / 4)
	if limbIdx >= len(b.limbs) {
		return 0, false
	}
	return (b.limbs[limbIdx] >> (uint(nibbleIdx) * 4)) & 0xF, true
}

// divideOnce divides b by divisor exactly once, under the precondition that
// the magnitude of b exceeds that of divisor by at most a single hex digit.
// It returns the single-digit quotient and sets remainder, following
// original_source's _big_int_divide_once: probe multiples of divisor by
// 2..16 until one overshoots, by linear search since the quotient digit is
// bounded to a single nibble.
func (b *Bignum) divideOnce(divisor *Bignum, remainder *Bignum) (uint32, error) {
	if divisor.IsZero() {
		return 0, makeError(ErrDivideByZero, "divide by zero")
	}
	if b.HexLen()-divisor.HexLen() > 1 {
		return 0, makeError(ErrPreconditionViolated, "divideOnce: operands more than one hex digit apart")
	}
	if b.IsZero() {
		remainder.clear()
		return 0, nil
	}
	switch b.CmpAbs(divisor) {
	case -1:
		remainder.Set(b)
		return 0, nil
	case 0:
		remainder.clear()
		return 1, nil
	}

	scaled := New()
	prev := New()
	for i := uint32(2); i <= 0x10; i++ {
		scaled.MulUint32(divisor, i)
		switch b.CmpAbs(scaled) {
		case -1:
			prev.MulUint32(divisor, i-1)
			remainder.subAbs(b, prev)
			return i - 1, nil
		case 0:
			remainder.clear()
			return i, nil
		}
	}
	return 0, makeError(ErrPreconditionViolated, "divideOnce: no quotient digit found")
}

// DivMod sets quotient and remainder to the signed quotient and remainder of
// z / divisor (quotient truncated toward zero, remainder takes the sign of
// z), mirroring original_source's big_int_div: the dividend is reduced to
// within a hex digit of the divisor by a right shift, then divideOnce is
// applied one hex digit at a time, pulling the next digit of the dividend
// down from the top exactly as long division on paper does.
func (z *Bignum) DivMod(divisor *Bignum, quotient, remainder *Bignum) error {
	if divisor.IsZero() {
		return makeError(ErrDivideByZero, "divide by zero")
	}
	resultNeg := z.neg != divisor.neg

	if z.IsZero() {
		quotient.clear()
		remainder.clear()
		return nil
	}

	switch z.CmpAbs(divisor) {
	case -1:
		remainder.Set(z)
		remainder.neg = z.neg && !remainder.IsZero()
		quotient.clear()
		return nil
	case 0:
		quotient.SetUint32(1, resultNeg)
		remainder.clear()
		return nil
	}

	divisorLen := divisor.HexLen()
	dividendLen := z.HexLen()

	partial := New().ShiftRight(z, (dividendLen-divisorLen)*4)
	quotient.clear()
	rem := New()

	for digitsLeft, i := dividendLen-divisorLen+1, 0; digitsLeft > 0; digitsLeft, i = digitsLeft-1, i+1 {
		digit, err := partial.divideOnce(divisor, rem)
		if err != nil {
			return err
		}
		if err := quotient.pushHexDigit(digit); err != nil {
			return err
		}

		partial.Set(rem)
		if nextIdx := dividendLen - divisorLen - i - 1; nextIdx >= 0 {
			nextDigit, ok := z.hexDigitFromLSB(nextIdx)
			if ok {
				if err := partial.pushHexDigit(nextDigit); err != nil {
					return err
				}
			}
		}
	}

	remainder.Set(rem)
	quotient.neg = resultNeg && !quotient.IsZero()
	remainder.neg = z.neg && !remainder.IsZero()
	return nil
}

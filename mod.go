// Copyright (c) 2025 The bignum Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum

// Mod sets z to x reduced into the range dictated by modulus's sign,
// following original_source's big_int_modulus: the remainder of DivMod is
// nudged by one multiple of modulus so that its sign always matches the
// modulus's sign (the Euclidean convention used throughout this package,
// not Go's truncating % convention).
func (z *Bignum) Mod(x, modulus *Bignum) error {
	quo, rem := New(), New()
	if err := x.DivMod(modulus, quo, rem); err != nil {
		return err
	}
	if !modulus.neg {
		if rem.neg {
			z.subAbs(modulus, rem)
		} else {
			z.Set(rem)
		}
		z.neg = false
		return nil
	}
	if !rem.neg && !rem.IsZero() {
		z.subAbs(modulus, rem)
	} else {
		z.Set(rem)
	}
	if !z.IsZero() {
		z.neg = true
	}
	return nil
}

// GCD sets z to the greatest common divisor of the magnitudes of x and y,
// following original_source's big_int_gcd_euclidean_algorithm. The result
// is always non-negative; gcd(0, 0) is zero.
func (z *Bignum) GCD(x, y *Bignum) *Bignum {
	if x.IsZero() && y.IsZero() {
		z.clear()
		return z
	}
	if x.IsZero() {
		z.Set(y)
		z.neg = false
		return z
	}
	if y.IsZero() {
		z.Set(x)
		z.neg = false
		return z
	}
	var greater, lower *Bignum
	switch x.CmpAbs(y) {
	case 0:
		z.Set(x)
		z.neg = false
		return z
	case 1:
		greater, lower = New().Set(x), New().Set(y)
	default:
		greater, lower = New().Set(y), New().Set(x)
	}

	quo, rem := New(), New()
	for {
		if err := greater.DivMod(lower, quo, rem); err != nil {
			z.clear()
			return z
		}
		if rem.IsZero() {
			break
		}
		greater, lower = lower, rem
		rem = New()
	}
	z.Set(lower)
	z.neg = false
	return z
}

// Inverse sets z to the multiplicative inverse of x modulo modulus using
// the extended Euclidean algorithm, following original_source's
// big_int_modular_inverse_extended_euclidean_algorithm. It returns
// ErrNotInvertible if x and modulus are not coprime, if modulus is zero,
// or if x is zero and |modulus| > 1.
func (z *Bignum) Inverse(x, modulus *Bignum) error {
	one := NewUint32(1, false)

	if modulus.IsZero() {
		return makeError(ErrNotInvertible, "inverse: modulus is zero")
	}
	if modulus.CmpAbs(one) == 0 {
		z.clear()
		return nil
	}
	if x.CmpAbs(one) == 0 {
		pk1 := NewUint32(1, false)
		return z.applyInverseSign(x, modulus, pk1)
	}

	ipNum := New().Set(x)
	ipNum.neg = false
	mod := New().Set(modulus)
	mod.neg = false

	compStat := ipNum.Cmp(mod)
	if compStat == 0 || ipNum.IsZero() {
		return makeError(ErrNotInvertible, "inverse: argument is not invertible for the given modulus")
	}
	if compStat > 0 {
		if err := ipNum.Mod(ipNum, mod); err != nil {
			return err
		}
		if ipNum.IsZero() {
			return makeError(ErrNotInvertible, "inverse: arguments are not coprime")
		}
		if ipNum.CmpAbs(one) == 0 {
			return z.applyInverseSign(x, modulus, NewUint32(1, false))
		}
	}

	pk0 := New()
	pk1 := NewUint32(1, false)
	var prevQuo [2]*Bignum
	prevQuo[0], prevQuo[1] = New(), New()
	var prevRem *Bignum

	greater := New().Set(mod)
	lower := New().Set(ipNum)
	rem := New().Set(lower)
	quo := New()

	step := 0
	for {
		step++
		prevRem = New().Set(rem)
		prevQuo[0] = prevQuo[1]
		prevQuo[1] = New().Set(quo)

		if err := greater.DivMod(lower, quo, rem); err != nil {
			return err
		}
		greater, lower = lower, New().Set(rem)

		if step > 2 {
			temp1 := New().Mul(pk1, prevQuo[0])
			temp2 := New().Sub(pk0, temp1)
			pk0 = New().Set(pk1)
			if err := pk1.Mod(temp2, mod); err != nil {
				return err
			}
		}
		if rem.IsZero() {
			break
		}
	}

	if prevRem.CmpAbs(one) != 0 {
		return makeError(ErrNotInvertible, "inverse: arguments are not coprime")
	}

	temp1 := New().Mul(pk1, prevQuo[1])
	temp2 := New().Sub(pk0, temp1)
	if err := pk1.Mod(temp2, mod); err != nil {
		return err
	}

	return z.applyInverseSign(x, modulus, pk1)
}

// applyInverseSign reorients an unsigned extended-Euclidean result pk1 into
// the sign convention Mod uses, based on the signs of the original
// arguments, following original_source's tail end of
// big_int_modular_inverse_extended_euclidean_algorithm.
func (z *Bignum) applyInverseSign(x, modulus, pk1 *Bignum) error {
	mod := New().Set(modulus)
	mod.neg = false

	if !modulus.neg {
		if x.neg {
			z.subAbs(mod, pk1)
			z.neg = false
		} else {
			z.Set(pk1)
		}
		return nil
	}
	if !x.neg && !x.IsZero() {
		z.subAbs(mod, pk1)
	} else {
		z.Set(pk1)
	}
	if !z.IsZero() {
		z.neg = true
	}
	return nil
}

// PowMod sets z to x raised to exponent, reduced modulo modulus, following
// original_source's big_int_fast_modular_exponentiation: the public
// wrapper resolves the edge cases (zero modulus fails ErrRangeError,
// |modulus|=1, zero base, |exponent|=1, negative exponent via Inverse)
// before delegating to the repeated-squaring binary method.
func (z *Bignum) PowMod(x, exponent, modulus *Bignum) error {
	one := NewUint32(1, false)

	if modulus.IsZero() {
		return makeError(ErrRangeError, "modpow: modulus is zero")
	}

	if exponent.CmpAbs(one) == 0 {
		if !exponent.neg {
			return z.Mod(x, modulus)
		}
		return z.Inverse(x, modulus)
	}

	if modulus.CmpAbs(one) == 0 {
		z.clear()
		return nil
	}
	if x.IsZero() {
		switch {
		case !exponent.neg && !exponent.IsZero():
			z.clear()
			return nil
		case exponent.neg:
			return makeError(ErrNotInvertible, "modpow: base 0 has no inverse")
		default:
			if !modulus.neg {
				z.SetUint32(1, false)
				return nil
			}
			modAbs := New().Set(modulus)
			modAbs.neg = false
			z.subAbs(modAbs, one)
			if !z.IsZero() {
				z.neg = true
			}
			return nil
		}
	}

	if !exponent.neg {
		return z.fastPowMod(x, exponent, modulus)
	}
	inv := New()
	if err := inv.Inverse(x, modulus); err != nil {
		return err
	}
	posExp := New().Set(exponent)
	posExp.neg = false
	return z.fastPowMod(inv, posExp, modulus)
}

// fastPowMod implements the right-to-left binary method (repeated halving
// of the exponent, squaring the base, multiplying into the accumulator on
// odd bits) for a non-negative exponent, following original_source's
// _big_int_fast_modular_exponentiation.
func (z *Bignum) fastPowMod(x, exponent, modulus *Bignum) error {
	if exponent.IsZero() && modulus.neg {
		modAbs := New().Set(modulus)
		modAbs.neg = false
		result := New().subAbs(modAbs, NewUint32(1, false))
		if !result.IsZero() {
			result.neg = true
		}
		z.swap(result)
		return nil
	}

	result := NewUint32(1, false)
	base := New().Set(x)
	exp := New().Set(exponent)

	for !exp.IsZero() {
		bit := exp.FastHalve(exp)
		if bit != 0 {
			prod := New().Mul(result, base)
			if err := result.Mod(prod, modulus); err != nil {
				return err
			}
		}
		sq := New().Mul(base, base)
		if err := base.Mod(sq, modulus); err != nil {
			return err
		}
	}
	z.swap(result)
	return nil
}

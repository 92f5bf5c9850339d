// Copyright (c) 2025 The bignum Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rsa

import (
	"errors"
	"fmt"

	"github.com/wyrmwood/bignum"
)

// defaultPublicExponent is the fixed public exponent used by every key,
// following original_source's DEFAULT_32_BIT_PUBLIC_KEY (0x10001 = 65537).
const defaultPublicExponent = 0x10001

// DefaultMillerRabinRounds is the witness count used when callers don't
// specify one, matching original_source's rsa() constructor default of 20.
const DefaultMillerRabinRounds = 20

// ErrKeySize reports that the requested key size is unusable: RSA needs an
// even bit count of at least 64 so it can be split into two equal-size
// primes, following original_source's bit_size_arg precondition.
var ErrKeySize = errors.New("rsa: key size must be even and at least 64 bits")

// ErrPlaintextTooLarge reports that a value handed to Encrypt or
// DecryptTextbook/Decrypt exceeds the key's bit size.
var ErrPlaintextTooLarge = errors.New("rsa: value exceeds configured key size")

// KeyPair holds the full RSA key material for one generated key: both
// primes, their derived quantities, and the public/private exponents.
// Field names mirror original_source/inc/rsa.hpp directly (p, q, pq,
// p_minus_1, q_minus_1, p_minus_1q_minus_1, e, d, smaller_prime,
// reduced_d) translated to Go naming.
type KeyPair struct {
	bits int // total RSA key size in bits (both primes combined)

	p, q     *bignum.Bignum
	pMinus1  *bignum.Bignum
	qMinus1  *bignum.Bignum
	n        *bignum.Bignum // p * q
	phi      *bignum.Bignum // (p-1)(q-1)
	e        *bignum.Bignum
	d        *bignum.Bignum
	mSmall   *bignum.Bignum // the smaller of p, q
	dReduced *bignum.Bignum // d mod (mSmall - 1)
}

// Generate builds a new KeyPair of the given total bit size, searching for
// its two primes in parallel across workers goroutines and verifying each
// with rounds Miller-Rabin witnesses, following original_source's rsa()
// constructor. bits must be even and at least 64. workers <= 0 lets
// bignum.RandomPrimeParallel pick its own worker count.
func Generate(bits, rounds, workers int) (*KeyPair, error) {
	if bits < 64 || bits%2 != 0 {
		return nil, ErrKeySize
	}
	primeBits := bits / 2

	kp := &KeyPair{bits: bits}

	var pqCompare int
	for {
		kp.p = bignum.New().RandomPrimeParallel(primeBits, rounds, workers)
		kp.q = bignum.New().RandomPrimeParallel(primeBits, rounds, workers)
		pqCompare = kp.p.CmpAbs(kp.q)
		if pqCompare != 0 {
			break
		}
	}

	kp.n = bignum.New().Mul(kp.p, kp.q)

	one := bignum.NewUint32(1, false)
	kp.pMinus1 = bignum.New().Sub(kp.p, one)
	kp.qMinus1 = bignum.New().Sub(kp.q, one)
	kp.phi = bignum.New().Mul(kp.pMinus1, kp.qMinus1)

	kp.e = bignum.NewUint32(defaultPublicExponent, false)
	if kp.e.CmpAbs(kp.phi) >= 0 {
		return nil, fmt.Errorf("rsa: key size too small for public exponent %d", defaultPublicExponent)
	}

	kp.d = bignum.New()
	if err := kp.d.Inverse(kp.e, kp.phi); err != nil {
		return nil, fmt.Errorf("rsa: computing private exponent: %w", err)
	}

	kp.dReduced = bignum.New()
	if pqCompare > 0 {
		kp.mSmall = kp.q
		if err := kp.dReduced.Mod(kp.d, kp.qMinus1); err != nil {
			return nil, err
		}
	} else {
		kp.mSmall = kp.p
		if err := kp.dReduced.Mod(kp.d, kp.pMinus1); err != nil {
			return nil, err
		}
	}

	return kp, nil
}

// PublicKey returns the public exponent e.
func (kp *KeyPair) PublicKey() *bignum.Bignum { return bignum.New().Set(kp.e) }

// PrivateKey returns the private exponent d.
func (kp *KeyPair) PrivateKey() *bignum.Bignum { return bignum.New().Set(kp.d) }

// Modulus returns n = p*q.
func (kp *KeyPair) Modulus() *bignum.Bignum { return bignum.New().Set(kp.n) }

// Encrypt raises plain to the public exponent, following
// original_source's rsa_encrypt: the reduction is taken modulo the smaller
// prime factor rather than modulo n, so the result is plain^e mod mSmall,
// not the standard RSA ciphertext plain^e mod n. Decrypt and
// DecryptTextbook reduce modulo the same prime, so a round trip recovers
// plain only when plain is smaller than that prime. This deviation from
// interoperable RSA is documented in the repository's design notes.
func (kp *KeyPair) Encrypt(plain *bignum.Bignum) (*bignum.Bignum, error) {
	if plain.BitLen() > kp.bits {
		return nil, ErrPlaintextTooLarge
	}
	cipher := bignum.New()
	if err := cipher.PowMod(plain, kp.e, kp.mSmall); err != nil {
		return nil, err
	}
	return cipher, nil
}

// DecryptTextbook raises cipher to the private exponent directly, without
// the Fermat/CRT speedup Decrypt uses, following original_source's
// rsa_decrypt_textbook_method.
func (kp *KeyPair) DecryptTextbook(cipher *bignum.Bignum) (*bignum.Bignum, error) {
	if cipher.BitLen() > kp.bits {
		return nil, ErrPlaintextTooLarge
	}
	plain := bignum.New()
	if err := plain.PowMod(cipher, kp.d, kp.mSmall); err != nil {
		return nil, err
	}
	return plain, nil
}

// Decrypt recovers the plaintext using the Fermat/CRT shortcut: the
// ciphertext is first reduced modulo the smaller prime factor, then raised
// to the reduced private exponent dReduced, following original_source's
// rsa_decrypt.
func (kp *KeyPair) Decrypt(cipher *bignum.Bignum) (*bignum.Bignum, error) {
	if cipher.BitLen() > kp.bits {
		return nil, ErrPlaintextTooLarge
	}
	reducedCipher := bignum.New()
	if err := reducedCipher.Mod(cipher, kp.mSmall); err != nil {
		return nil, err
	}
	plain := bignum.New()
	if err := plain.PowMod(reducedCipher, kp.dReduced, kp.mSmall); err != nil {
		return nil, err
	}
	return plain, nil
}

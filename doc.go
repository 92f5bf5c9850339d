// Copyright (c) 2025 The bignum Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package bignum implements an arbitrary-precision signed integer type and the
radix-2^32 limb arithmetic it is built from.

This package provides a from-scratch big integer engine: a growable limb
store, schoolbook addition/subtraction/multiplication, hex-digit restoring
long division, a Euclidean modulus layer with extended-Euclidean modular
inverse, fast binary modular exponentiation, and a threaded Miller-Rabin
probable-prime search. See the rsa sub package for an RSA construction built
on top of it.

An overview of the features provided by this package are as follows:

  - Bignum type for working with signed integers of arbitrary magnitude
  - Parsing and emitting bignums in binary, decimal, and hexadecimal
  - Addition, subtraction, multiplication, and small-exponent powers
  - Bit and limb shifts, halving, and three-way comparison
  - Hex-digit restoring long division producing a quotient and remainder
  - Mathematical-sign-convention modulus and extended Euclidean inverse
  - Fast modular exponentiation for both positive and negative exponents
  - Euclidean GCD
  - Uniform random generation, both of a fixed bit length and within a
    half-open range
  - A small-prime trial division pre-screen and a Miller-Rabin witness loop
  - A parallel prime search that races goroutines against a shared stop flag

This package does not implement constant-time arithmetic, side-channel
resistance, or any padding scheme; it is an educational engine, not a
production cryptography primitive.
*/
package bignum

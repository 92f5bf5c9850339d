// Copyright (c) 2025 The bignum Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rsa builds textbook RSA key generation, encryption, and
// decryption on top of the github.com/wyrmwood/bignum arbitrary-precision
// engine. It implements no padding scheme, no constant-time guarantees, and
// no key serialization format: plaintexts and ciphertexts are bignum.Bignum
// values directly, and private keys never leave process memory.
package rsa

// Copyright (c) 2025 The bignum Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum

// Base identifies one of the textual number bases this package parses and
// emits, following the base-converter approach of original_source's
// BaseConverter class: a fixed digit alphabet per base, with conversion
// done by repeated division/multiplication against that alphabet rather
// than a lookup table per format.
type Base int

// Supported bases, matching spec.md's String I/O component.
const (
	Binary  Base = 2
	Decimal Base = 10
	Hex     Base = 16
)

const digitAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
const hexAlphabetUpper = "0123456789ABCDEF"

// digitValue returns the numeric value of a single digit character in the
// given base, or false if it is not a valid digit of that base. Parsing is
// case-insensitive, matching spec.md's Hex alphabet note.
func digitValue(c byte, base Base) (uint32, bool) {
	var v int
	switch {
	case c >= '0' && c <= '9':
		v = int(c - '0')
	case c >= 'a' && c <= 'z':
		v = int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		v = int(c-'A') + 10
	default:
		return 0, false
	}
	if v >= int(base) {
		return 0, false
	}
	return uint32(v), true
}

// digitChar returns the alphabet character for a digit value in the given
// base. The caller guarantees 0 <= v < base. Hex emits uppercase, matching
// spec.md's "uppercase on emit" rule for the Hex alphabet; the other bases
// have no letter digits, so digitAlphabet's case is immaterial to them.
func digitChar(v uint32, base Base) byte {
	if base == Hex {
		return hexAlphabetUpper[v]
	}
	return digitAlphabet[v]
}

// BaseConverter transcodes a digit string from one digit alphabet to
// another, following original_source's BaseConverter class
// (big_int_base_converter.cc): repeated long division of the source digit
// string itself by the target base, peeling off one target digit per
// remainder, with no detour through a numeric engine. This is the
// standalone string-to-string converter spec.md's C2 component describes;
// Parse and Text in string.go solve the narrower Bignum<->text problem
// directly against the limb engine instead, since for that problem the
// engine's own Mul/Add/DivMod are already available and exact.
type BaseConverter struct {
	source string
	target string
}

// NewBaseConverter returns a BaseConverter that transcodes digit strings
// written in sourceAlphabet into targetAlphabet, where a digit's value is
// its index in the alphabet string. Either alphabet being empty fails with
// ErrInvalidAlphabet.
func NewBaseConverter(sourceAlphabet, targetAlphabet string) (*BaseConverter, error) {
	if sourceAlphabet == "" || targetAlphabet == "" {
		return nil, makeError(ErrInvalidAlphabet, "base converter: alphabet must not be empty")
	}
	return &BaseConverter{source: sourceAlphabet, target: targetAlphabet}, nil
}

// Convert transcodes value, a digit string in c's source alphabet, into the
// equivalent digit string in c's target alphabet, following
// BaseConverter::Convert: divide the source string by the target base
// repeatedly, collecting remainders as target digits until the quotient
// reaches zero, then reverse what was collected.
func (c *BaseConverter) Convert(value string) (string, error) {
	if value == "" {
		return "", makeError(ErrInvalidDigit, "base converter: empty value")
	}

	var result []byte
	targetBase := uint32(len(c.target))
	for {
		quotient, remainder, err := c.divide(value, targetBase)
		if err != nil {
			return "", err
		}
		if remainder >= targetBase {
			return "", makeError(ErrPreconditionViolated, "base converter: remainder exceeds target alphabet")
		}
		result = append(result, c.target[remainder])
		value = quotient
		if value == "" || (len(value) == 1 && value[0] == c.source[0]) {
			break
		}
	}

	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	return string(result), nil
}

// divide divides the digit string x (written in c's source alphabet) by
// the plain integer y, returning the quotient (still in the source
// alphabet, leading zero digits stripped) and the remainder, following
// BaseConverter::divide's chunked long division.
func (c *BaseConverter) divide(x string, y uint32) (quotient string, remainder uint32, err error) {
	length := len(x)
	var quo []byte
	for i := 0; i < length; i++ {
		j := i + 1 + len(x) - length
		if len(x) < j {
			break
		}
		val, err := baseStringToUint(c.source, x[:j])
		if err != nil {
			return "", 0, err
		}
		quo = append(quo, c.source[val/y])
		x = uintToBaseString(c.source, val%y) + x[j:]
	}

	remainder, err = baseStringToUint(c.source, x)
	if err != nil {
		return "", 0, err
	}

	n := 0
	for n < len(quo) && quo[n] == c.source[0] {
		n++
	}
	return string(quo[n:]), remainder, nil
}

// baseStringToUint parses a digit string written against an arbitrary
// alphabet into its numeric value, following BaseConverter::base2dec.
func baseStringToUint(alphabet, value string) (uint32, error) {
	base := uint32(len(alphabet))
	var result uint32
	for i := 0; i < len(value); i++ {
		idx := indexByte(alphabet, value[i])
		if idx < 0 {
			return 0, makeError(ErrInvalidDigit, "base converter: character not in alphabet")
		}
		result = result*base + uint32(idx)
	}
	return result, nil
}

// uintToBaseString renders an integer as a digit string against an
// arbitrary alphabet, following BaseConverter::dec2base.
func uintToBaseString(alphabet string, value uint32) string {
	base := uint32(len(alphabet))
	var out []byte
	for {
		out = append(out, alphabet[value%base])
		value /= base
		if value == 0 {
			break
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

// indexByte returns the index of c in s, or -1 if absent.
func indexByte(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}

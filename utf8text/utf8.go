/*
Package utf8text is a byte-level UTF-8 codec working on character boundaries.

In contrast to package unicode/utf8 of the standard library, the decoding
functions of utf8text do not check their input. Text handed to the entity
matchers has been validated beforehand (see Valid), and scanning a message
text must not pay for checks on every single character.

Positions used by the functions of this package are byte offsets. A
character is the maximal run of bytes starting at a first code unit, i.e. a
byte whose top two bits are not 10.

Attention

DecodeRune and PrevBoundary require positions at character boundaries of
well-formed UTF-8. Violating this contract will not result in an out-of-bounds
access, but the results are unspecified.

___________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package utf8text

import (
	"unicode"
)

// IsFirstCodeUnit is true if c starts a character.
func IsFirstCodeUnit(c byte) bool {
	return c&0xc0 != 0x80
}

// at returns s[i], or 0 if i is out of range.
func at(s string, i int) rune {
	if i < len(s) {
		return rune(s[i])
	}
	return 0
}

// DecodeRune decodes the character starting at byte position pos.
// It returns the code-point and the position of the next character.
//
// pos has to be a character boundary of well-formed UTF-8 and must be less
// than len(s). Invalid lead bytes are returned as they are, with a length
// of 1. The position returned never exceeds len(s).
func DecodeRune(s string, pos int) (rune, int) {
	a := rune(s[pos])
	var r rune
	var next int
	switch {
	case a&0x80 == 0:
		return a, pos + 1
	case a&0x20 == 0:
		r, next = (a&0x1f)<<6|(at(s, pos+1)&0x3f), pos+2
	case a&0x10 == 0:
		r, next = (a&0x0f)<<12|(at(s, pos+1)&0x3f)<<6|(at(s, pos+2)&0x3f), pos+3
	case a&0x08 == 0:
		r, next = (a&0x07)<<18|(at(s, pos+1)&0x3f)<<12|(at(s, pos+2)&0x3f)<<6|
			(at(s, pos+3)&0x3f), pos+4
	default:
		return a, pos + 1
	}
	if next > len(s) {
		next = len(s)
	}
	return r, next
}

// AppendRune appends the UTF-8 encoding of r to dst. All values up to
// 0x1FFFFF are encoded as they are, without replacing surrogates.
func AppendRune(dst []byte, r rune) []byte {
	c := uint32(r)
	switch {
	case c <= 0x7f:
		return append(dst, byte(c))
	case c <= 0x7ff:
		return append(dst, byte(0xc0|c>>6), byte(0x80|c&0x3f))
	case c <= 0xffff:
		return append(dst, byte(0xe0|c>>12), byte(0x80|(c>>6)&0x3f), byte(0x80|c&0x3f))
	}
	return append(dst, byte(0xf0|(c>>18)&0x07), byte(0x80|(c>>12)&0x3f),
		byte(0x80|(c>>6)&0x3f), byte(0x80|c&0x3f))
}

// PrevBoundary steps back from pos to the start of the character containing
// byte pos-1. pos must be greater than 0.
func PrevBoundary(s string, pos int) int {
	for pos--; pos > 0 && !IsFirstCodeUnit(s[pos]); pos-- {
	}
	return pos
}

// NextBoundary returns the position of the character following the one
// which starts at pos. At the end of s, len(s) is returned.
func NextBoundary(s string, pos int) int {
	if pos >= len(s) {
		return len(s)
	}
	for pos++; pos < len(s) && !IsFirstCodeUnit(s[pos]); pos++ {
	}
	return pos
}

// PrevRune decodes the character preceding byte position pos.
func PrevRune(s string, pos int) rune {
	r, _ := DecodeRune(s, PrevBoundary(s, pos))
	return r
}

// Length returns the number of characters in s.
func Length(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if IsFirstCodeUnit(s[i]) {
			n++
		}
	}
	return n
}

// ToLower maps every character of s to lowercase, using simple case
// mappings. The result may differ in length from s.
func ToLower(s string) string {
	b := make([]byte, 0, len(s))
	for pos := 0; pos < len(s); {
		var r rune
		r, pos = DecodeRune(s, pos)
		b = AppendRune(b, unicode.ToLower(r))
	}
	return string(b)
}

// Truncate returns the longest prefix of s containing at most n characters.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for i := 0; i < len(s); i++ {
		if IsFirstCodeUnit(s[i]) {
			if n <= 0 {
				return s[:i]
			}
			n--
		}
	}
	return s
}

// Substr drops the first offset characters of s.
func Substr(s string, offset int) string {
	if offset <= 0 {
		return s
	}
	return s[len(Truncate(s, offset)):]
}

// SubstrLen returns at most length characters of s, starting at
// character offset.
func SubstrLen(s string, offset, length int) string {
	return Truncate(Substr(s, offset), length)
}

// Valid reports whether s is well-formed UTF-8. It rejects overlong
// encodings, encoded surrogates, code-points beyond U+10FFFF and
// truncated sequences.
func Valid(s string) bool {
	for i := 0; i < len(s); {
		a := s[i]
		i++
		if a&0x80 == 0 {
			continue
		}
		if a&0x40 == 0 || i >= len(s) {
			return false
		}
		b := s[i]
		i++
		if b&0xc0 != 0x80 {
			return false
		}
		if a&0x20 == 0 {
			if a&0x1e == 0 { // overlong
				return false
			}
			continue
		}
		if i >= len(s) {
			return false
		}
		c := s[i]
		i++
		if c&0xc0 != 0x80 {
			return false
		}
		if a&0x10 == 0 {
			x := int(a&0x0f)<<6 | int(b&0x20)
			if x == 0 || x == 0x360 { // overlong or surrogate
				return false
			}
			continue
		}
		if i >= len(s) {
			return false
		}
		d := s[i]
		i++
		if d&0xc0 != 0x80 {
			return false
		}
		if a&0x08 == 0 {
			t := int(a&0x07)<<6 | int(b&0x30)
			if t == 0 || t >= 0x110 { // overlong or beyond U+10FFFF
				return false
			}
			continue
		}
		return false
	}
	return true
}

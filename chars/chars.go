/*
Package chars provides the character predicates used by the entity matchers.

Byte predicates are ASCII-only on purpose: a digit is one of '0'…'9', and
neither Arabic-Indic digits nor fullwidth letters qualify. Code-point
predicates are built on the coarse classification of package unicat.

___________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package chars

import (
	"unicode"

	"github.com/npillmayer/tgtext/unicat"
	"golang.org/x/text/unicode/rangetable"
)

// IsDigit is true for ASCII digits.
func IsDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// IsAlpha is true for ASCII letters.
func IsAlpha(c byte) bool {
	c |= 0x20
	return 'a' <= c && c <= 'z'
}

func IsAlphaOrDigit(c byte) bool {
	return IsAlpha(c) || IsDigit(c)
}

func IsAlphaDigitOrUnderscore(c byte) bool {
	return IsAlphaOrDigit(c) || c == '_'
}

func IsAlphaDigitUnderscoreOrMinus(c byte) bool {
	return IsAlphaOrDigit(c) || c == '_' || c == '-'
}

// IsHexDigit is true for '0'…'9', 'a'…'f' and 'A'…'F'.
func IsHexDigit(c byte) bool {
	if IsDigit(c) {
		return true
	}
	c |= 0x20
	return 'a' <= c && c <= 'f'
}

// IsSpace is true for space, tab, CR, LF, NUL and vertical tab.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', 0, '\v':
		return true
	}
	return false
}

// IsWordCharacter is true for letters, numbers and the underscore.
func IsWordCharacter(r rune) bool {
	switch unicat.Classify(r) {
	case unicat.Letter, unicat.DecimalNumber, unicat.Number:
		return true
	}
	return r == '_'
}

// HashtagExtras holds the code-points which are allowed within hashtags in
// addition to letters and decimal numbers: the underscore, ZERO WIDTH
// NON-JOINER, MIDDLE DOT and the Sinhala block.
var HashtagExtras = rangetable.Merge(
	rangetable.New('_', 0x200c, 0x00b7),
	&unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x0d80, Hi: 0x0dff, Stride: 1}}, // Sinhala
	},
)

// IsHashtagLetter is true for code-points which may be part of a hashtag.
// It returns the category of r as well, as callers need to know if a hashtag
// contains any letters.
func IsHashtagLetter(r rune) (bool, unicat.Category) {
	cat := unicat.Classify(r)
	if cat == unicat.Letter || cat == unicat.DecimalNumber {
		return true, cat
	}
	return unicode.Is(HashtagExtras, r), cat
}

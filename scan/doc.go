/*
Package scan finds entities in message text.

Every entity family has a find function, which is a tgtext.FindFn, and a
convenience constructor returning a Matcher:

  m := scan.FindMentions("hi @abcde, @xyzxy")
  for m.Next() {
      fmt.Println(m.Span(), m.Text())  // [3,9) @abcde, then [11,17) @xyzxy
  }

All the matchers share the same shape: find the next trigger character,
check the character to the left of it, greedily consume a body while a
predicate holds, check the length of the body and finally check the
character to the right of it. A rejected candidate is skipped silently and
scanning resumes either after the trigger character or after the body,
depending on the entity family.

Spans are half-open ranges of byte positions. Matchers expect their input
to be well-formed UTF-8 (see utf8text.Valid); they will not crash on
malformed input, but results are unspecified.

___________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package scan

import (
	"strings"

	"github.com/npillmayer/tgtext"
	"github.com/npillmayer/tgtext/utf8text"
)

// Length limits of entity bodies, without the trigger character.
const (
	MinMentionLength     = 2
	MaxMentionLength     = 32
	MaxBotCommandLength  = 64
	MinBotUsernameLength = 3
	MaxHashtagLength     = 255 // in characters; longer hashtags are truncated
	MinCashtagLength     = 3
	MaxCashtagLength     = 8
)

// Spans drains a matcher and returns the spans found.
func Spans(m *tgtext.Matcher) []tgtext.Span {
	return m.Spans()
}

// nextTrigger returns the position of the next occurrence of c at or after
// pos, or -1.
func nextTrigger(text string, pos int, c byte) int {
	if pos >= len(text) {
		return -1
	}
	i := strings.IndexByte(text[pos:], c)
	if i < 0 {
		return -1
	}
	return pos + i
}

// prevRune returns the character before pos, or 0 at the start of text.
func prevRune(text string, pos int) rune {
	if pos == 0 {
		return 0
	}
	return utf8text.PrevRune(text, pos)
}

// nextRune returns the character at pos, or 0 at the end of text.
func nextRune(text string, pos int) rune {
	if pos >= len(text) {
		return 0
	}
	r, _ := utf8text.DecodeRune(text, pos)
	return r
}

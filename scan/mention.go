package scan

import (
	"github.com/npillmayer/tgtext"
	"github.com/npillmayer/tgtext/chars"
)

// FindMentions returns a matcher for @username mentions in text.
func FindMentions(text string) *tgtext.Matcher {
	return tgtext.NewMatcher(text, NextMention)
}

// NextMention finds the next @username mention at or after pos.
// Usernames consist of 2 to 32 ASCII letters, digits or underscores and
// must not be adjacent to word characters.
func NextMention(text string, pos int) (tgtext.Span, int, bool) {
	for {
		at := nextTrigger(text, pos, '@')
		if at < 0 {
			return tgtext.Span{}, len(text), false
		}
		if chars.IsWordCharacter(prevRune(text, at)) {
			pos = at + 1
			continue
		}
		end := at + 1
		for end < len(text) && chars.IsAlphaDigitOrUnderscore(text[end]) {
			end++
		}
		pos = end
		if n := end - at - 1; n < MinMentionLength || n > MaxMentionLength {
			continue
		}
		if chars.IsWordCharacter(nextRune(text, end)) {
			continue
		}
		return tgtext.Span{Begin: at, End: end}, end, true
	}
}

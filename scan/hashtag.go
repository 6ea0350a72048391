package scan

import (
	"github.com/npillmayer/tgtext"
	"github.com/npillmayer/tgtext/chars"
	"github.com/npillmayer/tgtext/unicat"
	"github.com/npillmayer/tgtext/utf8text"
)

// FindHashtags returns a matcher for #hashtags in text.
func FindHashtags(text string) *tgtext.Matcher {
	return tgtext.NewMatcher(text, NextHashtag)
}

// NextHashtag finds the next hashtag at or after pos.
//
// The body of a hashtag consists of hashtag letters (see
// chars.IsHashtagLetter) and must not consist of decimal digits only.
// Hashtags longer than 255 characters are truncated to 255 characters.
// A hashtag immediately followed by another '#' is rejected.
func NextHashtag(text string, pos int) (tgtext.Span, int, bool) {
	for {
		hash := nextTrigger(text, pos, '#')
		if hash < 0 {
			return tgtext.Span{}, len(text), false
		}
		if ok, _ := chars.IsHashtagLetter(prevRune(text, hash)); ok {
			pos = hash + 1
			continue
		}
		end, cut := hash+1, -1
		size, wasLetter := 0, false
		for end < len(text) {
			r, next := utf8text.DecodeRune(text, end)
			ok, cat := chars.IsHashtagLetter(r)
			if !ok {
				break
			}
			if size == MaxHashtagLength {
				cut = end
			}
			if size < MaxHashtagLength {
				wasLetter = wasLetter || cat != unicat.DecimalNumber
			}
			size++
			end = next
		}
		pos = end
		if cut < 0 {
			cut = end
		}
		if size == 0 || !wasLetter {
			continue
		}
		if end < len(text) && text[end] == '#' {
			continue
		}
		return tgtext.Span{Begin: hash, End: cut}, end, true
	}
}

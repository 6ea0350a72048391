package scan

import (
	"strings"

	"github.com/npillmayer/tgtext"
	"github.com/npillmayer/tgtext/chars"
)

// FindCashtags returns a matcher for $CASHTAGS in text.
func FindCashtags(text string) *tgtext.Matcher {
	return tgtext.NewMatcher(text, NextCashtag)
}

func isCashtagNeighbour(r rune) bool {
	ok, _ := chars.IsHashtagLetter(r)
	return ok || r == '$'
}

// NextCashtag finds the next cashtag at or after pos. A cashtag is a '$'
// followed by 3 to 8 upper-case ASCII letters, or by the literal "1INCH".
// Neither hashtag letters nor '$' may be adjacent to a cashtag.
func NextCashtag(text string, pos int) (tgtext.Span, int, bool) {
	for {
		dollar := nextTrigger(text, pos, '$')
		if dollar < 0 {
			return tgtext.Span{}, len(text), false
		}
		if isCashtagNeighbour(prevRune(text, dollar)) {
			pos = dollar + 1
			continue
		}
		end := dollar + 1
		if strings.HasPrefix(text[end:], "1INCH") {
			end += len("1INCH")
		} else {
			for end < len(text) && 'A' <= text[end] && text[end] <= 'Z' {
				end++
			}
		}
		pos = end
		if n := end - dollar - 1; n < MinCashtagLength || n > MaxCashtagLength {
			continue
		}
		if isCashtagNeighbour(nextRune(text, end)) {
			continue
		}
		return tgtext.Span{Begin: dollar, End: end}, end, true
	}
}

package scan

import (
	"strings"

	"github.com/npillmayer/tgtext"
	"github.com/npillmayer/tgtext/chars"
)

// FindMediaTimestamps returns a matcher for media timestamps like "1:23" or
// "1:02:03" in text. Use ParseMediaTimestamp to get the value of a span.
func FindMediaTimestamps(text string) *tgtext.Matcher {
	return tgtext.NewMatcher(text, NextMediaTimestamp)
}

func isTimestampChar(c byte) bool {
	return c == ':' || chars.IsDigit(c)
}

// NextMediaTimestamp finds the next media timestamp at or after pos.
func NextMediaTimestamp(text string, pos int) (tgtext.Span, int, bool) {
	for {
		colon := nextTrigger(text, pos, ':')
		if colon < 0 {
			return tgtext.Span{}, len(text), false
		}
		begin := colon
		for begin > 0 && isTimestampChar(text[begin-1]) {
			begin--
		}
		end := colon + 1
		for end < len(text) && isTimestampChar(text[end]) {
			end++
		}
		pos = end
		if begin == colon || end == colon+1 || !chars.IsDigit(text[colon+1]) {
			continue
		}
		if chars.IsWordCharacter(prevRune(text, begin)) || chars.IsWordCharacter(nextRune(text, end)) {
			continue
		}
		if _, ok := ParseMediaTimestamp(text[begin:end]); !ok {
			continue
		}
		return tgtext.Span{Begin: begin, End: end}, end, true
	}
}

// ParseMediaTimestamp returns the number of seconds denoted by a media
// timestamp of the form "m:ss" or "h:mm:ss". Minutes are limited to 4 digits
// if no hours are given, hours to 2 digits.
func ParseMediaTimestamp(s string) (int, bool) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}
	for _, p := range parts {
		if p == "" {
			return 0, false
		}
	}
	seconds, ok := atoi(parts[len(parts)-1])
	if !ok || len(parts[len(parts)-1]) != 2 || seconds >= 60 {
		return 0, false
	}
	if len(parts) == 2 {
		minutes, ok := atoi(parts[0])
		if !ok || len(parts[0]) > 4 {
			return 0, false
		}
		return minutes*60 + seconds, true
	}
	hours, ok1 := atoi(parts[0])
	minutes, ok2 := atoi(parts[1])
	if !ok1 || !ok2 || len(parts[0]) > 2 || len(parts[1]) > 2 || minutes >= 60 {
		return 0, false
	}
	return hours*3600 + minutes*60 + seconds, true
}

// atoi converts a string of at most 4 ASCII digits.
func atoi(s string) (int, bool) {
	if len(s) > 4 {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if !chars.IsDigit(s[i]) {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, true
}

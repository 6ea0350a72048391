package scan

import (
	"github.com/npillmayer/tgtext"
	"github.com/npillmayer/tgtext/chars"
)

// FindBotCommands returns a matcher for /commands in text. A command may be
// addressed to a bot, as in "/start@examplebot".
func FindBotCommands(text string) *tgtext.Matcher {
	return tgtext.NewMatcher(text, NextBotCommand)
}

func isCommandNeighbour(r rune) bool {
	return chars.IsWordCharacter(r) || r == '/' || r == '<' || r == '>'
}

// NextBotCommand finds the next bot command at or after pos.
//
// A command consists of 1 to 64 ASCII letters, digits or underscores. It may
// be followed by '@' and a bot username of 3 to 32 characters; a shorter or
// longer username is not part of the command. Commands must neither follow
// nor precede a word character or one of '/', '<' and '>'. A command with a
// bot username is accepted without its username if the username is followed
// by such a character.
func NextBotCommand(text string, pos int) (tgtext.Span, int, bool) {
	for {
		slash := nextTrigger(text, pos, '/')
		if slash < 0 {
			return tgtext.Span{}, len(text), false
		}
		if slash > 0 && isCommandNeighbour(prevRune(text, slash)) {
			pos = slash + 1
			continue
		}
		end := slash + 1
		for end < len(text) && chars.IsAlphaDigitOrUnderscore(text[end]) {
			end++
		}
		pos = end
		if n := end - slash - 1; n < 1 || n > MaxBotCommandLength {
			continue
		}
		commandEnd, withBot := end, false
		if end < len(text) && text[end] == '@' {
			mentionEnd := end + 1
			for mentionEnd < len(text) && chars.IsAlphaDigitOrUnderscore(text[mentionEnd]) {
				mentionEnd++
			}
			if n := mentionEnd - end - 1; n >= MinBotUsernameLength && n <= MaxMentionLength {
				end, withBot = mentionEnd, true
			}
		}
		pos = end
		if isCommandNeighbour(nextRune(text, end)) {
			if !withBot {
				continue
			}
			end = commandEnd
		}
		return tgtext.Span{Begin: slash, End: end}, pos, true
	}
}

/* Package ucdparse provides a parser for Unicode Character Database files.

Package ucdparse provides a parser for files in the format of the Unicode
Character Database, the format of which is defined in
http://www.unicode.org/reports/tr44/. Data lines look like

   0030..0039    ; DecimalNumber # DIGIT ZERO..DIGIT NINE

i.e., a code-point or a range of code-points, followed by
semicolon-separated fields and an optional comment. We use this format for
test fixtures.

Additionally the package contains a reader for test files, which are line
oriented files with one test case per line (see OpenTestFile).
*/
package ucdparse

import "fmt"

// Token is a type for communicating between the line-level scanner and the parser.
// The scanner will read lines and wrap the content into tokens for the parser
// to perform its operations on.
type Token struct {
	LineNo    int       // line of the data item within the input source
	TokenType TokenType // type of token
	runeFrom  rune      // first/single rune
	runeTo    rune      // final rune of range (may be identical to runeFrom)
	Fields    []string  // UTF-8 content of the line, split at ';'
	Comment   string    // rest-of-line comment of data item lines
	Error     error     // error condition, if any
}

// TokenType classifies lines.
type TokenType int8

// Types of lines
const (
	Undefined TokenType = iota
	EOF
	SingleDataItem
	RangeDataItem
)

// newToken creates a parser token initialized with a line index.
func newToken(line int) *Token {
	return &Token{
		LineNo: line,
		Fields: []string{},
	}
}

func (token *Token) String() string {
	return fmt.Sprintf("token[at %d %#U..%#U type=%d %#v]", token.LineNo,
		token.runeFrom, token.runeTo, token.TokenType, token.Fields)
}

// Field gets field #i (1…n) from the current data item.
func (token *Token) Field(i int) string {
	if i > 0 && i <= len(token.Fields) {
		return token.Fields[i-1]
	}
	return ""
}

// Range gets the character range from the current data item.
func (token *Token) Range() (from, to rune) {
	return token.runeFrom, token.runeTo
}

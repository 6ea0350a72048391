package ucdparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
)

// --- Line level scanner ----------------------------------------------------

// Scanner is a type for a line-level scanner.
//
// Our line-level scanner will operate by calling scanning steps in a chain, iteratively.
// Each step function inspects the remainder of the current line and then possibly
// branches out to a subsequent step function.
//
type Scanner struct {
	lines     *bufio.Scanner
	lineNo    int
	rest      string      // unprocessed remainder of the current line
	Token     *Token      // last token produced by scanner
	LastError error       // last error, if any
	step      scannerStep // the next scanner step to execute in a chain
}

// We're buiding up a scanner from chains of scanner step functions.
// Tokens may be modified by a step function.
// A scanner step will return the next step in the chain, or nil to stop/accept.
//
type scannerStep func(*Token) scannerStep

// New creates a scanner for an input reader.
func New(inputReader io.Reader) (*Scanner, error) {
	if inputReader == nil {
		return nil, errors.New("no input present")
	}
	return &Scanner{lines: bufio.NewScanner(inputReader)}, nil
}

// Parse iterates over each data line of the input and calls callback f on it.
func Parse(r io.Reader, f func(token *Token)) error {
	sc, err := New(r)
	if err != nil {
		return err
	}
	for sc.Next() {
		f(sc.Token)
	}
	return sc.LastError
}

// Next is called to receive the next line-level token. A token
// subsumes the properties of a data line of UCD input. Empty lines and
// comment lines are skipped.
//
// Next iterates over a chain of step functions until it reaches an
// accepting state. Acceptance is signalled by getting a nil-step return value from a
// step function, meaning there is no further step applicable in this chain.
// If a step function flags an error, Next returns false.
//
func (sc *Scanner) Next() bool {
	for sc.lines.Scan() {
		sc.lineNo++
		sc.rest = strings.TrimSpace(sc.lines.Text())
		if sc.rest == "" || sc.rest[0] == '#' {
			continue
		}
		sc.Token = newToken(sc.lineNo)
		for sc.step = sc.scanRuneRange; sc.step != nil; {
			sc.step = sc.step(sc.Token)
		}
		if sc.Token.Error != nil {
			sc.LastError = sc.Token.Error
			return false
		}
		return true
	}
	sc.Token = newToken(sc.lineNo)
	sc.Token.TokenType = EOF
	if err := sc.lines.Err(); err != nil {
		sc.LastError = err
	}
	return false
}

func (sc *Scanner) scanRuneRange(token *Token) scannerStep {
	hex := sc.matchHex()
	if hex == "" {
		token.Error = fmt.Errorf("line %d: data item must start with a code-point", sc.lineNo)
		return nil
	}
	from, err := parseCodePoint(hex)
	if err != nil {
		token.Error = err
		return nil
	}
	token.runeFrom, token.runeTo = from, from
	if !strings.HasPrefix(sc.rest, "..") {
		token.TokenType = SingleDataItem
		return sc.scanItemBody
	}
	sc.rest = sc.rest[2:]
	if hex = sc.matchHex(); hex == "" {
		token.Error = fmt.Errorf("line %d: incomplete code-point range", sc.lineNo)
		return nil
	}
	if token.runeTo, err = parseCodePoint(hex); err != nil {
		token.Error = err
		return nil
	}
	token.TokenType = RangeDataItem
	return sc.scanItemBody
}

func (sc *Scanner) scanItemBody(token *Token) scannerStep {
	a := strings.SplitN(sc.rest, "#", 2)
	if len(a) > 1 {
		token.Comment = strings.TrimSpace(a[1])
	}
	body := strings.TrimSpace(a[0])
	body = strings.TrimPrefix(body, ";")
	for _, f := range strings.Split(body, ";") {
		token.Fields = append(token.Fields, strings.TrimSpace(f))
	}
	sc.rest = ""
	return nil
}

func (sc *Scanner) matchHex() string {
	i := 0
	for i < len(sc.rest) && isHexDigit(sc.rest[i]) {
		i++
	}
	hex := sc.rest[:i]
	sc.rest = strings.TrimLeft(sc.rest[i:], " \t")
	return hex
}

func parseCodePoint(hex string) (rune, error) {
	n, err := strconv.ParseInt(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("hex decoding error: %w", err)
	}
	return rune(n), nil
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// --- Range collection ------------------------------------------------------

// CollectRanges reads all the data items of r and collects the code-point
// ranges per value of field #1.
func CollectRanges(r io.Reader) (map[string][][2]rune, error) {
	lists := make(map[string]*arraylist.List)
	err := Parse(r, func(token *Token) {
		key := token.Field(1)
		list := lists[key]
		if list == nil {
			list = arraylist.New()
			lists[key] = list
		}
		from, to := token.Range()
		list.Add([2]rune{from, to})
	})
	if err != nil {
		return nil, err
	}
	ranges := make(map[string][][2]rune, len(lists))
	for key, list := range lists {
		rs := make([][2]rune, 0, list.Size())
		it := list.Iterator()
		for it.Next() {
			rs = append(rs, it.Value().([2]rune))
		}
		ranges[key] = rs
	}
	return ranges, nil
}

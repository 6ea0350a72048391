package unicat

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Category is one of 5 simple code-point categories.
type Category int8

// Simple categories
const (
	Unknown       Category = iota // not classified
	Letter                        // Lu, Ll, Lt, Lm, Lo
	DecimalNumber                 // Nd
	Number                        // Nl, No
	Separator                     // Zs, Zl, Zp
)

var categoryNames = [...]string{"Unknown", "Letter", "DecimalNumber", "Number", "Separator"}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "Unknown"
	}
	return categoryNames[c]
}

// RangeTables is an array of Unicode range tables, one for each of Letter,
// DecimalNumber, Number and Separator. Index 0 (Unknown) is nil.
var RangeTables = [...]*unicode.RangeTable{
	nil,
	rangetable.Merge(unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo),
	unicode.Nd,
	rangetable.Merge(unicode.Nl, unicode.No),
	rangetable.Merge(unicode.Zs, unicode.Zl, unicode.Zp),
}

// asciiCategories is the fixed table for code-points 0…127.
var asciiCategories = makeASCIITable()

func makeASCIITable() (t [128]Category) {
	t[' '] = Separator
	for c := '0'; c <= '9'; c++ {
		t[c] = DecimalNumber
	}
	for c := 'A'; c <= 'Z'; c++ {
		t[c] = Letter
		t[c+'a'-'A'] = Letter
	}
	return
}

// Large blocks of letters which are checked before consulting the tables.
// Every one of them is completely assigned to general category Lo.
var letterBlocks = [...][2]rune{
	{0x3400, 0x4dbf},   // CJK Unified Ideographs Extension A
	{0x4e00, 0x9fff},   // CJK Unified Ideographs
	{0xac00, 0xd7a3},   // Hangul Syllables
	{0x20000, 0x2a6df}, // CJK Unified Ideographs Extension B
}

// Classify returns the simple category of a code-point. Classify is total:
// negative values and values beyond the Unicode range are Unknown.
func Classify(r rune) Category {
	if r < 0 || r > unicode.MaxRune {
		return Unknown
	}
	if r < 0x80 {
		return asciiCategories[r]
	}
	for _, block := range letterBlocks {
		if block[0] <= r && r <= block[1] {
			return Letter
		}
	}
	for cat := Letter; cat <= Separator; cat++ {
		if unicode.Is(RangeTables[cat], r) {
			return cat
		}
	}
	return Unknown
}

// IsLetter is a shortcut for Classify(r) == Letter.
func IsLetter(r rune) bool {
	return Classify(r) == Letter
}

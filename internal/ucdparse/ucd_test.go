package ucdparse

import (
	"strings"
	"testing"
)

func TestParseLine(t *testing.T) {
	input := strings.NewReader("# header\n\n000E..001F;Unknown     # Cc    [18] <control-000E>..<control-001F>")
	sc, err := New(input)
	if err != nil {
		t.Fatal(err)
	}
	if !sc.Next() {
		t.Logf("token = %v", sc.Token)
		t.Fatal(sc.LastError)
	}
	t.Logf("token = %v", sc.Token)
	if sc.Token.Field(1) != "Unknown" {
		t.Errorf("expected field #1 to be 'Unknown', is %q", sc.Token.Field(1))
	}
	from, to := sc.Token.Range()
	if from != 0x0e || to != 0x1f {
		t.Errorf("expected range to be 0E..1F, is %02X..%02X", from, to)
	}
	if sc.Token.TokenType != RangeDataItem {
		t.Errorf("expected a range data item, have type %d", sc.Token.TokenType)
	}
	if sc.Token.Comment == "" {
		t.Errorf("expected comment to be set")
	}
	if sc.Next() {
		t.Errorf("expected end of input, have %v", sc.Token)
	}
}

func TestParseSingle(t *testing.T) {
	input := strings.NewReader("00B7 ; Unknown ; extra # MIDDLE DOT")
	n := 0
	err := Parse(input, func(token *Token) {
		n++
		if token.TokenType != SingleDataItem {
			t.Errorf("expected single data item, have %v", token)
		}
		if from, to := token.Range(); from != 0xb7 || to != 0xb7 {
			t.Errorf("expected range B7..B7, is %02X..%02X", from, to)
		}
		if token.Field(2) != "extra" {
			t.Errorf("expected field #2 to be 'extra', is %q", token.Field(2))
		}
		if token.Field(3) != "" {
			t.Errorf("expected field #3 to be empty, is %q", token.Field(3))
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("expected 1 data item, have %d", n)
	}
}

func TestParseError(t *testing.T) {
	input := strings.NewReader("XYZ;Letter")
	err := Parse(input, func(token *Token) {})
	if err == nil {
		t.Errorf("expected error for line without code-point")
	}
}

func TestCollectRanges(t *testing.T) {
	input := strings.NewReader("0041..005A;Letter\n0030..0039;DecimalNumber\n0061..007A;Letter\n")
	ranges, err := CollectRanges(input)
	if err != nil {
		t.Fatal(err)
	}
	if len(ranges["Letter"]) != 2 {
		t.Errorf("expected 2 letter ranges, have %v", ranges["Letter"])
	}
	if r := ranges["DecimalNumber"]; len(r) != 1 || r[0] != [2]rune{'0', '9'} {
		t.Errorf("unexpected decimal ranges %v", r)
	}
}

func TestSpanTestInput(t *testing.T) {
	in, spans := SpanTestInput("hi «@abcde», «@xyzxy»")
	if in != "hi @abcde, @xyzxy" {
		t.Errorf("unexpected input %q", in)
	}
	if len(spans) != 2 || spans[0] != [2]int{3, 9} || spans[1] != [2]int{11, 17} {
		t.Errorf("unexpected spans %v", spans)
	}
	in, spans = SpanTestInput("no@mention")
	if in != "no@mention" || len(spans) != 0 {
		t.Errorf("unexpected result %q %v", in, spans)
	}
}

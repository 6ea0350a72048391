package scan

import (
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tgtext"
	"github.com/npillmayer/tgtext/internal/ucdparse"
)

// runTestFile runs find on every test case of a test file and compares the
// spans found with the spans marked in the test case.
func runTestFile(t *testing.T, filename, marker string, find tgtext.FindFn) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	tf := ucdparse.OpenTestFileWithMarker(filename, marker, t)
	if tf == nil {
		t.Fatalf("cannot open test file %s", filename)
	}
	defer tf.Close()
	cnt, failcnt := 0, 0
	for tf.Scan() {
		cnt++
		input, want := ucdparse.SpanTestInput(tf.Text())
		spans := tgtext.NewMatcher(input, find).Spans()
		if !sameSpans(spans, want) {
			failcnt++
			t.Errorf("test #%d %q (%s): expected %v, have %v", cnt, input, tf.Comment(), want, spans)
		}
	}
	if err := tf.Err(); err != nil {
		t.Fatal(err)
	}
	t.Logf("%d OF %d TESTS FAILED", failcnt, cnt)
	if cnt == 0 {
		t.Errorf("no test cases in %s", filename)
	}
}

func sameSpans(spans []tgtext.Span, want [][2]int) bool {
	if len(spans) != len(want) {
		return false
	}
	for i, s := range spans {
		if s.Begin != want[i][0] || s.End != want[i][1] {
			return false
		}
	}
	return true
}

func TestMentions(t *testing.T) {
	runTestFile(t, "./testdata/mentions.txt", "#", NextMention)
}

func TestBotCommands(t *testing.T) {
	runTestFile(t, "./testdata/botcommands.txt", "#", NextBotCommand)
}

func TestHashtags(t *testing.T) {
	runTestFile(t, "./testdata/hashtags.txt", "%%", NextHashtag)
}

func TestCashtags(t *testing.T) {
	runTestFile(t, "./testdata/cashtags.txt", "#", NextCashtag)
}

func TestMediaTimestamps(t *testing.T) {
	runTestFile(t, "./testdata/timestamps.txt", "#", NextMediaTimestamp)
}

func TestMentionMatcher(t *testing.T) {
	m := FindMentions("@abcde @xyzxy")
	var found []string
	for m.Next() {
		found = append(found, m.Text())
	}
	if len(found) != 2 || found[0] != "@abcde" || found[1] != "@xyzxy" {
		t.Errorf("expected @abcde and @xyzxy, have %v", found)
	}
	if m.Next() {
		t.Error("expected matcher to stay exhausted")
	}
}

func TestBotCommandWithShortUsername(t *testing.T) {
	spans := Spans(FindBotCommands("/a@b"))
	if len(spans) != 1 || spans[0] != (tgtext.Span{Begin: 0, End: 2}) {
		t.Errorf("expected exactly /a, have %v", spans)
	}
}

func TestMatchersOnEmptyText(t *testing.T) {
	for _, find := range []tgtext.FindFn{NextMention, NextBotCommand, NextHashtag, NextCashtag, NextMediaTimestamp} {
		if spans := tgtext.NewMatcher("", find).Spans(); len(spans) != 0 {
			t.Errorf("expected no spans in empty text, have %v", spans)
		}
	}
}

func TestMatchersOnMalformedInput(t *testing.T) {
	// must not panic
	input := "\xff@ab\xc3#\xe2\x82/x\xf0$ABC\xed:1:23\xc3"
	for _, find := range []tgtext.FindFn{NextMention, NextBotCommand, NextHashtag, NextCashtag, NextMediaTimestamp} {
		tgtext.NewMatcher(input, find).Spans()
	}
}

func TestParseMediaTimestamp(t *testing.T) {
	cases := []struct {
		in      string
		seconds int
		ok      bool
	}{
		{"0:00", 0, true},
		{"1:23", 83, true},
		{"9999:59", 9999*60 + 59, true},
		{"01:02:03", 3723, true},
		{"1:2:03", 3723, true},
		{"99:59:59", 99*3600 + 59*60 + 59, true},
		{"1:2", 0, false},
		{"1:60", 0, false},
		{"10000:00", 0, false},
		{"100:00:00", 0, false},
		{"1:60:00", 0, false},
		{"1:123:00", 0, false},
		{"1::00", 0, false},
		{"1:2:3:45", 0, false},
		{"12", 0, false},
		{"a:12", 0, false},
	}
	for _, c := range cases {
		seconds, ok := ParseMediaTimestamp(c.in)
		if ok != c.ok || seconds != c.seconds {
			t.Errorf("ParseMediaTimestamp(%q) = (%d, %v), expected (%d, %v)", c.in, seconds, ok, c.seconds, c.ok)
		}
	}
}

func FuzzMatchers(f *testing.F) {
	f.Add("@abcde @xyzxy")
	f.Add("/start@examplebot #tag $USD 1:23")
	f.Add("#хэштег @@m /a/b")
	f.Add("\xff@ab\xc3")
	f.Fuzz(func(t *testing.T, text string) {
		for _, find := range []tgtext.FindFn{NextMention, NextBotCommand, NextHashtag, NextCashtag, NextMediaTimestamp} {
			last := 0
			for _, s := range tgtext.NewMatcher(text, find).Spans() {
				if s.Begin < last || s.End <= s.Begin || s.End > len(text) {
					t.Fatalf("invalid span %v after %d in %q", s, last, text)
				}
				last = s.End
			}
		}
	})
}

func ExampleFindHashtags() {
	m := FindHashtags("Cheers #dev_team, #2022 was #great!")
	for m.Next() {
		fmt.Println(m.Span(), m.Text())
	}
	// Output:
	// [7,16) #dev_team
	// [28,34) #great
}

func ExampleFindCashtags() {
	m := FindCashtags("Bought $BTC, sold $eth and $1INCH")
	for m.Next() {
		fmt.Println(m.Text())
	}
	// Output:
	// $BTC
	// $1INCH
}

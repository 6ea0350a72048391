package unicat

import (
	"os"
	"testing"
	"unicode"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tgtext/internal/ucdparse"
)

func TestASCII(t *testing.T) {
	chars := [...]rune{
		'A', // LATIN CAPITAL LETTER A        => Letter
		'z', // LATIN SMALL LETTER Z          => Letter
		'7', // DIGIT SEVEN                   => DecimalNumber
		' ', // SPACE                         => Separator
		'_', // LOW LINE                      => Unknown
		'@', // COMMERCIAL AT                 => Unknown
		0,   // NULL                          => Unknown
	}
	cats := [...]Category{Letter, Letter, DecimalNumber, Separator, Unknown, Unknown, Unknown}
	for i, c := range chars {
		if cat := Classify(c); cat != cats[i] {
			t.Errorf("expected category of %#U to be %s, is %s", c, cats[i], cat)
		}
	}
}

func TestOutOfRange(t *testing.T) {
	for _, r := range []rune{-1, -0x7fffffff, 0x110000, 0x7fffffff} {
		if cat := Classify(r); cat != Unknown {
			t.Errorf("expected %d to be Unknown, is %s", r, cat)
		}
	}
}

func TestCategoryFixtures(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	f, err := os.Open("./testdata/categories.txt")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cnt, failcnt := 0, 0
	err = ucdparse.Parse(f, func(token *ucdparse.Token) {
		from, to := token.Range()
		want := token.Field(1)
		for r := from; r <= to; r++ {
			cnt++
			if cat := Classify(r); cat.String() != want {
				failcnt++
				t.Errorf("line %d: expected %#U to be %s, is %s (%s)",
					token.LineNo, r, want, cat, token.Comment)
			}
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("%d OF %d CODE-POINTS FAILED", failcnt, cnt)
	if cnt == 0 {
		t.Error("no fixtures found")
	}
}

func TestCategoryString(t *testing.T) {
	if Number.String() != "Number" {
		t.Errorf("unexpected name %q", Number.String())
	}
	if Category(42).String() != "Unknown" {
		t.Errorf("out of range categories should print as Unknown")
	}
}

func TestRangeTablesAgreeWithASCII(t *testing.T) {
	for r := rune(0); r < 0x80; r++ {
		tableCat := Unknown
		for cat := Letter; cat <= Separator; cat++ {
			if RangeTables[cat] != nil && unicode.Is(RangeTables[cat], r) {
				tableCat = cat
				break
			}
		}
		if tableCat != Classify(r) {
			t.Errorf("ASCII table and range tables disagree for %#U: %s vs %s",
				r, Classify(r), tableCat)
		}
	}
}

package tgtext

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// --- ad hoc find function for testing purposes ------------------------

// finds runs of 'x'
func findX(text string, pos int) (Span, int, bool) {
	i := strings.IndexByte(text[pos:], 'x')
	if i < 0 {
		return Span{}, len(text), false
	}
	begin := pos + i
	end := begin
	for end < len(text) && text[end] == 'x' {
		end++
	}
	return Span{begin, end}, end, true
}

// ----------------------------------------------------------------------

func TestMatcherSpans(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	m := NewMatcher("axxbxcxxx", findX)
	spans := m.Spans()
	want := []Span{{1, 3}, {4, 5}, {6, 9}}
	if len(spans) != len(want) {
		t.Fatalf("expected %d spans, have %d: %v", len(want), len(spans), spans)
	}
	for i, s := range spans {
		if s != want[i] {
			t.Errorf("span #%d: expected %v, have %v", i, want[i], s)
		}
	}
}

func TestMatcherNotRestartable(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	m := NewMatcher("x", findX)
	if !m.Next() {
		t.Fatal("expected a first span")
	}
	if m.Text() != "x" {
		t.Errorf("expected text 'x', have %q", m.Text())
	}
	if m.Next() {
		t.Error("expected matcher to be exhausted")
	}
	if m.Next() {
		t.Error("exhausted matcher must stay exhausted")
	}
}

func TestMatcherEmpty(t *testing.T) {
	m := NewMatcher("", findX)
	if m.Next() {
		t.Error("empty text should not produce spans")
	}
	m = NewMatcher("xxx", nil)
	if m.Next() {
		t.Error("matcher without find function should not produce spans")
	}
}

func TestPooledMatcher(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	for i := 0; i < 10; i++ {
		m := NewPooledMatcher("x y xx", findX)
		n := 0
		for m.Next() {
			n++
		}
		if n != 2 {
			t.Errorf("round %d: expected 2 spans, have %d", i, n)
		}
		m.Release()
	}
}

func TestSpan(t *testing.T) {
	s := Span{Begin: 2, End: 5}
	if s.Len() != 3 {
		t.Errorf("expected length 3, have %d", s.Len())
	}
	if s.Of("abcdefg") != "cde" {
		t.Errorf("expected 'cde', have %q", s.Of("abcdefg"))
	}
	if s.String() != "[2,5)" {
		t.Errorf("unexpected string representation %q", s.String())
	}
}

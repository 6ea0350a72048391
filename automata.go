package tgtext

import (
	"context"
	"fmt"

	pool "github.com/jolestar/go-commons-pool"
)

// Span is a half-open range [Begin, End) of byte positions within a text.
type Span struct {
	Begin int
	End   int
}

// Len returns the number of bytes covered by span s.
func (s Span) Len() int {
	return s.End - s.Begin
}

// Of returns the part of text covered by s.
func (s Span) Of(text string) string {
	return text[s.Begin:s.End]
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Begin, s.End)
}

// FindFn represents a single step of an entity matcher.
// Starting at byte position pos, a FindFn searches text for the next
// candidate entity. It returns the span of an accepted entity together with
// the position to continue scanning from. If no further entity can be found,
// ok is false.
//
// FindFns never fail: a malformed candidate is simply skipped and scanning
// resumes after it. FindFns have to guarantee progress, i.e. next > pos
// whenever ok is true, and spans have to be returned in increasing,
// non-overlapping order.
type FindFn func(text string, pos int) (span Span, next int, ok bool)

// A Matcher is a lazy, finite and non-restartable sequence of spans within
// a text. Spans are produced by a FindFn on demand, with each call to Next().
//
// Usage:
//
//   m := scan.FindMentions(text)
//   for m.Next() {
//       fmt.Println(m.Text())
//   }
//
// Matchers are short-lived objects. Clients processing large amounts of text
// may use pooled matchers (see NewPooledMatcher) and call Release() when done.
type Matcher struct {
	text   string
	pos    int
	find   FindFn
	span   Span
	done   bool
	pooled bool
}

// NewMatcher creates a Matcher for text, using find to step through it.
func NewMatcher(text string, find FindFn) *Matcher {
	m := &Matcher{}
	m.init(text, find)
	return m
}

func (m *Matcher) init(text string, find FindFn) {
	m.text = text
	m.find = find
	m.pos = 0
	m.span = Span{}
	m.done = find == nil
}

// Matchers are short-lived objects. To avoid multiple allocation of
// small objects we will pool them.
type matcherPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalMatcherPool *matcherPool

func init() {
	globalMatcherPool = &matcherPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &Matcher{}, nil
		})
	globalMatcherPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalMatcherPool.opool = pool.NewObjectPool(globalMatcherPool.ctx, factory, config)
}

// NewPooledMatcher returns a Matcher for text, borrowed from a process-wide
// pool. Clients should call Release() on it after use.
func NewPooledMatcher(text string, find FindFn) *Matcher {
	o, err := globalMatcherPool.opool.BorrowObject(globalMatcherPool.ctx)
	if err != nil {
		CT().Errorf("cannot borrow matcher from pool: %v", err)
		return NewMatcher(text, find)
	}
	m := o.(*Matcher)
	m.init(text, find)
	m.pooled = true
	return m
}

// Release clears a Matcher and, if it has been borrowed from the pool, puts
// it back. A released Matcher must not be used any more.
func (m *Matcher) Release() {
	if m == nil {
		return
	}
	m.init("", nil)
	if m.pooled {
		m.pooled = false
		if err := globalMatcherPool.opool.ReturnObject(globalMatcherPool.ctx, m); err != nil {
			CT().Errorf("cannot return matcher to pool: %v", err)
		}
	}
}

// Next advances the Matcher to the next span, which will then be available
// through Span() and Text(). It returns false when the text is exhausted.
// Once Next has returned false, it will always return false.
func (m *Matcher) Next() bool {
	if m.done {
		return false
	}
	if m.pos > len(m.text) {
		m.done = true
		return false
	}
	span, next, ok := m.find(m.text, m.pos)
	if !ok {
		m.done = true
		return false
	}
	m.span = span
	m.pos = next
	return true
}

// Span returns the most recent span found by Next().
func (m *Matcher) Span() Span {
	return m.span
}

// Text returns the text covered by the most recent span.
func (m *Matcher) Text() string {
	if m.span.End > len(m.text) {
		return ""
	}
	return m.span.Of(m.text)
}

// Spans drains the Matcher and returns all remaining spans.
func (m *Matcher) Spans() []Span {
	var spans []Span
	for m.Next() {
		spans = append(spans, m.span)
	}
	return spans
}

// Simple stringer for debugging purposes.
func (m *Matcher) String() string {
	if m == nil {
		return "[nil matcher]"
	}
	return fmt.Sprintf("[matcher at %d -> done=%v]", m.pos, m.done)
}

/*
Package segment assembles the entities of a message text.

Segmenter provides an interface similar to bufio.Scanner. Successive calls
to a segmenter's Next() method step through the entities of a text, in
canonical entity order. Clients get the current entity by calling Entity()
and the text it covers by calling Text().

  seg := segment.NewSegmenter()
  seg.Init("Hi @durov, see #news and /start@examplebot")
  for seg.Next() {
      fmt.Println(seg.Entity(), seg.Text())
  }
  if err := seg.Err(); err != nil {
      ...
  }

How it works

A segmenter holds a list of rules, each of which pairs an entity type with
a find function from package scan. On Init(), every rule runs over the text
with a pooled matcher and the spans found are converted to entities. Entity
offsets and lengths are measured in UTF-16 code units, the way the platform
transmits them. Entities are collected in an ordered entity.Set, and by
default entities intersecting a preceding entity are dropped.

BSD License

Copyright (c) 2017–22, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package segment

import (
	"errors"
	"strconv"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tgtext"
	"github.com/npillmayer/tgtext/entity"
	"github.com/npillmayer/tgtext/scan"
	"github.com/npillmayer/tgtext/utf8text"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// A Segmenter finds the entities of a text and steps through them.
type Segmenter struct {
	rules            []Rule
	keepIntersecting bool
	text             string
	entities         []entity.MessageEntity
	active           int // index of current entity, -1 before the first call to Next()
	err              error
	initialized      bool
}

// ErrNotInitialized is returned if a segmenter's Next-function is called
// without first setting a text.
// ErrInvalidUTF8 is returned for texts which are not well-formed UTF-8.
var (
	ErrNotInitialized = errors.New("entity segmenter not initialized; must call Init(...) first")
	ErrInvalidUTF8    = errors.New("entity segmenter: text is not valid UTF-8")
)

// NewSegmenter creates a new Segmenter. Without options, it finds bot
// commands, mentions, hashtags, cashtags and media timestamps, and drops
// intersecting entities.
//
// Before using newly created segmenters, clients will have to call
// Init(...) on them.
func NewSegmenter(opts ...Option) *Segmenter {
	s := &Segmenter{rules: DefaultRules()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init initializes a Segmenter with a text. s is either a newly created
// segmenter, or a segmenter already in use, which will be reset.
func (s *Segmenter) Init(text string) {
	s.text = text
	s.entities = s.entities[:0]
	s.active = -1
	s.err = nil
	s.initialized = true
	if !utf8text.Valid(text) {
		s.setErr(ErrInvalidUTF8)
		return
	}
	set := entity.NewSet()
	for _, rule := range s.rules {
		s.collect(rule, set)
	}
	s.entities = append(s.entities, set.Entities()...)
	if !s.keepIntersecting {
		s.entities = entity.RemoveIntersecting(s.entities)
	}
	CT().P("entities", strconv.Itoa(len(s.entities))).Debugf("segmenter initialized")
}

// collect runs a single rule over the text and adds the entities found to set.
func (s *Segmenter) collect(rule Rule, set *entity.Set) {
	m := tgtext.NewPooledMatcher(s.text, rule.Find)
	defer m.Release()
	// offsets are converted incrementally, as spans are ordered
	pos, offset := 0, 0
	for m.Next() {
		span := m.Span()
		offset += utf8text.UTF16Length(s.text[pos:span.Begin])
		length := utf8text.UTF16Length(span.Of(s.text))
		pos = span.Begin
		e, err := rule.entity(offset, length, span.Of(s.text))
		if err != nil {
			CT().Errorf("dropping %s at %v: %v", rule.Type, span, err)
			continue
		}
		set.Add(e)
	}
}

// Err returns the first error that was encountered by the Segmenter.
func (s *Segmenter) Err() error {
	return s.err
}

// setErr records the first error encountered.
func (s *Segmenter) setErr(err error) {
	if s.err == nil {
		s.err = err
	}
}

// Next advances the Segmenter to the next entity, which will then be
// available through Entity() and Text(). It returns false when there are no
// more entities or an error occurred.
func (s *Segmenter) Next() bool {
	if !s.initialized {
		s.setErr(ErrNotInitialized)
		return false
	}
	if s.active+1 >= len(s.entities) {
		s.active = len(s.entities)
		return false
	}
	s.active++
	return true
}

// Entity returns the most recent entity found by Next().
func (s *Segmenter) Entity() entity.MessageEntity {
	if s.active < 0 || s.active >= len(s.entities) {
		return entity.MessageEntity{}
	}
	return s.entities[s.active]
}

// Text returns the text covered by the most recent entity.
func (s *Segmenter) Text() string {
	if s.active < 0 || s.active >= len(s.entities) {
		return ""
	}
	e := s.entities[s.active]
	return utf8text.UTF16Substr(s.text, e.Offset(), e.Length())
}

// Entities returns all the entities of the text, in canonical order.
func (s *Segmenter) Entities() []entity.MessageEntity {
	return append([]entity.MessageEntity(nil), s.entities...)
}

// --- Rules -----------------------------------------------------------------

// Rule connects a type of entity to a find function. Find has to produce
// spans of text of entities of type Type.
type Rule struct {
	Type entity.Type
	Find tgtext.FindFn
}

func (r Rule) entity(offset, length int, text string) (entity.MessageEntity, error) {
	if r.Type == entity.MediaTimestamp {
		seconds, ok := scan.ParseMediaTimestamp(text)
		if !ok {
			return entity.MessageEntity{}, errors.New("malformed media timestamp " + strconv.Quote(text))
		}
		return entity.NewMediaTimestamp(offset, length, seconds)
	}
	return entity.NewPlain(r.Type, offset, length)
}

// DefaultRules returns the rules a segmenter uses unless configured
// otherwise.
func DefaultRules() []Rule {
	return []Rule{
		{Type: entity.BotCommand, Find: scan.NextBotCommand},
		{Type: entity.Mention, Find: scan.NextMention},
		{Type: entity.Hashtag, Find: scan.NextHashtag},
		{Type: entity.Cashtag, Find: scan.NextCashtag},
		{Type: entity.MediaTimestamp, Find: scan.NextMediaTimestamp},
	}
}

/*
Package tgtext is about finding and classifying entities in message text.

Description

Messages exchanged with a messaging platform carry "entities": positioned
spans of text such as @mentions, #hashtags, $CASHTAGS, /botcommands, URLs
and formatting ranges. Clients have to find these entities exactly the way
the server does, because entity offsets are used for formatting, validation
and link rendering on every device that displays a message. A mention which
is recognized by one producer but not by another will silently shift or
corrupt offsets of all the entities following it.

The sub-packages of tgtext therefore reproduce the reference tokenization
byte for byte, including its quirks: digit classification is ASCII-only,
Unicode classification is deliberately coarse, and lengths of entities are
bounded by fixed limits.

Contents

Sub-package unicat maps code-points to a small set of simple categories.
Sub-package utf8text is a byte-level UTF-8 codec which works on character
boundaries, and sub-package chars offers the character predicates built on
top of both. Package ipv6 parses IPv6 literals and package httpurl parses
HTTP URLs the way the platform validates them.

Package scan holds the entity matchers. Every matcher scans a text from left
to right and produces a lazy sequence of half-open byte spans. Base package
tgtext provides the type for these sequences (Matcher), which may be pooled
to avoid allocating lots of short-lived objects when processing many
messages.

Package entity holds the entity data model together with its canonical
ordering, and package segment assembles matcher results into ordered
entities, similar to how a bufio.Scanner steps through tokens. Packages
botapi and mtproto convert entities to and from the entity types of the
Bot API and MTProto client libraries.

  seg := segment.NewSegmenter()
  seg.Init("Hi @durov, see #news and /start@bot")
  for seg.Next() {
      e := seg.Entity()
      ...
  }

Concurrency

All routines are pure functions of their input. Clients are free to process
many texts in parallel, as long as every goroutine owns its Matcher or
Segmenter.

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
package tgtext

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

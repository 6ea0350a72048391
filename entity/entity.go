/*
Package entity holds the data model for message entities.

A message entity is a typed span of message text, such as a mention or a
bold range, optionally carrying a payload which depends on its type: the
target of a text URL, the user of a mention by name, and so on. Entities
are immutable values. They are created with New or one of the typed
constructors, which check that type and payload fit together:

  e, err := entity.New(entity.TextURL, 0, 5, entity.Argument("https://t.me"))

Entities have a canonical order: by offset, then by length, then by the
priority of their types. For entities covering the same text, types with a
lower priority value (e.g., BlockQuote) come before types with higher
values (e.g., Bold).

___________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package entity

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errors returned by New.
var (
	ErrInvalidType     = errors.New("invalid entity type")
	ErrNegativeRange   = errors.New("entity offset and length must not be negative")
	ErrPayloadMismatch = errors.New("entity payload does not match entity type")
)

// Payload is the type-dependent part of an entity. It is one of Argument,
// UserID, CustomEmojiID or Timestamp.
type Payload interface {
	isPayload()
}

// Argument is the payload of Code, PreCode and TextURL entities: the
// language of a code block or the target of a link.
type Argument string

// UserID identifies the user of a MentionName entity. Valid IDs are
// non-zero.
type UserID int64

// CustomEmojiID identifies the emoji of a CustomEmoji entity. Valid IDs are
// non-zero.
type CustomEmojiID int64

// Timestamp is the payload of a MediaTimestamp entity, in seconds.
type Timestamp int32

func (Argument) isPayload()      {}
func (UserID) isPayload()        {}
func (CustomEmojiID) isPayload() {}
func (Timestamp) isPayload()     {}

func (id UserID) Valid() bool        { return id != 0 }
func (id CustomEmojiID) Valid() bool { return id != 0 }

// MessageEntity is a typed span of a message text. Offset and length are
// measured in UTF-16 code units, as on the wire.
type MessageEntity struct {
	typ     Type
	offset  int
	length  int
	payload Payload
}

// New creates a message entity. It fails if offset or length are negative,
// or if the payload does not fit type t.
func New(t Type, offset, length int, payload Payload) (MessageEntity, error) {
	if !t.Valid() {
		return MessageEntity{}, fmt.Errorf("%w: %d", ErrInvalidType, int(t))
	}
	if offset < 0 || length < 0 {
		return MessageEntity{}, ErrNegativeRange
	}
	if err := checkPayload(t, payload); err != nil {
		return MessageEntity{}, err
	}
	if a, ok := payload.(Argument); ok && a == "" {
		payload = nil // optional argument of Code
	}
	return MessageEntity{typ: t, offset: offset, length: length, payload: payload}, nil
}

func checkPayload(t Type, payload Payload) error {
	mismatch := func() error {
		return fmt.Errorf("%w: %s with payload %#v", ErrPayloadMismatch, t, payload)
	}
	switch t {
	case Code:
		if _, ok := payload.(Argument); !ok && payload != nil {
			return mismatch()
		}
	case PreCode, TextURL:
		if a, ok := payload.(Argument); !ok || a == "" {
			return mismatch()
		}
	case MentionName:
		if id, ok := payload.(UserID); !ok || !id.Valid() {
			return mismatch()
		}
	case CustomEmoji:
		if id, ok := payload.(CustomEmojiID); !ok || !id.Valid() {
			return mismatch()
		}
	case MediaTimestamp:
		if ts, ok := payload.(Timestamp); !ok || ts < 0 {
			return mismatch()
		}
	default:
		if payload != nil {
			return mismatch()
		}
	}
	return nil
}

// NewPlain creates an entity of a type without payload.
func NewPlain(t Type, offset, length int) (MessageEntity, error) {
	return New(t, offset, length, nil)
}

func NewCode(offset, length int, language string) (MessageEntity, error) {
	return New(Code, offset, length, Argument(language))
}

func NewPreCode(offset, length int, language string) (MessageEntity, error) {
	return New(PreCode, offset, length, Argument(language))
}

func NewTextURL(offset, length int, url string) (MessageEntity, error) {
	return New(TextURL, offset, length, Argument(url))
}

func NewMentionName(offset, length int, user UserID) (MessageEntity, error) {
	return New(MentionName, offset, length, user)
}

func NewCustomEmoji(offset, length int, id CustomEmojiID) (MessageEntity, error) {
	return New(CustomEmoji, offset, length, id)
}

func NewMediaTimestamp(offset, length int, seconds int) (MessageEntity, error) {
	return New(MediaTimestamp, offset, length, Timestamp(seconds))
}

func (e MessageEntity) Type() Type       { return e.typ }
func (e MessageEntity) Offset() int      { return e.offset }
func (e MessageEntity) Length() int      { return e.length }
func (e MessageEntity) End() int         { return e.offset + e.length }
func (e MessageEntity) Payload() Payload { return e.payload }

// Argument returns the argument of a Code, PreCode or TextURL entity, or
// the empty string.
func (e MessageEntity) Argument() string {
	a, _ := e.payload.(Argument)
	return string(a)
}

// UserID returns the user of a MentionName entity, or 0.
func (e MessageEntity) UserID() UserID {
	id, _ := e.payload.(UserID)
	return id
}

// CustomEmojiID returns the emoji of a CustomEmoji entity, or 0.
func (e MessageEntity) CustomEmojiID() CustomEmojiID {
	id, _ := e.payload.(CustomEmojiID)
	return id
}

// MediaTimestamp returns the timestamp of a MediaTimestamp entity, or -1.
func (e MessageEntity) MediaTimestamp() int {
	if ts, ok := e.payload.(Timestamp); ok {
		return int(ts)
	}
	return -1
}

func (e MessageEntity) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s %d:%d", e.typ, e.offset, e.length)
	switch p := e.payload.(type) {
	case Argument:
		fmt.Fprintf(&b, " %q", string(p))
	case UserID:
		fmt.Fprintf(&b, " user=%d", int64(p))
	case CustomEmojiID:
		fmt.Fprintf(&b, " emoji=%d", int64(p))
	case Timestamp:
		fmt.Fprintf(&b, " t=%ds", int32(p))
	}
	b.WriteByte(']')
	return b.String()
}

// --- Equality and ordering -------------------------------------------------

// Equal is true if a and b agree in type, range and payload.
func Equal(a, b MessageEntity) bool {
	return a == b
}

// IsBefore is true if e comes before other in the canonical order of
// entities: by offset, then by length, then by type priority.
func (e MessageEntity) IsBefore(other MessageEntity) bool {
	if e.offset != other.offset {
		return e.offset < other.offset
	}
	if e.length != other.length {
		return e.length < other.length
	}
	return e.typ.Priority() < other.typ.Priority()
}

// Compare orders entities canonically (see IsBefore). Entities which are
// neither before nor after each other are ordered by type and payload,
// making Compare(a, b) == 0 equivalent to Equal(a, b).
func Compare(a, b MessageEntity) int {
	switch {
	case a.IsBefore(b):
		return -1
	case b.IsBefore(a):
		return 1
	case a.typ != b.typ:
		return cmpInt(int64(a.typ), int64(b.typ))
	}
	return comparePayload(a.payload, b.payload)
}

func comparePayload(p, q Payload) int {
	switch x := p.(type) {
	case Argument:
		if y, ok := q.(Argument); ok {
			return strings.Compare(string(x), string(y))
		}
	case UserID:
		if y, ok := q.(UserID); ok {
			return cmpInt(int64(x), int64(y))
		}
	case CustomEmojiID:
		if y, ok := q.(CustomEmojiID); ok {
			return cmpInt(int64(x), int64(y))
		}
	case Timestamp:
		if y, ok := q.(Timestamp); ok {
			return cmpInt(int64(x), int64(y))
		}
	case nil:
		if q == nil {
			return 0
		}
		return -1
	}
	if q == nil {
		return 1
	}
	return 0
}

func cmpInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Sort sorts entities into canonical order. The sort is stable.
func Sort(entities []MessageEntity) {
	sort.SliceStable(entities, func(i, j int) bool {
		return Compare(entities[i], entities[j]) < 0
	})
}

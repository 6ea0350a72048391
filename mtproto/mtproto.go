/*
Package mtproto converts message entities to and from the MTProto entity
classes of package tg (github.com/gotd/td/tg).

MTProto carries every entity type of package entity except media
timestamps, which exist on the client side only. As with the Bot API,
offsets and lengths are in UTF-16 code units.

___________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package mtproto

import (
	"errors"
	"fmt"

	"github.com/gotd/td/tg"
	"github.com/npillmayer/tgtext/entity"
)

// ErrUnsupportedClass is returned for entity classes without a counterpart
// in package entity.
var ErrUnsupportedClass = errors.New("unsupported MTProto entity class")

// ToMTProto converts e into an MTProto entity. It returns false for media
// timestamps.
func ToMTProto(e entity.MessageEntity) (tg.MessageEntityClass, bool) {
	off, l := e.Offset(), e.Length()
	switch e.Type() {
	case entity.Mention:
		return &tg.MessageEntityMention{Offset: off, Length: l}, true
	case entity.Hashtag:
		return &tg.MessageEntityHashtag{Offset: off, Length: l}, true
	case entity.BotCommand:
		return &tg.MessageEntityBotCommand{Offset: off, Length: l}, true
	case entity.URL:
		return &tg.MessageEntityURL{Offset: off, Length: l}, true
	case entity.EmailAddress:
		return &tg.MessageEntityEmail{Offset: off, Length: l}, true
	case entity.Bold:
		return &tg.MessageEntityBold{Offset: off, Length: l}, true
	case entity.Italic:
		return &tg.MessageEntityItalic{Offset: off, Length: l}, true
	case entity.Code:
		return &tg.MessageEntityCode{Offset: off, Length: l}, true
	case entity.Pre:
		return &tg.MessageEntityPre{Offset: off, Length: l}, true
	case entity.PreCode:
		return &tg.MessageEntityPre{Offset: off, Length: l, Language: e.Argument()}, true
	case entity.TextURL:
		return &tg.MessageEntityTextURL{Offset: off, Length: l, URL: e.Argument()}, true
	case entity.MentionName:
		return &tg.MessageEntityMentionName{Offset: off, Length: l, UserID: int64(e.UserID())}, true
	case entity.Cashtag:
		return &tg.MessageEntityCashtag{Offset: off, Length: l}, true
	case entity.PhoneNumber:
		return &tg.MessageEntityPhone{Offset: off, Length: l}, true
	case entity.Underline:
		return &tg.MessageEntityUnderline{Offset: off, Length: l}, true
	case entity.Strikethrough:
		return &tg.MessageEntityStrike{Offset: off, Length: l}, true
	case entity.BlockQuote:
		return &tg.MessageEntityBlockquote{Offset: off, Length: l}, true
	case entity.BankCardNumber:
		return &tg.MessageEntityBankCard{Offset: off, Length: l}, true
	case entity.Spoiler:
		return &tg.MessageEntitySpoiler{Offset: off, Length: l}, true
	case entity.CustomEmoji:
		return &tg.MessageEntityCustomEmoji{Offset: off, Length: l, DocumentID: int64(e.CustomEmojiID())}, true
	}
	return nil, false
}

// Convert converts entities to MTProto entities, skipping media timestamps.
func Convert(entities []entity.MessageEntity) []tg.MessageEntityClass {
	result := make([]tg.MessageEntityClass, 0, len(entities))
	for _, e := range entities {
		if me, ok := ToMTProto(e); ok {
			result = append(result, me)
		}
	}
	return result
}

// FromMTProto converts an MTProto entity into a message entity.
func FromMTProto(me tg.MessageEntityClass) (entity.MessageEntity, error) {
	if me == nil {
		return entity.MessageEntity{}, fmt.Errorf("%w: nil", ErrUnsupportedClass)
	}
	off, l := me.GetOffset(), me.GetLength()
	var t entity.Type
	switch x := me.(type) {
	case *tg.MessageEntityMention:
		t = entity.Mention
	case *tg.MessageEntityHashtag:
		t = entity.Hashtag
	case *tg.MessageEntityBotCommand:
		t = entity.BotCommand
	case *tg.MessageEntityURL:
		t = entity.URL
	case *tg.MessageEntityEmail:
		t = entity.EmailAddress
	case *tg.MessageEntityBold:
		t = entity.Bold
	case *tg.MessageEntityItalic:
		t = entity.Italic
	case *tg.MessageEntityCode:
		t = entity.Code
	case *tg.MessageEntityPre:
		if x.Language != "" {
			return entity.NewPreCode(off, l, x.Language)
		}
		t = entity.Pre
	case *tg.MessageEntityTextURL:
		return entity.NewTextURL(off, l, x.URL)
	case *tg.MessageEntityMentionName:
		return entity.NewMentionName(off, l, entity.UserID(x.UserID))
	case *tg.MessageEntityCashtag:
		t = entity.Cashtag
	case *tg.MessageEntityPhone:
		t = entity.PhoneNumber
	case *tg.MessageEntityUnderline:
		t = entity.Underline
	case *tg.MessageEntityStrike:
		t = entity.Strikethrough
	case *tg.MessageEntityBlockquote:
		t = entity.BlockQuote
	case *tg.MessageEntityBankCard:
		t = entity.BankCardNumber
	case *tg.MessageEntitySpoiler:
		t = entity.Spoiler
	case *tg.MessageEntityCustomEmoji:
		return entity.NewCustomEmoji(off, l, entity.CustomEmojiID(x.DocumentID))
	default:
		return entity.MessageEntity{}, fmt.Errorf("%w: %s", ErrUnsupportedClass, me.TypeName())
	}
	return entity.NewPlain(t, off, l)
}

// FromMessage converts the entities of an MTProto message. Entities which
// cannot be converted are skipped.
func FromMessage(msg *tg.Message) []entity.MessageEntity {
	if msg == nil {
		return nil
	}
	entities := make([]entity.MessageEntity, 0, len(msg.Entities))
	for _, me := range msg.Entities {
		if e, err := FromMTProto(me); err == nil {
			entities = append(entities, e)
		}
	}
	return entities
}

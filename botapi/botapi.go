/*
Package botapi converts message entities to and from the entities of the
Bot API, as implemented by package tgbotapi
(github.com/go-telegram-bot-api/telegram-bot-api/v5).

Offsets and lengths are passed through unchanged: both sides measure them
in UTF-16 code units. Entity types without a Bot API counterpart
(BankCardNumber, MediaTimestamp) and custom emoji, the identifiers of which
tgbotapi does not carry, are skipped.

___________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package botapi

import (
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/npillmayer/tgtext/entity"
)

// ErrUnknownType is returned for Bot API entities of unknown type.
var ErrUnknownType = errors.New("unknown Bot API entity type")

var typeNames = map[entity.Type]string{
	entity.Mention:       "mention",
	entity.Hashtag:       "hashtag",
	entity.Cashtag:       "cashtag",
	entity.BotCommand:    "bot_command",
	entity.URL:           "url",
	entity.EmailAddress:  "email",
	entity.PhoneNumber:   "phone_number",
	entity.Bold:          "bold",
	entity.Italic:        "italic",
	entity.Underline:     "underline",
	entity.Strikethrough: "strikethrough",
	entity.Spoiler:       "spoiler",
	entity.Code:          "code",
	entity.Pre:           "pre",
	entity.PreCode:       "pre",
	entity.TextURL:       "text_link",
	entity.MentionName:   "text_mention",
	entity.BlockQuote:    "blockquote",
}

var plainTypes = map[string]entity.Type{}

func init() {
	for t, name := range typeNames {
		switch t {
		case entity.PreCode, entity.TextURL, entity.MentionName:
			continue
		}
		plainTypes[name] = t
	}
}

// ToBotAPI converts e into a Bot API entity. It returns false if e has no
// Bot API representation.
func ToBotAPI(e entity.MessageEntity) (tgbotapi.MessageEntity, bool) {
	name, ok := typeNames[e.Type()]
	if !ok {
		return tgbotapi.MessageEntity{}, false
	}
	be := tgbotapi.MessageEntity{
		Type:   name,
		Offset: e.Offset(),
		Length: e.Length(),
	}
	switch e.Type() {
	case entity.PreCode:
		be.Language = e.Argument()
	case entity.TextURL:
		be.URL = e.Argument()
	case entity.MentionName:
		be.User = &tgbotapi.User{ID: int64(e.UserID())}
	}
	return be, true
}

// Convert converts entities to Bot API entities, skipping entities without
// a Bot API representation.
func Convert(entities []entity.MessageEntity) []tgbotapi.MessageEntity {
	result := make([]tgbotapi.MessageEntity, 0, len(entities))
	for _, e := range entities {
		if be, ok := ToBotAPI(e); ok {
			result = append(result, be)
		}
	}
	return result
}

// FromBotAPI converts a Bot API entity into a message entity.
func FromBotAPI(be tgbotapi.MessageEntity) (entity.MessageEntity, error) {
	switch be.Type {
	case "pre":
		if be.Language != "" {
			return entity.NewPreCode(be.Offset, be.Length, be.Language)
		}
		return entity.NewPlain(entity.Pre, be.Offset, be.Length)
	case "text_link":
		return entity.NewTextURL(be.Offset, be.Length, be.URL)
	case "text_mention":
		if be.User == nil {
			return entity.MessageEntity{}, fmt.Errorf("%w: text_mention without user", entity.ErrPayloadMismatch)
		}
		return entity.NewMentionName(be.Offset, be.Length, entity.UserID(be.User.ID))
	}
	t, ok := plainTypes[be.Type]
	if !ok {
		return entity.MessageEntity{}, fmt.Errorf("%w: %q", ErrUnknownType, be.Type)
	}
	return entity.NewPlain(t, be.Offset, be.Length)
}

// FromMessage converts the entities of a Bot API message, including the
// entities of its caption. Entities which cannot be converted are skipped.
func FromMessage(msg *tgbotapi.Message) []entity.MessageEntity {
	if msg == nil {
		return nil
	}
	var entities []entity.MessageEntity
	for _, list := range [][]tgbotapi.MessageEntity{msg.Entities, msg.CaptionEntities} {
		for _, be := range list {
			if e, err := FromBotAPI(be); err == nil {
				entities = append(entities, e)
			}
		}
	}
	return entities
}

package entity

// Type is the type of a message entity.
type Type int8

// Entity types. Size is not a valid entity type, but marks the number of
// types.
const (
	Mention Type = iota
	Hashtag
	BotCommand
	URL
	EmailAddress
	Bold
	Italic
	Code
	Pre
	PreCode
	TextURL
	MentionName
	Cashtag
	PhoneNumber
	Underline
	Strikethrough
	BlockQuote
	BankCardNumber
	MediaTimestamp
	Spoiler
	CustomEmoji
	Size
)

var typeNames = [...]string{
	"Mention", "Hashtag", "BotCommand", "Url", "EmailAddress", "Bold", "Italic",
	"Code", "Pre", "PreCode", "TextUrl", "MentionName", "Cashtag", "PhoneNumber",
	"Underline", "Strikethrough", "BlockQuote", "BankCardNumber", "MediaTimestamp",
	"Spoiler", "CustomEmoji",
}

func (t Type) String() string {
	if !t.Valid() {
		return "Size"
	}
	return typeNames[t]
}

// Valid is true for all types except Size and values out of range.
func (t Type) Valid() bool {
	return t >= 0 && t < Size
}

var priorities = [Size]int{
	Mention:        50,
	Hashtag:        50,
	BotCommand:     50,
	URL:            50,
	EmailAddress:   50,
	Bold:           90,
	Italic:         91,
	Code:           20,
	Pre:            11,
	PreCode:        10,
	TextURL:        49,
	MentionName:    49,
	Cashtag:        50,
	PhoneNumber:    50,
	Underline:      92,
	Strikethrough:  93,
	BlockQuote:     0,
	BankCardNumber: 50,
	MediaTimestamp: 50,
	Spoiler:        94,
	CustomEmoji:    99,
}

// Priority orders entities of different types which cover the same text.
// Entities with lower priority values come first, i.e. they enclose
// entities with higher values.
func (t Type) Priority() int {
	if !t.Valid() {
		return 100
	}
	return priorities[t]
}

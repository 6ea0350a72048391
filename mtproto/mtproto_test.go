package mtproto

import (
	"errors"
	"testing"

	"github.com/gotd/td/tg"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tgtext/entity"
	"github.com/npillmayer/tgtext/segment"
)

func TestAllTypesRoundTrip(t *testing.T) {
	var entities []entity.MessageEntity
	for typ := entity.Type(0); typ < entity.Size; typ++ {
		var e entity.MessageEntity
		var err error
		switch typ {
		case entity.PreCode:
			e, err = entity.NewPreCode(1, 2, "go")
		case entity.TextURL:
			e, err = entity.NewTextURL(1, 2, "https://t.me/")
		case entity.MentionName:
			e, err = entity.NewMentionName(1, 2, 42)
		case entity.CustomEmoji:
			e, err = entity.NewCustomEmoji(1, 2, 5368324170671202286)
		case entity.MediaTimestamp:
			e, err = entity.NewMediaTimestamp(1, 2, 60)
		default:
			e, err = entity.NewPlain(typ, 1, 2)
		}
		if err != nil {
			t.Fatalf("cannot create %s entity: %v", typ, err)
		}
		entities = append(entities, e)
	}
	converted := Convert(entities)
	if len(converted) != len(entities)-1 {
		t.Fatalf("expected all but the media timestamp to convert, have %d of %d", len(converted), len(entities))
	}
	i := 0
	for _, e := range entities {
		if e.Type() == entity.MediaTimestamp {
			continue
		}
		back, err := FromMTProto(converted[i])
		if err != nil {
			t.Errorf("cannot convert %s back: %v", converted[i].TypeName(), err)
		} else if !entity.Equal(e, back) {
			t.Errorf("expected %v, have %v", e, back)
		}
		i++
	}
}

func TestPayloads(t *testing.T) {
	e, _ := entity.NewCustomEmoji(0, 2, 99)
	me, ok := ToMTProto(e)
	if !ok {
		t.Fatalf("expected custom emoji to convert")
	}
	if ce, ok := me.(*tg.MessageEntityCustomEmoji); !ok || ce.DocumentID != 99 {
		t.Errorf("unexpected MTProto entity %v", me)
	}
	e, _ = entity.NewMentionName(3, 4, 1234)
	me, _ = ToMTProto(e)
	if mn, ok := me.(*tg.MessageEntityMentionName); !ok || mn.UserID != 1234 || mn.Offset != 3 || mn.Length != 4 {
		t.Errorf("unexpected MTProto entity %v", me)
	}
}

func TestFromMTProtoFailures(t *testing.T) {
	if _, err := FromMTProto(nil); !errors.Is(err, ErrUnsupportedClass) {
		t.Errorf("expected nil entity to fail, have %v", err)
	}
	if _, err := FromMTProto(&tg.MessageEntityUnknown{Offset: 0, Length: 3}); !errors.Is(err, ErrUnsupportedClass) {
		t.Errorf("expected unknown entity to fail, have %v", err)
	}
	if _, err := FromMTProto(&tg.MessageEntityCustomEmoji{Offset: 0, Length: 2}); !errors.Is(err, entity.ErrPayloadMismatch) {
		t.Errorf("expected custom emoji without document to fail, have %v", err)
	}
	e, err := FromMTProto(&tg.MessageEntityPre{Offset: 0, Length: 3})
	if err != nil || e.Type() != entity.Pre {
		t.Errorf("expected pre without language to become Pre, have %v, %v", e, err)
	}
}

func TestFromMessage(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := segment.NewSegmenter()
	seg.Init("meet @gopher at 12:30 #gophercon")
	msg := &tg.Message{Message: "meet @gopher at 12:30 #gophercon"}
	msg.Entities = append(Convert(seg.Entities()), &tg.MessageEntityUnknown{Offset: 0, Length: 4})
	entities := FromMessage(msg)
	if len(entities) != 2 {
		t.Fatalf("expected mention and hashtag, have %v", entities)
	}
	if entities[0].Type() != entity.Mention || entities[1].Type() != entity.Hashtag {
		t.Errorf("unexpected entities %v", entities)
	}
}

package telegram

import (
	"context"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"wordglance/internal/domain"
	"wordglance/internal/lookup"
	"wordglance/internal/source/mock"
	"wordglance/internal/source/thesaurus"
)

func newTestBot(dict *mock.Dictionary, enc *mock.Encyclopedia) *Bot {
	svc := lookup.New(lookup.Deps{
		Dictionary:   dict,
		Encyclopedia: enc,
		Thesaurus:    thesaurus.NewStub(),
	})
	// nil api: Send and SendTyping become no-ops
	bot := &Bot{lookup: svc, logger: zap.NewNop()}
	bot.handler = NewHandler(bot)
	return bot
}

func message(text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		Text: text,
		From: &tgbotapi.User{ID: 7, UserName: "tester"},
		Chat: &tgbotapi.Chat{ID: 7},
	}
}

func TestHandler_PlainTextIsLookup(t *testing.T) {
	dict := mock.NewDictionary().WithSections([]domain.DefinitionSection{
		{Source: "Free Dictionary API", Definitions: []domain.Definition{{Word: "hello", Definition: "A greeting."}}},
	})
	enc := mock.NewEncyclopedia()
	bot := newTestBot(dict, enc)

	bot.handler.HandleMessage(context.Background(), message("hello"))

	if dict.Calls() != 1 {
		t.Errorf("dictionary calls = %d, want 1", dict.Calls())
	}
	if enc.Calls() != 1 {
		t.Errorf("encyclopedia calls = %d, want 1", enc.Calls())
	}
}

func TestHandler_EntityMessageSkipsDictionary(t *testing.T) {
	dict := mock.NewDictionary()
	enc := mock.NewEncyclopedia()
	bot := newTestBot(dict, enc)

	bot.handler.HandleMessage(context.Background(), message("Paris"))

	if dict.Calls() != 0 {
		t.Errorf("dictionary calls = %d, want 0", dict.Calls())
	}
	if enc.Calls() != 1 {
		t.Errorf("encyclopedia calls = %d, want 1", enc.Calls())
	}
}

func TestHandler_CommandsDoNotLookup(t *testing.T) {
	dict := mock.NewDictionary()
	enc := mock.NewEncyclopedia()
	bot := newTestBot(dict, enc)

	for _, text := range []string{"/start", "/help", "/unknown"} {
		msg := message(text)
		msg.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(text)}}
		bot.handler.HandleMessage(context.Background(), msg)
	}

	if dict.Calls() != 0 || enc.Calls() != 0 {
		t.Errorf("source calls = %d/%d, want 0/0", dict.Calls(), enc.Calls())
	}
}

func TestHandler_LookupCommand(t *testing.T) {
	dict := mock.NewDictionary()
	enc := mock.NewEncyclopedia()
	bot := newTestBot(dict, enc)

	msg := message("/lookup hello")
	msg.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len("/lookup")}}
	bot.handler.HandleMessage(context.Background(), msg)

	if dict.Calls() != 1 {
		t.Errorf("dictionary calls = %d, want 1", dict.Calls())
	}
	if dict.LastQuery != "hello" {
		t.Errorf("query = %q, want %q", dict.LastQuery, "hello")
	}
}

func TestHandler_EmptyQueryDoesNotCallSources(t *testing.T) {
	dict := mock.NewDictionary()
	enc := mock.NewEncyclopedia()
	bot := newTestBot(dict, enc)

	msg := message("/lookup")
	msg.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len("/lookup")}}
	bot.handler.HandleMessage(context.Background(), msg)

	if dict.Calls() != 0 || enc.Calls() != 0 {
		t.Errorf("source calls = %d/%d, want 0/0", dict.Calls(), enc.Calls())
	}
}

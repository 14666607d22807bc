package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"wordglance/internal/domain"
)

type Handler struct {
	bot *Bot
}

func NewHandler(bot *Bot) *Handler {
	return &Handler{bot: bot}
}

func (h *Handler) HandleMessage(ctx context.Context, msg *tgbotapi.Message) {
	h.bot.logger.Info("received message",
		zap.Int64("user_id", msg.From.ID),
		zap.Bool("is_command", msg.IsCommand()),
	)

	if msg.IsCommand() {
		h.handleCommand(ctx, msg)
		return
	}

	h.handleLookup(ctx, msg, msg.Text)
}

func (h *Handler) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		h.bot.Send(msg.Chat.ID, "Hi! Send me a word or phrase and I will look it up.\n\nUse /help for details.")
	case "help":
		h.handleHelp(msg)
	case "lookup":
		h.handleLookup(ctx, msg, msg.CommandArguments())
	default:
		h.bot.Send(msg.Chat.ID, "Unknown command. Use /help.")
	}
}

func (h *Handler) handleHelp(msg *tgbotapi.Message) {
	helpText := `<b>WordGlance</b>

Send any word or phrase and I will aggregate what the dictionary and Wikipedia know about it.

<b>Commands:</b>
/lookup word - same as sending the word directly
/help - this message

Capitalized queries and phrases of three or more words are treated as names and skip the dictionary.`

	h.bot.Send(msg.Chat.ID, helpText)
}

func (h *Handler) handleLookup(ctx context.Context, msg *tgbotapi.Message, query string) {
	h.bot.SendTyping(msg.Chat.ID)

	result, err := h.bot.lookup.Lookup(ctx, query)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyQuery) {
			h.bot.Send(msg.Chat.ID, "Send me a word or phrase to look up.")
			return
		}
		h.bot.logger.Error("lookup failed",
			zap.Error(err),
			zap.Int64("chat_id", msg.Chat.ID),
		)
		h.bot.Send(msg.Chat.ID, "Something went wrong. Try again later.")
		return
	}

	for _, chunk := range SplitMessage(FormatResult(result), maxMessageLength) {
		if err := h.bot.Send(msg.Chat.ID, chunk); err != nil {
			h.bot.logger.Error("send failed",
				zap.Error(err),
				zap.Int64("chat_id", msg.Chat.ID),
			)
			return
		}
	}
}

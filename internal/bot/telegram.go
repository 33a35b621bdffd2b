package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

const (
	confirmPrefix = "confirm:"
	declineData   = "decline"
)

// Telegram is the long-polling collaborator. It translates updates into
// Events for the worker and carries replies back; it holds no business
// logic of its own.
type Telegram struct {
	api    *bot.Bot
	events chan<- Event
}

func NewTelegram(token string, events chan<- Event) (*Telegram, error) {
	t := &Telegram{events: events}

	api, err := bot.New(token)
	if err != nil {
		return nil, fmt.Errorf("can't create telegram bot: %w", err)
	}
	t.api = api

	api.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, t.handleStart)
	api.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, t.handleCallback)

	return t, nil
}

func (t *Telegram) Start(ctx context.Context) {
	zap.L().Info("telegram bot long-polling started")
	t.api.Start(ctx)
}

// handleStart parses the login deep-link: "/start <session-token>".
func (t *Telegram) handleStart(ctx context.Context, api *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	parts := strings.Fields(update.Message.Text)
	if len(parts) < 2 {
		_, _ = api.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: update.Message.Chat.ID,
			Text:   "Open this bot through the login link in the app.",
		})
		return
	}
	token := parts[1]

	_, _ = api.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   "Confirm login to your finance account?",
		ReplyMarkup: &models.InlineKeyboardMarkup{
			InlineKeyboard: [][]models.InlineKeyboardButton{{
				{Text: "Confirm", CallbackData: confirmPrefix + token},
				{Text: "Decline", CallbackData: declineData},
			}},
		},
	})

	t.events <- Event{
		Kind:       EventLink,
		TelegramID: update.Message.From.ID,
		ChatID:     update.Message.Chat.ID,
		Token:      token,
	}
}

func (t *Telegram) handleCallback(ctx context.Context, api *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}
	cb := update.CallbackQuery

	_, _ = api.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: cb.ID,
	})

	chatID := cb.From.ID
	if cb.Message.Message != nil {
		chatID = cb.Message.Message.Chat.ID
	}

	switch {
	case strings.HasPrefix(cb.Data, confirmPrefix):
		t.events <- Event{
			Kind:       EventConfirm,
			TelegramID: cb.From.ID,
			ChatID:     chatID,
			Token:      strings.TrimPrefix(cb.Data, confirmPrefix),
		}
	case cb.Data == declineData:
		t.events <- Event{
			Kind:       EventDecline,
			TelegramID: cb.From.ID,
			ChatID:     chatID,
		}
	}
}

// Notify implements the worker's Notifier.
func (t *Telegram) Notify(ctx context.Context, chatID int64, text string) {
	_, err := t.api.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		zap.L().Error("can't send telegram message", zap.Error(err))
	}
}

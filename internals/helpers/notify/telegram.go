package notify

import (
	"context"
	"fmt"
	"html"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// TelegramSender mengirim notifikasi ke chat operator; Message.To diabaikan.
type TelegramSender struct {
	bot    *bot.Bot
	chatID int64
}

func NewTelegramSender(token string, chatID int64) (*TelegramSender, error) {
	b, err := bot.New(token, bot.WithSkipGetMe())
	if err != nil {
		return nil, fmt.Errorf("telegram: %w", err)
	}
	return &TelegramSender{bot: b, chatID: chatID}, nil
}

func (s *TelegramSender) Send(ctx context.Context, msg Message) error {
	text := "<b>" + html.EscapeString(msg.Subject) + "</b>\n\n" + html.EscapeString(msg.Body)
	_, err := s.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    s.chatID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		return fmt.Errorf("telegram: %w", err)
	}
	return nil
}

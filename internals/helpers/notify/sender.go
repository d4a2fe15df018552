package notify

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Message adalah notifikasi ke operator; Body plain text, HTML opsional.
type Message struct {
	To      string
	Subject string
	Body    string
	HTML    string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// LogSender hanya menulis ke log; default untuk dev.
type LogSender struct {
	Log *zap.Logger
}

func (s *LogSender) Send(ctx context.Context, msg Message) error {
	s.Log.Info("notify#log", zap.String("to", msg.To), zap.String("subject", msg.Subject), zap.String("body", msg.Body))
	return nil
}

type Config struct {
	Driver          string
	OperatorAddress string
	MailFrom        string
	ResendAPIKey    string
	TelegramToken   string
	TelegramChatID  int64
}

// New memilih driver sesuai konfigurasi.
func New(cfg Config, log *zap.Logger) (Sender, error) {
	log = log.Named("notify")
	switch cfg.Driver {
	case "resend":
		return NewResendSender(cfg.ResendAPIKey, cfg.MailFrom), nil
	case "telegram":
		return NewTelegramSender(cfg.TelegramToken, cfg.TelegramChatID)
	case "", "log":
		return &LogSender{Log: log}, nil
	default:
		return nil, fmt.Errorf("unknown notify driver %q", cfg.Driver)
	}
}

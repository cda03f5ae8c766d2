package mail

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/joshu-sajeev/signupmail/internal/config"
)

var (
	// ErrUnknownProvider is returned by New for a provider it cannot build.
	ErrUnknownProvider = errors.New("unknown mail provider")
	// ErrNoRecipient is returned when the message has no To address.
	ErrNoRecipient = errors.New("no recipient provided")
	// ErrNoSender is returned when neither the message nor the transport has a From address.
	ErrNoSender = errors.New("no sender provided")
)

// Message is a plain-text email.
type Message struct {
	From    string
	To      string
	Subject string
	Text    string
}

// Sender delivers a Message through an external relay.
type Sender interface {
	io.Closer
	Send(ctx context.Context, msg Message) error
}

// New builds the transport selected by cfg.MailProvider.
func New(cfg *config.Config, logger *zap.Logger) (Sender, error) {
	switch cfg.MailProvider {
	case config.ProviderSMTP:
		s, err := NewSMTP(SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SenderAddress,
		})
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.ProviderResend:
		r, err := NewResend(ResendConfig{
			APIKey: cfg.ResendAPIKey,
			From:   cfg.SenderAddress,
		})
		if err != nil {
			return nil, err
		}
		return r, nil
	case config.ProviderLog:
		return NewLogSender(logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.MailProvider)
	}
}

func resolveFrom(msg Message, fallback string) (string, error) {
	if msg.From != "" {
		return msg.From, nil
	}
	if fallback != "" {
		return fallback, nil
	}
	return "", ErrNoSender
}

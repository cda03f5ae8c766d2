package mail

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v3"
)

// ErrResendAPIKeyRequired is returned when no API key is configured.
var ErrResendAPIKeyRequired = errors.New("resend api key is required")

// Resend is a Sender backed by the Resend HTTP API.
type Resend struct {
	client      *resend.Client
	defaultFrom string
}

type ResendConfig struct {
	APIKey string
	From   string
}

func NewResend(cfg ResendConfig) (*Resend, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrResendAPIKeyRequired
	}

	return &Resend{
		client:      resend.NewClient(cfg.APIKey),
		defaultFrom: cfg.From,
	}, nil
}

// Send implements Sender.
func (r *Resend) Send(ctx context.Context, msg Message) error {
	if strings.TrimSpace(msg.To) == "" {
		return ErrNoRecipient
	}

	from, err := resolveFrom(msg, r.defaultFrom)
	if err != nil {
		return err
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Text:    msg.Text,
	}

	if _, err := r.client.Emails.SendWithContext(ctx, req); err != nil {
		return fmt.Errorf("resend: failed to send email: %w", err)
	}

	return nil
}

func (r *Resend) Close() error {
	return nil
}

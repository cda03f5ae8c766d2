package app

import (
	"context"
	"fmt"

	"github.com/joshu-sajeev/signupmail/internal/config"
	"github.com/joshu-sajeev/signupmail/internal/credentials"
	"github.com/joshu-sajeev/signupmail/internal/email"
	"github.com/joshu-sajeev/signupmail/internal/mail"
	"go.uber.org/zap"
)

// App holds the process-wide collaborators built once at startup and shared
// read-only by every request.
type App struct {
	Sender  mail.Sender
	Service *email.EmailService
}

// New checks the service credentials, builds the configured mail transport
// and the EmailService on top of it.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	creds, err := credentials.Load(ctx, cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("load credentials: %w", err)
	}
	if creds != nil {
		logger.Info("credentials_loaded", zap.String("project_id", creds.ProjectID))
	}

	sender, err := mail.New(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("build mail transport: %w", err)
	}

	logger.Info("mail_transport_ready",
		zap.String("provider", cfg.MailProvider),
		zap.String("sender", cfg.SenderAddress),
	)

	return &App{
		Sender:  sender,
		Service: email.NewEmailService(sender, cfg.SenderAddress, logger),
	}, nil
}

func (a *App) Close() error {
	return a.Sender.Close()
}

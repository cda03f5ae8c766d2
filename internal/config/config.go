package config

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Addr            string        `env:"APP_ADDR,default=:8080"`
	MailProvider    string        `env:"MAIL_PROVIDER,default=smtp"`
	SenderAddress   string        `env:"MAIL_SENDER_ADDRESS"`
	SMTPHost        string        `env:"SMTP_HOST,default=smtp.gmail.com"`
	SMTPPort        int           `env:"SMTP_PORT,default=587"`
	SMTPUsername    string        `env:"SMTP_USERNAME"`
	SMTPPassword    string        `env:"SMTP_PASSWORD"`
	ResendAPIKey    string        `env:"RESEND_API_KEY"`
	CredentialsFile string        `env:"GOOGLE_APPLICATION_CREDENTIALS"`
	LogLevel        string        `env:"LOG_LEVEL,default=info"`
	CORSMaxAge      time.Duration `env:"CORS_MAX_AGE,default=12h"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
}

// to help with testing
var envProcess = envconfig.Process

// LoadConfigFromEnv reads the process environment into a Config and
// validates it. The SMTP username falls back to the sender address, which is
// what relays like Gmail expect.
func LoadConfigFromEnv(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envProcess(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env config: %w", err)
	}

	cfg.MailProvider = strings.ToLower(strings.TrimSpace(cfg.MailProvider))
	cfg.SenderAddress = strings.TrimSpace(cfg.SenderAddress)
	if strings.TrimSpace(cfg.SMTPUsername) == "" {
		cfg.SMTPUsername = cfg.SenderAddress
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	var errors []string

	if strings.TrimSpace(cfg.Addr) == "" {
		errors = append(errors, "APP_ADDR is required")
	}

	if cfg.SenderAddress == "" {
		errors = append(errors, "MAIL_SENDER_ADDRESS is required")
	}

	switch {
	case !slices.Contains(AllowedProviders, cfg.MailProvider):
		errors = append(errors, fmt.Sprintf("MAIL_PROVIDER must be one of %s", strings.Join(AllowedProviders, ", ")))
	case cfg.MailProvider == ProviderSMTP:
		if strings.TrimSpace(cfg.SMTPHost) == "" {
			errors = append(errors, "SMTP_HOST is required")
		}
		if cfg.SMTPPort < 1 || cfg.SMTPPort > 65535 {
			errors = append(errors, "SMTP_PORT must be between 1 and 65535")
		}
	case cfg.MailProvider == ProviderResend:
		if strings.TrimSpace(cfg.ResendAPIKey) == "" {
			errors = append(errors, "RESEND_API_KEY is required for the resend provider")
		}
	}

	if cfg.CORSMaxAge < 0 {
		errors = append(errors, "CORS_MAX_AGE must be non-negative")
	}

	if cfg.ShutdownTimeout <= 0 {
		errors = append(errors, "SHUTDOWN_TIMEOUT must be positive")
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}

	return nil
}

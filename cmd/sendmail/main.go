package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joshu-sajeev/signupmail/internal/app"
	"github.com/joshu-sajeev/signupmail/internal/config"
	"github.com/joshu-sajeev/signupmail/internal/dto"
	"github.com/joshu-sajeev/signupmail/internal/email"
	"github.com/joshu-sajeev/signupmail/internal/logging"
	"github.com/joshu-sajeev/signupmail/middleware"
	"github.com/spf13/cobra"
)

const (
	flagTo      = "to"
	flagSubject = "subject"
	flagBody    = "body"
)

// serviceBuilder returns the service to send through and a cleanup func.
type serviceBuilder func(ctx context.Context) (email.EmailServiceInterface, func() error, error)

func main() {
	cmd := newSendCommand(buildFromEnv)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildFromEnv(ctx context.Context) (email.EmailServiceInterface, func() error, error) {
	cfg, err := config.LoadConfigFromEnv(ctx)
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	return a.Service, func() error {
		_ = logger.Sync()
		return a.Close()
	}, nil
}

func newSendCommand(build serviceBuilder) *cobra.Command {
	var req dto.SendEmailRequest

	cmd := &cobra.Command{
		Use:           "sendmail",
		Short:         "Send one message through the configured mail transport",
		Long:          "Send a single plain-text email using the same configuration as the API, to check relay credentials.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := middleware.Validate(&req); err != nil {
				return fmt.Errorf("--%s, --%s and --%s are required", flagTo, flagSubject, flagBody)
			}

			svc, cleanup, err := build(cmd.Context())
			if err != nil {
				return err
			}
			defer func() {
				_ = cleanup()
			}()

			if err := svc.SendSignUpEmail(cmd.Context(), &req); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), config.MsgEmailSent)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&req.Recipient, flagTo, "", "recipient address")
	flags.StringVar(&req.Subject, flagSubject, "", "subject line")
	flags.StringVar(&req.Body, flagBody, "", "plain-text body")

	return cmd
}

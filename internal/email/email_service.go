package email

import (
	"context"
	"net/http"

	"github.com/joshu-sajeev/signupmail/common"
	"github.com/joshu-sajeev/signupmail/internal/config"
	"github.com/joshu-sajeev/signupmail/internal/dto"
	"github.com/joshu-sajeev/signupmail/internal/mail"
	"go.uber.org/zap"
)

type EmailService struct {
	sender mail.Sender
	from   string
	logger *zap.Logger
}

func NewEmailService(sender mail.Sender, from string, logger *zap.Logger) *EmailService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmailService{sender: sender, from: from, logger: logger}
}

var _ EmailServiceInterface = (*EmailService)(nil)

// SendSignUpEmail builds a plain-text message from the request, hands it to
// the transport once and logs the outcome. Transport errors are logged in
// full and returned to the caller only as a generic 500.
func (s *EmailService) SendSignUpEmail(ctx context.Context, req *dto.SendEmailRequest) error {
	msg := mail.Message{
		From:    s.from,
		To:      req.Recipient,
		Subject: req.Subject,
		Text:    req.Body,
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		s.logger.Error("send_email_failed",
			zap.Error(err),
			zap.String("recipient", req.Recipient),
		)
		return common.NewAPIError(http.StatusInternalServerError, config.MsgSendFailed)
	}

	s.logger.Info("send_email_succeeded", zap.String("recipient", req.Recipient))
	return nil
}

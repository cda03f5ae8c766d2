package mail

import (
	"context"

	"go.uber.org/zap"
)

// LogSender only records the message. Used for local runs where no relay
// credentials are available.
type LogSender struct {
	logger *zap.Logger
}

func NewLogSender(logger *zap.Logger) *LogSender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogSender{logger: logger}
}

func (l *LogSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if msg.To == "" {
		return ErrNoRecipient
	}

	l.logger.Info("mail_log_transport",
		zap.String("from", msg.From),
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.Int("text_bytes", len(msg.Text)),
	)

	return nil
}

func (l *LogSender) Close() error {
	return nil
}

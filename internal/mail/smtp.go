package mail

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
)

var (
	// ErrSMTPHostPortRequired is returned when Host/Port are missing.
	ErrSMTPHostPortRequired = errors.New("smtp host and port are required")
	// ErrInvalidAddress is returned when a From or To address would break the header block.
	ErrInvalidAddress = errors.New("address must not contain CR or LF")
)

// sendMail is swapped out in tests.
var sendMail = smtp.SendMail

// SMTP is a Sender backed by net/smtp. smtp.SendMail upgrades to STARTTLS
// when the server offers it, which PLAIN auth requires for remote hosts.
type SMTP struct {
	addr        string
	defaultFrom string
	auth        smtp.Auth
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	// From is the default sender when Message.From is empty.
	From string
}

func NewSMTP(cfg SMTPConfig) (*SMTP, error) {
	if cfg.Host == "" || cfg.Port == 0 {
		return nil, ErrSMTPHostPortRequired
	}

	var auth smtp.Auth
	if cfg.Username != "" && cfg.Password != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return &SMTP{
		addr:        net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		defaultFrom: cfg.From,
		auth:        auth,
	}, nil
}

// Send delivers msg over SMTP.
func (s *SMTP) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if strings.TrimSpace(msg.To) == "" {
		return ErrNoRecipient
	}

	from, err := resolveFrom(msg, s.defaultFrom)
	if err != nil {
		return err
	}

	if strings.ContainsAny(msg.To, "\r\n") || strings.ContainsAny(from, "\r\n") {
		return ErrInvalidAddress
	}

	raw := buildMessage(from, msg)

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := sendMail(s.addr, s.auth, from, []string{msg.To}, raw); err != nil {
		return fmt.Errorf("smtp: send to %s: %w", msg.To, err)
	}

	return nil
}

// Close implements io.Closer; SMTP dials per message so there is nothing to release.
func (s *SMTP) Close() error {
	return nil
}

// buildMessage renders the header block and body. The subject is written as
// an RFC 2047 encoded-word whenever it holds anything outside printable
// ASCII, so CR and LF never reach the header block.
func buildMessage(from string, msg Message) []byte {
	headers := []string{
		fmt.Sprintf("From: %s", from),
		fmt.Sprintf("To: %s", msg.To),
		"Subject: " + mime.QEncoding.Encode("utf-8", msg.Subject),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=UTF-8",
	}

	return []byte(strings.Join(headers, "\r\n") + "\r\n\r\n" + msg.Text)
}

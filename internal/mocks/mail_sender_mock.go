package mocks

import (
	"context"

	"github.com/joshu-sajeev/signupmail/internal/mail"
	"github.com/stretchr/testify/mock"
)

type MailSenderMock struct {
	mock.Mock
}

func (m *MailSenderMock) Send(ctx context.Context, msg mail.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MailSenderMock) Close() error {
	args := m.Called()
	return args.Error(0)
}

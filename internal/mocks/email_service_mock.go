package mocks

import (
	"context"

	"github.com/joshu-sajeev/signupmail/internal/dto"
	"github.com/stretchr/testify/mock"
)

type EmailServiceMock struct {
	mock.Mock
}

func (m *EmailServiceMock) SendSignUpEmail(ctx context.Context, req *dto.SendEmailRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

package email

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/joshu-sajeev/signupmail/internal/dto"
)

// EmailServiceInterface defines the contract for sending sign-up emails.
type EmailServiceInterface interface {
	SendSignUpEmail(ctx context.Context, req *dto.SendEmailRequest) error
}

// EmailHandlerInterface defines the contract for HTTP request handlers.
type EmailHandlerInterface interface {
	SendSignUpEmail(c *gin.Context)
}

package email

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshu-sajeev/signupmail/common"
	"github.com/joshu-sajeev/signupmail/internal/config"
	"github.com/joshu-sajeev/signupmail/internal/dto"
	"github.com/joshu-sajeev/signupmail/middleware"
)

type EmailHandler struct {
	service EmailServiceInterface
}

func NewEmailHandler(s EmailServiceInterface) *EmailHandler {
	return &EmailHandler{service: s}
}

var _ EmailHandlerInterface = (*EmailHandler)(nil)

// SendSignUpEmail handles every method on the endpoint so that non-POST
// requests get the JSON 405 body instead of the router's default.
// It binds and validates the body, delegates delivery to the EmailService,
// and returns HTTP 200 once the transport has accepted the message.
func (h *EmailHandler) SendSignUpEmail(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.Error(common.NewAPIError(http.StatusMethodNotAllowed, config.MsgMethodNotAllowed))
		c.Abort()
		return
	}

	var req dto.SendEmailRequest
	if !middleware.Bind(c, &req) {
		c.Abort()
		return
	}

	if err := h.service.SendSignUpEmail(c.Request.Context(), &req); err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, dto.SendEmailResponse{Success: true, Message: config.MsgEmailSent})
}

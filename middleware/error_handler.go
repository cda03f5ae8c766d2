package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshu-sajeev/signupmail/common"
	"github.com/joshu-sajeev/signupmail/internal/config"
)

// ErrorHandler renders the last error pushed with c.Error as a
// {success:false, message} body. Errors that are not APIError never expose
// their text to the caller.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		var apiErr common.APIError
		if errors.As(err, &apiErr) {
			c.JSON(apiErr.Status, apiErr)
			return
		}

		c.JSON(http.StatusInternalServerError, common.NewAPIError(http.StatusInternalServerError, config.MsgSendFailed))
	}
}

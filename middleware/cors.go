package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	corsAllowedMethods = []string{http.MethodPost, http.MethodOptions}
	corsAllowedHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsExposedHeaders = []string{"Content-Type", RequestIDHeader}
)

// CORS allows browser calls from any origin. Preflight requests are answered
// here and never reach the handler.
func CORS(maxAge time.Duration) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     corsAllowedMethods,
		AllowHeaders:     corsAllowedHeaders,
		ExposeHeaders:    corsExposedHeaders,
		AllowCredentials: false,
		MaxAge:           maxAge,
	})
}

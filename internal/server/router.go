package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joshu-sajeev/signupmail/internal/config"
	"github.com/joshu-sajeev/signupmail/internal/email"
	"github.com/joshu-sajeev/signupmail/middleware"
	"go.uber.org/zap"
)

// NewRouter wires the middleware chain in front of the sign-up endpoint.
// CORS runs before the handler so preflight requests never reach it.
func NewRouter(logger *zap.Logger, handler email.EmailHandlerInterface, corsMaxAge time.Duration) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(corsMaxAge))
	router.Use(middleware.ErrorHandler())

	router.Any(config.RouteSendSignUpEmail, handler.SendSignUpEmail)

	return router
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joshu-sajeev/signupmail/internal/app"
	"github.com/joshu-sajeev/signupmail/internal/config"
	"github.com/joshu-sajeev/signupmail/internal/email"
	"github.com/joshu-sajeev/signupmail/internal/logging"
	"github.com/joshu-sajeev/signupmail/internal/server"
	"go.uber.org/zap"
)

const readHeaderTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

// run owns every deferred cleanup so that a failing server still closes the
// transport and flushes the logger before the process exits.
func run() error {
	ctx := context.Background()
	cfg, err := config.LoadConfigFromEnv(ctx)
	if err != nil {
		log.Println("Failed to load config:", err)
		return err
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Println("Failed to build logger:", err)
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("startup", zap.Error(err))
		return err
	}
	defer a.Close()

	gin.SetMode(gin.ReleaseMode)
	router := server.NewRouter(logger, email.NewEmailHandler(a.Service), cfg.CORSMaxAge)

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	if err := serve(httpServer, stop, cfg.ShutdownTimeout, logger); err != nil {
		logger.Error("server", zap.Error(err))
		return err
	}
	return nil
}

// serve runs srv until it fails or a signal arrives on stop, then shuts it
// down within shutdownTimeout.
func serve(srv *http.Server, stop <-chan os.Signal, shutdownTimeout time.Duration, logger *zap.Logger) error {
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err, ok := <-serveErr:
		if !ok {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", srv.Addr, err)
	case sig := <-stop:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("Shutdown complete.")
	return nil
}

package main

import (
	"net"
	"net/http"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestServe(t *testing.T) {
	t.Run("listen failure is returned instead of exiting", func(t *testing.T) {
		taken, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer taken.Close()

		srv := &http.Server{Addr: taken.Addr().String(), Handler: http.NotFoundHandler(), ReadHeaderTimeout: readHeaderTimeout}
		stop := make(chan os.Signal)

		done := make(chan error, 1)
		go func() { done <- serve(srv, stop, time.Second, zap.NewNop()) }()

		select {
		case err := <-done:
			require.Error(t, err)
			assert.Contains(t, err.Error(), "listen on "+taken.Addr().String())
		case <-time.After(5 * time.Second):
			t.Fatal("serve did not return after the listener failed")
		}
	})

	t.Run("signal shuts the server down", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler(), ReadHeaderTimeout: readHeaderTimeout}

		stop := make(chan os.Signal, 1)
		stop <- syscall.SIGTERM

		err := serve(srv, stop, time.Second, zap.New(core))
		require.NoError(t, err)

		assert.Equal(t, 1, logs.FilterMessage("shutting down").Len())
		assert.Equal(t, 1, logs.FilterMessage("Shutdown complete.").Len())
	})
}

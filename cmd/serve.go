package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/hanjaplatform/hanja-api/api"
	"github.com/hanjaplatform/hanja-api/api/version"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Hanja Platform API server with the configured settings.

The server answers the web front-end's task requests, proxies the
inference and translation backends and stores history records.

Example:
  hanja-api serve
  hanja-api serve --port 9090
  hanja-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	appConfig, err := loadConfig()
	if err != nil {
		return err
	}
	applyLoggingConfig(cmd, appConfig)

	// Use config values if flags not provided
	host, port := serverHost, serverPort
	if host == "" {
		host = appConfig.Server.Host
	}
	if port == 0 {
		port = appConfig.Server.Port
	}

	if appConfig.Environment == "production" || appConfig.Environment == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	version.Version = Version

	deps, cleanup, err := buildDependencies(appConfig)
	if err != nil {
		return err
	}
	defer cleanup()

	address := fmt.Sprintf("%s:%d", host, port)
	server := api.NewServer(address)
	server.SetDependencies(deps)
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("initializing server: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps.Retention.Start(ctx)

	// Channel to receive server errors
	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	slog.Info("server started", "address", address, "environment", appConfig.Environment)

	var runErr error
	select {
	case <-ctx.Done():
		slog.Info("shutting down server")
	case runErr = <-serverErr:
		slog.Error("server failed", "error", runErr)
	}

	shutdownTimeout := appConfig.Server.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		return err
	}

	slog.Info("server stopped")
	return runErr
}

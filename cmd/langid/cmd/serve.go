package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MeKo-Tech/langid/internal/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start HTTP server for the language detection API",
	Long: `Start an HTTP server that provides REST API endpoints for language detection.

The server provides the following endpoints:
  POST /detect        - Detect the language of submitted text
  POST /detect/batch  - Detect languages of multiple texts in one request
  GET  /ws            - WebSocket endpoint for streaming detection
  GET  /languages     - List supported languages
  GET  /health        - Health check endpoint
  GET  /metrics       - Prometheus metrics

Examples:
  langid serve
  langid serve --port 8080
  langid serve --host 0.0.0.0 --port 3000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Get configuration from centralized system (includes CLI flags, config file, env vars, and defaults)
		cfg := GetConfig()

		// Extract server configuration with CLI flag overrides
		host := cfg.Server.Host
		if cmd.Flags().Changed("host") {
			host, _ = cmd.Flags().GetString("host")
		}

		port := cfg.Server.Port
		if cmd.Flags().Changed("port") {
			port, _ = cmd.Flags().GetInt("port")
		}

		corsOrigin := cfg.Server.CORSOrigin
		if cmd.Flags().Changed("cors-origin") {
			corsOrigin, _ = cmd.Flags().GetString("cors-origin")
		}

		maxBodyKB := cfg.Server.MaxBodyKB
		if cmd.Flags().Changed("max-body-size") {
			maxBodyKB, _ = cmd.Flags().GetInt("max-body-size")
		}

		timeout := cfg.Server.TimeoutSec
		if cmd.Flags().Changed("timeout") {
			timeout, _ = cmd.Flags().GetInt("timeout")
		}

		shutdownTimeout := cfg.Server.ShutdownTimeout
		if cmd.Flags().Changed("shutdown-timeout") {
			shutdownTimeout, _ = cmd.Flags().GetInt("shutdown-timeout")
		}

		// Extract rate limiting configuration
		requestsPerMinute := cfg.Server.RequestsPerMinute
		if cmd.Flags().Changed("requests-per-minute") {
			requestsPerMinute, _ = cmd.Flags().GetInt("requests-per-minute")
		}

		maxRequestsPerDay := cfg.Server.MaxRequestsPerDay
		if cmd.Flags().Changed("max-requests-per-day") {
			maxRequestsPerDay, _ = cmd.Flags().GetInt("max-requests-per-day")
		}

		maxDataPerDayMB := cfg.Server.MaxDataPerDayMB
		if cmd.Flags().Changed("max-data-per-day") {
			maxDataPerDayMB, _ = cmd.Flags().GetInt("max-data-per-day")
		}

		// Validate port number
		if port < 1 || port > 65535 {
			return fmt.Errorf("invalid port number: %d (must be between 1 and 65535)", port)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Build pipeline config using centralized configuration
		pCfg := cfg.ToPipelineConfig()
		if cmd.Flags().Changed("whitelist") {
			pCfg.Whitelist, _ = cmd.Flags().GetStringSlice("whitelist")
		}
		if cmd.Flags().Changed("model") {
			pCfg.ModelPath, _ = cmd.Flags().GetString("model")
		}

		serverConfig := server.Config{
			Host:              host,
			Port:              port,
			CORSOrigin:        corsOrigin,
			MaxBodyKB:         int64(maxBodyKB),
			TimeoutSec:        timeout,
			PipelineConfig:    pCfg,
			RequestsPerMinute: requestsPerMinute,
			MaxRequestsPerDay: maxRequestsPerDay,
			MaxDataPerDay:     int64(maxDataPerDayMB) * 1024 * 1024,
		}

		// Initialize server
		detectServer, err := server.NewServer(serverConfig)
		if err != nil {
			return fmt.Errorf("failed to initialize server: %w", err)
		}

		mux := http.NewServeMux()
		detectServer.SetupRoutes(mux)
		mux.Handle("/metrics", promhttp.Handler())

		httpServer := &http.Server{
			Addr:              fmt.Sprintf("%s:%d", host, port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       time.Duration(timeout) * time.Second,
			WriteTimeout:      time.Duration(timeout) * time.Second,
		}

		go func() {
			slog.Info("Starting detection server", "host", host, "port", port)
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				slog.Error("Server error", "error", err)
				cancel()
			}
		}()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

		select {
		case sig := <-sigChan:
			slog.Info("Received shutdown signal", "signal", sig.String())
		case <-ctx.Done():
			slog.Info("Context cancelled, initiating shutdown")
		}

		slog.Info("Starting graceful shutdown", "timeout", fmt.Sprintf("%ds", shutdownTimeout))

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Duration(shutdownTimeout)*time.Second)
		defer shutdownCancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("HTTP server shutdown error", "error", err)
		} else {
			slog.Info("HTTP server shutdown completed")
		}

		slog.Info("Graceful shutdown completed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("host", "H", "localhost", "server host")
	serveCmd.Flags().IntP("port", "p", 8080, "server port")
	serveCmd.Flags().String("cors-origin", "*", "CORS allowed origins")
	serveCmd.Flags().Int("max-body-size", 512, "maximum request body size in KB")
	serveCmd.Flags().Int("timeout", 30, "request timeout in seconds")
	serveCmd.Flags().Int("shutdown-timeout", 10, "shutdown timeout in seconds")
	// Pipeline customization flags
	serveCmd.Flags().StringSliceP("whitelist", "l", nil, "restrict candidates to these language codes (e.g. eng,fra,deu)")
	serveCmd.Flags().StringP("model", "m", "", "explicit language model pack file (overrides models-dir)")
	// Rate limiting flags (zero disables the corresponding limit)
	serveCmd.Flags().Int("requests-per-minute", 0, "maximum requests per minute per client")
	serveCmd.Flags().Int("max-requests-per-day", 0, "maximum requests per day per client")
	serveCmd.Flags().Int("max-data-per-day", 0, "maximum data processed per day per client (MB)")
}

// GetServeCommand returns the serve command for testing purposes.
func GetServeCommand() *cobra.Command {
	return serveCmd
}

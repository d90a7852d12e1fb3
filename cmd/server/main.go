package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/readycheck/internal/config"
	"github.com/rpggio/readycheck/internal/domain/checkin"
	"github.com/rpggio/readycheck/internal/mcp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Use stderr for logs in stdio mode to keep stdout clean for JSON-RPC.
	logWriter := io.Writer(os.Stdout)
	if cfg.Transport.Mode == "stdio" {
		logWriter = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	loc, err := cfg.Location()
	if err != nil {
		logger.Error("invalid calendar timezone", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	blobs, closeBlobs, err := openBlobStore(ctx, cfg.Storage)
	if err != nil {
		logger.Error("failed to open storage", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}
	defer closeBlobs()

	store := checkin.NewStore(ctx, blobs,
		checkin.WithLogger(logger),
		checkin.WithLocation(loc),
	)
	logger.Info("check-in store ready", "backend", cfg.Storage.Backend, "namespace", cfg.Storage.Namespace, "check_ins", len(store.CheckIns()))

	mcpServer := mcp.NewServer(mcp.Config{
		Store:  store,
		Logger: logger,
	})

	if cfg.Transport.Mode == "stdio" {
		runStdioMode(ctx, logger, mcpServer)
	} else {
		if err := runHTTPMode(ctx, logger, mcpServer, cfg.Server.Host, cfg.Server.Port); err != nil {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}
}

func runStdioMode(ctx context.Context, logger *slog.Logger, mcpServer *sdkmcp.Server) {
	logger.Info("starting stdio transport")

	// Run blocks until stdin closes or context is canceled
	if err := mcpServer.Run(ctx, &sdkmcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		logger.Error("stdio server error", "error", err)
		os.Exit(1)
	}
	logger.Info("shutting down")
}

// runHTTPMode serves until ctx is canceled or the listener fails.
func runHTTPMode(ctx context.Context, logger *slog.Logger, mcpServer *sdkmcp.Server, host string, port int) error {
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(r *http.Request) *sdkmcp.Server { return mcpServer },
		&sdkmcp.StreamableHTTPOptions{
			SessionTimeout: 30 * time.Minute,
		},
	)

	router := http.NewServeMux()
	router.Handle("/mcp", mcpHandler)
	router.Handle("/mcp/", mcpHandler)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	addr := fmt.Sprintf("%s:%d", host, port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen on %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

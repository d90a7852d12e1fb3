package mcp

import (
	"context"
	"log/slog"
	"sync"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/readycheck/internal/domain/checkin"
)

// CheckInStore defines the store operations needed by MCP.
type CheckInStore interface {
	NewCheckIn(m checkin.Metrics) checkin.CheckIn
	AddCheckIn(ctx context.Context, rec checkin.CheckIn)
	RecentCheckIns(count int) []checkin.CheckIn
	HasCheckInForToday() bool
	Clear(ctx context.Context)
}

// Config contains server configuration.
type Config struct {
	Store   CheckInStore
	Logger  *slog.Logger
	Version string
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	version := cfg.Version
	if version == "" {
		version = "0.1.0"
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "readycheck",
		Version: version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, &tools{store: cfg.Store})

	return server
}

// tools serializes store access; the SDK may run tool calls concurrently
// and the store is single-threaded.
type tools struct {
	mu    sync.Mutex
	store CheckInStore
}

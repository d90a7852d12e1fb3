package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// trafficLoggingMiddleware logs JSON-RPC traffic at debug level. Tool calls
// are tagged with the tool name so check-in activity can be followed in logs,
// and their responses carry the elapsed time and whether the tool failed.
func trafficLoggingMiddleware(logger *slog.Logger, direction string) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			if logger == nil || !logger.Enabled(ctx, slog.LevelDebug) {
				return next(ctx, method, req)
			}

			params := safeParams(req)
			attrs := []any{"direction", direction, "method", method}
			if tool := toolName(params); tool != "" {
				attrs = append(attrs, "tool", tool)
			}

			logger.Debug("mcp request", append(attrs, "params", formatPayload(params))...)

			start := time.Now()
			result, err := next(ctx, method, req)
			if strings.HasPrefix(method, "notifications/") {
				return result, err
			}

			attrs = append(attrs, "elapsed", time.Since(start))
			switch {
			case err != nil:
				logger.Debug("mcp response", append(attrs, "error", err)...)
			case isToolError(result):
				logger.Debug("mcp response", append(attrs, "tool_error", true, "result", formatPayload(result))...)
			default:
				logger.Debug("mcp response", append(attrs, "result", formatPayload(result))...)
			}
			return result, err
		}
	}
}

// toolName extracts the tool being invoked from tools/call params. Inbound
// requests carry raw arguments; outbound ones carry decoded arguments.
func toolName(params any) string {
	switch p := params.(type) {
	case *sdkmcp.CallToolParamsRaw:
		if p != nil {
			return p.Name
		}
	case *sdkmcp.CallToolParams:
		if p != nil {
			return p.Name
		}
	}
	return ""
}

func isToolError(result sdkmcp.Result) bool {
	res, ok := result.(*sdkmcp.CallToolResult)
	return ok && res != nil && res.IsError
}

func safeParams(req sdkmcp.Request) any {
	if req == nil {
		return nil
	}
	defer func() { recover() }()
	return req.GetParams()
}

func formatPayload(payload any) string {
	if payload == nil {
		return "<nil>"
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf("%T", payload)
	}
	return string(data)
}

package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
)

// ContextKey namespaces values stored in echo and std contexts.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"

	// HeaderXRequestID carries the request id in and out of the API.
	HeaderXRequestID = "X-Request-Id"

	maxRequestIDLength = 128
)

// NewRequestID mints a ULID request id.
func NewRequestID() string {
	return ulid.Make().String()
}

// ResolveRequestID keeps a caller-supplied id unless it is empty or
// longer than 128 bytes, in which case a fresh one is minted.
func ResolveRequestID(header string) string {
	if header == "" || len(header) > maxRequestIDLength {
		return NewRequestID()
	}

	return header
}

// GetRequestID returns the id set by the request-id middleware, or a
// fresh ULID when the middleware did not run.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return NewRequestID()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(KeyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault is GetLogger with a fallback for background work.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"erp-dashboard/internal/services"
)

const (
	TraceIDHeader     = "X-Trace-ID"
	TraceIDContextKey = "trace_id"

	maxTraceIDLength = 128
)

// RequestID tags each request with a trace ID so report logs, error bodies and
// the X-Trace-ID response header can be matched up. An ID forwarded by the
// gateway in X-Trace-ID or X-Request-ID is kept when it is short and made of
// log-safe characters; otherwise a fresh UUID is issued.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			traceID := forwardedTraceID(req.Header.Get(TraceIDHeader), req.Header.Get(echo.HeaderXRequestID))
			if traceID == "" {
				traceID = uuid.NewString()
			}

			c.Set(TraceIDContextKey, traceID)
			c.SetRequest(req.WithContext(services.WithCorrelationID(req.Context(), traceID)))
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID returns the request's trace ID, or "" outside RequestID.
func GetTraceID(c echo.Context) string {
	if traceID, ok := c.Get(TraceIDContextKey).(string); ok {
		return traceID
	}
	return services.CorrelationID(c.Request().Context())
}

func forwardedTraceID(candidates ...string) string {
	for _, id := range candidates {
		if isSafeTraceID(id) {
			return id
		}
	}
	return ""
}

func isSafeTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLength {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.', r == ':':
		default:
			return false
		}
	}
	return true
}

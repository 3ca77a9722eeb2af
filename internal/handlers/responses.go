package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"erp-dashboard/internal/errors"
)

// All handlers answer failures through SendError (4xx and typed failures),
// SendReportError (a report could not be produced) or SendSystemError
// (anything unexpected). None of them expose the underlying cause.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse is the envelope of every 2xx body
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendReportError answers REPORT_001 and logs the cause server-side
func SendReportError(c echo.Context, report string, err error) error {
	traceID := getTraceID(c)
	errorResponse, cause := errors.NewReportError(report, err, traceID)

	slog.ErrorContext(c.Request().Context(), "report request failed",
		"trace_id", traceID,
		"report", report,
		"error", cause,
	)

	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, cause := errors.WrapSystemError(err, traceID)

	slog.ErrorContext(c.Request().Context(), "request failed",
		"trace_id", traceID,
		"error", cause,
	)

	return c.JSON(http.StatusInternalServerError, errorResponse)
}

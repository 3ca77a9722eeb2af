package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"erp-dashboard/internal/dto"
	"erp-dashboard/internal/errors"
)

const healthCheckTimeout = 2 * time.Second

// DatabasePinger is satisfied by *database.DB
type DatabasePinger interface {
	Ping(ctx context.Context) error
}

type HealthCheckHandler struct {
	db DatabasePinger
}

func NewHealthCheckHandler(db DatabasePinger) *HealthCheckHandler {
	return &HealthCheckHandler{db: db}
}

// HealthCheck reports API and database connectivity
//
// Method: GET /health
// Authentication: none
//
// Success Response: 200 OK {status, database, time}
// Error Responses:
//   - 503: SYSTEM_003 database unreachable
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status:   "healthy",
		Database: "connected",
		Time:     time.Now().UTC().Format(time.RFC3339),
	})
}

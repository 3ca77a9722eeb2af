package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"erp-dashboard/internal/analytics"
	"erp-dashboard/internal/config"
	"erp-dashboard/internal/database"
	"erp-dashboard/internal/handlers"
	"erp-dashboard/internal/middleware"
	"erp-dashboard/internal/repositories"
	"erp-dashboard/internal/services"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.IsDevelopment() && cfg.JWT.Generated {
		logger.Warn("using a generated JWT key pair; tokens will not survive a restart")
	}

	// 2. Storage
	db, err := database.Initialize(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	// 3. Services
	engine := analytics.NewEngine(cfg.Analytics.BudgetWarningRatio, cfg.Analytics.ScheduleSlackPercent)
	reportService := services.NewReportService(
		repositories.NewProjectRepository(db.DB),
		repositories.NewTransactionRepository(db.DB),
		repositories.NewInvoiceRepository(db.DB),
		repositories.NewAlertRepository(db.DB),
		engine,
		cfg.Analytics,
		services.NewPrometheusMetrics(prometheus.DefaultRegisterer),
		services.NewReportLogger(logger),
	)
	tokenService := services.NewTokenService(&cfg.JWT)

	// 4. HTTP
	rateLimiter := middleware.NewRateLimiter(cfg.Security)
	go rateLimiter.Run(ctx)

	e := newServer(cfg, logger, rateLimiter)
	registerRoutes(e, db, tokenService, reportService)

	errCh := make(chan error, 1)
	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		logger.Info("starting erp dashboard api", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("server stopped gracefully")
	return nil
}

func newServer(cfg *config.Config, logger *slog.Logger, rateLimiter *middleware.RateLimiter) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, "X-Trace-ID"},
	}))
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			attrs := []any{
				"trace_id", middleware.GetTraceID(c),
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
				"remote_ip", v.RemoteIP,
			}
			if v.Error != nil {
				logger.Warn("request failed", append(attrs, "error", v.Error.Error())...)
				return nil
			}
			logger.Info("request", attrs...)
			return nil
		},
	}))
	e.Use(rateLimiter.Middleware())

	return e
}

func registerRoutes(e *echo.Echo, db *database.DB, tokenService services.TokenServiceInterface, reportService services.ReportServiceInterface) {
	healthHandler := handlers.NewHealthCheckHandler(db)
	reportHandler := handlers.NewReportHandler(reportService)

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	reports := e.Group("/api/v1/reports", middleware.RequireAuth(tokenService))
	reports.GET("/dashboard-summary", reportHandler.GetDashboardSummary)
	reports.GET("/cash-flow", reportHandler.GetCashFlowReport)
	reports.GET("/budget-analysis", reportHandler.GetBudgetAnalysis)
	reports.GET("/insights", reportHandler.GetInsights)
}

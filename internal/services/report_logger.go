package services

import (
	"context"
	"log/slog"
	"strings"

	"erp-dashboard/internal/models"
)

type ReportLogger struct {
	logger *slog.Logger
}

func NewReportLogger(logger *slog.Logger) ReportLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportLogger{
		logger: logger,
	}
}

func (rl *ReportLogger) LogReportStarted(ctx context.Context, report string) {
	rl.logger.InfoContext(ctx, "report generation started",
		slog.String("event_type", "report_generation_started"),
		slog.String("report", report),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (rl *ReportLogger) LogReportCompleted(ctx context.Context, report string, durationMs int64, rows int) {
	rl.logger.InfoContext(ctx, "report generation completed",
		slog.String("event_type", "report_generation_completed"),
		slog.String("report", report),
		slog.Int64("duration_ms", durationMs),
		slog.Int("rows", rows),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (rl *ReportLogger) LogReportFailed(ctx context.Context, report string, errorMsg string, durationMs int64) {
	rl.logger.ErrorContext(ctx, "report generation failed",
		slog.String("event_type", "report_generation_failed"),
		slog.String("report", report),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (rl *ReportLogger) LogInsightsGenerated(ctx context.Context, insights []models.Insight) {
	types := make([]string, 0, len(insights))
	for _, insight := range insights {
		types = append(types, insight.Type)
	}

	rl.logger.InfoContext(ctx, "insights generated",
		slog.String("event_type", "insights_generated"),
		slog.Int("count", len(insights)),
		slog.String("types", strings.Join(types, ",")),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

package services

import (
	"context"
	"time"

	"erp-dashboard/internal/models"
)

// ReportServiceInterface produces the dashboard reports. Every method fails
// as a whole if any of its reads fails.
type ReportServiceInterface interface {
	GetDashboardSummary(ctx context.Context) (*models.DashboardSummary, error)
	GetCashFlowReport(ctx context.Context) ([]models.CashFlowMonth, error)
	GetBudgetAnalysis(ctx context.Context, sort string) ([]models.BudgetAnalysisItem, error)
	GenerateInsights(ctx context.Context) (*models.InsightReport, error)
}

// TokenServiceInterface issues and verifies caller identity tokens
type TokenServiceInterface interface {
	GenerateAccessToken(principal models.Principal) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration, tags map[string]string)
	RecordGauge(name string, value float64, tags map[string]string)
}

// ReportLoggerInterface emits structured report lifecycle events
type ReportLoggerInterface interface {
	LogReportStarted(ctx context.Context, report string)
	LogReportCompleted(ctx context.Context, report string, durationMs int64, rows int)
	LogReportFailed(ctx context.Context, report string, errorMsg string, durationMs int64)
	LogInsightsGenerated(ctx context.Context, insights []models.Insight)
}

// SampleDataGeneratorInterface builds development datasets
type SampleDataGeneratorInterface interface {
	Generate(opts models.SampleDataOptions) *models.SampleDataset
}

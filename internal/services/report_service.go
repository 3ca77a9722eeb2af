package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"erp-dashboard/internal/analytics"
	"erp-dashboard/internal/config"
	"erp-dashboard/internal/models"
	"erp-dashboard/internal/repositories"
)

const (
	ReportDashboardSummary = "dashboard_summary"
	ReportCashFlow         = "cash_flow"
	ReportBudgetAnalysis   = "budget_analysis"
	ReportInsights         = "insights"
)

var ErrInvalidSort = errors.New("invalid sort field")

// budgetSortFields maps the public sort names to project columns.
var budgetSortFields = map[string]string{
	"name":       "name",
	"budget":     "budget",
	"spent":      "spent",
	"created_at": "created_at",
}

type reportService struct {
	projectRepo     repositories.ProjectRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	invoiceRepo     repositories.InvoiceRepositoryInterface
	alertRepo       repositories.AlertRepositoryInterface
	engine          *analytics.Engine
	cfg             config.AnalyticsConfig
	metrics         MetricsRecorderInterface
	logger          ReportLoggerInterface
	breaker         *CircuitBreaker
}

func NewReportService(
	projectRepo repositories.ProjectRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	invoiceRepo repositories.InvoiceRepositoryInterface,
	alertRepo repositories.AlertRepositoryInterface,
	engine *analytics.Engine,
	cfg config.AnalyticsConfig,
	metrics MetricsRecorderInterface,
	logger ReportLoggerInterface,
) ReportServiceInterface {
	return &reportService{
		projectRepo:     projectRepo,
		transactionRepo: transactionRepo,
		invoiceRepo:     invoiceRepo,
		alertRepo:       alertRepo,
		engine:          engine,
		cfg:             cfg,
		metrics:         metrics,
		logger:          logger,
		breaker:         NewCircuitBreaker(cfg.BreakerMaxFailures, cfg.BreakerResetTimeout),
	}
}

// GetDashboardSummary reads projects, invoices, the recent transaction
// window and unread alerts concurrently, then reduces them to KPIs.
func (s *reportService) GetDashboardSummary(ctx context.Context) (*models.DashboardSummary, error) {
	start := s.begin(ctx, ReportDashboardSummary)

	var (
		projects     []models.Project
		invoices     []models.Invoice
		transactions []models.Transaction
		alerts       []models.Alert
	)

	err := s.read(ctx, func(ctx context.Context) error {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			projects, err = s.projectRepo.List(gctx, repositories.ListOptions{})
			return err
		})
		g.Go(func() error {
			var err error
			invoices, err = s.invoiceRepo.List(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			transactions, err = s.transactionRepo.ListRecent(gctx, s.cfg.RecentTransactionWindow)
			return err
		})
		g.Go(func() error {
			var err error
			alerts, err = s.alertRepo.ListUnread(gctx, s.cfg.AlertLimit)
			return err
		})
		return g.Wait()
	})
	if err != nil {
		return nil, s.fail(ctx, ReportDashboardSummary, start, err)
	}

	summary := analytics.SummarizeDashboard(projects, invoices, transactions, alerts, s.cfg.RecentTransactionDisplay)

	s.metrics.RecordGauge(MetricBudgetUtilization, summary.KPIs.BudgetUtilization.InexactFloat64(), nil)
	s.metrics.RecordGauge(MetricCashFlow, summary.KPIs.CashFlow.InexactFloat64(), nil)
	s.succeed(ctx, ReportDashboardSummary, start, len(projects)+len(invoices)+len(transactions)+len(alerts))

	return summary, nil
}

// GetCashFlowReport groups every transaction by month, oldest first.
func (s *reportService) GetCashFlowReport(ctx context.Context) ([]models.CashFlowMonth, error) {
	start := s.begin(ctx, ReportCashFlow)

	var transactions []models.Transaction
	err := s.read(ctx, func(ctx context.Context) error {
		var err error
		transactions, err = s.transactionRepo.ListChronological(ctx)
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, ReportCashFlow, start, err)
	}

	report := analytics.BuildCashFlowReport(transactions)
	s.succeed(ctx, ReportCashFlow, start, len(transactions))

	return report, nil
}

// GetBudgetAnalysis classifies every project. sort is empty for store order,
// or one of name, budget, spent, created_at with an optional "-" prefix for
// descending order.
func (s *reportService) GetBudgetAnalysis(ctx context.Context, sort string) ([]models.BudgetAnalysisItem, error) {
	opts, err := ParseBudgetSort(sort)
	if err != nil {
		return nil, err
	}

	start := s.begin(ctx, ReportBudgetAnalysis)

	var projects []models.Project
	err = s.read(ctx, func(ctx context.Context) error {
		var err error
		projects, err = s.projectRepo.List(ctx, opts)
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, ReportBudgetAnalysis, start, err)
	}

	analysis := s.engine.AnalyzeBudgets(projects)
	s.succeed(ctx, ReportBudgetAnalysis, start, len(projects))

	return analysis, nil
}

// GenerateInsights reads projects, the insight transaction window and
// invoices concurrently and runs every insight rule over them.
func (s *reportService) GenerateInsights(ctx context.Context) (*models.InsightReport, error) {
	start := s.begin(ctx, ReportInsights)

	var (
		projects     []models.Project
		transactions []models.Transaction
		invoices     []models.Invoice
	)

	err := s.read(ctx, func(ctx context.Context) error {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			projects, err = s.projectRepo.List(gctx, repositories.ListOptions{})
			return err
		})
		g.Go(func() error {
			var err error
			transactions, err = s.transactionRepo.ListRecent(gctx, s.cfg.InsightTransactionWindow)
			return err
		})
		g.Go(func() error {
			var err error
			invoices, err = s.invoiceRepo.List(gctx)
			return err
		})
		return g.Wait()
	})
	if err != nil {
		return nil, s.fail(ctx, ReportInsights, start, err)
	}

	insights := s.engine.GenerateInsights(projects, transactions, invoices)

	for _, insight := range insights {
		s.metrics.IncrementCounter(MetricInsightEmitted, map[string]string{
			"type":     insight.Type,
			"severity": insight.Severity,
		})
	}
	s.logger.LogInsightsGenerated(ctx, insights)
	s.succeed(ctx, ReportInsights, start, len(projects)+len(transactions)+len(invoices))

	return &models.InsightReport{
		Insights: insights,
		Summary: models.InsightSummary{
			TotalProjects:     len(projects),
			TotalTransactions: len(transactions),
			TotalInvoices:     len(invoices),
		},
	}, nil
}

// ParseBudgetSort turns a public sort expression into list options.
func ParseBudgetSort(sort string) (repositories.ListOptions, error) {
	sort = strings.TrimSpace(sort)
	if sort == "" {
		return repositories.ListOptions{}, nil
	}

	descending := strings.HasPrefix(sort, "-")
	column, ok := budgetSortFields[strings.TrimPrefix(sort, "-")]
	if !ok {
		return repositories.ListOptions{}, fmt.Errorf("%w: %s", ErrInvalidSort, sort)
	}

	return repositories.ListOptions{OrderBy: column, Descending: descending}, nil
}

// read runs one report's store reads under the fetch timeout and the store
// breaker.
func (s *reportService) read(ctx context.Context, fetch func(ctx context.Context) error) error {
	if !s.breaker.Allow() {
		return ErrStoreUnavailable
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.cfg.FetchTimeout)
	defer cancel()

	err := fetch(fetchCtx)
	s.breaker.Record(err)
	return err
}

func (s *reportService) begin(ctx context.Context, report string) time.Time {
	s.logger.LogReportStarted(ctx, report)
	return time.Now()
}

func (s *reportService) succeed(ctx context.Context, report string, start time.Time, rows int) {
	duration := time.Since(start)
	tags := map[string]string{"report": report, "status": "success"}

	s.metrics.IncrementCounter(MetricReportGenerated, tags)
	s.metrics.RecordProcessingTime(MetricReportDuration, duration, tags)
	s.logger.LogReportCompleted(ctx, report, duration.Milliseconds(), rows)
}

func (s *reportService) fail(ctx context.Context, report string, start time.Time, err error) error {
	duration := time.Since(start)
	tags := map[string]string{"report": report, "status": "failed"}

	s.metrics.IncrementCounter(MetricReportGenerated, tags)
	s.metrics.RecordProcessingTime(MetricReportDuration, duration, tags)
	s.logger.LogReportFailed(ctx, report, err.Error(), duration.Milliseconds())

	return fmt.Errorf("failed to generate %s report: %w", report, err)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"erp-dashboard/internal/dto"
	apierrors "erp-dashboard/internal/errors"
	"erp-dashboard/internal/services"
)

type ReportHandler struct {
	reportService services.ReportServiceInterface
}

func NewReportHandler(reportService services.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// GetDashboardSummary returns portfolio KPIs, recent transactions and unread alerts
//
// Method: GET /api/v1/reports/dashboard-summary
// Authentication: Required (JWT)
//
// Success Response: 200 OK
//   - kpis: budget, spend, invoice and cash flow figures
//   - recentTransactions: newest transactions first
//   - alerts: unread alerts, newest first
//
// Error Responses:
//   - 401: Unauthorized (missing JWT)
//   - 500: REPORT_001 any read failed
func (h *ReportHandler) GetDashboardSummary(c echo.Context) error {
	if _, err := getUserIDFromContext(c); err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	summary, err := h.reportService.GetDashboardSummary(c.Request().Context())
	if err != nil {
		return h.handleServiceError(c, services.ReportDashboardSummary, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: summary,
	})
}

// GetCashFlowReport returns income, expenses and net cash flow per month
//
// Method: GET /api/v1/reports/cash-flow
// Authentication: Required (JWT)
//
// Success Response: 200 OK
//   - report: months in first-seen chronological order
//
// Error Responses:
//   - 401: Unauthorized (missing JWT)
//   - 500: REPORT_001 transactions could not be read
func (h *ReportHandler) GetCashFlowReport(c echo.Context) error {
	if _, err := getUserIDFromContext(c); err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	report, err := h.reportService.GetCashFlowReport(c.Request().Context())
	if err != nil {
		return h.handleServiceError(c, services.ReportCashFlow, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.CashFlowReportResponse{Report: report},
	})
}

// GetBudgetAnalysis returns per-project budget utilization and status
//
// Method: GET /api/v1/reports/budget-analysis
// Authentication: Required (JWT)
//
// Query parameters:
//   - sort: name, budget, spent or created_at, "-" prefix for descending (optional)
//
// Success Response: 200 OK
//   - analysis: one item per project
//
// Error Responses:
//   - 400: VALIDATION_003 unsupported sort field
//   - 401: Unauthorized (missing JWT)
//   - 500: REPORT_001 projects could not be read
func (h *ReportHandler) GetBudgetAnalysis(c echo.Context) error {
	if _, err := getUserIDFromContext(c); err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var query dto.BudgetAnalysisQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(query); err != nil {
		return SendError(c, apierrors.ValidationInvalidSort, apierrors.WithDetails(invalidSortDetail))
	}

	analysis, err := h.reportService.GetBudgetAnalysis(c.Request().Context(), query.Sort)
	if err != nil {
		return h.handleServiceError(c, services.ReportBudgetAnalysis, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.BudgetAnalysisResponse{Analysis: analysis},
	})
}

// GetInsights returns the rule-based insights over current data
//
// Method: GET /api/v1/reports/insights
// Authentication: Required (JWT)
//
// Success Response: 200 OK
//   - insights: at most one per rule, in rule order
//   - summary: row counts the rules were evaluated over
//
// Error Responses:
//   - 401: Unauthorized (missing JWT)
//   - 500: REPORT_001 any read failed
func (h *ReportHandler) GetInsights(c echo.Context) error {
	if _, err := getUserIDFromContext(c); err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	insights, err := h.reportService.GenerateInsights(c.Request().Context())
	if err != nil {
		return h.handleServiceError(c, services.ReportInsights, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: insights,
	})
}

const invalidSortDetail = "sort must be one of name, budget, spent or created_at, optionally prefixed with -"

func (h *ReportHandler) handleServiceError(c echo.Context, report string, err error) error {
	if errors.Is(err, services.ErrInvalidSort) {
		return SendError(c, apierrors.ValidationInvalidSort, apierrors.WithDetails(invalidSortDetail))
	}

	return SendReportError(c, report, err)
}

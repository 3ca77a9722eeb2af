package dto

import "erp-dashboard/internal/models"

// Report Request DTOs

// BudgetAnalysisQuery carries the optional ordering for GET /reports/budget-analysis
type BudgetAnalysisQuery struct {
	Sort string `query:"sort" validate:"omitempty,report_sort"`
}

// Report Response DTOs

// CashFlowReportResponse is the data block of GET /reports/cash-flow
type CashFlowReportResponse struct {
	Report []models.CashFlowMonth `json:"report"`
}

// BudgetAnalysisResponse is the data block of GET /reports/budget-analysis
type BudgetAnalysisResponse struct {
	Analysis []models.BudgetAnalysisItem `json:"analysis"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Time     string `json:"time"`
}

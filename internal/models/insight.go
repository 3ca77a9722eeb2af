package models

const (
	InsightSeverityHigh   = "high"
	InsightSeverityMedium = "medium"
	InsightSeverityLow    = "low"
	InsightSeverityInfo   = "info"
)

const (
	InsightTypeBudgetWarning    = "budget_warning"
	InsightTypeCashFlowWarning  = "cash_flow_warning"
	InsightTypeCashFlowPositive = "cash_flow_positive"
	InsightTypeInvoiceOverdue   = "invoice_overdue"
	InsightTypeProjectDelay     = "project_delay"
	InsightTypeGettingStarted   = "getting_started"
)

// Insight is a human-readable observation derived from the current data.
type Insight struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

// InsightSummary records how much data the insights were drawn from.
type InsightSummary struct {
	TotalProjects     int `json:"totalProjects"`
	TotalTransactions int `json:"totalTransactions"`
	TotalInvoices     int `json:"totalInvoices"`
}

type InsightReport struct {
	Insights []Insight      `json:"insights"`
	Summary  InsightSummary `json:"summary"`
}

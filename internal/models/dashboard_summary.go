package models

import "github.com/shopspring/decimal"

// DashboardKPIs are the headline figures shown on the dashboard. Income and
// Expenses back CashFlow and stay off the wire.
type DashboardKPIs struct {
	TotalBudget        decimal.Decimal `json:"totalBudget"`
	TotalSpent         decimal.Decimal `json:"totalSpent"`
	BudgetUtilization  decimal.Decimal `json:"budgetUtilization"`
	ActiveProjects     int             `json:"activeProjects"`
	TotalProjects      int             `json:"totalProjects"`
	TotalInvoiceAmount decimal.Decimal `json:"totalInvoiceAmount"`
	PaidAmount         decimal.Decimal `json:"paidAmount"`
	PendingAmount      decimal.Decimal `json:"pendingAmount"`
	Income             decimal.Decimal `json:"-"`
	Expenses           decimal.Decimal `json:"-"`
	CashFlow           decimal.Decimal `json:"cashFlow"`
}

type DashboardSummary struct {
	KPIs               DashboardKPIs `json:"kpis"`
	RecentTransactions []Transaction `json:"recentTransactions"`
	Alerts             []Alert       `json:"alerts"`
}

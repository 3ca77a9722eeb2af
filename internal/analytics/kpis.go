package analytics

import (
	"github.com/shopspring/decimal"

	"erp-dashboard/internal/models"
)

// SumBudgets totals budget and spend across projects.
func SumBudgets(projects []models.Project) (budget, spent decimal.Decimal) {
	budget, spent = decimal.Zero, decimal.Zero
	for i := range projects {
		budget = budget.Add(projects[i].Budget.Decimal)
		spent = spent.Add(projects[i].Spent.Decimal)
	}
	return budget, spent
}

// Utilization is spent as a percentage of budget, zero when budget is not
// positive. The result is not rounded.
func Utilization(spent, budget decimal.Decimal) decimal.Decimal {
	if !budget.IsPositive() {
		return decimal.Zero
	}
	return spent.Div(budget).Mul(hundred)
}

// SplitCashFlow sums income and expense transactions. Other types are
// ignored.
func SplitCashFlow(transactions []models.Transaction) (income, expenses decimal.Decimal) {
	income, expenses = decimal.Zero, decimal.Zero
	for i := range transactions {
		switch transactions[i].Type {
		case models.TransactionTypeIncome:
			income = income.Add(transactions[i].Amount.Decimal)
		case models.TransactionTypeExpense:
			expenses = expenses.Add(transactions[i].Amount.Decimal)
		}
	}
	return income, expenses
}

func countActive(projects []models.Project) int {
	active := 0
	for i := range projects {
		if projects[i].IsActive() {
			active++
		}
	}
	return active
}

func sumInvoices(invoices []models.Invoice) (total, paid decimal.Decimal) {
	total, paid = decimal.Zero, decimal.Zero
	for i := range invoices {
		total = total.Add(invoices[i].Amount.Decimal)
		if invoices[i].IsPaid() {
			paid = paid.Add(invoices[i].Amount.Decimal)
		}
	}
	return total, paid
}

// ComputeKPIs derives the dashboard headline figures. transactions is the
// recent window the cash flow figures are computed over.
func ComputeKPIs(projects []models.Project, invoices []models.Invoice, transactions []models.Transaction) models.DashboardKPIs {
	totalBudget, totalSpent := SumBudgets(projects)
	totalInvoiced, paid := sumInvoices(invoices)
	income, expenses := SplitCashFlow(transactions)

	return models.DashboardKPIs{
		TotalBudget:        totalBudget,
		TotalSpent:         totalSpent,
		BudgetUtilization:  Utilization(totalSpent, totalBudget),
		ActiveProjects:     countActive(projects),
		TotalProjects:      len(projects),
		TotalInvoiceAmount: totalInvoiced,
		PaidAmount:         paid,
		PendingAmount:      totalInvoiced.Sub(paid),
		Income:             income,
		Expenses:           expenses,
		CashFlow:           income.Sub(expenses),
	}
}

// SummarizeDashboard builds the dashboard payload. transactions must be
// newest first; only the first displayLimit are echoed back.
func SummarizeDashboard(projects []models.Project, invoices []models.Invoice, transactions []models.Transaction, alerts []models.Alert, displayLimit int) *models.DashboardSummary {
	recent := transactions
	if displayLimit >= 0 && len(recent) > displayLimit {
		recent = recent[:displayLimit]
	}
	if recent == nil {
		recent = []models.Transaction{}
	}
	if alerts == nil {
		alerts = []models.Alert{}
	}

	return &models.DashboardSummary{
		KPIs:               ComputeKPIs(projects, invoices, transactions),
		RecentTransactions: recent,
		Alerts:             alerts,
	}
}

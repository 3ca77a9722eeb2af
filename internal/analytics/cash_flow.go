package analytics

import (
	"github.com/shopspring/decimal"

	"erp-dashboard/internal/models"
)

// BuildCashFlowReport buckets transactions by month. Months appear in the
// order they are first seen, so chronological input gives chronological
// output. Every type other than income counts as an expense here.
func BuildCashFlowReport(transactions []models.Transaction) []models.CashFlowMonth {
	report := make([]models.CashFlowMonth, 0)
	positions := make(map[string]int)

	for i := range transactions {
		txn := &transactions[i]
		key := MonthKey(txn.Date)

		pos, seen := positions[key]
		if !seen {
			pos = len(report)
			positions[key] = pos
			report = append(report, models.CashFlowMonth{
				Month:    key,
				Income:   decimal.Zero,
				Expenses: decimal.Zero,
			})
		}

		if txn.IsIncome() {
			report[pos].Income = report[pos].Income.Add(txn.Amount.Decimal)
		} else {
			report[pos].Expenses = report[pos].Expenses.Add(txn.Amount.Decimal)
		}
	}

	for i := range report {
		report[i].NetCashFlow = report[i].Income.Sub(report[i].Expenses)
	}

	return report
}

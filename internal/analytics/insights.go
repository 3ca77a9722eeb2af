package analytics

import (
	"fmt"

	"github.com/shopspring/decimal"

	"erp-dashboard/internal/models"
)

// GenerateInsights evaluates every rule in a fixed order: budget overrun,
// cash flow, overdue invoices, schedule delay, getting started.
// transactions is the recent window the cash flow rule looks at.
func (e *Engine) GenerateInsights(projects []models.Project, transactions []models.Transaction, invoices []models.Invoice) []models.Insight {
	insights := make([]models.Insight, 0)

	rules := []func() *models.Insight{
		func() *models.Insight { return overBudgetInsight(projects) },
		func() *models.Insight { return cashFlowInsight(transactions) },
		func() *models.Insight { return e.overdueInvoiceInsight(invoices) },
		func() *models.Insight { return e.scheduleDelayInsight(projects) },
		func() *models.Insight { return gettingStartedInsight(projects, transactions) },
	}

	for _, rule := range rules {
		if insight := rule(); insight != nil {
			insights = append(insights, *insight)
		}
	}

	return insights
}

func overBudgetInsight(projects []models.Project) *models.Insight {
	over := 0
	for i := range projects {
		if projects[i].IsOverBudget() {
			over++
		}
	}
	if over == 0 {
		return nil
	}

	return &models.Insight{
		Type:        models.InsightTypeBudgetWarning,
		Title:       "Budget Overrun",
		Description: fmt.Sprintf("%d %s exceeded %s budget. Review spending and adjust forecasts.", over, plural(over, "project has", "projects have"), plural(over, "its", "their")),
		Severity:    models.InsightSeverityHigh,
	}
}

// cashFlowInsight stays silent when income and expenses balance exactly.
func cashFlowInsight(transactions []models.Transaction) *models.Insight {
	income, expenses := SplitCashFlow(transactions)
	net := income.Sub(expenses)

	switch {
	case net.IsZero():
		return nil
	case net.IsNegative():
		return &models.Insight{
			Type:        models.InsightTypeCashFlowWarning,
			Title:       "Negative Cash Flow",
			Description: fmt.Sprintf("Recent transactions show a net cash flow of %s. Expenses are outpacing income.", FormatUSD(net)),
			Severity:    models.InsightSeverityHigh,
		}
	default:
		return &models.Insight{
			Type:        models.InsightTypeCashFlowPositive,
			Title:       "Healthy Cash Flow",
			Description: fmt.Sprintf("Recent transactions show a net cash flow of %s.", FormatUSD(net)),
			Severity:    models.InsightSeverityLow,
		}
	}
}

func (e *Engine) overdueInvoiceInsight(invoices []models.Invoice) *models.Insight {
	overdue := OverdueInvoices(invoices, e.now())
	if len(overdue) == 0 {
		return nil
	}

	total := decimal.Zero
	for i := range overdue {
		total = total.Add(overdue[i].Amount.Decimal)
	}

	return &models.Insight{
		Type:        models.InsightTypeInvoiceOverdue,
		Title:       "Overdue Invoices",
		Description: fmt.Sprintf("%d pending %s past due, totalling %s. Follow up with clients to collect payment.", len(overdue), plural(len(overdue), "invoice is", "invoices are"), FormatUSD(total)),
		Severity:    models.InsightSeverityMedium,
	}
}

func (e *Engine) scheduleDelayInsight(projects []models.Project) *models.Insight {
	behind := BehindSchedule(projects, e.now(), e.scheduleSlackPercent)
	if len(behind) == 0 {
		return nil
	}

	return &models.Insight{
		Type:        models.InsightTypeProjectDelay,
		Title:       "Schedule Delays",
		Description: fmt.Sprintf("%d %s behind the expected schedule. Consider reallocating resources.", len(behind), plural(len(behind), "project is", "projects are")),
		Severity:    models.InsightSeverityMedium,
	}
}

func gettingStartedInsight(projects []models.Project, transactions []models.Transaction) *models.Insight {
	if len(projects) > 0 || len(transactions) > 0 {
		return nil
	}

	return &models.Insight{
		Type:        models.InsightTypeGettingStarted,
		Title:       "Getting Started",
		Description: "Add your first project and record transactions to start receiving financial insights.",
		Severity:    models.InsightSeverityInfo,
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

package analytics

import (
	"github.com/shopspring/decimal"

	"erp-dashboard/internal/models"
)

// ClassifyBudget places a project's spend into one of three bands.
// Spend exactly equal to budget is not over budget.
func ClassifyBudget(spent, budget, warningRatio decimal.Decimal) string {
	switch {
	case spent.GreaterThan(budget):
		return models.BudgetStatusOverBudget
	case spent.GreaterThan(budget.Mul(warningRatio)):
		return models.BudgetStatusWarning
	default:
		return models.BudgetStatusOnTrack
	}
}

// AnalyzeBudgets produces one item per project, in input order.
func (e *Engine) AnalyzeBudgets(projects []models.Project) []models.BudgetAnalysisItem {
	items := make([]models.BudgetAnalysisItem, 0, len(projects))

	for i := range projects {
		p := &projects[i]
		budget, spent := p.Budget.Decimal, p.Spent.Decimal

		items = append(items, models.BudgetAnalysisItem{
			ID:                 p.ID,
			Name:               p.Name,
			Budget:             budget,
			Spent:              spent,
			Remaining:          budget.Sub(spent),
			UtilizationPercent: Utilization(spent, budget),
			Status:             ClassifyBudget(spent, budget, e.budgetWarningRatio),
		})
	}

	return items
}

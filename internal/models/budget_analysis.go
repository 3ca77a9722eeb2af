package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	BudgetStatusOnTrack    = "on_track"
	BudgetStatusWarning    = "warning"
	BudgetStatusOverBudget = "over_budget"
)

type BudgetAnalysisItem struct {
	ID                 uuid.UUID       `json:"id"`
	Name               string          `json:"name"`
	Budget             decimal.Decimal `json:"budget"`
	Spent              decimal.Decimal `json:"spent"`
	Remaining          decimal.Decimal `json:"remaining"`
	UtilizationPercent decimal.Decimal `json:"utilizationPercent"`
	Status             string          `json:"status"`
}

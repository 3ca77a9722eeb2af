package models

import "github.com/shopspring/decimal"

// CashFlowMonth aggregates transactions sharing a YYYY-MM key.
type CashFlowMonth struct {
	Month       string          `json:"month"`
	Income      decimal.Decimal `json:"income"`
	Expenses    decimal.Decimal `json:"expenses"`
	NetCashFlow decimal.Decimal `json:"netCashFlow"`
}

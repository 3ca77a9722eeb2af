// Package analytics turns raw project, ledger and invoice rows into the
// figures shown on the dashboard. Every function here is pure: callers fetch
// the rows and pass them in.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultScheduleSlackPercent = 20.0
)

var (
	DefaultBudgetWarningRatio = decimal.NewFromFloat(0.9)

	hundred = decimal.NewFromInt(100)
)

// Engine carries the thresholds and clock used by the rules that depend on
// them. The zero value is not usable; construct with NewEngine.
type Engine struct {
	budgetWarningRatio   decimal.Decimal
	scheduleSlackPercent float64
	now                  func() time.Time
}

func NewEngine(budgetWarningRatio decimal.Decimal, scheduleSlackPercent float64) *Engine {
	if !budgetWarningRatio.IsPositive() {
		budgetWarningRatio = DefaultBudgetWarningRatio
	}
	if scheduleSlackPercent < 0 {
		scheduleSlackPercent = DefaultScheduleSlackPercent
	}

	return &Engine{
		budgetWarningRatio:   budgetWarningRatio,
		scheduleSlackPercent: scheduleSlackPercent,
		now:                  time.Now,
	}
}

// WithClock returns a copy of the engine that reads the current time from now.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	clone := *e
	clone.now = now
	return &clone
}

func (e *Engine) BudgetWarningRatio() decimal.Decimal {
	return e.budgetWarningRatio
}

func (e *Engine) ScheduleSlackPercent() float64 {
	return e.scheduleSlackPercent
}

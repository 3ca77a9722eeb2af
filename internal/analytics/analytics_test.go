package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"erp-dashboard/internal/models"
)

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestEngine() *Engine {
	return NewEngine(DefaultBudgetWarningRatio, DefaultScheduleSlackPercent).WithClock(func() time.Time { return fixedNow })
}

func amount(s string) models.Amount {
	return models.AmountFromString(s)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func txn(date, kind, value string) models.Transaction {
	return models.Transaction{ID: uuid.New(), Description: kind, Date: models.CalendarDate(date), Type: kind, Amount: amount(value)}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(dec(want)), "want %s, got %s", want, got.String())
}

func insightTypes(insights []models.Insight) []string {
	types := make([]string, 0, len(insights))
	for _, i := range insights {
		types = append(types, i.Type)
	}
	return types
}

func TestComputeKPIs(t *testing.T) {
	projects := []models.Project{
		{Name: "A", Budget: amount("1000"), Spent: amount("250"), Status: models.ProjectStatusActive},
		{Name: "B", Budget: amount("3000"), Spent: amount("750"), Status: models.ProjectStatusCompleted},
		{Name: "C", Budget: models.CoerceAmount("junk"), Spent: models.CoerceAmount(nil), Status: models.ProjectStatusActive},
	}
	invoices := []models.Invoice{
		{Amount: amount("500"), Status: models.InvoiceStatusPaid},
		{Amount: amount("200"), Status: models.InvoiceStatusPending},
		{Amount: amount("300"), Status: models.InvoiceStatusOverdue},
	}
	transactions := []models.Transaction{
		txn("2024-06-01", models.TransactionTypeIncome, "1000"),
		txn("2024-06-02", models.TransactionTypeExpense, "400"),
		txn("2024-06-03", "transfer", "999"),
	}

	kpis := ComputeKPIs(projects, invoices, transactions)

	assertDecimal(t, "4000", kpis.TotalBudget)
	assertDecimal(t, "1000", kpis.TotalSpent)
	assertDecimal(t, "25", kpis.BudgetUtilization)
	assert.Equal(t, 2, kpis.ActiveProjects)
	assert.Equal(t, 3, kpis.TotalProjects)
	assertDecimal(t, "1000", kpis.TotalInvoiceAmount)
	assertDecimal(t, "500", kpis.PaidAmount)
	assertDecimal(t, "500", kpis.PendingAmount)
	assertDecimal(t, "1000", kpis.Income)
	assertDecimal(t, "400", kpis.Expenses)
	assertDecimal(t, "600", kpis.CashFlow)
}

func TestComputeKPIs_ZeroBudget(t *testing.T) {
	projects := []models.Project{{Budget: amount("0"), Spent: amount("500")}}

	kpis := ComputeKPIs(projects, nil, nil)

	assert.True(t, kpis.BudgetUtilization.IsZero())
	assertDecimal(t, "500", kpis.TotalSpent)
}

func TestComputeKPIs_OrderIndependent(t *testing.T) {
	forward := []models.Transaction{
		txn("2024-01-01", models.TransactionTypeIncome, "10.10"),
		txn("2024-01-02", models.TransactionTypeExpense, "3.03"),
		txn("2024-01-03", models.TransactionTypeIncome, "7.07"),
	}
	reversed := []models.Transaction{forward[2], forward[1], forward[0]}

	a := ComputeKPIs(nil, nil, forward)
	b := ComputeKPIs(nil, nil, reversed)

	assertDecimal(t, "14.14", a.CashFlow)
	assert.True(t, a.CashFlow.Equal(b.CashFlow))
}

func TestSummarizeDashboard(t *testing.T) {
	transactions := make([]models.Transaction, 0, 15)
	for i := 0; i < 15; i++ {
		transactions = append(transactions, txn("2024-06-01", models.TransactionTypeIncome, "1"))
	}

	summary := SummarizeDashboard(nil, nil, transactions, nil, 10)

	require.Len(t, summary.RecentTransactions, 10)
	assert.Equal(t, transactions[0].ID, summary.RecentTransactions[0].ID)
	assertDecimal(t, "15", summary.KPIs.Income)
	assert.NotNil(t, summary.Alerts)
	assert.Empty(t, summary.Alerts)
}

func TestSummarizeDashboard_Empty(t *testing.T) {
	summary := SummarizeDashboard(nil, nil, nil, nil, 10)

	assert.NotNil(t, summary.RecentTransactions)
	assert.Empty(t, summary.RecentTransactions)
	assert.True(t, summary.KPIs.TotalBudget.IsZero())
	assert.Zero(t, summary.KPIs.TotalProjects)
}

func TestBuildCashFlowReport(t *testing.T) {
	transactions := []models.Transaction{
		txn("2024-01-15", models.TransactionTypeIncome, "100"),
		txn("2024-01-20", models.TransactionTypeExpense, "30"),
		txn("2024-02-01", models.TransactionTypeIncome, "50"),
	}

	report := BuildCashFlowReport(transactions)

	require.Len(t, report, 2)
	assert.Equal(t, "2024-01", report[0].Month)
	assertDecimal(t, "100", report[0].Income)
	assertDecimal(t, "30", report[0].Expenses)
	assertDecimal(t, "70", report[0].NetCashFlow)
	assert.Equal(t, "2024-02", report[1].Month)
	assertDecimal(t, "50", report[1].Income)
	assertDecimal(t, "0", report[1].Expenses)
	assertDecimal(t, "50", report[1].NetCashFlow)
}

func TestBuildCashFlowReport_NonIncomeCountsAsExpense(t *testing.T) {
	report := BuildCashFlowReport([]models.Transaction{
		txn("2024-03-01", "transfer", "25"),
		txn("2024-03-02", models.TransactionTypeExpense, "5"),
	})

	require.Len(t, report, 1)
	assertDecimal(t, "30", report[0].Expenses)
	assertDecimal(t, "-30", report[0].NetCashFlow)
}

func TestBuildCashFlowReport_FirstSeenOrder(t *testing.T) {
	report := BuildCashFlowReport([]models.Transaction{
		txn("2024-03-01", models.TransactionTypeIncome, "1"),
		txn("2024-01-01", models.TransactionTypeIncome, "1"),
		txn("2024-03-09T10:00:00Z", models.TransactionTypeIncome, "1"),
		txn("bad", models.TransactionTypeIncome, "1"),
	})

	months := make([]string, 0, len(report))
	for _, m := range report {
		months = append(months, m.Month)
	}
	assert.Equal(t, []string{"2024-03", "2024-01", "bad"}, months)
	assertDecimal(t, "2", report[0].Income)
}

func TestBuildCashFlowReport_TotalsMatchInput(t *testing.T) {
	transactions := []models.Transaction{
		txn("2023-11-03", models.TransactionTypeIncome, "120.50"),
		txn("2023-11-09", models.TransactionTypeExpense, "20.25"),
		txn("2023-12-01", models.TransactionTypeExpense, "80"),
		txn("2024-01-01", models.TransactionTypeIncome, "10"),
	}

	report := BuildCashFlowReport(transactions)

	income, expenses := decimal.Zero, decimal.Zero
	for _, m := range report {
		income = income.Add(m.Income)
		expenses = expenses.Add(m.Expenses)
	}
	assertDecimal(t, "130.50", income)
	assertDecimal(t, "100.25", expenses)
	assert.Len(t, report, 3)
}

func TestBuildCashFlowReport_Empty(t *testing.T) {
	report := BuildCashFlowReport(nil)
	assert.NotNil(t, report)
	assert.Empty(t, report)
}

func TestClassifyBudget(t *testing.T) {
	ratio := DefaultBudgetWarningRatio
	tests := []struct {
		name   string
		spent  string
		budget string
		want   string
	}{
		{name: "over budget", spent: "1200", budget: "1000", want: models.BudgetStatusOverBudget},
		{name: "exactly at budget is not over", spent: "1000", budget: "1000", want: models.BudgetStatusWarning},
		{name: "just above warning line", spent: "900.01", budget: "1000", want: models.BudgetStatusWarning},
		{name: "exactly at warning line", spent: "900", budget: "1000", want: models.BudgetStatusOnTrack},
		{name: "well under", spent: "100", budget: "1000", want: models.BudgetStatusOnTrack},
		{name: "zero budget zero spend", spent: "0", budget: "0", want: models.BudgetStatusOnTrack},
		{name: "zero budget some spend", spent: "1", budget: "0", want: models.BudgetStatusOverBudget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyBudget(dec(tt.spent), dec(tt.budget), ratio))
		})
	}
}

func TestAnalyzeBudgets(t *testing.T) {
	engine := newTestEngine()
	first, second := uuid.New(), uuid.New()
	projects := []models.Project{
		{ID: first, Name: "Tower", Budget: amount("2000"), Spent: amount("500")},
		{ID: second, Name: "Shed", Budget: amount("0"), Spent: amount("0")},
	}

	items := engine.AnalyzeBudgets(projects)

	require.Len(t, items, 2)
	assert.Equal(t, first, items[0].ID)
	assert.Equal(t, "Tower", items[0].Name)
	assertDecimal(t, "1500", items[0].Remaining)
	assertDecimal(t, "25", items[0].UtilizationPercent)
	assert.Equal(t, models.BudgetStatusOnTrack, items[0].Status)

	assert.Equal(t, second, items[1].ID)
	assert.True(t, items[1].UtilizationPercent.IsZero())
	assert.True(t, items[1].Remaining.IsZero())
	assert.Equal(t, models.BudgetStatusOnTrack, items[1].Status)
}

func TestAnalyzeBudgets_CustomRatio(t *testing.T) {
	engine := NewEngine(dec("0.5"), DefaultScheduleSlackPercent)

	items := engine.AnalyzeBudgets([]models.Project{{Budget: amount("100"), Spent: amount("60")}})

	require.Len(t, items, 1)
	assert.Equal(t, models.BudgetStatusWarning, items[0].Status)
}

func TestExpectedProgress(t *testing.T) {
	tests := []struct {
		name   string
		start  models.CalendarDate
		end    models.CalendarDate
		want   float64
		wantOK bool
	}{
		{name: "half way", start: "2024-06-05T12:00:00Z", end: "2024-06-25T12:00:00Z", want: 50, wantOK: true},
		{name: "past end is capped", start: "2023-01-01", end: "2023-12-31", want: 100, wantOK: true},
		{name: "before start is negative", start: "2024-07-01", end: "2024-08-01", wantOK: true},
		{name: "missing end", start: "2024-01-01", wantOK: false},
		{name: "unparseable start", start: "soon", end: "2024-12-31", wantOK: false},
		{name: "end before start", start: "2024-12-31", end: "2024-01-01", wantOK: false},
		{name: "zero span already passed", start: "2024-01-01", end: "2024-01-01", want: 100, wantOK: true},
		{name: "zero span still ahead", start: "2024-09-01", end: "2024-09-01", want: 0, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExpectedProgress(&models.Project{StartDate: tt.start, EndDate: tt.end}, fixedNow)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			if tt.name == "before start is negative" {
				assert.Less(t, got, 0.0)
				return
			}
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestBehindSchedule(t *testing.T) {
	projects := []models.Project{
		{Name: "late", Progress: 10, StartDate: "2024-01-01", EndDate: "2024-12-31"},
		{Name: "on pace", Progress: 40, StartDate: "2024-01-01", EndDate: "2024-12-31"},
		{Name: "finished late", Progress: 79, StartDate: "2023-01-01", EndDate: "2023-06-01"},
		{Name: "no dates", Progress: 0},
		{Name: "not started", Progress: 0, StartDate: "2025-01-01", EndDate: "2025-12-31"},
	}

	behind := BehindSchedule(projects, fixedNow, DefaultScheduleSlackPercent)

	require.Len(t, behind, 2)
	assert.Equal(t, "late", behind[0].Name)
	assert.Equal(t, "finished late", behind[1].Name)
}

func TestBehindSchedule_SlackIsStrict(t *testing.T) {
	// Half way through the span, so 50 percent is expected.
	projects := []models.Project{
		{Name: "exactly at slack", Progress: 30, StartDate: "2024-06-05T12:00:00Z", EndDate: "2024-06-25T12:00:00Z"},
		{Name: "one point past slack", Progress: 29, StartDate: "2024-06-05T12:00:00Z", EndDate: "2024-06-25T12:00:00Z"},
	}

	behind := BehindSchedule(projects, fixedNow, DefaultScheduleSlackPercent)

	require.Len(t, behind, 1)
	assert.Equal(t, "one point past slack", behind[0].Name)
}

func TestBehindSchedule_SingleDayProject(t *testing.T) {
	projects := []models.Project{
		{Name: "handover missed", Progress: 79, StartDate: "2024-03-01", EndDate: "2024-03-01"},
		{Name: "handover nearly done", Progress: 80, StartDate: "2024-03-01", EndDate: "2024-03-01"},
		{Name: "handover upcoming", Progress: 0, StartDate: "2024-09-01", EndDate: "2024-09-01"},
	}

	behind := BehindSchedule(projects, fixedNow, DefaultScheduleSlackPercent)

	require.Len(t, behind, 1)
	assert.Equal(t, "handover missed", behind[0].Name)
}

func TestOverdueInvoices(t *testing.T) {
	invoices := []models.Invoice{
		{InvoiceNumber: "1", Status: models.InvoiceStatusPending, DueDate: "2024-06-14"},
		{InvoiceNumber: "2", Status: models.InvoiceStatusPending, DueDate: "2024-06-16"},
		{InvoiceNumber: "3", Status: models.InvoiceStatusOverdue, DueDate: "2024-01-01"},
		{InvoiceNumber: "4", Status: models.InvoiceStatusPaid, DueDate: "2024-01-01"},
		{InvoiceNumber: "5", Status: models.InvoiceStatusPending, DueDate: "whenever"},
	}

	overdue := OverdueInvoices(invoices, fixedNow)

	require.Len(t, overdue, 1)
	assert.Equal(t, "1", overdue[0].InvoiceNumber)
}

func TestGenerateInsights_OverBudgetOnly(t *testing.T) {
	engine := newTestEngine()
	projects := []models.Project{{Name: "X", Budget: amount("1000"), Spent: amount("1200")}}

	insights := engine.GenerateInsights(projects, nil, nil)

	require.Len(t, insights, 1)
	assert.Equal(t, models.InsightTypeBudgetWarning, insights[0].Type)
	assert.Equal(t, models.InsightSeverityHigh, insights[0].Severity)
	assert.Contains(t, insights[0].Description, "1 project has exceeded its budget")
}

func TestGenerateInsights_NegativeCashFlow(t *testing.T) {
	engine := newTestEngine()
	transactions := []models.Transaction{
		txn("2024-06-01", models.TransactionTypeIncome, "500"),
		txn("2024-06-02", models.TransactionTypeExpense, "2000"),
	}

	insights := engine.GenerateInsights(nil, transactions, nil)

	require.Len(t, insights, 1)
	assert.Equal(t, models.InsightTypeCashFlowWarning, insights[0].Type)
	assert.Equal(t, models.InsightSeverityHigh, insights[0].Severity)
	assert.Contains(t, insights[0].Description, "-$1,500.00")
}

func TestGenerateInsights_PositiveCashFlow(t *testing.T) {
	engine := newTestEngine()
	transactions := []models.Transaction{txn("2024-06-01", models.TransactionTypeIncome, "1234.5")}

	insights := engine.GenerateInsights(nil, transactions, nil)

	require.Len(t, insights, 1)
	assert.Equal(t, models.InsightTypeCashFlowPositive, insights[0].Type)
	assert.Equal(t, models.InsightSeverityLow, insights[0].Severity)
	assert.Contains(t, insights[0].Description, "$1,234.50")
}

func TestGenerateInsights_BalancedCashFlowIsSilent(t *testing.T) {
	engine := newTestEngine()
	transactions := []models.Transaction{
		txn("2024-06-01", models.TransactionTypeIncome, "100"),
		txn("2024-06-02", models.TransactionTypeExpense, "100"),
	}

	insights := engine.GenerateInsights(nil, transactions, nil)

	assert.Empty(t, insights)
}

func TestGenerateInsights_OverdueInvoice(t *testing.T) {
	engine := newTestEngine()
	yesterday := models.NewCalendarDate(fixedNow.AddDate(0, 0, -1))
	invoices := []models.Invoice{{InvoiceNumber: "INV-1", Status: models.InvoiceStatusPending, DueDate: yesterday, Amount: amount("500")}}

	insights := engine.GenerateInsights([]models.Project{{Name: "P", Budget: amount("1"), Spent: amount("0")}}, nil, invoices)

	require.Len(t, insights, 1)
	assert.Equal(t, models.InsightTypeInvoiceOverdue, insights[0].Type)
	assert.Equal(t, models.InsightSeverityMedium, insights[0].Severity)
	assert.Contains(t, insights[0].Description, "1 pending invoice is past due")
	assert.Contains(t, insights[0].Description, "$500.00")
}

func TestGenerateInsights_ScheduleDelay(t *testing.T) {
	engine := newTestEngine()
	projects := []models.Project{
		{Name: "late", Budget: amount("10"), Progress: 5, StartDate: "2024-01-01", EndDate: "2024-07-01"},
	}

	insights := engine.GenerateInsights(projects, nil, nil)

	require.Len(t, insights, 1)
	assert.Equal(t, models.InsightTypeProjectDelay, insights[0].Type)
	assert.Equal(t, models.InsightSeverityMedium, insights[0].Severity)
}

func TestGenerateInsights_GettingStarted(t *testing.T) {
	engine := newTestEngine()
	invoices := []models.Invoice{{InvoiceNumber: "1", Status: models.InvoiceStatusPaid, DueDate: "2024-01-01"}}

	insights := engine.GenerateInsights(nil, nil, invoices)

	require.Len(t, insights, 1)
	assert.Equal(t, models.InsightTypeGettingStarted, insights[0].Type)
	assert.Equal(t, models.InsightSeverityInfo, insights[0].Severity)
}

func TestGenerateInsights_AllRulesInOrder(t *testing.T) {
	engine := newTestEngine()
	projects := []models.Project{
		{Name: "over", Budget: amount("100"), Spent: amount("150"), Progress: 90},
		{Name: "late", Budget: amount("100"), Spent: amount("10"), Progress: 0, StartDate: "2024-01-01", EndDate: "2024-06-01"},
	}
	transactions := []models.Transaction{txn("2024-06-01", models.TransactionTypeExpense, "10")}
	invoices := []models.Invoice{{InvoiceNumber: "1", Status: models.InvoiceStatusPending, DueDate: "2024-05-01", Amount: amount("20")}}

	insights := engine.GenerateInsights(projects, transactions, invoices)

	assert.Equal(t, []string{
		models.InsightTypeBudgetWarning,
		models.InsightTypeCashFlowWarning,
		models.InsightTypeInvoiceOverdue,
		models.InsightTypeProjectDelay,
	}, insightTypes(insights))
}

func TestGenerateInsights_WireTypeTags(t *testing.T) {
	engine := newTestEngine()
	projects := []models.Project{
		{Name: "over", Budget: amount("100"), Spent: amount("150"), Progress: 90},
		{Name: "late", Budget: amount("100"), Spent: amount("10"), Progress: 5, StartDate: "2024-01-01", EndDate: "2024-12-01"},
	}
	yesterday := models.NewCalendarDate(fixedNow.AddDate(0, 0, -1))
	invoices := []models.Invoice{{InvoiceNumber: "INV-1", Status: models.InvoiceStatusPending, DueDate: yesterday, Amount: amount("500")}}

	negative := engine.GenerateInsights(projects, []models.Transaction{txn("2024-06-01", models.TransactionTypeExpense, "10")}, invoices)
	assert.Equal(t, []string{"budget_warning", "cash_flow_warning", "invoice_overdue", "project_delay"}, insightTypes(negative))

	positive := engine.GenerateInsights(nil, []models.Transaction{txn("2024-06-01", models.TransactionTypeIncome, "10")}, nil)
	assert.Equal(t, []string{"cash_flow_positive"}, insightTypes(positive))

	empty := engine.GenerateInsights(nil, nil, nil)
	assert.Equal(t, []string{"getting_started"}, insightTypes(empty))
}

func TestGenerateInsights_EmptyIsNeverNil(t *testing.T) {
	engine := newTestEngine()
	insights := engine.GenerateInsights([]models.Project{{Name: "fine", Budget: amount("10")}}, nil, nil)

	assert.NotNil(t, insights)
	assert.Empty(t, insights)
}

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "0", want: "$0.00"},
		{in: "500", want: "$500.00"},
		{in: "1234.5", want: "$1,234.50"},
		{in: "-1500", want: "-$1,500.00"},
		{in: "1234567.891", want: "$1,234,567.89"},
		{in: "-0.001", want: "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatUSD(dec(tt.in)))
		})
	}
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2024-01", MonthKey("2024-01-15"))
	assert.Equal(t, "2024-01", MonthKey("2024-01-15T00:00:00Z"))
	assert.Equal(t, "2024-1", MonthKey("2024-1"))
	assert.Equal(t, "", MonthKey(""))
}

func TestParseCalendarDate(t *testing.T) {
	got, ok := ParseCalendarDate("2024-02-29")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), got)

	_, ok = ParseCalendarDate("2024-02-29 08:30:00")
	assert.True(t, ok)

	_, ok = ParseCalendarDate("29/02/2024")
	assert.False(t, ok)
}

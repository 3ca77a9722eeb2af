package services

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"erp-dashboard/internal/models"
)

type sampleDataGenerator struct {
	faker *gofakeit.Faker
	now   time.Time
}

const (
	minProjectBudget     = 50_000
	maxProjectBudget     = 5_000_000
	minTransaction       = 1_000
	maxTransaction       = 80_000
	minInvoice           = 5_000
	maxInvoice           = 250_000
	incomeShare          = 0.4
	invoiceDueWindowDays = 60
)

var projectKinds = []string{
	"Office Tower", "Bridge Retrofit", "Medical Center", "Parking Structure",
	"Warehouse", "Residential Complex", "School Renovation", "Water Treatment Plant",
	"Retail Plaza", "Highway Interchange",
}

var expenseDescriptions = []string{
	"Concrete delivery", "Steel rebar", "Equipment rental", "Subcontractor payment",
	"Crew payroll", "Permit fees", "Lumber order", "Electrical supplies",
	"Site security", "Crane hire",
}

var incomeDescriptions = []string{
	"Progress billing", "Milestone payment", "Retainage release", "Change order payment",
	"Client deposit",
}

var alertTemplates = []models.Alert{
	{Type: models.AlertTypeWarning, Title: "Inspection scheduled", Message: "A site inspection is scheduled for next week."},
	{Type: models.AlertTypeError, Title: "Permit expired", Message: "A building permit has expired and must be renewed."},
	{Type: models.AlertTypeInfo, Title: "Material price update", Message: "Supplier pricing for structural steel has changed."},
	{Type: models.AlertTypeSuccess, Title: "Milestone reached", Message: "Foundation work was signed off by the client."},
	{Type: models.AlertTypeWarning, Title: "Weather delay", Message: "Heavy rain is forecast across active sites."},
}

// NewSampleDataGenerator returns a generator seeded with seed. The same seed
// and clock always yield the same dataset.
func NewSampleDataGenerator(seed int64, now time.Time) SampleDataGeneratorInterface {
	return &sampleDataGenerator{
		faker: gofakeit.New(seed),
		now:   now,
	}
}

// Generate builds a consistent dataset: transactions and invoices reference
// the generated projects.
func (g *sampleDataGenerator) Generate(opts models.SampleDataOptions) *models.SampleDataset {
	dataset := &models.SampleDataset{
		Projects:     make([]models.Project, 0, opts.Projects),
		Transactions: make([]models.Transaction, 0, opts.TransactionsPerMonth*opts.Months),
		Invoices:     make([]models.Invoice, 0, opts.Invoices),
		Alerts:       make([]models.Alert, 0, opts.Alerts),
	}

	for i := 0; i < opts.Projects; i++ {
		dataset.Projects = append(dataset.Projects, g.generateProject())
	}

	for month := opts.Months - 1; month >= 0; month-- {
		monthStart := time.Date(g.now.Year(), g.now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -month, 0)
		for i := 0; i < opts.TransactionsPerMonth; i++ {
			dataset.Transactions = append(dataset.Transactions, g.generateTransaction(monthStart, dataset.Projects))
		}
	}

	for i := 0; i < opts.Invoices; i++ {
		dataset.Invoices = append(dataset.Invoices, g.generateInvoice(i+1, dataset.Projects))
	}

	for i := 0; i < opts.Alerts; i++ {
		alert := alertTemplates[i%len(alertTemplates)]
		alert.ID = g.id()
		alert.IsRead = g.faker.Float64() < 0.3
		alert.CreatedAt = g.now.Add(-time.Duration(i) * time.Hour)
		dataset.Alerts = append(dataset.Alerts, alert)
	}

	return dataset
}

func (g *sampleDataGenerator) generateProject() models.Project {
	budget := decimal.NewFromInt(int64(g.faker.IntRange(minProjectBudget/1000, maxProjectBudget/1000)) * 1000)

	start := g.faker.DateRange(g.now.AddDate(0, -18, 0), g.now.AddDate(0, -1, 0))
	end := start.AddDate(0, g.faker.IntRange(3, 24), 0)

	status := g.projectStatus()
	progress := g.faker.IntRange(0, 95)
	switch status {
	case models.ProjectStatusPlanning:
		progress = 0
	case models.ProjectStatusCompleted:
		progress = 100
	}

	// Spend tracks progress with noise so some projects land over budget.
	spendFactor := decimal.NewFromFloat(g.faker.Float64Range(0.7, 1.3))
	spent := budget.Mul(decimal.NewFromInt(int64(progress))).Div(decimal.NewFromInt(100)).Mul(spendFactor).Round(2)

	return models.Project{
		ID:        g.id(),
		Name:      fmt.Sprintf("%s %s", g.faker.City(), g.faker.RandomString(projectKinds)),
		Client:    g.faker.Company(),
		Budget:    models.NewAmount(budget),
		Spent:     models.NewAmount(spent),
		Progress:  progress,
		Status:    status,
		StartDate: models.NewCalendarDate(start),
		EndDate:   models.NewCalendarDate(end),
		CreatedAt: start,
		UpdatedAt: g.now,
	}
}

// projectStatus distribution: 50% active, 20% planning, 15% on hold, 15% completed
func (g *sampleDataGenerator) projectStatus() string {
	roll := g.faker.Float64()
	switch {
	case roll < 0.50:
		return models.ProjectStatusActive
	case roll < 0.70:
		return models.ProjectStatusPlanning
	case roll < 0.85:
		return models.ProjectStatusOnHold
	default:
		return models.ProjectStatusCompleted
	}
}

func (g *sampleDataGenerator) generateTransaction(monthStart time.Time, projects []models.Project) models.Transaction {
	kind := models.TransactionTypeExpense
	description := g.faker.RandomString(expenseDescriptions)
	if g.faker.Float64() < incomeShare {
		kind = models.TransactionTypeIncome
		description = g.faker.RandomString(incomeDescriptions)
	}

	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Second)
	if monthEnd.After(g.now) {
		monthEnd = g.now
	}
	date := g.faker.DateRange(monthStart, monthEnd)

	txn := models.Transaction{
		ID:          g.id(),
		Description: description,
		Amount:      g.money(minTransaction, maxTransaction),
		Type:        kind,
		Date:        models.NewCalendarDate(date),
		CreatedAt:   date,
	}
	if len(projects) > 0 {
		projectID := projects[g.faker.IntRange(0, len(projects)-1)].ID
		txn.ProjectID = &projectID
	}

	return txn
}

// invoice status distribution: 50% paid, 40% pending, 10% overdue
func (g *sampleDataGenerator) generateInvoice(sequence int, projects []models.Project) models.Invoice {
	due := g.faker.DateRange(g.now.AddDate(0, 0, -invoiceDueWindowDays), g.now.AddDate(0, 0, invoiceDueWindowDays))

	invoice := models.Invoice{
		ID:            g.id(),
		InvoiceNumber: fmt.Sprintf("INV-%05d", sequence),
		Client:        g.faker.Company(),
		Amount:        g.money(minInvoice, maxInvoice),
		DueDate:       models.NewCalendarDate(due),
		CreatedAt:     due.AddDate(0, 0, -30),
	}

	roll := g.faker.Float64()
	switch {
	case roll < 0.50:
		invoice.Status = models.InvoiceStatusPaid
		invoice.PaidDate = models.NewCalendarDate(due.AddDate(0, 0, -g.faker.IntRange(0, 10)))
	case roll < 0.90:
		invoice.Status = models.InvoiceStatusPending
	default:
		invoice.Status = models.InvoiceStatusOverdue
	}

	if len(projects) > 0 {
		projectID := projects[g.faker.IntRange(0, len(projects)-1)].ID
		invoice.ProjectID = &projectID
	}

	return invoice
}

func (g *sampleDataGenerator) id() uuid.UUID {
	return uuid.MustParse(g.faker.UUID())
}

func (g *sampleDataGenerator) money(minValue, maxValue float64) models.Amount {
	return models.NewAmount(decimal.NewFromFloat(g.faker.Float64Range(minValue, maxValue)).Round(2))
}

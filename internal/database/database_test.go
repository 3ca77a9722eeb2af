package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"erp-dashboard/internal/models"
)

func TestDB_Ping(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	assert.NoError(t, db.Ping(context.Background()))
}

func TestDB_CreateIndexes(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	assert.NoError(t, db.CreateIndexes())
	assert.True(t, db.Migrator().HasIndex(&models.Alert{}, "idx_alerts_unread_created"))
}

func TestDB_SeedSampleData(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	project := models.Project{Name: "Riverside Clinic", Status: models.ProjectStatusActive, Budget: models.AmountFromString("250000")}
	data := &models.SampleDataset{
		Projects: []models.Project{project},
		Transactions: []models.Transaction{
			{Description: "Steel", Type: models.TransactionTypeExpense, Amount: models.AmountFromString("1200"), Date: "2024-03-02"},
			{Description: "Draw 1", Type: models.TransactionTypeIncome, Amount: models.AmountFromString("5000"), Date: "2024-03-05"},
		},
		Invoices: []models.Invoice{{InvoiceNumber: "INV-0001", DueDate: "2024-04-01", Amount: models.AmountFromString("5000")}},
		Alerts:   []models.Alert{{Type: models.AlertTypeWarning, Title: "Permit expiring"}},
	}

	require.NoError(t, db.SeedSampleData(context.Background(), data))

	var projects, transactions, invoices, alerts int64
	db.Model(&models.Project{}).Count(&projects)
	db.Model(&models.Transaction{}).Count(&transactions)
	db.Model(&models.Invoice{}).Count(&invoices)
	db.Model(&models.Alert{}).Count(&alerts)
	assert.Equal(t, int64(1), projects)
	assert.Equal(t, int64(2), transactions)
	assert.Equal(t, int64(1), invoices)
	assert.Equal(t, int64(1), alerts)

	err := db.SeedSampleData(context.Background(), &models.SampleDataset{Projects: []models.Project{{Name: "Again"}}})
	assert.ErrorIs(t, err, ErrAlreadySeeded)
}

func TestDB_SeedSampleData_RollsBackOnFailure(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	data := &models.SampleDataset{
		Projects: []models.Project{{Name: "Good", Status: models.ProjectStatusActive}},
		Invoices: []models.Invoice{{InvoiceNumber: "INV-1", Status: "void", DueDate: "2024-01-01"}},
	}

	err := db.SeedSampleData(context.Background(), data)
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to seed invoices")

	var projects int64
	db.Model(&models.Project{}).Count(&projects)
	assert.Zero(t, projects)
}

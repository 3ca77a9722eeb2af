package database

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"erp-dashboard/internal/config"
	"erp-dashboard/internal/models"
)

// SetupTestDB opens a migrated in-memory sqlite database. The pool is pinned
// to one connection because every sqlite :memory: connection is its own
// database.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, table := range []string{"transactions", "invoices", "alerts", "projects"} {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}

	if err := db.Close(); err != nil {
		t.Logf("failed to close test database: %v", err)
	}
}

func CreateTestProject(t *testing.T, db *DB, project *models.Project) *models.Project {
	t.Helper()

	if project.Status == "" {
		project.Status = models.ProjectStatusActive
	}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("failed to create test project: %v", err)
	}
	return project
}

func CreateTestTransaction(t *testing.T, db *DB, txn *models.Transaction) *models.Transaction {
	t.Helper()

	if txn.Description == "" {
		txn.Description = "test transaction"
	}
	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return txn
}

func CreateTestInvoice(t *testing.T, db *DB, invoice *models.Invoice) *models.Invoice {
	t.Helper()

	if err := db.Create(invoice).Error; err != nil {
		t.Fatalf("failed to create test invoice: %v", err)
	}
	return invoice
}

func CreateTestAlert(t *testing.T, db *DB, alert *models.Alert) *models.Alert {
	t.Helper()

	if alert.Type == "" {
		alert.Type = models.AlertTypeInfo
	}
	if err := db.Create(alert).Error; err != nil {
		t.Fatalf("failed to create test alert: %v", err)
	}
	return alert
}

package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"erp-dashboard/internal/config"
	"erp-dashboard/internal/models"
)

var ErrAlreadySeeded = errors.New("database already contains projects")

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Project{},
		&models.Transaction{},
		&models.Invoice{},
		&models.Alert{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping satisfies the health handler's database checker.
func (db *DB) Ping(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// CreateIndexes adds the composite indexes the report queries lean on.
// Failures are logged, not returned.
func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_transactions_date_created ON transactions(date, created_at)",
		"CREATE INDEX IF NOT EXISTS idx_invoices_status_due_date ON invoices(status, due_date)",
		"CREATE INDEX IF NOT EXISTS idx_alerts_unread_created ON alerts(is_read, created_at)",
		"CREATE INDEX IF NOT EXISTS idx_projects_status_created ON projects(status, created_at)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			slog.Warn("failed to create index", "query", query, "error", err)
		}
	}

	return nil
}

// SeedSampleData writes a generated dataset in one transaction. It refuses
// to touch a database that already has projects.
func (db *DB) SeedSampleData(ctx context.Context, data *models.SampleDataset) error {
	var existing int64
	if err := db.DB.WithContext(ctx).Model(&models.Project{}).Count(&existing).Error; err != nil {
		return fmt.Errorf("failed to count projects: %w", err)
	}
	if existing > 0 {
		return ErrAlreadySeeded
	}

	return db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(data.Projects) > 0 {
			if err := tx.Create(&data.Projects).Error; err != nil {
				return fmt.Errorf("failed to seed projects: %w", err)
			}
		}
		if len(data.Invoices) > 0 {
			if err := tx.Create(&data.Invoices).Error; err != nil {
				return fmt.Errorf("failed to seed invoices: %w", err)
			}
		}
		if len(data.Transactions) > 0 {
			if err := tx.CreateInBatches(&data.Transactions, 100).Error; err != nil {
				return fmt.Errorf("failed to seed transactions: %w", err)
			}
		}
		if len(data.Alerts) > 0 {
			if err := tx.Create(&data.Alerts).Error; err != nil {
				return fmt.Errorf("failed to seed alerts: %w", err)
			}
		}
		return nil
	})
}

// Initialize opens the database and brings the schema up to date, falling
// back to gorm AutoMigrate when the SQL migrations cannot run.
func Initialize(ctx context.Context, cfg *config.Config) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if err := RunMigrationsIfEnabled(ctx, sqlDB, &cfg.Database); err != nil {
		slog.Warn("migration runner failed, falling back to AutoMigrate", "error", err)

		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		slog.Warn("failed to create some indexes", "error", err)
	}

	slog.Info("database initialized", "host", cfg.Database.Host, "name", cfg.Database.Name)

	return db, nil
}

package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"erp-dashboard/internal/models"
)

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// ListRecent returns the newest limit transactions by booking date. Ties on
// date fall back to insert time.
func (r *transactionRepository) ListRecent(ctx context.Context, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	query := r.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "date"}, Desc: true}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "created_at"}, Desc: true})
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list recent transactions: %w", err)
	}
	return transactions, nil
}

// ListChronological returns every transaction, oldest booking date first.
func (r *transactionRepository) ListChronological(ctx context.Context) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "date"}}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "created_at"}}).
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"erp-dashboard/internal/models"
)

type alertRepository struct {
	db *gorm.DB
}

func NewAlertRepository(db *gorm.DB) AlertRepositoryInterface {
	return &alertRepository{
		db: db,
	}
}

// ListUnread returns unread alerts, newest first.
func (r *alertRepository) ListUnread(ctx context.Context, limit int) ([]models.Alert, error) {
	var alerts []models.Alert
	query := r.db.WithContext(ctx).
		Where("is_read = ?", false).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&alerts).Error; err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	return alerts, nil
}

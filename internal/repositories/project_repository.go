package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"erp-dashboard/internal/models"
)

var projectSortColumns = map[string]bool{
	"name":       true,
	"budget":     true,
	"spent":      true,
	"progress":   true,
	"created_at": true,
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepositoryInterface {
	return &projectRepository{
		db: db,
	}
}

// List returns projects in the requested order, or store order when none is
// given.
func (r *projectRepository) List(ctx context.Context, opts ListOptions) ([]models.Project, error) {
	query, err := opts.apply(r.db.WithContext(ctx), projectSortColumns)
	if err != nil {
		return nil, err
	}

	var projects []models.Project
	if err := query.Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

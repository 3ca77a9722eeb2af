package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"erp-dashboard/internal/models"
)

type invoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) InvoiceRepositoryInterface {
	return &invoiceRepository{
		db: db,
	}
}

func (r *invoiceRepository) List(ctx context.Context) ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := r.db.WithContext(ctx).Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}

package repositories

import (
	"context"

	"erp-dashboard/internal/models"
)

// ProjectRepositoryInterface defines the contract for project queries
type ProjectRepositoryInterface interface {
	List(ctx context.Context, opts ListOptions) ([]models.Project, error)
}

// TransactionRepositoryInterface defines the contract for ledger queries
type TransactionRepositoryInterface interface {
	ListRecent(ctx context.Context, limit int) ([]models.Transaction, error)
	ListChronological(ctx context.Context) ([]models.Transaction, error)
}

// InvoiceRepositoryInterface defines the contract for invoice queries
type InvoiceRepositoryInterface interface {
	List(ctx context.Context) ([]models.Invoice, error)
}

// AlertRepositoryInterface defines the contract for alert queries
type AlertRepositoryInterface interface {
	ListUnread(ctx context.Context, limit int) ([]models.Alert, error)
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProject_Validate(t *testing.T) {
	tests := []struct {
		name    string
		project Project
		wantErr error
		errMsg  string
	}{
		{
			name:    "valid active project",
			project: Project{Name: "Harbor Bridge", Status: ProjectStatusActive, Progress: 40},
		},
		{
			name:    "missing name",
			project: Project{Status: ProjectStatusActive},
			errMsg:  "project name is required",
		},
		{
			name:    "unknown status",
			project: Project{Name: "Depot", Status: "archived"},
			wantErr: ErrInvalidProjectStatus,
		},
		{
			name:    "progress over 100",
			project: Project{Name: "Depot", Status: ProjectStatusActive, Progress: 101},
			wantErr: ErrInvalidProjectProgress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.project.Validate()
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.errMsg != "":
				assert.EqualError(t, err, tt.errMsg)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestProject_IsOverBudget(t *testing.T) {
	p := Project{Budget: AmountFromString("1000"), Spent: AmountFromString("1000")}
	assert.False(t, p.IsOverBudget())

	p.Spent = AmountFromString("1000.01")
	assert.True(t, p.IsOverBudget())
}

func TestInvoice_Validate(t *testing.T) {
	inv := Invoice{InvoiceNumber: "INV-1", Status: InvoiceStatusPending, DueDate: "2024-01-01"}
	assert.NoError(t, inv.Validate())

	inv.Status = "void"
	assert.ErrorIs(t, inv.Validate(), ErrInvalidInvoiceStatus)

	inv.Status = InvoiceStatusPaid
	inv.DueDate = ""
	assert.EqualError(t, inv.Validate(), "invoice due date is required")
}

func TestTransaction_Validate(t *testing.T) {
	txn := Transaction{Description: "Concrete delivery", Type: TransactionTypeExpense}
	assert.NoError(t, txn.Validate())
	assert.True(t, txn.IsExpense())

	txn.Type = "transfer"
	assert.ErrorIs(t, txn.Validate(), ErrInvalidTransactionType)
}

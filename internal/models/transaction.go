package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

var ErrInvalidTransactionType = errors.New("invalid transaction type")

// Transaction is a single ledger movement. Date is the booking date, not the
// insert time.
type Transaction struct {
	ID          uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	Description string       `gorm:"type:text" json:"description"`
	Amount      Amount       `gorm:"type:decimal(15,2);not null;default:0" json:"amount"`
	Type        string       `gorm:"type:varchar(20);not null;index" json:"type"`
	Date        CalendarDate `gorm:"type:date;not null;index" json:"date"`
	ProjectID   *uuid.UUID   `gorm:"type:uuid;index" json:"project_id,omitempty"`
	AccountID   *uuid.UUID   `gorm:"type:uuid" json:"account_id,omitempty"`
	InvoiceID   *uuid.UUID   `gorm:"type:uuid" json:"invoice_id,omitempty"`
	CreatedAt   time.Time    `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	if t.Date.IsZero() {
		t.Date = NewCalendarDate(t.CreatedAt)
	}
	return t.Validate()
}

func (t *Transaction) Validate() error {
	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}
	if t.Description == "" {
		return errors.New("transaction description is required")
	}
	return nil
}

func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

func (t *Transaction) TableName() string {
	return "transactions"
}

func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

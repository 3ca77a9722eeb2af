package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
)

var ErrInvalidInvoiceStatus = errors.New("invalid invoice status")

// Invoice is a bill issued to a client.
type Invoice struct {
	ID            uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNumber string       `gorm:"type:varchar(50);uniqueIndex;not null" json:"invoice_number"`
	Client        string       `gorm:"type:varchar(255)" json:"client"`
	Amount        Amount       `gorm:"type:decimal(15,2);not null;default:0" json:"amount"`
	Status        string       `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	DueDate       CalendarDate `gorm:"type:date;not null" json:"due_date"`
	PaidDate      CalendarDate `gorm:"type:date" json:"paid_date,omitempty"`
	ProjectID     *uuid.UUID   `gorm:"type:uuid;index" json:"project_id,omitempty"`
	CreatedAt     time.Time    `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for Invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	if i.Status == "" {
		i.Status = InvoiceStatusPending
	}
	if i.CreatedAt.IsZero() {
		i.CreatedAt = time.Now()
	}
	return i.Validate()
}

func (i *Invoice) Validate() error {
	if i.InvoiceNumber == "" {
		return errors.New("invoice number is required")
	}
	if !IsValidInvoiceStatus(i.Status) {
		return ErrInvalidInvoiceStatus
	}
	if i.DueDate.IsZero() {
		return errors.New("invoice due date is required")
	}
	return nil
}

func (i *Invoice) IsPaid() bool {
	return i.Status == InvoiceStatusPaid
}

func (i *Invoice) IsPending() bool {
	return i.Status == InvoiceStatusPending
}

func (i *Invoice) TableName() string {
	return "invoices"
}

func IsValidInvoiceStatus(status string) bool {
	switch status {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusOverdue:
		return true
	default:
		return false
	}
}

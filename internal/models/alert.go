package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AlertTypeError   = "error"
	AlertTypeWarning = "warning"
	AlertTypeSuccess = "success"
	AlertTypeInfo    = "info"
)

var ErrInvalidAlertType = errors.New("invalid alert type")

// Alert is a dashboard notification.
type Alert struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Type      string    `gorm:"type:varchar(20);not null" json:"type"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Message   string    `gorm:"type:text" json:"message"`
	IsRead    bool      `gorm:"not null;default:false;index" json:"is_read"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

// BeforeCreate hook for Alert
func (a *Alert) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	if !IsValidAlertType(a.Type) {
		return ErrInvalidAlertType
	}
	if a.Title == "" {
		return errors.New("alert title is required")
	}
	return nil
}

func (a *Alert) TableName() string {
	return "alerts"
}

func IsValidAlertType(alertType string) bool {
	switch alertType {
	case AlertTypeError, AlertTypeWarning, AlertTypeSuccess, AlertTypeInfo:
		return true
	default:
		return false
	}
}

package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ProjectStatusPlanning  = "planning"
	ProjectStatusActive    = "active"
	ProjectStatusOnHold    = "on_hold"
	ProjectStatusCompleted = "completed"
)

var (
	ErrInvalidProjectStatus   = errors.New("invalid project status")
	ErrInvalidProjectProgress = errors.New("project progress must be between 0 and 100")
)

// Project is a construction job tracked against a budget.
type Project struct {
	ID        uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	Name      string       `gorm:"type:varchar(255);not null" json:"name"`
	Client    string       `gorm:"type:varchar(255)" json:"client"`
	Budget    Amount       `gorm:"type:decimal(15,2);not null;default:0" json:"budget"`
	Spent     Amount       `gorm:"type:decimal(15,2);not null;default:0" json:"spent"`
	Progress  int          `gorm:"not null;default:0" json:"progress"`
	Status    string       `gorm:"type:varchar(20);not null;default:'planning';index" json:"status"`
	StartDate CalendarDate `gorm:"type:date" json:"start_date,omitempty"`
	EndDate   CalendarDate `gorm:"type:date" json:"end_date,omitempty"`
	CreatedAt time.Time    `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Project
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = ProjectStatusPlanning
	}

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	return p.Validate()
}

func (p *Project) Validate() error {
	if p.Name == "" {
		return errors.New("project name is required")
	}
	if !IsValidProjectStatus(p.Status) {
		return ErrInvalidProjectStatus
	}
	if p.Progress < 0 || p.Progress > 100 {
		return ErrInvalidProjectProgress
	}
	return nil
}

func (p *Project) IsActive() bool {
	return p.Status == ProjectStatusActive
}

func (p *Project) IsOverBudget() bool {
	return p.Spent.GreaterThan(p.Budget.Decimal)
}

func (p *Project) TableName() string {
	return "projects"
}

func IsValidProjectStatus(status string) bool {
	switch status {
	case ProjectStatusPlanning, ProjectStatusActive, ProjectStatusOnHold, ProjectStatusCompleted:
		return true
	default:
		return false
	}
}

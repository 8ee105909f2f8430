// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/auracash/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database. Progress is derived
// on read and never stored here.
type GoalModel struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	UserID       int64           `gorm:"not null;index"`
	CategoryID   int64           `gorm:"not null;index"`
	TargetAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PeriodStart  time.Time       `gorm:"type:date;not null"`
	PeriodEnd    time.Time       `gorm:"type:date;not null"`
	CreatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:           m.ID,
		UserID:       m.UserID,
		CategoryID:   m.CategoryID,
		TargetAmount: m.TargetAmount,
		PeriodStart:  m.PeriodStart,
		PeriodEnd:    m.PeriodEnd,
		CreatedAt:    m.CreatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:           goal.ID,
		UserID:       goal.UserID,
		CategoryID:   goal.CategoryID,
		TargetAmount: goal.TargetAmount,
		PeriodStart:  goal.PeriodStart,
		PeriodEnd:    goal.PeriodEnd,
		CreatedAt:    goal.CreatedAt,
	}
}

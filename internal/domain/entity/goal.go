// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal represents a spending cap for a category over an inclusive date
// window. Progress against the cap is derived on read, never stored.
type Goal struct {
	ID           int64
	UserID       int64
	CategoryID   int64
	TargetAmount decimal.Decimal
	PeriodStart  time.Time
	PeriodEnd    time.Time
	CreatedAt    time.Time
}

// NewGoal creates a new Goal entity. The id is assigned by the store.
func NewGoal(userID, categoryID int64, targetAmount decimal.Decimal, periodStart, periodEnd time.Time) *Goal {
	return &Goal{
		UserID:       userID,
		CategoryID:   categoryID,
		TargetAmount: targetAmount,
		PeriodStart:  periodStart,
		PeriodEnd:    periodEnd,
		CreatedAt:    time.Now().UTC(),
	}
}

// GoalWithProgress carries a goal together with its derived figures.
// Spent is the raw total, available to callers that need the true overage;
// Progress is the display percentage, always within [0, 100].
type GoalWithProgress struct {
	Goal         *Goal
	CategoryName string
	Spent        decimal.Decimal
	Progress     float64
}

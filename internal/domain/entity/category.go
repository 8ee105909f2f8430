// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// UncategorizedLabel is the display label used when a transaction references
// a category that no longer exists.
const UncategorizedLabel = "No category"

// DefaultExpenseCategories is the expense catalog seeded for every new user.
var DefaultExpenseCategories = []string{
	"Food",
	"Transport",
	"Housing",
	"Health",
	"Education",
	"Leisure",
}

// DefaultIncomeCategories is the income catalog seeded for every new user.
var DefaultIncomeCategories = []string{
	"Salary",
	"Freelance",
	"Investments",
}

// Category represents a named spending or earning bucket, scoped to a user.
type Category struct {
	ID        int64
	UserID    int64
	Name      string
	Kind      Kind
	CreatedAt time.Time
}

// NewCategory creates a new Category entity. The id is assigned by the store.
func NewCategory(userID int64, name string, kind Kind) *Category {
	return &Category{
		UserID:    userID,
		Name:      name,
		Kind:      kind,
		CreatedAt: time.Now().UTC(),
	}
}

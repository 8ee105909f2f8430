// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a dated monetary movement owned by a user.
// Amounts are always positive; the direction is carried by Kind.
// There is no update path: correcting a transaction is delete-then-recreate.
type Transaction struct {
	ID          int64
	UserID      int64
	Kind        Kind
	CategoryID  *int64
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	CreatedAt   time.Time
}

// NewTransaction creates a new Transaction entity. The id is assigned by the
// store.
func NewTransaction(userID int64, kind Kind, categoryID *int64, amount decimal.Decimal, date time.Time, description string) *Transaction {
	return &Transaction{
		UserID:      userID,
		Kind:        kind,
		CategoryID:  categoryID,
		Amount:      amount,
		Date:        date,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}

// TransactionWithCategory pairs a transaction with its category's display
// name. CategoryName falls back to UncategorizedLabel when the category was
// deleted.
type TransactionWithCategory struct {
	Transaction  *Transaction
	CategoryName string
}

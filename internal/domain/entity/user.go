// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents a registered user. All other entities reference a user
// through their owner id.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	TaxID        string
	Income       decimal.Decimal
	ReceivesAid  bool
	CreatedAt    time.Time
}

// NewUser creates a new User entity. The id is assigned by the store.
func NewUser(name, email, passwordHash, taxID string, income decimal.Decimal, receivesAid bool) *User {
	return &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		TaxID:        taxID,
		Income:       income,
		ReceivesAid:  receivesAid,
		CreatedAt:    time.Now().UTC(),
	}
}

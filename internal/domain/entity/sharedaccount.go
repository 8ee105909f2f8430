// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SharedAccount represents a multi-user household account. The owner is
// always an implicit member; SharedMember rows model only additional members.
type SharedAccount struct {
	ID         int64
	Name       string
	InviteCode string
	OwnerID    int64
	CreatedAt  time.Time
}

// NewSharedAccount creates a new SharedAccount entity. The id is assigned by
// the store.
func NewSharedAccount(ownerID int64, name, inviteCode string) *SharedAccount {
	return &SharedAccount{
		Name:       name,
		InviteCode: inviteCode,
		OwnerID:    ownerID,
		CreatedAt:  time.Now().UTC(),
	}
}

// SharedMember represents a non-owner membership in a shared account.
type SharedMember struct {
	ID        int64
	AccountID int64
	UserID    int64
	JoinedAt  time.Time
}

// NewSharedMember creates a new SharedMember entity.
func NewSharedMember(accountID, userID int64) *SharedMember {
	return &SharedMember{
		AccountID: accountID,
		UserID:    userID,
		JoinedAt:  time.Now().UTC(),
	}
}

// AccountMember is the member view returned when listing an account's
// members: the owner first, flagged IsOwner, then members ordered by name.
type AccountMember struct {
	UserID  int64
	Name    string
	Email   string
	IsOwner bool
}

// AccountWithMembers pairs an account with its owner's name and member count.
type AccountWithMembers struct {
	Account     *SharedAccount
	OwnerName   string
	MemberCount int
}

// SharedTransaction has the same shape as Transaction but is scoped to a
// shared account and attributed to the member who created it. The referenced
// category belongs to the creating user's private catalog.
type SharedTransaction struct {
	ID          int64
	AccountID   int64
	UserID      int64
	Kind        Kind
	CategoryID  *int64
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	CreatedAt   time.Time
}

// NewSharedTransaction creates a new SharedTransaction entity.
func NewSharedTransaction(accountID, userID int64, kind Kind, categoryID *int64, amount decimal.Decimal, date time.Time, description string) *SharedTransaction {
	return &SharedTransaction{
		AccountID:   accountID,
		UserID:      userID,
		Kind:        kind,
		CategoryID:  categoryID,
		Amount:      amount,
		Date:        date,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}

// SharedTransactionWithNames denormalizes the category and creator names in.
type SharedTransactionWithNames struct {
	Transaction  *SharedTransaction
	CategoryName string
	UserName     string
}

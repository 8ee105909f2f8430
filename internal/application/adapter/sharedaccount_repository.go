// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/auracash/backend/internal/domain/entity"
)

// SharedAccountRepository defines the interface for shared account and
// membership persistence. The owner never has a membership row; rows model
// additional members only.
type SharedAccountRepository interface {
	// CreateAccount stores a new account and assigns its id.
	CreateAccount(ctx context.Context, account *entity.SharedAccount) error

	// UpdateAccount persists changes to an existing account.
	UpdateAccount(ctx context.Context, account *entity.SharedAccount) error

	// FindAccountByID retrieves an account by id.
	// Returns domain ErrAccountNotFound when absent.
	FindAccountByID(ctx context.Context, id int64) (*entity.SharedAccount, error)

	// FindAccountByCode retrieves an account by invite code.
	// Returns domain ErrAccountNotFound when absent.
	FindAccountByCode(ctx context.Context, code string) (*entity.SharedAccount, error)

	// FindAccountsByUser retrieves accounts the user owns or belongs to,
	// with owner name and member count denormalized in.
	FindAccountsByUser(ctx context.Context, userID int64) ([]*entity.AccountWithMembers, error)

	// CreateMember stores a membership row.
	CreateMember(ctx context.Context, member *entity.SharedMember) error

	// IsMember reports whether a membership row exists for the user.
	IsMember(ctx context.Context, accountID, userID int64) (bool, error)

	// DeleteMember removes the user's membership row.
	DeleteMember(ctx context.Context, accountID, userID int64) error

	// FindMembers lists the account's members with user details: the owner
	// first, then members ordered by name.
	FindMembers(ctx context.Context, accountID int64) ([]*entity.AccountMember, error)

	// DeleteAccount removes the account, cascading all memberships and all
	// of the account's shared transactions.
	DeleteAccount(ctx context.Context, id int64) error
}

// SharedTransactionRepository defines persistence for the shared sub-ledger.
// It is only bound when the relational backend is active.
type SharedTransactionRepository interface {
	// Create stores a new shared transaction and assigns its id.
	Create(ctx context.Context, transaction *entity.SharedTransaction) error

	// FindByAccount retrieves the account's transactions with category and
	// creator names denormalized in, ordered by date descending.
	FindByAccount(ctx context.Context, accountID int64) ([]*entity.SharedTransactionWithNames, error)

	// FindByIDAndAccount retrieves one shared transaction on the account.
	// Returns domain ErrSharedTransactionNotFound when absent.
	FindByIDAndAccount(ctx context.Context, id, accountID int64) (*entity.SharedTransaction, error)

	// Delete removes a shared transaction.
	Delete(ctx context.Context, id int64) error
}

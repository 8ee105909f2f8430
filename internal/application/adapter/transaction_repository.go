// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/auracash/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence
// operations. All queries are scoped by owner at the query layer.
type TransactionRepository interface {
	// Create stores a new transaction and assigns its id.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByUser retrieves all transactions for a user with the category name
	// denormalized in, ordered by date descending.
	FindByUser(ctx context.Context, userID int64) ([]*entity.TransactionWithCategory, error)

	// FindByUserAndCategory retrieves a user's transactions for one category,
	// ordered by date descending.
	FindByUserAndCategory(ctx context.Context, userID, categoryID int64) ([]*entity.TransactionWithCategory, error)

	// FindForPeriod retrieves a user's transactions for a category whose date
	// falls within [start, end], bounds inclusive, compared as calendar dates.
	FindForPeriod(ctx context.Context, userID, categoryID int64, start, end time.Time) ([]*entity.Transaction, error)

	// Delete removes a transaction owned by the given user. Deleting an
	// already-deleted id is a no-op.
	Delete(ctx context.Context, id, userID int64) error
}

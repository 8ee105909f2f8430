// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/auracash/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
// All queries are scoped by owner at the query layer.
type CategoryRepository interface {
	// Create stores a new category and assigns its id.
	Create(ctx context.Context, category *entity.Category) error

	// FindByUser retrieves all categories for a user, ordered by name.
	FindByUser(ctx context.Context, userID int64) ([]*entity.Category, error)

	// FindByIDAndUser retrieves a category owned by the given user.
	// Returns domain ErrCategoryNotFound when absent or owned by someone else.
	FindByIDAndUser(ctx context.Context, id, userID int64) (*entity.Category, error)

	// CountByUser counts the categories owned by a user.
	CountByUser(ctx context.Context, userID int64) (int64, error)

	// Delete removes a category owned by the given user. Deleting an absent
	// category is a no-op.
	Delete(ctx context.Context, id, userID int64) error
}

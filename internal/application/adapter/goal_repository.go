// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/auracash/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	// Create stores a new goal and assigns its id.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByUser retrieves all goals for a user.
	FindByUser(ctx context.Context, userID int64) ([]*entity.Goal, error)

	// FindByIDAndUser retrieves a goal owned by the given user.
	// Returns domain ErrGoalNotFound when absent or owned by someone else.
	FindByIDAndUser(ctx context.Context, id, userID int64) (*entity.Goal, error)

	// Delete removes a goal owned by the given user. Deleting an absent goal
	// is a no-op.
	Delete(ctx context.Context, id, userID int64) error
}

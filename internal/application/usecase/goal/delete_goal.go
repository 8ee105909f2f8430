// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/auracash/backend/internal/application/adapter"
)

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	UserID int64
	GoalID int64
}

// DeleteGoalUseCase handles goal deletion.
type DeleteGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goalRepo adapter.GoalRepository) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute deletes the goal. Deleting an already-deleted goal is a no-op.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	if err := uc.goalRepo.Delete(ctx, input.GoalID, input.UserID); err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	return nil
}

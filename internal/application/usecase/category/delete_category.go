// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/auracash/backend/internal/application/adapter"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	UserID     int64
	CategoryID int64
}

// DeleteCategoryUseCase handles category deletion. Transactions referencing
// the deleted category keep their reference and degrade to a placeholder
// label on display.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute deletes the category. Deleting an absent category is a no-op.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	if err := uc.categoryRepo.Delete(ctx, input.CategoryID, input.UserID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

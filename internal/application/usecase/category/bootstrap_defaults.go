// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/auracash/backend/internal/application/adapter"
	"github.com/auracash/backend/internal/domain/entity"
)

// BootstrapDefaultsInput represents the input for the default-category bootstrap.
type BootstrapDefaultsInput struct {
	UserID int64
}

// BootstrapDefaultsOutput represents the output of the bootstrap.
type BootstrapDefaultsOutput struct {
	Seeded     bool
	Categories []*entity.Category
}

// BootstrapDefaultsUseCase seeds the default category catalog for a user.
//
// The existence check is "does this owner have at least one category", not a
// per-name check: a user who deletes every category gets the full default set
// re-seeded on the next trigger. This is deliberate.
type BootstrapDefaultsUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewBootstrapDefaultsUseCase creates a new BootstrapDefaultsUseCase instance.
func NewBootstrapDefaultsUseCase(categoryRepo adapter.CategoryRepository) *BootstrapDefaultsUseCase {
	return &BootstrapDefaultsUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute seeds the defaults. Idempotent per owner: a no-op when the owner
// already has at least one category.
func (uc *BootstrapDefaultsUseCase) Execute(ctx context.Context, input BootstrapDefaultsInput) (*BootstrapDefaultsOutput, error) {
	count, err := uc.categoryRepo.CountByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return &BootstrapDefaultsOutput{Seeded: false}, nil
	}

	output := &BootstrapDefaultsOutput{Seeded: true}

	for _, name := range entity.DefaultExpenseCategories {
		cat := entity.NewCategory(input.UserID, name, entity.KindExpense)
		if err := uc.categoryRepo.Create(ctx, cat); err != nil {
			return nil, fmt.Errorf("failed to seed category %q: %w", name, err)
		}
		output.Categories = append(output.Categories, cat)
	}
	for _, name := range entity.DefaultIncomeCategories {
		cat := entity.NewCategory(input.UserID, name, entity.KindIncome)
		if err := uc.categoryRepo.Create(ctx, cat); err != nil {
			return nil, fmt.Errorf("failed to seed category %q: %w", name, err)
		}
		output.Categories = append(output.Categories, cat)
	}

	return output, nil
}

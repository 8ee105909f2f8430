// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/auracash/backend/internal/application/adapter"
	"github.com/auracash/backend/internal/domain/entity"
	domainerror "github.com/auracash/backend/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID       int64
	CategoryID   int64
	TargetAmount decimal.Decimal
	PeriodStart  time.Time
	PeriodEnd    time.Time
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo     adapter.GoalRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository, categoryRepo adapter.CategoryRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo:     goalRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if !input.TargetAmount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	if input.PeriodStart.After(input.PeriodEnd) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalPeriod,
			"period start must not be after period end",
			domainerror.ErrInvalidGoalPeriod,
		)
	}

	// The category must exist and belong to the caller.
	if _, err := uc.categoryRepo.FindByIDAndUser(ctx, input.CategoryID, input.UserID); err != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalCategoryNotFound,
			"category not found",
			domainerror.ErrGoalCategoryNotFound,
		)
	}

	goal := entity.NewGoal(input.UserID, input.CategoryID, input.TargetAmount, input.PeriodStart, input.PeriodEnd)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{Goal: goal}, nil
}

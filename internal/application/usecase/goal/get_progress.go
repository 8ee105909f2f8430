// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/auracash/backend/internal/application/adapter"
)

// GetProgressInput represents the input for computing a single goal's progress.
type GetProgressInput struct {
	UserID int64
	GoalID int64
}

// GetProgressOutput represents the output of a progress computation.
type GetProgressOutput struct {
	Progress float64
	Spent    decimal.Decimal
}

// GetProgressUseCase computes the progress percentage for one goal.
type GetProgressUseCase struct {
	goalRepo        adapter.GoalRepository
	transactionRepo adapter.TransactionRepository
}

// NewGetProgressUseCase creates a new GetProgressUseCase instance.
func NewGetProgressUseCase(goalRepo adapter.GoalRepository, transactionRepo adapter.TransactionRepository) *GetProgressUseCase {
	return &GetProgressUseCase{
		goalRepo:        goalRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute computes the progress for the goal, scoped to its owner.
func (uc *GetProgressUseCase) Execute(ctx context.Context, input GetProgressInput) (*GetProgressOutput, error) {
	g, err := uc.goalRepo.FindByIDAndUser(ctx, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	transactions, err := uc.transactionRepo.FindForPeriod(ctx, input.UserID, g.CategoryID, g.PeriodStart, g.PeriodEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	return &GetProgressOutput{
		Progress: Progress(g, transactions),
		Spent:    SpentInPeriod(g, transactions),
	}, nil
}

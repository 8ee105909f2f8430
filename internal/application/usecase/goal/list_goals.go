// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/auracash/backend/internal/application/adapter"
	"github.com/auracash/backend/internal/domain/entity"
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	UserID int64
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []*entity.GoalWithProgress
}

// ListGoalsUseCase lists a user's goals with derived progress.
type ListGoalsUseCase struct {
	goalRepo        adapter.GoalRepository
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(
	goalRepo adapter.GoalRepository,
	categoryRepo adapter.CategoryRepository,
	transactionRepo adapter.TransactionRepository,
) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo:        goalRepo,
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute lists the user's goals. A transaction fetch failure for one goal
// renders that goal at 0% rather than failing the whole list.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	output := &ListGoalsOutput{
		Goals: make([]*entity.GoalWithProgress, 0, len(goals)),
	}

	for _, g := range goals {
		categoryName := entity.UncategorizedLabel
		if cat, err := uc.categoryRepo.FindByIDAndUser(ctx, g.CategoryID, input.UserID); err == nil {
			categoryName = cat.Name
		}

		spent := decimal.Zero
		progress := 0.0

		transactions, err := uc.transactionRepo.FindForPeriod(ctx, input.UserID, g.CategoryID, g.PeriodStart, g.PeriodEnd)
		if err != nil {
			slog.Warn("failed to fetch transactions for goal progress",
				"goal_id", g.ID,
				"category_id", g.CategoryID,
				"error", err,
			)
		} else {
			spent = SpentInPeriod(g, transactions)
			progress = Progress(g, transactions)
		}

		output.Goals = append(output.Goals, &entity.GoalWithProgress{
			Goal:         g,
			CategoryName: categoryName,
			Spent:        spent,
			Progress:     progress,
		})
	}

	return output, nil
}

// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"

	"github.com/auracash/backend/internal/application/adapter"
	"github.com/auracash/backend/internal/domain/entity"
)

// ListByCategoryInput represents the input for listing one category's transactions.
type ListByCategoryInput struct {
	UserID     int64
	CategoryID int64
}

// ListByCategoryOutput represents the output of the listing.
type ListByCategoryOutput struct {
	Transactions []*entity.TransactionWithCategory
}

// ListByCategoryUseCase lists a user's transactions for one category.
type ListByCategoryUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListByCategoryUseCase creates a new ListByCategoryUseCase instance.
func NewListByCategoryUseCase(transactionRepo adapter.TransactionRepository) *ListByCategoryUseCase {
	return &ListByCategoryUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute lists the user's transactions for the category.
func (uc *ListByCategoryUseCase) Execute(ctx context.Context, input ListByCategoryInput) (*ListByCategoryOutput, error) {
	transactions, err := uc.transactionRepo.FindByUserAndCategory(ctx, input.UserID, input.CategoryID)
	if err != nil {
		return nil, err
	}
	return &ListByCategoryOutput{Transactions: transactions}, nil
}

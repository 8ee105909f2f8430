// Package sharedaccount contains shared account-related use cases.
package sharedaccount

import (
	"context"
	"fmt"

	"github.com/auracash/backend/internal/application/adapter"
	"github.com/auracash/backend/internal/domain/entity"
)

// ListTransactionsInput represents the input for listing shared transactions.
type ListTransactionsInput struct {
	UserID    int64
	AccountID int64
}

// ListTransactionsOutput represents the output of listing shared transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.SharedTransactionWithNames
}

// ListTransactionsUseCase lists an account's shared sub-ledger with category
// and creator names denormalized in, newest first.
type ListTransactionsUseCase struct {
	accountRepo     adapter.SharedAccountRepository
	transactionRepo adapter.SharedTransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(accountRepo adapter.SharedAccountRepository, transactionRepo adapter.SharedTransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute lists the transactions.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	account, err := uc.accountRepo.FindAccountByID(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}
	if err := requireAccess(ctx, uc.accountRepo, account, input.UserID); err != nil {
		return nil, err
	}

	transactions, err := uc.transactionRepo.FindByAccount(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shared transactions: %w", err)
	}

	return &ListTransactionsOutput{Transactions: transactions}, nil
}

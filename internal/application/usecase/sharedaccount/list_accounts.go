// Package sharedaccount contains shared account-related use cases.
package sharedaccount

import (
	"context"

	"github.com/auracash/backend/internal/application/adapter"
	"github.com/auracash/backend/internal/domain/entity"
)

// ListAccountsInput represents the input for listing shared accounts.
type ListAccountsInput struct {
	UserID int64
}

// ListAccountsOutput represents the output of listing shared accounts.
type ListAccountsOutput struct {
	Accounts []*entity.AccountWithMembers
}

// ListAccountsUseCase lists accounts the caller owns or belongs to.
type ListAccountsUseCase struct {
	accountRepo adapter.SharedAccountRepository
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(accountRepo adapter.SharedAccountRepository) *ListAccountsUseCase {
	return &ListAccountsUseCase{
		accountRepo: accountRepo,
	}
}

// Execute lists the caller's accounts.
func (uc *ListAccountsUseCase) Execute(ctx context.Context, input ListAccountsInput) (*ListAccountsOutput, error) {
	accounts, err := uc.accountRepo.FindAccountsByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return &ListAccountsOutput{Accounts: accounts}, nil
}

// Package sharedaccount contains shared account-related use cases.
package sharedaccount

import (
	"context"
	"fmt"
	"strings"

	"github.com/auracash/backend/internal/application/adapter"
	"github.com/auracash/backend/internal/domain/entity"
	domainerror "github.com/auracash/backend/internal/domain/error"
)

// UpdateAccountInput represents the input for renaming a shared account.
type UpdateAccountInput struct {
	CallerID  int64
	AccountID int64
	Name      string
}

// UpdateAccountOutput represents the output of a shared account update.
type UpdateAccountOutput struct {
	Account *entity.SharedAccount
}

// UpdateAccountUseCase handles renaming a shared account. Owner only.
type UpdateAccountUseCase struct {
	accountRepo adapter.SharedAccountRepository
}

// NewUpdateAccountUseCase creates a new UpdateAccountUseCase instance.
func NewUpdateAccountUseCase(accountRepo adapter.SharedAccountRepository) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute renames the account.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*UpdateAccountOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewSharedAccountError(
			domainerror.ErrCodeMissingAccountFields,
			"account name is required",
			nil,
		)
	}

	account, err := uc.accountRepo.FindAccountByID(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}

	if account.OwnerID != input.CallerID {
		return nil, domainerror.NewSharedAccountError(
			domainerror.ErrCodeNotAccountOwner,
			"only the account owner may edit the account",
			domainerror.ErrNotAccountOwner,
		)
	}

	account.Name = name
	if err := uc.accountRepo.UpdateAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	return &UpdateAccountOutput{Account: account}, nil
}

// Package sharedaccount contains shared account-related use cases.
package sharedaccount

import (
	"context"
	"fmt"

	"github.com/auracash/backend/internal/application/adapter"
	domainerror "github.com/auracash/backend/internal/domain/error"
)

// DeleteAccountInput represents the input for shared account deletion.
type DeleteAccountInput struct {
	CallerID  int64
	AccountID int64
}

// DeleteAccountUseCase handles shared account deletion. Owner only; cascades
// all memberships and the account's shared transaction sub-ledger.
type DeleteAccountUseCase struct {
	accountRepo adapter.SharedAccountRepository
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(accountRepo adapter.SharedAccountRepository) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute deletes the account.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) error {
	account, err := uc.accountRepo.FindAccountByID(ctx, input.AccountID)
	if err != nil {
		return err
	}

	if account.OwnerID != input.CallerID {
		return domainerror.NewSharedAccountError(
			domainerror.ErrCodeNotAccountOwner,
			"only the account owner may delete the account",
			domainerror.ErrNotAccountOwner,
		)
	}

	if err := uc.accountRepo.DeleteAccount(ctx, account.ID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}

// Package sharedaccount contains shared account-related use cases.
package sharedaccount

import (
	"context"
	"errors"
	"fmt"

	"github.com/auracash/backend/internal/application/adapter"
	domainerror "github.com/auracash/backend/internal/domain/error"
)

// DeleteTransactionInput represents the input for shared transaction deletion.
type DeleteTransactionInput struct {
	UserID        int64
	AccountID     int64
	TransactionID int64
}

// DeleteTransactionUseCase deletes a shared transaction. The creator and the
// account owner may delete; deleting an already-absent transaction succeeds.
type DeleteTransactionUseCase struct {
	accountRepo     adapter.SharedAccountRepository
	transactionRepo adapter.SharedTransactionRepository
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(accountRepo adapter.SharedAccountRepository, transactionRepo adapter.SharedTransactionRepository) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the deletion.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	account, err := uc.accountRepo.FindAccountByID(ctx, input.AccountID)
	if err != nil {
		return err
	}
	if err := requireAccess(ctx, uc.accountRepo, account, input.UserID); err != nil {
		return err
	}

	transaction, err := uc.transactionRepo.FindByIDAndAccount(ctx, input.TransactionID, account.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSharedTransactionNotFound) {
			return nil
		}
		return err
	}

	if transaction.UserID != input.UserID && account.OwnerID != input.UserID {
		return domainerror.NewSharedAccountError(
			domainerror.ErrCodeNotTransactionCreator,
			"only the creator or the account owner may delete this transaction",
			domainerror.ErrNotTransactionCreator,
		)
	}

	if err := uc.transactionRepo.Delete(ctx, transaction.ID); err != nil {
		return fmt.Errorf("failed to delete shared transaction: %w", err)
	}
	return nil
}

// Package sharedaccount contains shared account-related use cases.
package sharedaccount

import (
	"context"
	"fmt"

	"github.com/auracash/backend/internal/application/adapter"
	domainerror "github.com/auracash/backend/internal/domain/error"
)

// LeaveAccountInput represents the input for leaving a shared account.
type LeaveAccountInput struct {
	UserID    int64
	AccountID int64
}

// LeaveAccountUseCase handles leaving a shared account. The owner's implicit
// membership is never stored as a row, so the owner cannot leave through this
// path; deleting the account is the owner's exit.
type LeaveAccountUseCase struct {
	accountRepo adapter.SharedAccountRepository
}

// NewLeaveAccountUseCase creates a new LeaveAccountUseCase instance.
func NewLeaveAccountUseCase(accountRepo adapter.SharedAccountRepository) *LeaveAccountUseCase {
	return &LeaveAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute removes exactly the caller's membership row.
func (uc *LeaveAccountUseCase) Execute(ctx context.Context, input LeaveAccountInput) error {
	if _, err := uc.accountRepo.FindAccountByID(ctx, input.AccountID); err != nil {
		return err
	}

	isMember, err := uc.accountRepo.IsMember(ctx, input.AccountID, input.UserID)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if !isMember {
		return domainerror.NewSharedAccountError(
			domainerror.ErrCodeNotMember,
			"not a member of this account",
			domainerror.ErrNotMember,
		)
	}

	if err := uc.accountRepo.DeleteMember(ctx, input.AccountID, input.UserID); err != nil {
		return fmt.Errorf("failed to leave account: %w", err)
	}
	return nil
}

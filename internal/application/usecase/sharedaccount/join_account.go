// Package sharedaccount contains shared account-related use cases.
package sharedaccount

import (
	"context"
	"fmt"

	"github.com/auracash/backend/internal/application/adapter"
	"github.com/auracash/backend/internal/domain/entity"
	domainerror "github.com/auracash/backend/internal/domain/error"
)

// JoinAccountInput represents the input for joining a shared account.
type JoinAccountInput struct {
	UserID     int64
	InviteCode string
}

// JoinAccountOutput represents the output of joining a shared account.
type JoinAccountOutput struct {
	Account *entity.SharedAccount
}

// JoinAccountUseCase handles joining by invite code. Joining is immediate
// and unconditional; there is no pending or invited intermediate state.
type JoinAccountUseCase struct {
	accountRepo adapter.SharedAccountRepository
}

// NewJoinAccountUseCase creates a new JoinAccountUseCase instance.
func NewJoinAccountUseCase(accountRepo adapter.SharedAccountRepository) *JoinAccountUseCase {
	return &JoinAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the join.
func (uc *JoinAccountUseCase) Execute(ctx context.Context, input JoinAccountInput) (*JoinAccountOutput, error) {
	account, err := uc.accountRepo.FindAccountByCode(ctx, input.InviteCode)
	if err != nil {
		return nil, err
	}

	// The owner is already an implicit member.
	if account.OwnerID == input.UserID {
		return nil, domainerror.NewSharedAccountError(
			domainerror.ErrCodeAlreadyMember,
			"already a member of this account",
			domainerror.ErrAlreadyMember,
		)
	}

	isMember, err := uc.accountRepo.IsMember(ctx, account.ID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if isMember {
		return nil, domainerror.NewSharedAccountError(
			domainerror.ErrCodeAlreadyMember,
			"already a member of this account",
			domainerror.ErrAlreadyMember,
		)
	}

	member := entity.NewSharedMember(account.ID, input.UserID)
	if err := uc.accountRepo.CreateMember(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}

	return &JoinAccountOutput{Account: account}, nil
}

// Package sharedaccount contains shared account-related use cases.
package sharedaccount

import (
	"context"
	"fmt"

	"github.com/auracash/backend/internal/application/adapter"
	"github.com/auracash/backend/internal/domain/entity"
	domainerror "github.com/auracash/backend/internal/domain/error"
)

// ListMembersInput represents the input for listing an account's members.
type ListMembersInput struct {
	CallerID  int64
	AccountID int64
}

// ListMembersOutput represents the output of listing members.
type ListMembersOutput struct {
	Members []*entity.AccountMember
}

// ListMembersUseCase lists an account's members: the owner first, flagged,
// then members ordered by name. Only the owner and members may list.
type ListMembersUseCase struct {
	accountRepo adapter.SharedAccountRepository
}

// NewListMembersUseCase creates a new ListMembersUseCase instance.
func NewListMembersUseCase(accountRepo adapter.SharedAccountRepository) *ListMembersUseCase {
	return &ListMembersUseCase{
		accountRepo: accountRepo,
	}
}

// Execute lists the members.
func (uc *ListMembersUseCase) Execute(ctx context.Context, input ListMembersInput) (*ListMembersOutput, error) {
	account, err := uc.accountRepo.FindAccountByID(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}

	if err := requireAccess(ctx, uc.accountRepo, account, input.CallerID); err != nil {
		return nil, err
	}

	members, err := uc.accountRepo.FindMembers(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	return &ListMembersOutput{Members: members}, nil
}

// requireAccess returns ErrAccountAccessDenied unless the caller is the
// account's owner or has a membership row.
func requireAccess(ctx context.Context, repo adapter.SharedAccountRepository, account *entity.SharedAccount, callerID int64) error {
	if account.OwnerID == callerID {
		return nil
	}

	isMember, err := repo.IsMember(ctx, account.ID, callerID)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if !isMember {
		return domainerror.NewSharedAccountError(
			domainerror.ErrCodeAccountAccessDenied,
			"access to this account denied",
			domainerror.ErrAccountAccessDenied,
		)
	}
	return nil
}

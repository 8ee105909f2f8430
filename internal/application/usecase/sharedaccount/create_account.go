// Package sharedaccount contains shared account-related use cases.
package sharedaccount

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/auracash/backend/internal/application/adapter"
	"github.com/auracash/backend/internal/domain/entity"
	domainerror "github.com/auracash/backend/internal/domain/error"
)

const (
	inviteCodePrefix   = "sh_"
	inviteCodeLength   = 9
	inviteCodeAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// CreateAccountInput represents the input for shared account creation.
type CreateAccountInput struct {
	OwnerID int64
	Name    string
}

// CreateAccountOutput represents the output of shared account creation.
type CreateAccountOutput struct {
	Account *entity.SharedAccount
}

// CreateAccountUseCase handles shared account creation. The owner is an
// implicit member and gets no membership row.
type CreateAccountUseCase struct {
	accountRepo adapter.SharedAccountRepository
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(accountRepo adapter.SharedAccountRepository) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the account creation.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewSharedAccountError(
			domainerror.ErrCodeMissingAccountFields,
			"account name is required",
			nil,
		)
	}

	code, err := newInviteCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invite code: %w", err)
	}

	account := entity.NewSharedAccount(input.OwnerID, name, code)
	if err := uc.accountRepo.CreateAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create shared account: %w", err)
	}

	return &CreateAccountOutput{Account: account}, nil
}

// newInviteCode generates an opaque "sh_"-prefixed token. Uniqueness is
// enforced by the store's unique constraint on the code column.
func newInviteCode() (string, error) {
	buf := make([]byte, inviteCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = inviteCodeAlphabet[int(b)%len(inviteCodeAlphabet)]
	}
	return inviteCodePrefix + string(buf), nil
}

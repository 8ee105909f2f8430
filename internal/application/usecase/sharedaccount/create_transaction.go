// Package sharedaccount contains shared account-related use cases.
package sharedaccount

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/auracash/backend/internal/application/adapter"
	"github.com/auracash/backend/internal/domain/entity"
	domainerror "github.com/auracash/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for shared transaction creation.
type CreateTransactionInput struct {
	UserID      int64
	AccountID   int64
	Kind        entity.Kind
	CategoryID  *int64
	Amount      decimal.Decimal
	Date        time.Time
	Description string
}

// CreateTransactionOutput represents the output of shared transaction creation.
type CreateTransactionOutput struct {
	Transaction  *entity.SharedTransaction
	CategoryName string
}

// CreateTransactionUseCase records a transaction on the shared sub-ledger.
// Any member (or the owner) may record; the category, when given, must belong
// to the creating user's private catalog.
type CreateTransactionUseCase struct {
	accountRepo     adapter.SharedAccountRepository
	transactionRepo adapter.SharedTransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	accountRepo adapter.SharedAccountRepository,
	transactionRepo adapter.SharedTransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute performs the creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	account, err := uc.accountRepo.FindAccountByID(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}
	if err := requireAccess(ctx, uc.accountRepo, account, input.UserID); err != nil {
		return nil, err
	}

	if !input.Kind.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionKind,
			"kind must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionKind,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidAmount,
		)
	}

	if input.Date.IsZero() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidDate,
			"date must be a valid calendar date",
			domainerror.ErrInvalidDate,
		)
	}

	categoryName := entity.UncategorizedLabel
	if input.CategoryID != nil {
		cat, err := uc.categoryRepo.FindByIDAndUser(ctx, *input.CategoryID, input.UserID)
		if err != nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeMissingTransactionData,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		categoryName = cat.Name
	}

	t := entity.NewSharedTransaction(account.ID, input.UserID, input.Kind, input.CategoryID, input.Amount, input.Date, input.Description)
	if err := uc.transactionRepo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create shared transaction: %w", err)
	}

	return &CreateTransactionOutput{
		Transaction:  t,
		CategoryName: categoryName,
	}, nil
}

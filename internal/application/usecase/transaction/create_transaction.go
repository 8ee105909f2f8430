// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/auracash/backend/internal/application/adapter"
	"github.com/auracash/backend/internal/domain/entity"
	domainerror "github.com/auracash/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID      int64
	Kind        entity.Kind
	CategoryID  *int64
	Amount      decimal.Decimal
	Date        time.Time
	Description string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction  *entity.Transaction
	CategoryName string
}

// CreateTransactionUseCase handles transaction creation logic. Validation
// happens before any write; nothing is partially persisted.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository, categoryRepo adapter.CategoryRepository) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
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

	t := entity.NewTransaction(input.UserID, input.Kind, input.CategoryID, input.Amount, input.Date, input.Description)
	if err := uc.transactionRepo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{
		Transaction:  t,
		CategoryName: categoryName,
	}, nil
}

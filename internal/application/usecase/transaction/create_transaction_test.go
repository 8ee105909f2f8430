// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/auracash/backend/internal/application/adapter"
	"github.com/auracash/backend/internal/domain/entity"
	domainerror "github.com/auracash/backend/internal/domain/error"
)

// fakeTransactionRepository is an in-memory adapter.TransactionRepository for tests.
type fakeTransactionRepository struct {
	transactions []*entity.Transaction
	nextID       int64
}

func newFakeTransactionRepository() *fakeTransactionRepository {
	return &fakeTransactionRepository{nextID: 1}
}

func (r *fakeTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transaction.ID = r.nextID
	r.nextID++
	r.transactions = append(r.transactions, transaction)
	return nil
}

func (r *fakeTransactionRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.TransactionWithCategory, error) {
	var out []*entity.TransactionWithCategory
	for _, t := range r.transactions {
		if t.UserID == userID {
			out = append(out, &entity.TransactionWithCategory{Transaction: t, CategoryName: entity.UncategorizedLabel})
		}
	}
	return out, nil
}

func (r *fakeTransactionRepository) FindByUserAndCategory(ctx context.Context, userID, categoryID int64) ([]*entity.TransactionWithCategory, error) {
	var out []*entity.TransactionWithCategory
	for _, t := range r.transactions {
		if t.UserID == userID && t.CategoryID != nil && *t.CategoryID == categoryID {
			out = append(out, &entity.TransactionWithCategory{Transaction: t, CategoryName: entity.UncategorizedLabel})
		}
	}
	return out, nil
}

func (r *fakeTransactionRepository) FindForPeriod(ctx context.Context, userID, categoryID int64, start, end time.Time) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range r.transactions {
		if t.UserID == userID && t.CategoryID != nil && *t.CategoryID == categoryID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepository) Delete(ctx context.Context, id, userID int64) error {
	for i, t := range r.transactions {
		if t.ID == id && t.UserID == userID {
			r.transactions = append(r.transactions[:i], r.transactions[i+1:]...)
			return nil
		}
	}
	return nil
}

var _ adapter.TransactionRepository = (*fakeTransactionRepository)(nil)

// fakeCategoryLookup only implements the category lookups the use case needs.
type fakeCategoryLookup struct {
	categories []*entity.Category
}

func (r *fakeCategoryLookup) Create(ctx context.Context, category *entity.Category) error {
	r.categories = append(r.categories, category)
	return nil
}

func (r *fakeCategoryLookup) FindByUser(ctx context.Context, userID int64) ([]*entity.Category, error) {
	return r.categories, nil
}

func (r *fakeCategoryLookup) FindByIDAndUser(ctx context.Context, id, userID int64) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.ID == id && c.UserID == userID {
			return c, nil
		}
	}
	return nil, domainerror.NewCategoryError(
		domainerror.ErrCodeCategoryNotFound,
		"category not found",
		domainerror.ErrCategoryNotFound,
	)
}

func (r *fakeCategoryLookup) CountByUser(ctx context.Context, userID int64) (int64, error) {
	return int64(len(r.categories)), nil
}

func (r *fakeCategoryLookup) Delete(ctx context.Context, id, userID int64) error {
	return nil
}

var _ adapter.CategoryRepository = (*fakeCategoryLookup)(nil)

func TestCreateTransactionUseCase(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	newUseCase := func() (*CreateTransactionUseCase, *fakeTransactionRepository, *fakeCategoryLookup) {
		txRepo := newFakeTransactionRepository()
		catRepo := &fakeCategoryLookup{categories: []*entity.Category{
			{ID: 10, UserID: 1, Name: "Food", Kind: entity.KindExpense},
		}}
		return NewCreateTransactionUseCase(txRepo, catRepo), txRepo, catRepo
	}

	t.Run("creates a categorized transaction", func(t *testing.T) {
		uc, txRepo, _ := newUseCase()
		categoryID := int64(10)

		out, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:      1,
			Kind:        entity.KindExpense,
			CategoryID:  &categoryID,
			Amount:      decimal.RequireFromString("42.50"),
			Date:        date,
			Description: "groceries",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Transaction.ID == 0 {
			t.Error("expected the transaction id to be assigned")
		}
		if out.CategoryName != "Food" {
			t.Errorf("expected category name Food, got %q", out.CategoryName)
		}
		if len(txRepo.transactions) != 1 {
			t.Errorf("expected 1 persisted transaction, got %d", len(txRepo.transactions))
		}
	})

	t.Run("creates an uncategorized transaction", func(t *testing.T) {
		uc, _, _ := newUseCase()

		out, err := uc.Execute(ctx, CreateTransactionInput{
			UserID: 1,
			Kind:   entity.KindIncome,
			Amount: decimal.NewFromInt(1000),
			Date:   date,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.CategoryName != entity.UncategorizedLabel {
			t.Errorf("expected %q, got %q", entity.UncategorizedLabel, out.CategoryName)
		}
	})

	t.Run("validation failures", func(t *testing.T) {
		uc, txRepo, _ := newUseCase()
		otherUsersCategory := int64(10)

		cases := []struct {
			name     string
			input    CreateTransactionInput
			wantCode domainerror.TransactionErrorCode
		}{
			{
				name:     "invalid kind",
				input:    CreateTransactionInput{UserID: 1, Kind: "transfer", Amount: decimal.NewFromInt(10), Date: date},
				wantCode: domainerror.ErrCodeInvalidTransactionKind,
			},
			{
				name:     "zero amount",
				input:    CreateTransactionInput{UserID: 1, Kind: entity.KindExpense, Amount: decimal.Zero, Date: date},
				wantCode: domainerror.ErrCodeInvalidAmount,
			},
			{
				name:     "negative amount",
				input:    CreateTransactionInput{UserID: 1, Kind: entity.KindExpense, Amount: decimal.NewFromInt(-5), Date: date},
				wantCode: domainerror.ErrCodeInvalidAmount,
			},
			{
				name:     "zero date",
				input:    CreateTransactionInput{UserID: 1, Kind: entity.KindExpense, Amount: decimal.NewFromInt(10)},
				wantCode: domainerror.ErrCodeInvalidDate,
			},
			{
				name:     "category owned by someone else",
				input:    CreateTransactionInput{UserID: 2, Kind: entity.KindExpense, CategoryID: &otherUsersCategory, Amount: decimal.NewFromInt(10), Date: date},
				wantCode: domainerror.ErrCodeMissingTransactionData,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.Execute(ctx, tc.input)
				if err == nil {
					t.Fatal("expected an error")
				}
				var txErr *domainerror.TransactionError
				if !errors.As(err, &txErr) {
					t.Fatalf("expected TransactionError, got %T", err)
				}
				if txErr.Code != tc.wantCode {
					t.Errorf("expected code %s, got %s", tc.wantCode, txErr.Code)
				}
			})
		}

		if len(txRepo.transactions) != 0 {
			t.Errorf("expected nothing persisted after validation failures, got %d", len(txRepo.transactions))
		}
	})
}

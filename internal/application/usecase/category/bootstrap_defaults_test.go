// Package category contains category-related use cases.
package category

import (
	"context"
	"testing"

	"github.com/auracash/backend/internal/application/adapter"
	"github.com/auracash/backend/internal/domain/entity"
	domainerror "github.com/auracash/backend/internal/domain/error"
)

// fakeCategoryRepository is an in-memory adapter.CategoryRepository for tests.
type fakeCategoryRepository struct {
	categories []*entity.Category
	nextID     int64
}

func newFakeCategoryRepository() *fakeCategoryRepository {
	return &fakeCategoryRepository{nextID: 1}
}

func (r *fakeCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	category.ID = r.nextID
	r.nextID++
	r.categories = append(r.categories, category)
	return nil
}

func (r *fakeCategoryRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.categories {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepository) FindByIDAndUser(ctx context.Context, id, userID int64) (*entity.Category, error) {
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

func (r *fakeCategoryRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	for _, c := range r.categories {
		if c.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *fakeCategoryRepository) Delete(ctx context.Context, id, userID int64) error {
	for i, c := range r.categories {
		if c.ID == id && c.UserID == userID {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return nil
}

var _ adapter.CategoryRepository = (*fakeCategoryRepository)(nil)

func TestBootstrapDefaultsUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds the full default catalog for a fresh user", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		uc := NewBootstrapDefaultsUseCase(repo)

		out, err := uc.Execute(ctx, BootstrapDefaultsInput{UserID: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Seeded {
			t.Error("expected Seeded to be true")
		}

		want := len(entity.DefaultExpenseCategories) + len(entity.DefaultIncomeCategories)
		if len(out.Categories) != want {
			t.Fatalf("expected %d categories, got %d", want, len(out.Categories))
		}

		kinds := make(map[entity.Kind]int)
		for _, c := range out.Categories {
			kinds[c.Kind]++
			if c.UserID != 1 {
				t.Errorf("category %q seeded for wrong user %d", c.Name, c.UserID)
			}
		}
		if kinds[entity.KindExpense] != len(entity.DefaultExpenseCategories) {
			t.Errorf("expected %d expense categories, got %d", len(entity.DefaultExpenseCategories), kinds[entity.KindExpense])
		}
		if kinds[entity.KindIncome] != len(entity.DefaultIncomeCategories) {
			t.Errorf("expected %d income categories, got %d", len(entity.DefaultIncomeCategories), kinds[entity.KindIncome])
		}
	})

	t.Run("is a no-op when the user already has categories", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		_ = repo.Create(ctx, entity.NewCategory(1, "Custom", entity.KindExpense))
		uc := NewBootstrapDefaultsUseCase(repo)

		out, err := uc.Execute(ctx, BootstrapDefaultsInput{UserID: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Seeded {
			t.Error("expected Seeded to be false")
		}
		if len(repo.categories) != 1 {
			t.Errorf("expected no new categories, got %d total", len(repo.categories))
		}
	})

	t.Run("existence check is per user", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		_ = repo.Create(ctx, entity.NewCategory(1, "Custom", entity.KindExpense))
		uc := NewBootstrapDefaultsUseCase(repo)

		out, err := uc.Execute(ctx, BootstrapDefaultsInput{UserID: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Seeded {
			t.Error("expected Seeded to be true for a different user")
		}
	})
}

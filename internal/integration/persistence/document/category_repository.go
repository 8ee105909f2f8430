// Package document implements the JSON document store backend.
package document

import (
	"context"
	"sort"

	"github.com/auracash/backend/internal/application/adapter"
	"github.com/auracash/backend/internal/domain/entity"
	domainerror "github.com/auracash/backend/internal/domain/error"
)

// categoryRepository implements adapter.CategoryRepository on the document store.
type categoryRepository struct {
	store *Store
}

// NewCategoryRepository creates a document-backed category repository.
func NewCategoryRepository(store *Store) adapter.CategoryRepository {
	return &categoryRepository{store: store}
}

// Create stores a new category and assigns its id.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	category.ID = s.NextID()
	s.categories = append(s.categories, category)
	return s.save("categories", s.categories)
}

// FindByUser retrieves all categories for a user, ordered by name.
func (r *categoryRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.Category, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var categories []*entity.Category
	for _, c := range s.categories {
		if c.UserID == userID {
			categories = append(categories, c)
		}
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}

// FindByIDAndUser retrieves a category owned by the given user.
func (r *categoryRepository) FindByIDAndUser(ctx context.Context, id, userID int64) (*entity.Category, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories {
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

// CountByUser counts the categories owned by a user.
func (r *categoryRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, c := range s.categories {
		if c.UserID == userID {
			count++
		}
	}
	return count, nil
}

// Delete removes a category owned by the given user.
func (r *categoryRepository) Delete(ctx context.Context, id, userID int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.categories {
		if c.ID == id && c.UserID == userID {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return s.save("categories", s.categories)
		}
	}
	return nil
}

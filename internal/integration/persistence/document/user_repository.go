// Package document implements the JSON document store backend.
package document

import (
	"context"

	"github.com/auracash/backend/internal/application/adapter"
	"github.com/auracash/backend/internal/domain/entity"
	domainerror "github.com/auracash/backend/internal/domain/error"
)

// userRepository implements adapter.UserRepository on the document store.
type userRepository struct {
	store *Store
}

// NewUserRepository creates a document-backed user repository.
func NewUserRepository(store *Store) adapter.UserRepository {
	return &userRepository{store: store}
}

// Create stores a new user and assigns its id.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = s.NextID()
	s.users = append(s.users, user)
	return s.save("users", s.users)
}

// FindByID retrieves a user by its ID.
func (r *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

// FindByEmail retrieves a user by email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

// ExistsByEmail checks whether a user with the given email exists.
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

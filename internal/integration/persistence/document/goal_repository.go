// Package document implements the JSON document store backend.
package document

import (
	"context"
	"sort"

	"github.com/auracash/backend/internal/application/adapter"
	"github.com/auracash/backend/internal/domain/entity"
	domainerror "github.com/auracash/backend/internal/domain/error"
)

// goalRepository implements adapter.GoalRepository on the document store.
type goalRepository struct {
	store *Store
}

// NewGoalRepository creates a document-backed goal repository.
func NewGoalRepository(store *Store) adapter.GoalRepository {
	return &goalRepository{store: store}
}

// Create stores a new goal and assigns its id.
func (r *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	goal.ID = s.NextID()
	s.goals = append(s.goals, goal)
	return s.save("goals", s.goals)
}

// FindByUser retrieves all goals for a user, newest first.
func (r *goalRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.Goal, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var goals []*entity.Goal
	for _, g := range s.goals {
		if g.UserID == userID {
			goals = append(goals, g)
		}
	}
	sort.Slice(goals, func(i, j int) bool {
		return goals[i].CreatedAt.After(goals[j].CreatedAt)
	})
	return goals, nil
}

// FindByIDAndUser retrieves a goal owned by the given user.
func (r *goalRepository) FindByIDAndUser(ctx context.Context, id, userID int64) (*entity.Goal, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, g := range s.goals {
		if g.ID == id && g.UserID == userID {
			return g, nil
		}
	}
	return nil, domainerror.NewGoalError(
		domainerror.ErrCodeGoalNotFound,
		"goal not found",
		domainerror.ErrGoalNotFound,
	)
}

// Delete removes a goal owned by the given user.
func (r *goalRepository) Delete(ctx context.Context, id, userID int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, g := range s.goals {
		if g.ID == id && g.UserID == userID {
			s.goals = append(s.goals[:i], s.goals[i+1:]...)
			return s.save("goals", s.goals)
		}
	}
	return nil
}

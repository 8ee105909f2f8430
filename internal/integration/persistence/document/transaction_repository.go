// Package document implements the JSON document store backend.
package document

import (
	"context"
	"sort"
	"time"

	"github.com/auracash/backend/internal/application/adapter"
	"github.com/auracash/backend/internal/domain/entity"
)

// transactionRepository implements adapter.TransactionRepository on the
// document store.
type transactionRepository struct {
	store *Store
}

// NewTransactionRepository creates a document-backed transaction repository.
func NewTransactionRepository(store *Store) adapter.TransactionRepository {
	return &transactionRepository{store: store}
}

// Create stores a new transaction and assigns its id.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	transaction.ID = s.NextID()
	s.transactions = append(s.transactions, transaction)
	return s.save("transactions", s.transactions)
}

// FindByUser retrieves all transactions for a user with the category name
// denormalized in, ordered by date descending.
func (r *transactionRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.TransactionWithCategory, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var transactions []*entity.TransactionWithCategory
	for _, t := range s.transactions {
		if t.UserID == userID {
			transactions = append(transactions, &entity.TransactionWithCategory{
				Transaction:  t,
				CategoryName: s.categoryNameLocked(t.CategoryID, userID),
			})
		}
	}
	sortTransactionsByDateDesc(transactions)
	return transactions, nil
}

// FindByUserAndCategory retrieves a user's transactions for one category,
// ordered by date descending.
func (r *transactionRepository) FindByUserAndCategory(ctx context.Context, userID, categoryID int64) ([]*entity.TransactionWithCategory, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var transactions []*entity.TransactionWithCategory
	for _, t := range s.transactions {
		if t.UserID == userID && t.CategoryID != nil && *t.CategoryID == categoryID {
			transactions = append(transactions, &entity.TransactionWithCategory{
				Transaction:  t,
				CategoryName: s.categoryNameLocked(t.CategoryID, userID),
			})
		}
	}
	sortTransactionsByDateDesc(transactions)
	return transactions, nil
}

// FindForPeriod retrieves a user's transactions for a category whose date
// falls within [start, end], bounds inclusive, compared as calendar dates.
func (r *transactionRepository) FindForPeriod(ctx context.Context, userID, categoryID int64, start, end time.Time) ([]*entity.Transaction, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	startDay := dayOf(start)
	endDay := dayOf(end)

	var transactions []*entity.Transaction
	for _, t := range s.transactions {
		if t.UserID != userID || t.CategoryID == nil || *t.CategoryID != categoryID {
			continue
		}
		day := dayOf(t.Date)
		if day.Before(startDay) || day.After(endDay) {
			continue
		}
		transactions = append(transactions, t)
	}
	return transactions, nil
}

// Delete removes a transaction owned by the given user.
func (r *transactionRepository) Delete(ctx context.Context, id, userID int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.transactions {
		if t.ID == id && t.UserID == userID {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			return s.save("transactions", s.transactions)
		}
	}
	return nil
}

// categoryNameLocked resolves a category display name, degrading to the
// placeholder label. Callers must hold the store mutex.
func (s *Store) categoryNameLocked(categoryID *int64, userID int64) string {
	if categoryID == nil {
		return entity.UncategorizedLabel
	}
	for _, c := range s.categories {
		if c.ID == *categoryID && c.UserID == userID {
			return c.Name
		}
	}
	return entity.UncategorizedLabel
}

func sortTransactionsByDateDesc(transactions []*entity.TransactionWithCategory) {
	sort.Slice(transactions, func(i, j int) bool {
		a, b := transactions[i].Transaction, transactions[j].Transaction
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		return a.ID > b.ID
	})
}

// dayOf truncates a timestamp to its calendar date in UTC.
func dayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

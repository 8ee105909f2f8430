// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/auracash/backend/internal/application/adapter"
	"github.com/auracash/backend/internal/domain/entity"
	domainerror "github.com/auracash/backend/internal/domain/error"
	"github.com/auracash/backend/internal/integration/persistence/model"
)

// sharedTransactionRepository implements the adapter.SharedTransactionRepository interface.
type sharedTransactionRepository struct {
	db *gorm.DB
}

// NewSharedTransactionRepository creates a new shared transaction repository instance.
func NewSharedTransactionRepository(db *gorm.DB) adapter.SharedTransactionRepository {
	return &sharedTransactionRepository{
		db: db,
	}
}

// Create creates a new shared transaction in the database and assigns its id.
func (r *sharedTransactionRepository) Create(ctx context.Context, transaction *entity.SharedTransaction) error {
	transactionModel := model.SharedTransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	transaction.ID = transactionModel.ID
	return nil
}

// FindByAccount retrieves the account's transactions with category and creator
// names denormalized in, ordered by date descending.
func (r *sharedTransactionRepository) FindByAccount(ctx context.Context, accountID int64) ([]*entity.SharedTransactionWithNames, error) {
	var transactionModels []model.SharedTransactionModel
	result := r.db.WithContext(ctx).
		Preload("Category").
		Preload("User").
		Where("account_id = ?", accountID).
		Order("date DESC, id DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.SharedTransactionWithNames, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntityWithNames()
	}
	return transactions, nil
}

// FindByIDAndAccount retrieves one shared transaction on the account.
func (r *sharedTransactionRepository) FindByIDAndAccount(ctx context.Context, id, accountID int64) (*entity.SharedTransaction, error) {
	var transactionModel model.SharedTransactionModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", id, accountID).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewSharedAccountError(
				domainerror.ErrCodeSharedTransactionNotFound,
				"shared transaction not found",
				domainerror.ErrSharedTransactionNotFound,
			)
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// Delete removes a shared transaction.
func (r *sharedTransactionRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SharedTransactionModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

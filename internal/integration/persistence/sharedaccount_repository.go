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

// sharedAccountRepository implements the adapter.SharedAccountRepository interface.
type sharedAccountRepository struct {
	db *gorm.DB
}

// NewSharedAccountRepository creates a new shared account repository instance.
func NewSharedAccountRepository(db *gorm.DB) adapter.SharedAccountRepository {
	return &sharedAccountRepository{
		db: db,
	}
}

// CreateAccount creates a new shared account in the database and assigns its id.
func (r *sharedAccountRepository) CreateAccount(ctx context.Context, account *entity.SharedAccount) error {
	accountModel := model.SharedAccountFromEntity(account)
	result := r.db.WithContext(ctx).Create(accountModel)
	if result.Error != nil {
		return result.Error
	}
	account.ID = accountModel.ID
	return nil
}

// UpdateAccount persists changes to an existing account.
func (r *sharedAccountRepository) UpdateAccount(ctx context.Context, account *entity.SharedAccount) error {
	result := r.db.WithContext(ctx).
		Model(&model.SharedAccountModel{}).
		Where("id = ?", account.ID).
		Update("name", account.Name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return accountNotFound()
	}
	return nil
}

// FindAccountByID retrieves an account by id.
func (r *sharedAccountRepository) FindAccountByID(ctx context.Context, id int64) (*entity.SharedAccount, error) {
	var accountModel model.SharedAccountModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&accountModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, accountNotFound()
		}
		return nil, result.Error
	}
	return accountModel.ToEntity(), nil
}

// FindAccountByCode retrieves an account by invite code.
func (r *sharedAccountRepository) FindAccountByCode(ctx context.Context, code string) (*entity.SharedAccount, error) {
	var accountModel model.SharedAccountModel
	result := r.db.WithContext(ctx).Where("invite_code = ?", code).First(&accountModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, accountNotFound()
		}
		return nil, result.Error
	}
	return accountModel.ToEntity(), nil
}

// FindAccountsByUser retrieves accounts the user owns or belongs to, with
// owner name and member count denormalized in. The count includes the owner.
func (r *sharedAccountRepository) FindAccountsByUser(ctx context.Context, userID int64) ([]*entity.AccountWithMembers, error) {
	var accountModels []model.SharedAccountModel
	result := r.db.WithContext(ctx).
		Where("owner_id = ? OR id IN (?)",
			userID,
			r.db.Model(&model.SharedMemberModel{}).Select("account_id").Where("user_id = ?", userID),
		).
		Order("created_at DESC").
		Find(&accountModels)
	if result.Error != nil {
		return nil, result.Error
	}

	accounts := make([]*entity.AccountWithMembers, len(accountModels))
	for i, am := range accountModels {
		var ownerName string
		if err := r.db.WithContext(ctx).
			Model(&model.UserModel{}).
			Select("name").
			Where("id = ?", am.OwnerID).
			Scan(&ownerName).Error; err != nil {
			return nil, err
		}

		var memberCount int64
		if err := r.db.WithContext(ctx).
			Model(&model.SharedMemberModel{}).
			Where("account_id = ?", am.ID).
			Count(&memberCount).Error; err != nil {
			return nil, err
		}

		accounts[i] = &entity.AccountWithMembers{
			Account:     am.ToEntity(),
			OwnerName:   ownerName,
			MemberCount: int(memberCount) + 1,
		}
	}
	return accounts, nil
}

// CreateMember creates a membership row and assigns its id.
func (r *sharedAccountRepository) CreateMember(ctx context.Context, member *entity.SharedMember) error {
	memberModel := model.SharedMemberFromEntity(member)
	result := r.db.WithContext(ctx).Create(memberModel)
	if result.Error != nil {
		return result.Error
	}
	member.ID = memberModel.ID
	return nil
}

// IsMember reports whether a membership row exists for the user.
func (r *sharedAccountRepository) IsMember(ctx context.Context, accountID, userID int64) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.SharedMemberModel{}).
		Where("account_id = ? AND user_id = ?", accountID, userID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// DeleteMember removes the user's membership row.
func (r *sharedAccountRepository) DeleteMember(ctx context.Context, accountID, userID int64) error {
	result := r.db.WithContext(ctx).
		Where("account_id = ? AND user_id = ?", accountID, userID).
		Delete(&model.SharedMemberModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindMembers lists the account's members with user details: the owner first,
// then members ordered by name.
func (r *sharedAccountRepository) FindMembers(ctx context.Context, accountID int64) ([]*entity.AccountMember, error) {
	var accountModel model.SharedAccountModel
	if err := r.db.WithContext(ctx).Where("id = ?", accountID).First(&accountModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, accountNotFound()
		}
		return nil, err
	}

	var owner model.UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", accountModel.OwnerID).First(&owner).Error; err != nil {
		return nil, err
	}

	members := []*entity.AccountMember{{
		UserID:  owner.ID,
		Name:    owner.Name,
		Email:   owner.Email,
		IsOwner: true,
	}}

	var rows []model.UserModel
	err := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Joins("JOIN shared_members ON shared_members.user_id = users.id").
		Where("shared_members.account_id = ?", accountID).
		Order("users.name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		members = append(members, &entity.AccountMember{
			UserID:  row.ID,
			Name:    row.Name,
			Email:   row.Email,
			IsOwner: false,
		})
	}
	return members, nil
}

// DeleteAccount removes the account, cascading all memberships and all of the
// account's shared transactions in one transaction.
func (r *sharedAccountRepository) DeleteAccount(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("account_id = ?", id).Delete(&model.SharedTransactionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("account_id = ?", id).Delete(&model.SharedMemberModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.SharedAccountModel{}).Error
	})
}

// accountNotFound builds the coded not-found error for shared accounts.
func accountNotFound() error {
	return domainerror.NewSharedAccountError(
		domainerror.ErrCodeAccountNotFound,
		"shared account not found",
		domainerror.ErrAccountNotFound,
	)
}

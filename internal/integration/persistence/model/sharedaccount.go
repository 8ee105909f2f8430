// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/auracash/backend/internal/domain/entity"
)

// SharedAccountModel represents the shared_accounts table in the database.
type SharedAccountModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	Name       string    `gorm:"type:varchar(100);not null"`
	InviteCode string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	OwnerID    int64     `gorm:"not null;index"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for the SharedAccountModel.
func (SharedAccountModel) TableName() string {
	return "shared_accounts"
}

// ToEntity converts a SharedAccountModel to a domain SharedAccount entity.
func (m *SharedAccountModel) ToEntity() *entity.SharedAccount {
	return &entity.SharedAccount{
		ID:         m.ID,
		Name:       m.Name,
		InviteCode: m.InviteCode,
		OwnerID:    m.OwnerID,
		CreatedAt:  m.CreatedAt,
	}
}

// SharedAccountFromEntity creates a SharedAccountModel from a domain entity.
func SharedAccountFromEntity(account *entity.SharedAccount) *SharedAccountModel {
	return &SharedAccountModel{
		ID:         account.ID,
		Name:       account.Name,
		InviteCode: account.InviteCode,
		OwnerID:    account.OwnerID,
		CreatedAt:  account.CreatedAt,
	}
}

// SharedMemberModel represents the shared_members table in the database.
// The owner never has a row here.
type SharedMemberModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	AccountID int64     `gorm:"not null;index:idx_shared_members_account_user,unique"`
	UserID    int64     `gorm:"not null;index:idx_shared_members_account_user,unique"`
	JoinedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for the SharedMemberModel.
func (SharedMemberModel) TableName() string {
	return "shared_members"
}

// ToEntity converts a SharedMemberModel to a domain SharedMember entity.
func (m *SharedMemberModel) ToEntity() *entity.SharedMember {
	return &entity.SharedMember{
		ID:        m.ID,
		AccountID: m.AccountID,
		UserID:    m.UserID,
		JoinedAt:  m.JoinedAt,
	}
}

// SharedMemberFromEntity creates a SharedMemberModel from a domain entity.
func SharedMemberFromEntity(member *entity.SharedMember) *SharedMemberModel {
	return &SharedMemberModel{
		ID:        member.ID,
		AccountID: member.AccountID,
		UserID:    member.UserID,
		JoinedAt:  member.JoinedAt,
	}
}

// SharedTransactionModel represents the shared_transactions table in the database.
type SharedTransactionModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	AccountID   int64           `gorm:"not null;index"`
	UserID      int64           `gorm:"not null;index"`
	Kind        string          `gorm:"type:varchar(10);not null"`
	CategoryID  *int64          `gorm:"index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	Description string          `gorm:"type:varchar(255)"`
	CreatedAt   time.Time       `gorm:"not null"`

	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
	User     *UserModel     `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the SharedTransactionModel.
func (SharedTransactionModel) TableName() string {
	return "shared_transactions"
}

// ToEntity converts a SharedTransactionModel to a domain SharedTransaction entity.
func (m *SharedTransactionModel) ToEntity() *entity.SharedTransaction {
	return &entity.SharedTransaction{
		ID:          m.ID,
		AccountID:   m.AccountID,
		UserID:      m.UserID,
		Kind:        entity.Kind(m.Kind),
		CategoryID:  m.CategoryID,
		Amount:      m.Amount,
		Date:        m.Date,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

// ToEntityWithNames converts a SharedTransactionModel to a
// SharedTransactionWithNames entity.
func (m *SharedTransactionModel) ToEntityWithNames() *entity.SharedTransactionWithNames {
	result := &entity.SharedTransactionWithNames{
		Transaction:  m.ToEntity(),
		CategoryName: entity.UncategorizedLabel,
	}
	if m.Category != nil && m.Category.ID != 0 {
		result.CategoryName = m.Category.Name
	}
	if m.User != nil && m.User.ID != 0 {
		result.UserName = m.User.Name
	}
	return result
}

// SharedTransactionFromEntity creates a SharedTransactionModel from a domain entity.
func SharedTransactionFromEntity(t *entity.SharedTransaction) *SharedTransactionModel {
	return &SharedTransactionModel{
		ID:          t.ID,
		AccountID:   t.AccountID,
		UserID:      t.UserID,
		Kind:        string(t.Kind),
		CategoryID:  t.CategoryID,
		Amount:      t.Amount,
		Date:        t.Date,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
}

// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/auracash/backend/internal/domain/entity"
)

// UserModel represents the users table in the database.
type UserModel struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	Name         string          `gorm:"type:varchar(100);not null"`
	Email        string          `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string          `gorm:"type:varchar(255);not null"`
	TaxID        string          `gorm:"type:varchar(20)"`
	Income       decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	ReceivesAid  bool            `gorm:"not null;default:false"`
	CreatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the UserModel.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts a UserModel to a domain User entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		TaxID:        m.TaxID,
		Income:       m.Income,
		ReceivesAid:  m.ReceivesAid,
		CreatedAt:    m.CreatedAt,
	}
}

// UserFromEntity creates a UserModel from a domain User entity.
func UserFromEntity(user *entity.User) *UserModel {
	return &UserModel{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		TaxID:        user.TaxID,
		Income:       user.Income,
		ReceivesAid:  user.ReceivesAid,
		CreatedAt:    user.CreatedAt,
	}
}

// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/auracash/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
type CategoryModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    int64     `gorm:"not null;index"`
	Name      string    `gorm:"type:varchar(50);not null"`
	Kind      string    `gorm:"type:varchar(10);not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Kind:      entity.Kind(m.Kind),
		CreatedAt: m.CreatedAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(cat *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:        cat.ID,
		UserID:    cat.UserID,
		Name:      cat.Name,
		Kind:      string(cat.Kind),
		CreatedAt: cat.CreatedAt,
	}
}

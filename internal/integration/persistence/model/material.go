// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/auracash/backend/internal/domain/entity"
)

// MaterialModel represents the materials table in the database.
type MaterialModel struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	UserID     int64           `gorm:"not null;index"`
	Name       string          `gorm:"type:varchar(100);not null"`
	TotalValue decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Quantity   decimal.Decimal `gorm:"type:decimal(15,4);not null"`
	CreatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for the MaterialModel.
func (MaterialModel) TableName() string {
	return "materials"
}

// ToEntity converts a MaterialModel to a domain Material entity.
func (m *MaterialModel) ToEntity() *entity.Material {
	return &entity.Material{
		ID:         m.ID,
		UserID:     m.UserID,
		Name:       m.Name,
		TotalValue: m.TotalValue,
		Quantity:   m.Quantity,
		CreatedAt:  m.CreatedAt,
	}
}

// MaterialFromEntity creates a MaterialModel from a domain Material entity.
func MaterialFromEntity(material *entity.Material) *MaterialModel {
	return &MaterialModel{
		ID:         material.ID,
		UserID:     material.UserID,
		Name:       material.Name,
		TotalValue: material.TotalValue,
		Quantity:   material.Quantity,
		CreatedAt:  material.CreatedAt,
	}
}

// ProductModel represents the products table in the database. Rows are a
// denormalized audit trail of cost computations.
type ProductModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	UserID    int64           `gorm:"not null;index"`
	Name      string          `gorm:"type:varchar(100);not null"`
	TotalCost decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ProductModel.
func (ProductModel) TableName() string {
	return "products"
}

// ToEntity converts a ProductModel to a domain Product entity.
func (m *ProductModel) ToEntity() *entity.Product {
	return &entity.Product{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		TotalCost: m.TotalCost,
		CreatedAt: m.CreatedAt,
	}
}

// ProductFromEntity creates a ProductModel from a domain Product entity.
func ProductFromEntity(product *entity.Product) *ProductModel {
	return &ProductModel{
		ID:        product.ID,
		UserID:    product.UserID,
		Name:      product.Name,
		TotalCost: product.TotalCost,
		CreatedAt: product.CreatedAt,
	}
}

// ProductMaterialModel represents the product_materials table in the database.
type ProductMaterialModel struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	ProductID    int64           `gorm:"not null;index"`
	MaterialID   int64           `gorm:"not null;index"`
	QuantityUsed decimal.Decimal `gorm:"type:decimal(15,4);not null"`
	LineCost     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
}

// TableName returns the table name for the ProductMaterialModel.
func (ProductMaterialModel) TableName() string {
	return "product_materials"
}

// ToEntity converts a ProductMaterialModel to a domain ProductMaterial entity.
func (m *ProductMaterialModel) ToEntity() *entity.ProductMaterial {
	return &entity.ProductMaterial{
		ID:           m.ID,
		ProductID:    m.ProductID,
		MaterialID:   m.MaterialID,
		QuantityUsed: m.QuantityUsed,
		LineCost:     m.LineCost,
	}
}

// ProductMaterialFromEntity creates a ProductMaterialModel from a domain entity.
func ProductMaterialFromEntity(pm *entity.ProductMaterial) *ProductMaterialModel {
	return &ProductMaterialModel{
		ID:           pm.ID,
		ProductID:    pm.ProductID,
		MaterialID:   pm.MaterialID,
		QuantityUsed: pm.QuantityUsed,
		LineCost:     pm.LineCost,
	}
}

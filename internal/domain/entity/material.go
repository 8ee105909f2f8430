// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material represents a raw material in the product-costing sub-domain.
// Its unit cost is TotalValue divided by Quantity.
type Material struct {
	ID         int64
	UserID     int64
	Name       string
	TotalValue decimal.Decimal
	Quantity   decimal.Decimal
	CreatedAt  time.Time
}

// NewMaterial creates a new Material entity. The id is assigned by the store.
func NewMaterial(userID int64, name string, totalValue, quantity decimal.Decimal) *Material {
	return &Material{
		UserID:     userID,
		Name:       name,
		TotalValue: totalValue,
		Quantity:   quantity,
		CreatedAt:  time.Now().UTC(),
	}
}

// UnitCost returns TotalValue / Quantity. Quantity is validated to be
// positive at creation.
func (m *Material) UnitCost() decimal.Decimal {
	return m.TotalValue.Div(m.Quantity)
}

// Product is the persisted summary of a cost computation. It is a
// denormalized audit trail, not a source of truth.
type Product struct {
	ID        int64
	UserID    int64
	Name      string
	TotalCost decimal.Decimal
	CreatedAt time.Time
}

// ProductMaterial is one audit row per material used in a costing.
type ProductMaterial struct {
	ID           int64
	ProductID    int64
	MaterialID   int64
	QuantityUsed decimal.Decimal
	LineCost     decimal.Decimal
}

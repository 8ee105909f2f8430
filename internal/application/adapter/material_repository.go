// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/auracash/backend/internal/domain/entity"
)

// MaterialRepository defines the interface for material persistence.
// It is only bound when the relational backend is active.
type MaterialRepository interface {
	// Create stores a new material and assigns its id.
	Create(ctx context.Context, material *entity.Material) error

	// FindByUser retrieves all materials for a user, ordered by name.
	FindByUser(ctx context.Context, userID int64) ([]*entity.Material, error)

	// FindByIDAndUser retrieves a material owned by the given user.
	// Returns domain ErrMaterialNotFound when absent or owned by someone else.
	FindByIDAndUser(ctx context.Context, id, userID int64) (*entity.Material, error)

	// Delete removes a material owned by the given user. Deleting an absent
	// material is a no-op.
	Delete(ctx context.Context, id, userID int64) error
}

// ProductRepository persists the denormalized audit trail of a cost
// computation: the product summary plus one row per material used.
type ProductRepository interface {
	// CreateWithMaterials stores the product and its usage rows atomically,
	// assigning the product id.
	CreateWithMaterials(ctx context.Context, product *entity.Product, materials []*entity.ProductMaterial) error
}

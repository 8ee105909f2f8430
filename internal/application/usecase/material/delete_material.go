// Package material contains material and product-costing use cases.
package material

import (
	"context"
	"fmt"

	"github.com/auracash/backend/internal/application/adapter"
)

// DeleteMaterialInput represents the input for material deletion.
type DeleteMaterialInput struct {
	UserID     int64
	MaterialID int64
}

// DeleteMaterialUseCase handles material deletion. Deleting an absent
// material succeeds; past product audit rows keep their recorded figures.
type DeleteMaterialUseCase struct {
	materialRepo adapter.MaterialRepository
}

// NewDeleteMaterialUseCase creates a new DeleteMaterialUseCase instance.
func NewDeleteMaterialUseCase(materialRepo adapter.MaterialRepository) *DeleteMaterialUseCase {
	return &DeleteMaterialUseCase{
		materialRepo: materialRepo,
	}
}

// Execute performs the deletion.
func (uc *DeleteMaterialUseCase) Execute(ctx context.Context, input DeleteMaterialInput) error {
	if err := uc.materialRepo.Delete(ctx, input.MaterialID, input.UserID); err != nil {
		return fmt.Errorf("failed to delete material: %w", err)
	}
	return nil
}

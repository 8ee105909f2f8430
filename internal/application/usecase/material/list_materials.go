// Package material contains material and product-costing use cases.
package material

import (
	"context"

	"github.com/auracash/backend/internal/application/adapter"
	"github.com/auracash/backend/internal/domain/entity"
)

// ListMaterialsInput represents the input for listing materials.
type ListMaterialsInput struct {
	UserID int64
}

// ListMaterialsOutput represents the output of listing materials.
type ListMaterialsOutput struct {
	Materials []*entity.Material
}

// ListMaterialsUseCase lists the caller's materials.
type ListMaterialsUseCase struct {
	materialRepo adapter.MaterialRepository
}

// NewListMaterialsUseCase creates a new ListMaterialsUseCase instance.
func NewListMaterialsUseCase(materialRepo adapter.MaterialRepository) *ListMaterialsUseCase {
	return &ListMaterialsUseCase{
		materialRepo: materialRepo,
	}
}

// Execute lists the materials.
func (uc *ListMaterialsUseCase) Execute(ctx context.Context, input ListMaterialsInput) (*ListMaterialsOutput, error) {
	materials, err := uc.materialRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return &ListMaterialsOutput{Materials: materials}, nil
}

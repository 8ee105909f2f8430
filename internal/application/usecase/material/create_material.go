// Package material contains material and product-costing use cases.
package material

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/auracash/backend/internal/application/adapter"
	"github.com/auracash/backend/internal/domain/entity"
	domainerror "github.com/auracash/backend/internal/domain/error"
)

// CreateMaterialInput represents the input for material creation.
type CreateMaterialInput struct {
	UserID     int64
	Name       string
	TotalValue decimal.Decimal
	Quantity   decimal.Decimal
}

// CreateMaterialOutput represents the output of material creation.
type CreateMaterialOutput struct {
	Material *entity.Material
}

// CreateMaterialUseCase handles material creation. Quantity must be strictly
// positive so unit cost is always defined.
type CreateMaterialUseCase struct {
	materialRepo adapter.MaterialRepository
}

// NewCreateMaterialUseCase creates a new CreateMaterialUseCase instance.
func NewCreateMaterialUseCase(materialRepo adapter.MaterialRepository) *CreateMaterialUseCase {
	return &CreateMaterialUseCase{
		materialRepo: materialRepo,
	}
}

// Execute performs the material creation.
func (uc *CreateMaterialUseCase) Execute(ctx context.Context, input CreateMaterialInput) (*CreateMaterialOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewMaterialError(
			domainerror.ErrCodeMissingMaterialFields,
			"material name is required",
			nil,
		)
	}

	if !input.TotalValue.IsPositive() {
		return nil, domainerror.NewMaterialError(
			domainerror.ErrCodeInvalidMaterialValue,
			"total value must be greater than zero",
			domainerror.ErrInvalidMaterialValue,
		)
	}

	if !input.Quantity.IsPositive() {
		return nil, domainerror.NewMaterialError(
			domainerror.ErrCodeInvalidMaterialQuantity,
			"quantity must be greater than zero",
			domainerror.ErrInvalidMaterialQuantity,
		)
	}

	material := entity.NewMaterial(input.UserID, name, input.TotalValue, input.Quantity)
	if err := uc.materialRepo.Create(ctx, material); err != nil {
		return nil, fmt.Errorf("failed to create material: %w", err)
	}

	return &CreateMaterialOutput{Material: material}, nil
}

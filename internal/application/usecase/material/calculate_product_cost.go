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

// CostLineInput is one material usage in a costing request.
type CostLineInput struct {
	MaterialID   int64
	QuantityUsed decimal.Decimal
}

// CalculateProductCostInput represents the input for a product costing.
type CalculateProductCostInput struct {
	UserID      int64
	ProductName string
	Materials   []CostLineInput
}

// CostLine is one line of the costing breakdown.
type CostLine struct {
	MaterialID   int64
	Name         string
	UnitCost     decimal.Decimal
	QuantityUsed decimal.Decimal
	LineCost     decimal.Decimal
}

// CalculateProductCostOutput represents the output of a product costing.
type CalculateProductCostOutput struct {
	ProductID int64
	Name      string
	Total     decimal.Decimal
	Breakdown []CostLine
}

// CalculateProductCostUseCase computes a product's cost from material usage
// and persists the result as an audit trail. Every referenced material must
// belong to the caller; validation happens before any write.
type CalculateProductCostUseCase struct {
	materialRepo adapter.MaterialRepository
	productRepo  adapter.ProductRepository
}

// NewCalculateProductCostUseCase creates a new CalculateProductCostUseCase instance.
func NewCalculateProductCostUseCase(materialRepo adapter.MaterialRepository, productRepo adapter.ProductRepository) *CalculateProductCostUseCase {
	return &CalculateProductCostUseCase{
		materialRepo: materialRepo,
		productRepo:  productRepo,
	}
}

// Execute performs the costing.
func (uc *CalculateProductCostUseCase) Execute(ctx context.Context, input CalculateProductCostInput) (*CalculateProductCostOutput, error) {
	name := strings.TrimSpace(input.ProductName)
	if name == "" {
		return nil, domainerror.NewMaterialError(
			domainerror.ErrCodeMissingMaterialFields,
			"product name is required",
			nil,
		)
	}

	if len(input.Materials) == 0 {
		return nil, domainerror.NewMaterialError(
			domainerror.ErrCodeEmptyMaterialList,
			"at least one material is required",
			domainerror.ErrEmptyMaterialList,
		)
	}

	total := decimal.Zero
	breakdown := make([]CostLine, 0, len(input.Materials))
	for _, line := range input.Materials {
		if !line.QuantityUsed.IsPositive() {
			return nil, domainerror.NewMaterialError(
				domainerror.ErrCodeInvalidQuantityUsed,
				"quantity used must be greater than zero",
				domainerror.ErrInvalidQuantityUsed,
			)
		}

		m, err := uc.materialRepo.FindByIDAndUser(ctx, line.MaterialID, input.UserID)
		if err != nil {
			return nil, err
		}

		unitCost := m.UnitCost()
		lineCost := unitCost.Mul(line.QuantityUsed)
		total = total.Add(lineCost)
		breakdown = append(breakdown, CostLine{
			MaterialID:   m.ID,
			Name:         m.Name,
			UnitCost:     unitCost,
			QuantityUsed: line.QuantityUsed,
			LineCost:     lineCost,
		})
	}

	product := &entity.Product{
		UserID:    input.UserID,
		Name:      name,
		TotalCost: total,
	}
	usage := make([]*entity.ProductMaterial, 0, len(breakdown))
	for _, line := range breakdown {
		usage = append(usage, &entity.ProductMaterial{
			MaterialID:   line.MaterialID,
			QuantityUsed: line.QuantityUsed,
			LineCost:     line.LineCost,
		})
	}
	if err := uc.productRepo.CreateWithMaterials(ctx, product, usage); err != nil {
		return nil, fmt.Errorf("failed to persist product costing: %w", err)
	}

	return &CalculateProductCostOutput{
		ProductID: product.ID,
		Name:      product.Name,
		Total:     total,
		Breakdown: breakdown,
	}, nil
}

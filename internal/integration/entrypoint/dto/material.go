// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/auracash/backend/internal/application/usecase/material"
	"github.com/auracash/backend/internal/domain/entity"
)

// CreateMaterialRequest represents the request body for material creation.
type CreateMaterialRequest struct {
	Name       string  `json:"name" binding:"required,min=1,max=100"`
	TotalValue float64 `json:"total_value" binding:"required,gt=0"`
	Quantity   float64 `json:"quantity" binding:"required,gt=0"`
}

// MaterialResponse represents a single material in API responses.
type MaterialResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	TotalValue float64   `json:"total_value"`
	Quantity   float64   `json:"quantity"`
	UnitCost   float64   `json:"unit_cost"`
	CreatedAt  time.Time `json:"created_at"`
}

// MaterialListResponse represents the response for listing materials.
type MaterialListResponse struct {
	Materials []MaterialResponse `json:"materials"`
}

// CostLineRequest is one material usage in a costing request.
type CostLineRequest struct {
	MaterialID   int64   `json:"material_id" binding:"required"`
	QuantityUsed float64 `json:"quantity_used" binding:"required,gt=0"`
}

// CalculateCostRequest represents the request body for a product costing.
type CalculateCostRequest struct {
	Name      string            `json:"name" binding:"required,min=1,max=100"`
	Materials []CostLineRequest `json:"materials" binding:"required,min=1,dive"`
}

// CostLineResponse is one line of the costing breakdown.
type CostLineResponse struct {
	MaterialID   int64   `json:"material_id"`
	Name         string  `json:"name"`
	UnitCost     float64 `json:"unit_cost"`
	QuantityUsed float64 `json:"quantity_used"`
	LineCost     float64 `json:"line_cost"`
}

// CalculateCostResponse represents the response for a product costing.
type CalculateCostResponse struct {
	ProductID int64              `json:"product_id"`
	Name      string             `json:"name"`
	Total     float64            `json:"total"`
	Breakdown []CostLineResponse `json:"breakdown"`
}

// ToMaterialResponse converts a domain Material entity to a MaterialResponse DTO.
func ToMaterialResponse(m *entity.Material) MaterialResponse {
	return MaterialResponse{
		ID:         m.ID,
		Name:       m.Name,
		TotalValue: m.TotalValue.InexactFloat64(),
		Quantity:   m.Quantity.InexactFloat64(),
		UnitCost:   m.UnitCost().InexactFloat64(),
		CreatedAt:  m.CreatedAt,
	}
}

// ToMaterialListResponse converts listed materials to a MaterialListResponse.
func ToMaterialListResponse(materials []*entity.Material) MaterialListResponse {
	out := make([]MaterialResponse, len(materials))
	for i, m := range materials {
		out[i] = ToMaterialResponse(m)
	}
	return MaterialListResponse{Materials: out}
}

// ToCalculateCostResponse converts a costing output to a response DTO.
func ToCalculateCostResponse(output *material.CalculateProductCostOutput) CalculateCostResponse {
	breakdown := make([]CostLineResponse, len(output.Breakdown))
	for i, line := range output.Breakdown {
		breakdown[i] = CostLineResponse{
			MaterialID:   line.MaterialID,
			Name:         line.Name,
			UnitCost:     line.UnitCost.InexactFloat64(),
			QuantityUsed: line.QuantityUsed.InexactFloat64(),
			LineCost:     line.LineCost.InexactFloat64(),
		}
	}
	return CalculateCostResponse{
		ProductID: output.ProductID,
		Name:      output.Name,
		Total:     output.Total.InexactFloat64(),
		Breakdown: breakdown,
	}
}

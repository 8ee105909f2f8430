// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/auracash/backend/internal/application/usecase/material"
	domainerror "github.com/auracash/backend/internal/domain/error"
	"github.com/auracash/backend/internal/integration/entrypoint/dto"
	"github.com/auracash/backend/internal/integration/entrypoint/middleware"
)

// MaterialController handles material and product-costing endpoints. It is
// only wired when the relational backend is active.
type MaterialController struct {
	createUseCase *material.CreateMaterialUseCase
	listUseCase   *material.ListMaterialsUseCase
	deleteUseCase *material.DeleteMaterialUseCase
	costUseCase   *material.CalculateProductCostUseCase
}

// NewMaterialController creates a new material controller instance.
func NewMaterialController(
	createUseCase *material.CreateMaterialUseCase,
	listUseCase *material.ListMaterialsUseCase,
	deleteUseCase *material.DeleteMaterialUseCase,
	costUseCase *material.CalculateProductCostUseCase,
) *MaterialController {
	return &MaterialController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
		costUseCase:   costUseCase,
	}
}

// Create handles POST /materials requests.
func (c *MaterialController) Create(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse request body
	var req dto.CreateMaterialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingMaterialFields),
		})
		return
	}

	// Build input
	input := material.CreateMaterialInput{
		UserID:     userID,
		Name:       req.Name,
		TotalValue: decimal.NewFromFloat(req.TotalValue),
		Quantity:   decimal.NewFromFloat(req.Quantity),
	}

	// Execute use case
	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleMaterialError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusCreated, dto.ToMaterialResponse(output.Material))
}

// List handles GET /materials requests.
func (c *MaterialController) List(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Execute use case
	output, err := c.listUseCase.Execute(ctx.Request.Context(), material.ListMaterialsInput{UserID: userID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve materials",
		})
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToMaterialListResponse(output.Materials))
}

// Delete handles DELETE /materials/:id requests.
func (c *MaterialController) Delete(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse material ID from URL
	materialID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	// Execute use case
	input := material.DeleteMaterialInput{
		UserID:     userID,
		MaterialID: materialID,
	}
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleMaterialError(ctx, err)
		return
	}

	// Return no content on success
	ctx.Status(http.StatusNoContent)
}

// CalculateCost handles POST /products/cost requests.
func (c *MaterialController) CalculateCost(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse request body
	var req dto.CalculateCostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingMaterialFields),
		})
		return
	}

	// Build input
	lines := make([]material.CostLineInput, len(req.Materials))
	for i, line := range req.Materials {
		lines[i] = material.CostLineInput{
			MaterialID:   line.MaterialID,
			QuantityUsed: decimal.NewFromFloat(line.QuantityUsed),
		}
	}
	input := material.CalculateProductCostInput{
		UserID:      userID,
		ProductName: req.Name,
		Materials:   lines,
	}

	// Execute use case
	output, err := c.costUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleMaterialError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusCreated, dto.ToCalculateCostResponse(output))
}

// handleMaterialError handles material errors and returns appropriate HTTP responses.
func (c *MaterialController) handleMaterialError(ctx *gin.Context, err error) {
	var matErr *domainerror.MaterialError
	if errors.As(err, &matErr) {
		statusCode := c.getStatusCodeForMaterialError(matErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: matErr.Message,
			Code:  string(matErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForMaterialError maps material error codes to HTTP status codes.
func (c *MaterialController) getStatusCodeForMaterialError(code domainerror.MaterialErrorCode) int {
	switch code {
	case domainerror.ErrCodeMaterialNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidMaterialValue,
		domainerror.ErrCodeInvalidMaterialQuantity,
		domainerror.ErrCodeInvalidQuantityUsed,
		domainerror.ErrCodeEmptyMaterialList,
		domainerror.ErrCodeMissingMaterialFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

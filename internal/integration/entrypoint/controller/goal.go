// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/auracash/backend/internal/application/usecase/goal"
	domainerror "github.com/auracash/backend/internal/domain/error"
	"github.com/auracash/backend/internal/integration/entrypoint/dto"
	"github.com/auracash/backend/internal/integration/entrypoint/middleware"
)

// GoalController handles goal endpoints.
type GoalController struct {
	listUseCase     *goal.ListGoalsUseCase
	createUseCase   *goal.CreateGoalUseCase
	progressUseCase *goal.GetProgressUseCase
	deleteUseCase   *goal.DeleteGoalUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	createUseCase *goal.CreateGoalUseCase,
	progressUseCase *goal.GetProgressUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
) *GoalController {
	return &GoalController{
		listUseCase:     listUseCase,
		createUseCase:   createUseCase,
		progressUseCase: progressUseCase,
		deleteUseCase:   deleteUseCase,
	}
}

// List handles GET /goals requests. Every goal is returned with its derived
// progress figures.
func (c *GoalController) List(ctx *gin.Context) {
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
	output, err := c.listUseCase.Execute(ctx.Request.Context(), goal.ListGoalsInput{UserID: userID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve goals",
		})
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output.Goals))
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
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
	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	// Parse period dates
	periodStart, err := parseDate(req.PeriodStart)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid period_start format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidGoalPeriod),
		})
		return
	}
	periodEnd, err := parseDate(req.PeriodEnd)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid period_end format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidGoalPeriod),
		})
		return
	}

	// Build input
	input := goal.CreateGoalInput{
		UserID:       userID,
		CategoryID:   req.CategoryID,
		TargetAmount: decimal.NewFromFloat(req.TargetAmount),
		PeriodStart:  periodStart,
		PeriodEnd:    periodEnd,
	}

	// Execute use case
	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal))
}

// GetProgress handles GET /goals/:id/progress requests.
func (c *GoalController) GetProgress(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse goal ID from URL
	goalID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	// Execute use case
	input := goal.GetProgressInput{
		UserID: userID,
		GoalID: goalID,
	}
	output, err := c.progressUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, gin.H{
		"goal_id":  goalID,
		"spent":    output.Spent.InexactFloat64(),
		"progress": output.Progress,
	})
}

// Delete handles DELETE /goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse goal ID from URL
	goalID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	// Execute use case
	input := goal.DeleteGoalInput{
		UserID: userID,
		GoalID: goalID,
	}
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	// Return no content on success
	ctx.Status(http.StatusNoContent)
}

// handleGoalError handles goal errors and returns appropriate HTTP responses.
func (c *GoalController) handleGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		statusCode := c.getStatusCodeForGoalError(goalErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForGoalError maps goal error codes to HTTP status codes.
func (c *GoalController) getStatusCodeForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound, domainerror.ErrCodeGoalCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTargetAmount,
		domainerror.ErrCodeInvalidGoalPeriod,
		domainerror.ErrCodeMissingGoalFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

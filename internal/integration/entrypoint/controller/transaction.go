// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/auracash/backend/internal/application/usecase/transaction"
	"github.com/auracash/backend/internal/domain/entity"
	domainerror "github.com/auracash/backend/internal/domain/error"
	"github.com/auracash/backend/internal/integration/entrypoint/dto"
	"github.com/auracash/backend/internal/integration/entrypoint/middleware"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase           *transaction.ListTransactionsUseCase
	listByCategoryUseCase *transaction.ListByCategoryUseCase
	createUseCase         *transaction.CreateTransactionUseCase
	deleteUseCase         *transaction.DeleteTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	listByCategoryUseCase *transaction.ListByCategoryUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:           listUseCase,
		listByCategoryUseCase: listByCategoryUseCase,
		createUseCase:         createUseCase,
		deleteUseCase:         deleteUseCase,
	}
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
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
	output, err := c.listUseCase.Execute(ctx.Request.Context(), transaction.ListTransactionsInput{UserID: userID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve transactions",
		})
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// ListByCategory handles GET /transactions/category/:id requests.
func (c *TransactionController) ListByCategory(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse category ID from URL
	categoryID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	// Execute use case
	input := transaction.ListByCategoryInput{
		UserID:     userID,
		CategoryID: categoryID,
	}
	output, err := c.listByCategoryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve transactions",
		})
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
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
	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTransactionData),
		})
		return
	}

	// Parse date
	date, err := parseDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDate),
		})
		return
	}

	// Build input
	input := transaction.CreateTransactionInput{
		UserID:      userID,
		Kind:        entity.Kind(req.Kind),
		CategoryID:  req.CategoryID,
		Amount:      decimal.NewFromFloat(req.Amount),
		Date:        date,
		Description: req.Description,
	}

	// Execute use case
	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction, output.CategoryName))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse transaction ID from URL
	transactionID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	// Execute use case
	input := transaction.DeleteTransactionInput{
		UserID:        userID,
		TransactionID: transactionID,
	}
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	// Return no content on success
	ctx.Status(http.StatusNoContent)
}

// handleTransactionError handles transaction errors and returns appropriate HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var trxErr *domainerror.TransactionError
	if errors.As(err, &trxErr) {
		statusCode := c.getStatusCodeForTransactionError(trxErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: trxErr.Message,
			Code:  string(trxErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTransactionError maps transaction error codes to HTTP status codes.
func (c *TransactionController) getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidAmount,
		domainerror.ErrCodeInvalidTransactionKind,
		domainerror.ErrCodeInvalidDate,
		domainerror.ErrCodeMissingTransactionData:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/auracash/backend/internal/application/usecase/sharedaccount"
	"github.com/auracash/backend/internal/domain/entity"
	domainerror "github.com/auracash/backend/internal/domain/error"
	"github.com/auracash/backend/internal/integration/entrypoint/dto"
	"github.com/auracash/backend/internal/integration/entrypoint/middleware"
)

// SharedAccountController handles shared account endpoints.
type SharedAccountController struct {
	createUseCase      *sharedaccount.CreateAccountUseCase
	joinUseCase        *sharedaccount.JoinAccountUseCase
	leaveUseCase       *sharedaccount.LeaveAccountUseCase
	updateUseCase      *sharedaccount.UpdateAccountUseCase
	deleteUseCase      *sharedaccount.DeleteAccountUseCase
	listUseCase        *sharedaccount.ListAccountsUseCase
	listMembersUseCase *sharedaccount.ListMembersUseCase
}

// NewSharedAccountController creates a new shared account controller instance.
func NewSharedAccountController(
	createUseCase *sharedaccount.CreateAccountUseCase,
	joinUseCase *sharedaccount.JoinAccountUseCase,
	leaveUseCase *sharedaccount.LeaveAccountUseCase,
	updateUseCase *sharedaccount.UpdateAccountUseCase,
	deleteUseCase *sharedaccount.DeleteAccountUseCase,
	listUseCase *sharedaccount.ListAccountsUseCase,
	listMembersUseCase *sharedaccount.ListMembersUseCase,
) *SharedAccountController {
	return &SharedAccountController{
		createUseCase:      createUseCase,
		joinUseCase:        joinUseCase,
		leaveUseCase:       leaveUseCase,
		updateUseCase:      updateUseCase,
		deleteUseCase:      deleteUseCase,
		listUseCase:        listUseCase,
		listMembersUseCase: listMembersUseCase,
	}
}

// Create handles POST /shared-accounts requests.
func (c *SharedAccountController) Create(ctx *gin.Context) {
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
	var req dto.CreateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingAccountFields),
		})
		return
	}

	// Execute use case
	input := sharedaccount.CreateAccountInput{
		OwnerID: userID,
		Name:    req.Name,
	}
	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleSharedAccountError(ctx, err)
		return
	}

	// The creator owns the account, so the invite code is included.
	ctx.JSON(http.StatusCreated, dto.ToAccountResponse(output.Account, true))
}

// Join handles POST /shared-accounts/join requests.
func (c *SharedAccountController) Join(ctx *gin.Context) {
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
	var req dto.JoinAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingAccountFields),
		})
		return
	}

	// Execute use case
	input := sharedaccount.JoinAccountInput{
		UserID:     userID,
		InviteCode: req.InviteCode,
	}
	output, err := c.joinUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleSharedAccountError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToAccountResponse(output.Account, false))
}

// Leave handles POST /shared-accounts/:id/leave requests.
func (c *SharedAccountController) Leave(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse account ID from URL
	accountID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	// Execute use case
	input := sharedaccount.LeaveAccountInput{
		UserID:    userID,
		AccountID: accountID,
	}
	if err := c.leaveUseCase.Execute(ctx.Request.Context(), input); err != nil {
		handleSharedAccountError(ctx, err)
		return
	}

	// Return no content on success
	ctx.Status(http.StatusNoContent)
}

// Update handles PUT /shared-accounts/:id requests. Owner only.
func (c *SharedAccountController) Update(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse account ID from URL
	accountID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	// Parse request body
	var req dto.UpdateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingAccountFields),
		})
		return
	}

	// Execute use case
	input := sharedaccount.UpdateAccountInput{
		CallerID:  userID,
		AccountID: accountID,
		Name:      req.Name,
	}
	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleSharedAccountError(ctx, err)
		return
	}

	// Only the owner reaches this point, so the invite code is included.
	ctx.JSON(http.StatusOK, dto.ToAccountResponse(output.Account, true))
}

// Delete handles DELETE /shared-accounts/:id requests.
func (c *SharedAccountController) Delete(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse account ID from URL
	accountID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	// Execute use case
	input := sharedaccount.DeleteAccountInput{
		CallerID:  userID,
		AccountID: accountID,
	}
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		handleSharedAccountError(ctx, err)
		return
	}

	// Return no content on success
	ctx.Status(http.StatusNoContent)
}

// List handles GET /shared-accounts requests.
func (c *SharedAccountController) List(ctx *gin.Context) {
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
	output, err := c.listUseCase.Execute(ctx.Request.Context(), sharedaccount.ListAccountsInput{UserID: userID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve shared accounts",
		})
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToAccountListResponse(output.Accounts, userID))
}

// ListMembers handles GET /shared-accounts/:id/members requests.
func (c *SharedAccountController) ListMembers(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse account ID from URL
	accountID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	// Execute use case
	input := sharedaccount.ListMembersInput{
		CallerID:  userID,
		AccountID: accountID,
	}
	output, err := c.listMembersUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleSharedAccountError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToMemberListResponse(output.Members))
}

// SharedTransactionController handles shared sub-ledger endpoints. It is only
// wired when the relational backend is active.
type SharedTransactionController struct {
	createUseCase *sharedaccount.CreateTransactionUseCase
	listUseCase   *sharedaccount.ListTransactionsUseCase
	deleteUseCase *sharedaccount.DeleteTransactionUseCase
}

// NewSharedTransactionController creates a new shared transaction controller instance.
func NewSharedTransactionController(
	createUseCase *sharedaccount.CreateTransactionUseCase,
	listUseCase *sharedaccount.ListTransactionsUseCase,
	deleteUseCase *sharedaccount.DeleteTransactionUseCase,
) *SharedTransactionController {
	return &SharedTransactionController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /shared-accounts/:id/transactions requests.
func (c *SharedTransactionController) Create(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse account ID from URL
	accountID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	// Parse request body
	var req dto.CreateSharedTransactionRequest
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
	input := sharedaccount.CreateTransactionInput{
		UserID:      userID,
		AccountID:   accountID,
		Kind:        entity.Kind(req.Kind),
		CategoryID:  req.CategoryID,
		Amount:      decimal.NewFromFloat(req.Amount),
		Date:        date,
		Description: req.Description,
	}

	// Execute use case
	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleSharedAccountError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusCreated, dto.ToSharedTransactionResponse(output.Transaction, output.CategoryName, ""))
}

// List handles GET /shared-accounts/:id/transactions requests.
func (c *SharedTransactionController) List(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse account ID from URL
	accountID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	// Execute use case
	input := sharedaccount.ListTransactionsInput{
		UserID:    userID,
		AccountID: accountID,
	}
	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleSharedAccountError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToSharedTransactionListResponse(output.Transactions))
}

// Delete handles DELETE /shared-accounts/:id/transactions/:transaction_id requests.
func (c *SharedTransactionController) Delete(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse IDs from URL
	accountID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	transactionID, ok := parseIDParam(ctx, "transaction_id")
	if !ok {
		return
	}

	// Execute use case
	input := sharedaccount.DeleteTransactionInput{
		UserID:        userID,
		AccountID:     accountID,
		TransactionID: transactionID,
	}
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		handleSharedAccountError(ctx, err)
		return
	}

	// Return no content on success
	ctx.Status(http.StatusNoContent)
}

// handleSharedAccountError handles shared account errors and returns
// appropriate HTTP responses. Shared transaction validation reuses the
// transaction error space, so both are mapped here.
func handleSharedAccountError(ctx *gin.Context, err error) {
	var accErr *domainerror.SharedAccountError
	if errors.As(err, &accErr) {
		ctx.JSON(getStatusCodeForSharedAccountError(accErr.Code), dto.ErrorResponse{
			Error: accErr.Message,
			Code:  string(accErr.Code),
		})
		return
	}

	var trxErr *domainerror.TransactionError
	if errors.As(err, &trxErr) {
		statusCode := http.StatusBadRequest
		if trxErr.Code == domainerror.ErrCodeTransactionNotFound {
			statusCode = http.StatusNotFound
		}
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

// getStatusCodeForSharedAccountError maps shared account error codes to HTTP status codes.
func getStatusCodeForSharedAccountError(code domainerror.SharedAccountErrorCode) int {
	switch code {
	case domainerror.ErrCodeAccountNotFound, domainerror.ErrCodeSharedTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeAlreadyMember:
		return http.StatusConflict
	case domainerror.ErrCodeNotMember, domainerror.ErrCodeMissingAccountFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeNotAccountOwner,
		domainerror.ErrCodeAccountAccessDenied,
		domainerror.ErrCodeNotTransactionCreator:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/auracash/backend/internal/application/usecase/auth"
	domainerror "github.com/auracash/backend/internal/domain/error"
	"github.com/auracash/backend/internal/integration/entrypoint/dto"
)

// AuthController handles authentication endpoints.
type AuthController struct {
	registerUseCase *auth.RegisterUserUseCase
	loginUseCase    *auth.LoginUserUseCase
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(registerUseCase *auth.RegisterUserUseCase, loginUseCase *auth.LoginUserUseCase) *AuthController {
	return &AuthController{
		registerUseCase: registerUseCase,
		loginUseCase:    loginUseCase,
	}
}

// Register handles POST /auth/register requests.
func (c *AuthController) Register(ctx *gin.Context) {
	// Parse request body
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingRegisterFields),
		})
		return
	}

	// Build input
	input := auth.RegisterUserInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		TaxID:       req.TaxID,
		Income:      decimal.NewFromFloat(req.Income),
		ReceivesAid: req.ReceivesAid,
	}

	// Execute use case
	output, err := c.registerUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	// Build response
	response := dto.AuthResponse{
		Token: output.Token,
		User:  dto.ToUserResponse(output.User),
	}
	ctx.JSON(http.StatusCreated, response)
}

// Login handles POST /auth/login requests.
func (c *AuthController) Login(ctx *gin.Context) {
	// Parse request body
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	// Build input
	input := auth.LoginUserInput{
		Email:    req.Email,
		Password: req.Password,
	}

	// Execute use case
	output, err := c.loginUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	// Build response
	response := dto.AuthResponse{
		Token: output.Token,
		User:  dto.ToUserResponse(output.User),
	}
	ctx.JSON(http.StatusOK, response)
}

// handleAuthError handles auth errors and returns appropriate HTTP responses.
func (c *AuthController) handleAuthError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		statusCode := c.getStatusCodeForAuthError(authErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForAuthError maps auth error codes to HTTP status codes.
func (c *AuthController) getStatusCodeForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmailAlreadyRegistered:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidCredentials:
		return http.StatusUnauthorized
	case domainerror.ErrCodeWeakPassword, domainerror.ErrCodeMissingRegisterFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

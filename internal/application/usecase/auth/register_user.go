// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/auracash/backend/internal/application/adapter"
	"github.com/auracash/backend/internal/application/usecase/category"
	"github.com/auracash/backend/internal/domain/entity"
	domainerror "github.com/auracash/backend/internal/domain/error"
)

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Name        string
	Email       string
	Password    string
	TaxID       string
	Income      decimal.Decimal
	ReceivesAid bool
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	User  *entity.User
	Token string
}

// RegisterUserUseCase handles user registration. On success it seeds the
// default category catalog for the new user.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
	bootstrap       *category.BootstrapDefaultsUseCase
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
	bootstrap *category.BootstrapDefaultsUseCase,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		bootstrap:       bootstrap,
	}
}

// Execute performs the registration.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if name == "" || email == "" || input.Password == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingRegisterFields,
			"name, email and password are required",
			nil,
		)
	}

	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password must be at least 8 characters long",
			domainerror.ErrWeakPassword,
		)
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailAlreadyRegistered,
			"email already registered",
			domainerror.ErrEmailAlreadyRegistered,
		)
	}

	hash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(name, email, hash, input.TaxID, input.Income, input.ReceivesAid)
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// A bootstrap failure does not fail the registration; the client-side
	// trigger re-seeds on the next empty-catalog detection.
	if _, err := uc.bootstrap.Execute(ctx, category.BootstrapDefaultsInput{UserID: user.ID}); err != nil {
		slog.Warn("failed to seed default categories", "user_id", user.ID, "error", err)
	}

	token, err := uc.tokenService.GenerateToken(ctx, user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &RegisterUserOutput{
		User:  user,
		Token: token,
	}, nil
}

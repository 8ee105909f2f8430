// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/auracash/backend/internal/application/adapter"
	"github.com/auracash/backend/internal/application/usecase/category"
	"github.com/auracash/backend/internal/domain/entity"
	domainerror "github.com/auracash/backend/internal/domain/error"
)

// fakeUserRepository is an in-memory adapter.UserRepository for tests.
type fakeUserRepository struct {
	users  []*entity.User
	nextID int64
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{nextID: 1}
}

func (r *fakeUserRepository) Create(ctx context.Context, user *entity.User) error {
	user.ID = r.nextID
	r.nextID++
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

var _ adapter.UserRepository = (*fakeUserRepository)(nil)

// fakePasswordService hashes by prefixing; good enough for use case wiring.
type fakePasswordService struct{}

func (s *fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (s *fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

func (s *fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return domainerror.ErrWeakPassword
	}
	return nil
}

type fakeTokenService struct{}

func (s *fakeTokenService) GenerateToken(ctx context.Context, userID int64, email string) (string, error) {
	return fmt.Sprintf("token-%d", userID), nil
}

func (s *fakeTokenService) ValidateToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

// fakeCategorySeed is the minimal category repository the bootstrap needs.
type fakeCategorySeed struct {
	categories []*entity.Category
}

func (r *fakeCategorySeed) Create(ctx context.Context, c *entity.Category) error {
	r.categories = append(r.categories, c)
	return nil
}

func (r *fakeCategorySeed) FindByUser(ctx context.Context, userID int64) ([]*entity.Category, error) {
	return r.categories, nil
}

func (r *fakeCategorySeed) FindByIDAndUser(ctx context.Context, id, userID int64) (*entity.Category, error) {
	return nil, domainerror.ErrCategoryNotFound
}

func (r *fakeCategorySeed) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	for _, c := range r.categories {
		if c.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *fakeCategorySeed) Delete(ctx context.Context, id, userID int64) error {
	return nil
}

func assertAuthCode(t *testing.T, err error, want domainerror.AuthErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %T: %v", err, err)
	}
	if authErr.Code != want {
		t.Errorf("expected code %s, got %s", want, authErr.Code)
	}
}

func TestRegisterUserUseCase(t *testing.T) {
	ctx := context.Background()

	setup := func() (*RegisterUserUseCase, *fakeUserRepository, *fakeCategorySeed) {
		userRepo := newFakeUserRepository()
		catRepo := &fakeCategorySeed{}
		bootstrap := category.NewBootstrapDefaultsUseCase(catRepo)
		uc := NewRegisterUserUseCase(userRepo, &fakePasswordService{}, &fakeTokenService{}, bootstrap)
		return uc, userRepo, catRepo
	}

	valid := RegisterUserInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "supersecret",
		Income:   decimal.NewFromInt(4200),
	}

	t.Run("registers and seeds default categories", func(t *testing.T) {
		uc, userRepo, catRepo := setup()

		out, err := uc.Execute(ctx, valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Token == "" {
			t.Error("expected a token")
		}
		if out.User.PasswordHash == valid.Password {
			t.Error("password must not be stored in plain text")
		}
		if len(userRepo.users) != 1 {
			t.Fatalf("expected 1 user, got %d", len(userRepo.users))
		}

		want := len(entity.DefaultExpenseCategories) + len(entity.DefaultIncomeCategories)
		if len(catRepo.categories) != want {
			t.Errorf("expected %d seeded categories, got %d", want, len(catRepo.categories))
		}
	})

	t.Run("normalizes the email", func(t *testing.T) {
		uc, userRepo, _ := setup()
		input := valid
		input.Email = "  Ana@Example.COM "

		if _, err := uc.Execute(ctx, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if userRepo.users[0].Email != "ana@example.com" {
			t.Errorf("expected normalized email, got %q", userRepo.users[0].Email)
		}
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		uc, _, _ := setup()
		if _, err := uc.Execute(ctx, valid); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := uc.Execute(ctx, valid)
		assertAuthCode(t, err, domainerror.ErrCodeEmailAlreadyRegistered)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		uc, _, _ := setup()
		input := valid
		input.Email = ""
		_, err := uc.Execute(ctx, input)
		assertAuthCode(t, err, domainerror.ErrCodeMissingRegisterFields)
	})

	t.Run("rejects a weak password", func(t *testing.T) {
		uc, _, _ := setup()
		input := valid
		input.Password = "short"
		_, err := uc.Execute(ctx, input)
		assertAuthCode(t, err, domainerror.ErrCodeWeakPassword)
	})
}

func TestLoginUserUseCase(t *testing.T) {
	ctx := context.Background()

	setup := func() (*LoginUserUseCase, *fakeUserRepository) {
		userRepo := newFakeUserRepository()
		_ = userRepo.Create(ctx, entity.NewUser("Ana", "ana@example.com", "hashed:supersecret", "", decimal.Zero, false))
		uc := NewLoginUserUseCase(userRepo, &fakePasswordService{}, &fakeTokenService{})
		return uc, userRepo
	}

	t.Run("logs in with correct credentials", func(t *testing.T) {
		uc, _ := setup()
		out, err := uc.Execute(ctx, LoginUserInput{Email: "Ana@Example.com", Password: "supersecret"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Token == "" {
			t.Error("expected a token")
		}
	})

	t.Run("wrong password and unknown email report the same error", func(t *testing.T) {
		uc, _ := setup()

		_, wrongPassword := uc.Execute(ctx, LoginUserInput{Email: "ana@example.com", Password: "nope-nope"})
		assertAuthCode(t, wrongPassword, domainerror.ErrCodeInvalidCredentials)

		_, unknownEmail := uc.Execute(ctx, LoginUserInput{Email: "ghost@example.com", Password: "supersecret"})
		assertAuthCode(t, unknownEmail, domainerror.ErrCodeInvalidCredentials)

		if wrongPassword.Error() != unknownEmail.Error() {
			t.Error("credential failures must be indistinguishable")
		}
	})
}

// Package sharedaccount contains shared account-related use cases.
package sharedaccount

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/auracash/backend/internal/application/adapter"
	"github.com/auracash/backend/internal/domain/entity"
	domainerror "github.com/auracash/backend/internal/domain/error"
)

// fakeAccountRepository is an in-memory adapter.SharedAccountRepository for tests.
type fakeAccountRepository struct {
	accounts []*entity.SharedAccount
	members  []*entity.SharedMember
	nextID   int64
}

func newFakeAccountRepository() *fakeAccountRepository {
	return &fakeAccountRepository{nextID: 1}
}

func (r *fakeAccountRepository) CreateAccount(ctx context.Context, account *entity.SharedAccount) error {
	account.ID = r.nextID
	r.nextID++
	r.accounts = append(r.accounts, account)
	return nil
}

func (r *fakeAccountRepository) UpdateAccount(ctx context.Context, account *entity.SharedAccount) error {
	for i, a := range r.accounts {
		if a.ID == account.ID {
			r.accounts[i] = account
			return nil
		}
	}
	return domainerror.NewSharedAccountError(
		domainerror.ErrCodeAccountNotFound,
		"shared account not found",
		domainerror.ErrAccountNotFound,
	)
}

func (r *fakeAccountRepository) FindAccountByID(ctx context.Context, id int64) (*entity.SharedAccount, error) {
	for _, a := range r.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, domainerror.NewSharedAccountError(
		domainerror.ErrCodeAccountNotFound,
		"shared account not found",
		domainerror.ErrAccountNotFound,
	)
}

func (r *fakeAccountRepository) FindAccountByCode(ctx context.Context, code string) (*entity.SharedAccount, error) {
	for _, a := range r.accounts {
		if a.InviteCode == code {
			return a, nil
		}
	}
	return nil, domainerror.NewSharedAccountError(
		domainerror.ErrCodeAccountNotFound,
		"shared account not found",
		domainerror.ErrAccountNotFound,
	)
}

func (r *fakeAccountRepository) FindAccountsByUser(ctx context.Context, userID int64) ([]*entity.AccountWithMembers, error) {
	var out []*entity.AccountWithMembers
	for _, a := range r.accounts {
		isMember := false
		for _, m := range r.members {
			if m.AccountID == a.ID && m.UserID == userID {
				isMember = true
			}
		}
		if a.OwnerID == userID || isMember {
			out = append(out, &entity.AccountWithMembers{Account: a, MemberCount: 1})
		}
	}
	return out, nil
}

func (r *fakeAccountRepository) CreateMember(ctx context.Context, member *entity.SharedMember) error {
	member.ID = r.nextID
	r.nextID++
	r.members = append(r.members, member)
	return nil
}

func (r *fakeAccountRepository) IsMember(ctx context.Context, accountID, userID int64) (bool, error) {
	for _, m := range r.members {
		if m.AccountID == accountID && m.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAccountRepository) DeleteMember(ctx context.Context, accountID, userID int64) error {
	for i, m := range r.members {
		if m.AccountID == accountID && m.UserID == userID {
			r.members = append(r.members[:i], r.members[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeAccountRepository) FindMembers(ctx context.Context, accountID int64) ([]*entity.AccountMember, error) {
	var out []*entity.AccountMember
	for _, m := range r.members {
		if m.AccountID == accountID {
			out = append(out, &entity.AccountMember{UserID: m.UserID})
		}
	}
	return out, nil
}

func (r *fakeAccountRepository) DeleteAccount(ctx context.Context, id int64) error {
	kept := r.members[:0]
	for _, m := range r.members {
		if m.AccountID != id {
			kept = append(kept, m)
		}
	}
	r.members = kept
	for i, a := range r.accounts {
		if a.ID == id {
			r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
			break
		}
	}
	return nil
}

var _ adapter.SharedAccountRepository = (*fakeAccountRepository)(nil)

// fakeSharedTransactionRepository is an in-memory adapter.SharedTransactionRepository.
type fakeSharedTransactionRepository struct {
	transactions []*entity.SharedTransaction
	nextID       int64
}

func newFakeSharedTransactionRepository() *fakeSharedTransactionRepository {
	return &fakeSharedTransactionRepository{nextID: 1}
}

func (r *fakeSharedTransactionRepository) Create(ctx context.Context, transaction *entity.SharedTransaction) error {
	transaction.ID = r.nextID
	r.nextID++
	r.transactions = append(r.transactions, transaction)
	return nil
}

func (r *fakeSharedTransactionRepository) FindByAccount(ctx context.Context, accountID int64) ([]*entity.SharedTransactionWithNames, error) {
	var out []*entity.SharedTransactionWithNames
	for _, t := range r.transactions {
		if t.AccountID == accountID {
			out = append(out, &entity.SharedTransactionWithNames{Transaction: t})
		}
	}
	return out, nil
}

func (r *fakeSharedTransactionRepository) FindByIDAndAccount(ctx context.Context, id, accountID int64) (*entity.SharedTransaction, error) {
	for _, t := range r.transactions {
		if t.ID == id && t.AccountID == accountID {
			return t, nil
		}
	}
	return nil, domainerror.NewSharedAccountError(
		domainerror.ErrCodeSharedTransactionNotFound,
		"shared transaction not found",
		domainerror.ErrSharedTransactionNotFound,
	)
}

func (r *fakeSharedTransactionRepository) Delete(ctx context.Context, id int64) error {
	for i, t := range r.transactions {
		if t.ID == id {
			r.transactions = append(r.transactions[:i], r.transactions[i+1:]...)
			return nil
		}
	}
	return nil
}

var _ adapter.SharedTransactionRepository = (*fakeSharedTransactionRepository)(nil)

func assertSharedAccountCode(t *testing.T, err error, want domainerror.SharedAccountErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	var saErr *domainerror.SharedAccountError
	if !errors.As(err, &saErr) {
		t.Fatalf("expected SharedAccountError, got %T: %v", err, err)
	}
	if saErr.Code != want {
		t.Errorf("expected code %s, got %s", want, saErr.Code)
	}
}

func TestCreateAccountUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an account with an invite code", func(t *testing.T) {
		repo := newFakeAccountRepository()
		uc := NewCreateAccountUseCase(repo)

		out, err := uc.Execute(ctx, CreateAccountInput{OwnerID: 1, Name: "Household"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Account.ID == 0 {
			t.Error("expected the account id to be assigned")
		}
		if !strings.HasPrefix(out.Account.InviteCode, inviteCodePrefix) {
			t.Errorf("expected invite code to start with %q, got %q", inviteCodePrefix, out.Account.InviteCode)
		}
		if len(out.Account.InviteCode) != len(inviteCodePrefix)+inviteCodeLength {
			t.Errorf("unexpected invite code length: %q", out.Account.InviteCode)
		}
		if len(repo.members) != 0 {
			t.Error("the owner must not get a membership row")
		}
	})

	t.Run("rejects a blank name", func(t *testing.T) {
		uc := NewCreateAccountUseCase(newFakeAccountRepository())
		_, err := uc.Execute(ctx, CreateAccountInput{OwnerID: 1, Name: "   "})
		assertSharedAccountCode(t, err, domainerror.ErrCodeMissingAccountFields)
	})

	t.Run("invite codes differ between accounts", func(t *testing.T) {
		repo := newFakeAccountRepository()
		uc := NewCreateAccountUseCase(repo)

		a, _ := uc.Execute(ctx, CreateAccountInput{OwnerID: 1, Name: "A"})
		b, _ := uc.Execute(ctx, CreateAccountInput{OwnerID: 1, Name: "B"})
		if a.Account.InviteCode == b.Account.InviteCode {
			t.Error("expected distinct invite codes")
		}
	})
}

func TestJoinAccountUseCase(t *testing.T) {
	ctx := context.Background()

	setup := func() (*JoinAccountUseCase, *fakeAccountRepository, *entity.SharedAccount) {
		repo := newFakeAccountRepository()
		account := entity.NewSharedAccount(1, "Household", "sh_abc123def")
		_ = repo.CreateAccount(ctx, account)
		return NewJoinAccountUseCase(repo), repo, account
	}

	t.Run("joins by invite code", func(t *testing.T) {
		uc, repo, account := setup()

		out, err := uc.Execute(ctx, JoinAccountInput{UserID: 2, InviteCode: "sh_abc123def"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Account.ID != account.ID {
			t.Errorf("expected account %d, got %d", account.ID, out.Account.ID)
		}
		if len(repo.members) != 1 {
			t.Fatalf("expected 1 membership row, got %d", len(repo.members))
		}
		if repo.members[0].UserID != 2 {
			t.Errorf("membership created for wrong user %d", repo.members[0].UserID)
		}
	})

	t.Run("owner joining own account is already a member", func(t *testing.T) {
		uc, _, _ := setup()
		_, err := uc.Execute(ctx, JoinAccountInput{UserID: 1, InviteCode: "sh_abc123def"})
		assertSharedAccountCode(t, err, domainerror.ErrCodeAlreadyMember)
	})

	t.Run("joining twice is already a member", func(t *testing.T) {
		uc, _, _ := setup()
		if _, err := uc.Execute(ctx, JoinAccountInput{UserID: 2, InviteCode: "sh_abc123def"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := uc.Execute(ctx, JoinAccountInput{UserID: 2, InviteCode: "sh_abc123def"})
		assertSharedAccountCode(t, err, domainerror.ErrCodeAlreadyMember)
	})

	t.Run("unknown invite code is account not found", func(t *testing.T) {
		uc, _, _ := setup()
		_, err := uc.Execute(ctx, JoinAccountInput{UserID: 2, InviteCode: "sh_unknown00"})
		assertSharedAccountCode(t, err, domainerror.ErrCodeAccountNotFound)
	})
}

func TestLeaveAccountUseCase(t *testing.T) {
	ctx := context.Background()

	setup := func() (*LeaveAccountUseCase, *fakeAccountRepository, *entity.SharedAccount) {
		repo := newFakeAccountRepository()
		account := entity.NewSharedAccount(1, "Household", "sh_abc123def")
		_ = repo.CreateAccount(ctx, account)
		_ = repo.CreateMember(ctx, entity.NewSharedMember(account.ID, 2))
		return NewLeaveAccountUseCase(repo), repo, account
	}

	t.Run("removes the caller's membership", func(t *testing.T) {
		uc, repo, account := setup()
		if err := uc.Execute(ctx, LeaveAccountInput{UserID: 2, AccountID: account.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.members) != 0 {
			t.Errorf("expected membership removed, %d rows left", len(repo.members))
		}
	})

	t.Run("owner cannot leave", func(t *testing.T) {
		// The owner's membership is implicit and never stored as a row.
		uc, _, account := setup()
		err := uc.Execute(ctx, LeaveAccountInput{UserID: 1, AccountID: account.ID})
		assertSharedAccountCode(t, err, domainerror.ErrCodeNotMember)
	})

	t.Run("non-member cannot leave", func(t *testing.T) {
		uc, _, account := setup()
		err := uc.Execute(ctx, LeaveAccountInput{UserID: 3, AccountID: account.ID})
		assertSharedAccountCode(t, err, domainerror.ErrCodeNotMember)
	})
}

func TestUpdateAccountUseCase(t *testing.T) {
	ctx := context.Background()

	setup := func() (*UpdateAccountUseCase, *fakeAccountRepository, *entity.SharedAccount) {
		repo := newFakeAccountRepository()
		account := entity.NewSharedAccount(1, "Household", "sh_abc123def")
		_ = repo.CreateAccount(ctx, account)
		_ = repo.CreateMember(ctx, entity.NewSharedMember(account.ID, 2))
		return NewUpdateAccountUseCase(repo), repo, account
	}

	t.Run("owner renames the account", func(t *testing.T) {
		uc, repo, account := setup()
		out, err := uc.Execute(ctx, UpdateAccountInput{CallerID: 1, AccountID: account.ID, Name: "  Family Budget  "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Account.Name != "Family Budget" {
			t.Errorf("expected trimmed name, got %q", out.Account.Name)
		}
		stored, _ := repo.FindAccountByID(ctx, account.ID)
		if stored.Name != "Family Budget" {
			t.Errorf("expected the rename persisted, got %q", stored.Name)
		}
		if stored.InviteCode != "sh_abc123def" {
			t.Errorf("rename must not touch the invite code, got %q", stored.InviteCode)
		}
	})

	t.Run("member cannot rename the account", func(t *testing.T) {
		uc, repo, account := setup()
		_, err := uc.Execute(ctx, UpdateAccountInput{CallerID: 2, AccountID: account.ID, Name: "Hijacked"})
		assertSharedAccountCode(t, err, domainerror.ErrCodeNotAccountOwner)
		stored, _ := repo.FindAccountByID(ctx, account.ID)
		if stored.Name != "Household" {
			t.Errorf("expected the name unchanged, got %q", stored.Name)
		}
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		uc, _, account := setup()
		_, err := uc.Execute(ctx, UpdateAccountInput{CallerID: 1, AccountID: account.ID, Name: "   "})
		assertSharedAccountCode(t, err, domainerror.ErrCodeMissingAccountFields)
	})

	t.Run("unknown account is not found", func(t *testing.T) {
		uc, _, _ := setup()
		_, err := uc.Execute(ctx, UpdateAccountInput{CallerID: 1, AccountID: 9999, Name: "New"})
		assertSharedAccountCode(t, err, domainerror.ErrCodeAccountNotFound)
	})
}

func TestDeleteAccountUseCase(t *testing.T) {
	ctx := context.Background()

	setup := func() (*DeleteAccountUseCase, *fakeAccountRepository, *entity.SharedAccount) {
		repo := newFakeAccountRepository()
		account := entity.NewSharedAccount(1, "Household", "sh_abc123def")
		_ = repo.CreateAccount(ctx, account)
		_ = repo.CreateMember(ctx, entity.NewSharedMember(account.ID, 2))
		return NewDeleteAccountUseCase(repo), repo, account
	}

	t.Run("owner deletes the account and memberships cascade", func(t *testing.T) {
		uc, repo, account := setup()
		if err := uc.Execute(ctx, DeleteAccountInput{CallerID: 1, AccountID: account.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.accounts) != 0 || len(repo.members) != 0 {
			t.Errorf("expected account and memberships removed, got %d accounts %d members", len(repo.accounts), len(repo.members))
		}
	})

	t.Run("member cannot delete the account", func(t *testing.T) {
		uc, _, account := setup()
		err := uc.Execute(ctx, DeleteAccountInput{CallerID: 2, AccountID: account.ID})
		assertSharedAccountCode(t, err, domainerror.ErrCodeNotAccountOwner)
	})
}

func TestListMembersUseCase(t *testing.T) {
	ctx := context.Background()

	repo := newFakeAccountRepository()
	account := entity.NewSharedAccount(1, "Household", "sh_abc123def")
	_ = repo.CreateAccount(ctx, account)
	_ = repo.CreateMember(ctx, entity.NewSharedMember(account.ID, 2))
	uc := NewListMembersUseCase(repo)

	t.Run("owner and members may list", func(t *testing.T) {
		for _, callerID := range []int64{1, 2} {
			if _, err := uc.Execute(ctx, ListMembersInput{CallerID: callerID, AccountID: account.ID}); err != nil {
				t.Errorf("caller %d: unexpected error: %v", callerID, err)
			}
		}
	})

	t.Run("outsider is denied", func(t *testing.T) {
		_, err := uc.Execute(ctx, ListMembersInput{CallerID: 3, AccountID: account.ID})
		assertSharedAccountCode(t, err, domainerror.ErrCodeAccountAccessDenied)
	})
}

func TestDeleteTransactionUseCase(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	setup := func() (*DeleteTransactionUseCase, *fakeSharedTransactionRepository, *entity.SharedAccount, *entity.SharedTransaction) {
		accountRepo := newFakeAccountRepository()
		account := entity.NewSharedAccount(1, "Household", "sh_abc123def")
		_ = accountRepo.CreateAccount(ctx, account)
		_ = accountRepo.CreateMember(ctx, entity.NewSharedMember(account.ID, 2))
		_ = accountRepo.CreateMember(ctx, entity.NewSharedMember(account.ID, 3))

		txRepo := newFakeSharedTransactionRepository()
		tx := entity.NewSharedTransaction(account.ID, 2, entity.KindExpense, nil, decimal.NewFromInt(30), date, "pizza")
		_ = txRepo.Create(ctx, tx)

		return NewDeleteTransactionUseCase(accountRepo, txRepo), txRepo, account, tx
	}

	t.Run("creator deletes own transaction", func(t *testing.T) {
		uc, txRepo, account, tx := setup()
		if err := uc.Execute(ctx, DeleteTransactionInput{UserID: 2, AccountID: account.ID, TransactionID: tx.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(txRepo.transactions) != 0 {
			t.Error("expected the transaction to be deleted")
		}
	})

	t.Run("owner deletes another member's transaction", func(t *testing.T) {
		uc, txRepo, account, tx := setup()
		if err := uc.Execute(ctx, DeleteTransactionInput{UserID: 1, AccountID: account.ID, TransactionID: tx.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(txRepo.transactions) != 0 {
			t.Error("expected the transaction to be deleted")
		}
	})

	t.Run("another member may not delete", func(t *testing.T) {
		uc, txRepo, account, tx := setup()
		err := uc.Execute(ctx, DeleteTransactionInput{UserID: 3, AccountID: account.ID, TransactionID: tx.ID})
		assertSharedAccountCode(t, err, domainerror.ErrCodeNotTransactionCreator)
		if len(txRepo.transactions) != 1 {
			t.Error("expected the transaction to survive")
		}
	})

	t.Run("deleting an absent transaction succeeds", func(t *testing.T) {
		uc, _, account, _ := setup()
		if err := uc.Execute(ctx, DeleteTransactionInput{UserID: 2, AccountID: account.ID, TransactionID: 9999}); err != nil {
			t.Errorf("expected nil for absent transaction, got %v", err)
		}
	})

	t.Run("outsider is denied before existence is checked", func(t *testing.T) {
		uc, _, account, tx := setup()
		err := uc.Execute(ctx, DeleteTransactionInput{UserID: 42, AccountID: account.ID, TransactionID: tx.ID})
		assertSharedAccountCode(t, err, domainerror.ErrCodeAccountAccessDenied)
	})
}

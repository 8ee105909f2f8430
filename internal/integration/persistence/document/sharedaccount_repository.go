// Package document implements the JSON document store backend.
package document

import (
	"context"
	"sort"

	"github.com/auracash/backend/internal/application/adapter"
	"github.com/auracash/backend/internal/domain/entity"
	domainerror "github.com/auracash/backend/internal/domain/error"
)

// sharedAccountRepository implements adapter.SharedAccountRepository on the
// document store. The shared transaction sub-ledger is not available in this
// mode, so DeleteAccount only cascades memberships.
type sharedAccountRepository struct {
	store *Store
}

// NewSharedAccountRepository creates a document-backed shared account repository.
func NewSharedAccountRepository(store *Store) adapter.SharedAccountRepository {
	return &sharedAccountRepository{store: store}
}

// CreateAccount stores a new account and assigns its id.
func (r *sharedAccountRepository) CreateAccount(ctx context.Context, account *entity.SharedAccount) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	account.ID = s.NextID()
	s.accounts = append(s.accounts, account)
	return s.save("shared_accounts", s.accounts)
}

// UpdateAccount persists changes to an existing account.
func (r *sharedAccountRepository) UpdateAccount(ctx context.Context, account *entity.SharedAccount) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.accounts {
		if a.ID == account.ID {
			s.accounts[i] = account
			return s.save("shared_accounts", s.accounts)
		}
	}
	return accountNotFound()
}

// FindAccountByID retrieves an account by id.
func (r *sharedAccountRepository) FindAccountByID(ctx context.Context, id int64) (*entity.SharedAccount, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, accountNotFound()
}

// FindAccountByCode retrieves an account by invite code.
func (r *sharedAccountRepository) FindAccountByCode(ctx context.Context, code string) (*entity.SharedAccount, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.accounts {
		if a.InviteCode == code {
			return a, nil
		}
	}
	return nil, accountNotFound()
}

// FindAccountsByUser retrieves accounts the user owns or belongs to, with
// owner name and member count denormalized in. The count includes the owner.
func (r *sharedAccountRepository) FindAccountsByUser(ctx context.Context, userID int64) ([]*entity.AccountWithMembers, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var accounts []*entity.AccountWithMembers
	for _, a := range s.accounts {
		if a.OwnerID != userID && !s.isMemberLocked(a.ID, userID) {
			continue
		}

		memberCount := 1
		for _, m := range s.members {
			if m.AccountID == a.ID {
				memberCount++
			}
		}

		accounts = append(accounts, &entity.AccountWithMembers{
			Account:     a,
			OwnerName:   s.userNameLocked(a.OwnerID),
			MemberCount: memberCount,
		})
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Account.CreatedAt.After(accounts[j].Account.CreatedAt)
	})
	return accounts, nil
}

// CreateMember stores a membership row and assigns its id.
func (r *sharedAccountRepository) CreateMember(ctx context.Context, member *entity.SharedMember) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	member.ID = s.NextID()
	s.members = append(s.members, member)
	return s.save("shared_members", s.members)
}

// IsMember reports whether a membership row exists for the user.
func (r *sharedAccountRepository) IsMember(ctx context.Context, accountID, userID int64) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.isMemberLocked(accountID, userID), nil
}

// DeleteMember removes the user's membership row.
func (r *sharedAccountRepository) DeleteMember(ctx context.Context, accountID, userID int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.members {
		if m.AccountID == accountID && m.UserID == userID {
			s.members = append(s.members[:i], s.members[i+1:]...)
			return s.save("shared_members", s.members)
		}
	}
	return nil
}

// FindMembers lists the account's members with user details: the owner first,
// then members ordered by name.
func (r *sharedAccountRepository) FindMembers(ctx context.Context, accountID int64) ([]*entity.AccountMember, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var account *entity.SharedAccount
	for _, a := range s.accounts {
		if a.ID == accountID {
			account = a
			break
		}
	}
	if account == nil {
		return nil, accountNotFound()
	}

	var members []*entity.AccountMember
	for _, u := range s.users {
		if u.ID == account.OwnerID {
			members = append(members, &entity.AccountMember{
				UserID:  u.ID,
				Name:    u.Name,
				Email:   u.Email,
				IsOwner: true,
			})
			break
		}
	}

	var rest []*entity.AccountMember
	for _, m := range s.members {
		if m.AccountID != accountID {
			continue
		}
		for _, u := range s.users {
			if u.ID == m.UserID {
				rest = append(rest, &entity.AccountMember{
					UserID: u.ID,
					Name:   u.Name,
					Email:  u.Email,
				})
				break
			}
		}
	}
	sort.Slice(rest, func(i, j int) bool {
		return rest[i].Name < rest[j].Name
	})

	return append(members, rest...), nil
}

// DeleteAccount removes the account and cascades all memberships.
func (r *sharedAccountRepository) DeleteAccount(ctx context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.members[:0]
	for _, m := range s.members {
		if m.AccountID != id {
			kept = append(kept, m)
		}
	}
	s.members = kept
	if err := s.save("shared_members", s.members); err != nil {
		return err
	}

	for i, a := range s.accounts {
		if a.ID == id {
			s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
			break
		}
	}
	return s.save("shared_accounts", s.accounts)
}

func (s *Store) isMemberLocked(accountID, userID int64) bool {
	for _, m := range s.members {
		if m.AccountID == accountID && m.UserID == userID {
			return true
		}
	}
	return false
}

func (s *Store) userNameLocked(userID int64) string {
	for _, u := range s.users {
		if u.ID == userID {
			return u.Name
		}
	}
	return ""
}

// accountNotFound builds the coded not-found error for shared accounts.
func accountNotFound() error {
	return domainerror.NewSharedAccountError(
		domainerror.ErrCodeAccountNotFound,
		"shared account not found",
		domainerror.ErrAccountNotFound,
	)
}

// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/auracash/backend/internal/domain/entity"
)

// CreateAccountRequest represents the request body for shared account creation.
type CreateAccountRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// UpdateAccountRequest represents the request body for renaming a shared account.
type UpdateAccountRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// JoinAccountRequest represents the request body for joining a shared account.
type JoinAccountRequest struct {
	InviteCode string `json:"invite_code" binding:"required"`
}

// AccountResponse represents a single shared account in API responses.
// The invite code is only included for accounts the caller owns.
type AccountResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	InviteCode  string    `json:"invite_code,omitempty"`
	OwnerID     int64     `json:"owner_id"`
	OwnerName   string    `json:"owner_name,omitempty"`
	MemberCount int       `json:"member_count,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// AccountListResponse represents the response for listing shared accounts.
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// MemberResponse represents one account member in API responses.
type MemberResponse struct {
	UserID  int64  `json:"user_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsOwner bool   `json:"is_owner"`
}

// MemberListResponse represents the response for listing account members.
type MemberListResponse struct {
	Members []MemberResponse `json:"members"`
}

// CreateSharedTransactionRequest represents the request body for shared
// transaction creation.
type CreateSharedTransactionRequest struct {
	Kind        string  `json:"kind" binding:"required,oneof=expense income"`
	CategoryID  *int64  `json:"category_id,omitempty"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description,omitempty" binding:"omitempty,max=255"`
}

// SharedTransactionResponse represents a shared transaction in API responses.
type SharedTransactionResponse struct {
	ID           int64     `json:"id"`
	AccountID    int64     `json:"account_id"`
	UserID       int64     `json:"user_id"`
	UserName     string    `json:"user_name,omitempty"`
	Kind         string    `json:"kind"`
	CategoryID   *int64    `json:"category_id,omitempty"`
	CategoryName string    `json:"category_name"`
	Amount       float64   `json:"amount"`
	Date         string    `json:"date"`
	Description  string    `json:"description,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// SharedTransactionListResponse represents the shared sub-ledger listing.
type SharedTransactionListResponse struct {
	Transactions []SharedTransactionResponse `json:"transactions"`
}

// ToAccountResponse converts a SharedAccount to an AccountResponse DTO.
// includeCode controls whether the invite code is exposed.
func ToAccountResponse(account *entity.SharedAccount, includeCode bool) AccountResponse {
	response := AccountResponse{
		ID:        account.ID,
		Name:      account.Name,
		OwnerID:   account.OwnerID,
		CreatedAt: account.CreatedAt,
	}
	if includeCode {
		response.InviteCode = account.InviteCode
	}
	return response
}

// ToAccountListResponse converts listed accounts to an AccountListResponse.
// callerID decides per account whether the invite code is exposed.
func ToAccountListResponse(accounts []*entity.AccountWithMembers, callerID int64) AccountListResponse {
	out := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		response := ToAccountResponse(a.Account, a.Account.OwnerID == callerID)
		response.OwnerName = a.OwnerName
		response.MemberCount = a.MemberCount
		out[i] = response
	}
	return AccountListResponse{Accounts: out}
}

// ToMemberListResponse converts account members to a MemberListResponse.
func ToMemberListResponse(members []*entity.AccountMember) MemberListResponse {
	out := make([]MemberResponse, len(members))
	for i, m := range members {
		out[i] = MemberResponse{
			UserID:  m.UserID,
			Name:    m.Name,
			Email:   m.Email,
			IsOwner: m.IsOwner,
		}
	}
	return MemberListResponse{Members: out}
}

// ToSharedTransactionResponse converts a shared transaction to a DTO.
func ToSharedTransactionResponse(t *entity.SharedTransaction, categoryName, userName string) SharedTransactionResponse {
	return SharedTransactionResponse{
		ID:           t.ID,
		AccountID:    t.AccountID,
		UserID:       t.UserID,
		UserName:     userName,
		Kind:         string(t.Kind),
		CategoryID:   t.CategoryID,
		CategoryName: categoryName,
		Amount:       t.Amount.InexactFloat64(),
		Date:         t.Date.Format(dateLayout),
		Description:  t.Description,
		CreatedAt:    t.CreatedAt,
	}
}

// ToSharedTransactionListResponse converts the listed sub-ledger to a DTO.
func ToSharedTransactionListResponse(transactions []*entity.SharedTransactionWithNames) SharedTransactionListResponse {
	out := make([]SharedTransactionResponse, len(transactions))
	for i, t := range transactions {
		out[i] = ToSharedTransactionResponse(t.Transaction, t.CategoryName, t.UserName)
	}
	return SharedTransactionListResponse{Transactions: out}
}

// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/auracash/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Kind        string  `json:"kind" binding:"required,oneof=expense income"`
	CategoryID  *int64  `json:"category_id,omitempty"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description,omitempty" binding:"omitempty,max=255"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID           int64     `json:"id"`
	Kind         string    `json:"kind"`
	CategoryID   *int64    `json:"category_id,omitempty"`
	CategoryName string    `json:"category_name"`
	Amount       float64   `json:"amount"`
	Date         string    `json:"date"`
	Description  string    `json:"description,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a transaction and its category name to a DTO.
func ToTransactionResponse(t *entity.Transaction, categoryName string) TransactionResponse {
	return TransactionResponse{
		ID:           t.ID,
		Kind:         string(t.Kind),
		CategoryID:   t.CategoryID,
		CategoryName: categoryName,
		Amount:       t.Amount.InexactFloat64(),
		Date:         t.Date.Format(dateLayout),
		Description:  t.Description,
		CreatedAt:    t.CreatedAt,
	}
}

// ToTransactionListResponse converts listed transactions to a response DTO.
func ToTransactionListResponse(transactions []*entity.TransactionWithCategory) TransactionListResponse {
	out := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		out[i] = ToTransactionResponse(t.Transaction, t.CategoryName)
	}
	return TransactionListResponse{Transactions: out}
}

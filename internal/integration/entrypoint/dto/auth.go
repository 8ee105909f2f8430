// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/auracash/backend/internal/domain/entity"
)

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=100"`
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=8"`
	TaxID       string  `json:"tax_id,omitempty"`
	Income      float64 `json:"income,omitempty" binding:"omitempty,gte=0"`
	ReceivesAid bool    `json:"receives_aid,omitempty"`
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents the response for authentication endpoints.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse represents the user data in API responses.
type UserResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	TaxID       string    `json:"tax_id,omitempty"`
	Income      float64   `json:"income"`
	ReceivesAid bool      `json:"receives_aid"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		TaxID:       user.TaxID,
		Income:      user.Income.InexactFloat64(),
		ReceivesAid: user.ReceivesAid,
		CreatedAt:   user.CreatedAt,
	}
}

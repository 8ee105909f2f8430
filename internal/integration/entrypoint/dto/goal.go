// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/auracash/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	CategoryID   int64   `json:"category_id" binding:"required"`
	TargetAmount float64 `json:"target_amount" binding:"required,gt=0"`
	PeriodStart  string  `json:"period_start" binding:"required"`
	PeriodEnd    string  `json:"period_end" binding:"required"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID           int64     `json:"id"`
	CategoryID   int64     `json:"category_id"`
	CategoryName string    `json:"category_name,omitempty"`
	TargetAmount float64   `json:"target_amount"`
	PeriodStart  string    `json:"period_start"`
	PeriodEnd    string    `json:"period_end"`
	Spent        float64   `json:"spent"`
	Progress     float64   `json:"progress"`
	CreatedAt    time.Time `json:"created_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:           g.ID,
		CategoryID:   g.CategoryID,
		TargetAmount: g.TargetAmount.InexactFloat64(),
		PeriodStart:  g.PeriodStart.Format(dateLayout),
		PeriodEnd:    g.PeriodEnd.Format(dateLayout),
		CreatedAt:    g.CreatedAt,
	}
}

// ToGoalResponseWithProgress converts a GoalWithProgress to a GoalResponse DTO.
func ToGoalResponseWithProgress(g *entity.GoalWithProgress) GoalResponse {
	response := ToGoalResponse(g.Goal)
	response.CategoryName = g.CategoryName
	response.Spent = g.Spent.InexactFloat64()
	response.Progress = g.Progress
	return response
}

// ToGoalListResponse converts a list of GoalWithProgress to GoalListResponse.
func ToGoalListResponse(goals []*entity.GoalWithProgress) GoalListResponse {
	out := make([]GoalResponse, len(goals))
	for i, g := range goals {
		out[i] = ToGoalResponseWithProgress(g)
	}
	return GoalListResponse{Goals: out}
}

package transport

import (
	"time"

	"github.com/google/uuid"
)

// LeadStatus mirrors the pipeline stages accepted on the wire.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusConverted LeadStatus = "converted"
)

// Request DTOs

type CreateLeadRequest struct {
	Name    string     `json:"name" validate:"required,min=2,max=100"`
	Email   string     `json:"email" validate:"required,email"`
	Company string     `json:"company" validate:"required,min=2,max=100"`
	Status  LeadStatus `json:"status,omitempty" validate:"omitempty,oneof=new contacted converted"`
}

type UpdateLeadRequest struct {
	Name    *string     `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Email   *string     `json:"email,omitempty" validate:"omitempty,email"`
	Company *string     `json:"company,omitempty" validate:"omitempty,min=2,max=100"`
	Status  *LeadStatus `json:"status,omitempty" validate:"omitempty,oneof=new contacted converted"`
}

type ListLeadsRequest struct {
	Page     int `form:"page" validate:"omitempty,min=1"`
	PageSize int `form:"pageSize" validate:"omitempty,min=1,max=100"`
}

// Response DTOs

type LeadResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Company   string     `json:"company"`
	Status    LeadStatus `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type ListLeadsResponse struct {
	Items    []LeadResponse `json:"items"`
	Total    int            `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
}

// ScoreResponse carries the deterministic rule-based score.
type ScoreResponse struct {
	LeadID  uuid.UUID      `json:"lead_id"`
	Score   int            `json:"score"`
	Factors map[string]int `json:"factors,omitempty"`
}

// AIScoreResponse carries the advisory AI score with its justification.
type AIScoreResponse struct {
	LeadID    uuid.UUID `json:"lead_id"`
	Score     int       `json:"score"`
	Reasoning string    `json:"reasoning"`
}

type DeleteLeadResponse struct {
	Message string `json:"message"`
}

package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateTicketRequest struct {
	RequestMessage string `json:"request_message" validate:"required,max=100"`
}

// UpdateTicketRequest is shared between the librarian resolution path
// (status + response_message) and the owner message-edit path
// (request_message). Which fields are honored depends on the caller's role.
type UpdateTicketRequest struct {
	Status          string `json:"status" validate:"omitempty"`
	ResponseMessage string `json:"response_message" validate:"omitempty,max=100"`
	RequestMessage  string `json:"request_message" validate:"omitempty,max=100"`
}

// Response DTOs

type TicketResponse struct {
	ID              uuid.UUID     `json:"id"`
	RequestMessage  string        `json:"request_message"`
	ResponseMessage *string       `json:"response_message,omitempty"`
	Status          string        `json:"status"`
	User            *UserResponse `json:"user,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
}

type TicketListResponse struct {
	Tickets []TicketResponse `json:"tickets"`
	Total   int              `json:"total"`
}

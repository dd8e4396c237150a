package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateLoanRequest struct {
	BookID int `json:"book_id" validate:"required,min=1"`
}

// UpdateLoanStatusRequest carries the target lifecycle status. The status
// value is validated by the loan engine, not the DTO, so an unknown status
// surfaces as a business-rule error rather than a field error.
type UpdateLoanStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Response DTOs

type LoanResponse struct {
	ID            uuid.UUID     `json:"id"`
	Status        string        `json:"status"`
	RequestedDate time.Time     `json:"requested_date"`
	IssuedDate    *time.Time    `json:"issued_date,omitempty"`
	ReturnedDate  *time.Time    `json:"returned_date,omitempty"`
	Book          *BookResponse `json:"book,omitempty"`
	User          *UserResponse `json:"user,omitempty"`
}

type LoanListResponse struct {
	Loans []LoanResponse `json:"loans"`
	Total int            `json:"total"`
}

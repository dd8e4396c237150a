package entity

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus represents the lifecycle state of a book loan request.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusRejected RequestStatus = "rejected"
	RequestStatusIssued   RequestStatus = "issued"
	RequestStatusReturned RequestStatus = "returned"
)

// IsValid reports whether s is one of the defined request statuses.
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusRejected, RequestStatusIssued, RequestStatusReturned:
		return true
	}
	return false
}

// CanTransitionTo reports whether moving from s to target is a legal lifecycle
// step. Rejected and returned are terminal states.
func (s RequestStatus) CanTransitionTo(target RequestStatus) bool {
	switch s {
	case RequestStatusPending:
		return target == RequestStatusIssued || target == RequestStatusRejected
	case RequestStatusIssued:
		return target == RequestStatusReturned
	}
	return false
}

// MaxIssuedLoans is the most books a single user may have issued at once.
const MaxIssuedLoans = 3

// BookRequest represents one user's attempt to borrow one book through its
// lifecycle. IssuedDate and ReturnedDate are each written exactly once, at
// the corresponding transition.
type BookRequest struct {
	ID            uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID     `gorm:"type:uuid;not null;index" json:"user_id"`
	BookID        int           `gorm:"not null;index" json:"book_id"`
	Status        RequestStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	RequestedDate time.Time     `gorm:"type:date;not null" json:"requested_date"`
	IssuedDate    *time.Time    `gorm:"type:date" json:"issued_date,omitempty"`
	ReturnedDate  *time.Time    `gorm:"type:date" json:"returned_date,omitempty"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Book Book `gorm:"foreignKey:BookID" json:"book,omitempty"`
}

func (BookRequest) TableName() string {
	return "book_requests"
}

// IsPending checks if the loan is awaiting a librarian decision.
func (r *BookRequest) IsPending() bool {
	return r.Status == RequestStatusPending
}

// IsIssued checks if the book is currently checked out on this loan.
func (r *BookRequest) IsIssued() bool {
	return r.Status == RequestStatusIssued
}

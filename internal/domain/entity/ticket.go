package entity

import (
	"time"

	"github.com/google/uuid"
)

// TicketStatus represents the lifecycle state of a book-addition ticket.
type TicketStatus string

const (
	TicketStatusPending  TicketStatus = "pending"
	TicketStatusRejected TicketStatus = "rejected"
	TicketStatusAccepted TicketStatus = "accepted"
)

// IsResolution reports whether s is a status a librarian may resolve a
// pending ticket to. Pending itself is not a resolution.
func (s TicketStatus) IsResolution() bool {
	return s == TicketStatusAccepted || s == TicketStatusRejected
}

// Ticket represents a user's request to have a new book added to the
// catalog, routed to librarians for approval.
type Ticket struct {
	ID              uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID    `gorm:"type:uuid;not null;index" json:"user_id"`
	RequestMessage  string       `gorm:"type:varchar(100);not null" json:"request_message"`
	ResponseMessage *string      `gorm:"type:varchar(100)" json:"response_message,omitempty"`
	Status          TicketStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt       time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Ticket) TableName() string {
	return "tickets"
}

// IsPending checks if the ticket is still awaiting a librarian response.
func (t *Ticket) IsPending() bool {
	return t.Status == TicketStatusPending
}

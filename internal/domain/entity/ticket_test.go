package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicketStatusIsResolution(t *testing.T) {
	assert.True(t, TicketStatusAccepted.IsResolution())
	assert.True(t, TicketStatusRejected.IsResolution())
	assert.False(t, TicketStatusPending.IsResolution())
	assert.False(t, TicketStatus("done").IsResolution())
}

func TestTicketIsPending(t *testing.T) {
	assert.True(t, (&Ticket{Status: TicketStatusPending}).IsPending())
	assert.False(t, (&Ticket{Status: TicketStatusAccepted}).IsPending())
	assert.False(t, (&Ticket{Status: TicketStatusRejected}).IsPending())
}

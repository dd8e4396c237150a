package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestStatusIsValid(t *testing.T) {
	assert.True(t, RequestStatusPending.IsValid())
	assert.True(t, RequestStatusRejected.IsValid())
	assert.True(t, RequestStatusIssued.IsValid())
	assert.True(t, RequestStatusReturned.IsValid())
	assert.False(t, RequestStatus("cancelled").IsValid())
	assert.False(t, RequestStatus("").IsValid())
}

func TestRequestStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    RequestStatus
		to      RequestStatus
		allowed bool
	}{
		{"pending to issued", RequestStatusPending, RequestStatusIssued, true},
		{"pending to rejected", RequestStatusPending, RequestStatusRejected, true},
		{"pending to returned", RequestStatusPending, RequestStatusReturned, false},
		{"pending to pending", RequestStatusPending, RequestStatusPending, false},
		{"issued to returned", RequestStatusIssued, RequestStatusReturned, true},
		{"issued to rejected", RequestStatusIssued, RequestStatusRejected, false},
		{"issued to pending", RequestStatusIssued, RequestStatusPending, false},
		{"rejected is terminal", RequestStatusRejected, RequestStatusIssued, false},
		{"rejected cannot return", RequestStatusRejected, RequestStatusReturned, false},
		{"returned is terminal", RequestStatusReturned, RequestStatusIssued, false},
		{"returned cannot pend", RequestStatusReturned, RequestStatusPending, false},
		{"unknown source", RequestStatus("cancelled"), RequestStatusIssued, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestBookRequestStatusHelpers(t *testing.T) {
	pending := &BookRequest{Status: RequestStatusPending}
	assert.True(t, pending.IsPending())
	assert.False(t, pending.IsIssued())

	issued := &BookRequest{Status: RequestStatusIssued}
	assert.False(t, issued.IsPending())
	assert.True(t, issued.IsIssued())
}

package converter

import (
	"go-library-management/internal/delivery/dto"
	"go-library-management/internal/domain/entity"

	"github.com/google/uuid"
)

func TicketToResponse(ticket *entity.Ticket) *dto.TicketResponse {
	if ticket == nil {
		return nil
	}

	response := &dto.TicketResponse{
		ID:              ticket.ID,
		RequestMessage:  ticket.RequestMessage,
		ResponseMessage: ticket.ResponseMessage,
		Status:          string(ticket.Status),
		CreatedAt:       ticket.CreatedAt,
	}

	if ticket.User.ID != uuid.Nil {
		response.User = UserToResponse(&ticket.User)
	}

	return response
}

func TicketsToResponses(tickets []entity.Ticket) []dto.TicketResponse {
	responses := make([]dto.TicketResponse, len(tickets))
	for i, ticket := range tickets {
		responses[i] = *TicketToResponse(&ticket)
	}
	return responses
}

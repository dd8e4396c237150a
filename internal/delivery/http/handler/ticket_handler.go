package handler

import (
	"encoding/json"
	"net/http"

	"go-library-management/internal/delivery/dto"
	"go-library-management/internal/usecase"
	"go-library-management/pkg/response"
	"go-library-management/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type TicketHandler struct {
	ticketUsecase usecase.TicketUsecase
	validator     *validator.CustomValidator
}

func NewTicketHandler(ticketUsecase usecase.TicketUsecase, validator *validator.CustomValidator) *TicketHandler {
	return &TicketHandler{
		ticketUsecase: ticketUsecase,
		validator:     validator,
	}
}

func (h *TicketHandler) GetTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.ticketUsecase.GetTickets(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get tickets")
		return
	}

	response.Success(w, http.StatusOK, "Tickets retrieved successfully", tickets)
}

func (h *TicketHandler) GetTicket(w http.ResponseWriter, r *http.Request) {
	ticketID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid ticket ID", nil)
		return
	}

	ticket, err := h.ticketUsecase.GetTicket(r.Context(), ticketID)
	if err != nil {
		switch err {
		case usecase.ErrTicketNotFound:
			response.NotFound(w, "Ticket not found")
		default:
			response.InternalServerError(w, "Failed to get ticket")
		}
		return
	}

	response.Success(w, http.StatusOK, "Ticket retrieved successfully", ticket)
}

func (h *TicketHandler) SubmitTicket(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	ticket, err := h.ticketUsecase.SubmitTicket(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to submit ticket")
		}
		return
	}

	response.Created(w, "Ticket submitted successfully", ticket)
}

// UpdateTicket is role-sensitive: librarians resolve tickets, owners edit
// their request message. Touching a field the caller's role does not own is
// a business-rule violation (403).
func (h *TicketHandler) UpdateTicket(w http.ResponseWriter, r *http.Request) {
	ticketID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid ticket ID", nil)
		return
	}

	var req dto.UpdateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	ticket, err := h.ticketUsecase.UpdateTicket(r.Context(), ticketID, &req)
	if err != nil {
		switch err {
		case usecase.ErrTicketNotFound:
			response.NotFound(w, "Ticket not found")
		case usecase.ErrTicketNotOwned:
			response.Forbidden(w, "Ticket does not belong to you")
		case usecase.ErrInvalidTicketStatus:
			response.Forbidden(w, "Ticket status is not valid")
		case usecase.ErrTicketAlreadyResolved:
			response.Conflict(w, "Ticket has already been resolved")
		case usecase.ErrFieldNotAllowed:
			response.Forbidden(w, "You are not authorized to update that field")
		default:
			response.InternalServerError(w, "Failed to update ticket")
		}
		return
	}

	response.Accepted(w, "Ticket updated successfully", ticket)
}

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

type LoanHandler struct {
	loanUsecase usecase.LoanUsecase
	validator   *validator.CustomValidator
}

func NewLoanHandler(loanUsecase usecase.LoanUsecase, validator *validator.CustomValidator) *LoanHandler {
	return &LoanHandler{
		loanUsecase: loanUsecase,
		validator:   validator,
	}
}

func (h *LoanHandler) GetLoans(w http.ResponseWriter, r *http.Request) {
	loans, err := h.loanUsecase.GetLoans(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get loans")
		return
	}

	response.Success(w, http.StatusOK, "Loans retrieved successfully", loans)
}

func (h *LoanHandler) GetLoan(w http.ResponseWriter, r *http.Request) {
	loanID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid loan ID", nil)
		return
	}

	loan, err := h.loanUsecase.GetLoan(r.Context(), loanID)
	if err != nil {
		switch err {
		case usecase.ErrLoanNotFound:
			response.NotFound(w, "Loan not found")
		default:
			response.InternalServerError(w, "Failed to get loan")
		}
		return
	}

	response.Success(w, http.StatusOK, "Loan retrieved successfully", loan)
}

func (h *LoanHandler) RequestLoan(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	loan, err := h.loanUsecase.RequestLoan(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrBookNotFound:
			response.NotFound(w, "Book not found")
		case usecase.ErrLoanLimitReached:
			response.Forbidden(w, "You have already requested 3 books")
		case usecase.ErrBookNotAvailable:
			response.Forbidden(w, "The book is not available")
		default:
			response.InternalServerError(w, "Failed to create loan request")
		}
		return
	}

	response.Created(w, "Loan requested successfully", loan)
}

// UpdateLoanStatus drives the loan lifecycle. Unknown or pending targets are
// business-rule violations (403); transitions not allowed from the current
// status conflict with the loan's state (409).
func (h *LoanHandler) UpdateLoanStatus(w http.ResponseWriter, r *http.Request) {
	loanID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid loan ID", nil)
		return
	}

	var req dto.UpdateLoanStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	loan, err := h.loanUsecase.UpdateLoanStatus(r.Context(), loanID, &req)
	if err != nil {
		switch err {
		case usecase.ErrLoanNotFound:
			response.NotFound(w, "Loan not found")
		case usecase.ErrInvalidLoanStatus:
			response.Forbidden(w, "Request status is not valid")
		case usecase.ErrIllegalTransition:
			response.Conflict(w, "Loan status transition is not allowed")
		case usecase.ErrBookNotAvailable:
			response.Forbidden(w, "The book is not available")
		default:
			response.InternalServerError(w, "Failed to update loan status")
		}
		return
	}

	response.Accepted(w, "Loan status updated successfully", loan)
}

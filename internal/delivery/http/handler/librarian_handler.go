package handler

import (
	"encoding/json"
	"net/http"

	"go-library-management/internal/delivery/dto"
	"go-library-management/internal/usecase"
	"go-library-management/pkg/response"
	"go-library-management/pkg/validator"
)

// LibrarianHandler covers the admin-only librarian account management
// endpoints.
type LibrarianHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewLibrarianHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *LibrarianHandler {
	return &LibrarianHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

func (h *LibrarianHandler) GetLibrarians(w http.ResponseWriter, r *http.Request) {
	librarians, err := h.authUsecase.GetLibrarians(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get librarians")
		return
	}

	response.Success(w, http.StatusOK, "Librarians retrieved successfully", librarians)
}

func (h *LibrarianHandler) CreateLibrarian(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	librarian, err := h.authUsecase.CreateLibrarian(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.Error(w, http.StatusConflict, "Email already exists", nil)
		case usecase.ErrUsernameAlreadyExists:
			response.Error(w, http.StatusConflict, "Username already exists", nil)
		default:
			response.InternalServerError(w, "Failed to create librarian")
		}
		return
	}

	response.Created(w, "Librarian created successfully", librarian)
}

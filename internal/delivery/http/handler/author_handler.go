package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go-library-management/internal/delivery/dto"
	"go-library-management/internal/usecase"
	"go-library-management/pkg/response"
	"go-library-management/pkg/validator"

	"github.com/gorilla/mux"
)

type AuthorHandler struct {
	authorUsecase usecase.AuthorUsecase
	validator     *validator.CustomValidator
}

func NewAuthorHandler(authorUsecase usecase.AuthorUsecase, validator *validator.CustomValidator) *AuthorHandler {
	return &AuthorHandler{
		authorUsecase: authorUsecase,
		validator:     validator,
	}
}

func (h *AuthorHandler) GetAuthors(w http.ResponseWriter, r *http.Request) {
	authors, err := h.authorUsecase.GetAuthors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get authors")
		return
	}

	response.Success(w, http.StatusOK, "Authors retrieved successfully", authors)
}

func (h *AuthorHandler) GetAuthor(w http.ResponseWriter, r *http.Request) {
	authorID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid author ID", nil)
		return
	}

	author, err := h.authorUsecase.GetAuthor(r.Context(), authorID)
	if err != nil {
		switch err {
		case usecase.ErrAuthorNotFound:
			response.NotFound(w, "Author not found")
		default:
			response.InternalServerError(w, "Failed to get author")
		}
		return
	}

	response.Success(w, http.StatusOK, "Author retrieved successfully", author)
}

func (h *AuthorHandler) CreateAuthor(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAuthorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	author, err := h.authorUsecase.CreateAuthor(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.Error(w, http.StatusConflict, "Email already exists", nil)
		default:
			response.InternalServerError(w, "Failed to create author")
		}
		return
	}

	response.Created(w, "Author created successfully", author)
}

func (h *AuthorHandler) UpdateAuthor(w http.ResponseWriter, r *http.Request) {
	authorID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid author ID", nil)
		return
	}

	var req dto.UpdateAuthorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	author, err := h.authorUsecase.UpdateAuthor(r.Context(), authorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAuthorNotFound:
			response.NotFound(w, "Author not found")
		case usecase.ErrEmailAlreadyExists:
			response.Error(w, http.StatusConflict, "Email already exists", nil)
		default:
			response.InternalServerError(w, "Failed to update author")
		}
		return
	}

	response.Success(w, http.StatusOK, "Author updated successfully", author)
}

func (h *AuthorHandler) DeleteAuthor(w http.ResponseWriter, r *http.Request) {
	authorID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid author ID", nil)
		return
	}

	if err := h.authorUsecase.DeleteAuthor(r.Context(), authorID); err != nil {
		switch err {
		case usecase.ErrAuthorNotFound:
			response.NotFound(w, "Author not found")
		default:
			response.InternalServerError(w, "Failed to delete author")
		}
		return
	}

	response.Success(w, http.StatusOK, "Author deleted successfully", nil)
}

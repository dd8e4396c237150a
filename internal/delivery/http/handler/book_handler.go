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

type BookHandler struct {
	bookUsecase usecase.BookUsecase
	validator   *validator.CustomValidator
}

func NewBookHandler(bookUsecase usecase.BookUsecase, validator *validator.CustomValidator) *BookHandler {
	return &BookHandler{
		bookUsecase: bookUsecase,
		validator:   validator,
	}
}

// GetBooks lists the catalog. An optional ?search= query filters by name.
func (h *BookHandler) GetBooks(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	books, err := h.bookUsecase.GetBooks(r.Context(), search)
	if err != nil {
		response.InternalServerError(w, "Failed to get books")
		return
	}

	response.Success(w, http.StatusOK, "Books retrieved successfully", books)
}

func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	bookID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid book ID", nil)
		return
	}

	book, err := h.bookUsecase.GetBook(r.Context(), bookID)
	if err != nil {
		switch err {
		case usecase.ErrBookNotFound:
			response.NotFound(w, "Book not found")
		default:
			response.InternalServerError(w, "Failed to get book")
		}
		return
	}

	response.Success(w, http.StatusOK, "Book retrieved successfully", book)
}

func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	book, err := h.bookUsecase.CreateBook(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrAuthorNotFound:
			response.Error(w, http.StatusBadRequest, "One or more authors do not exist", nil)
		default:
			response.InternalServerError(w, "Failed to create book")
		}
		return
	}

	response.Created(w, "Book created successfully", book)
}

func (h *BookHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	bookID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid book ID", nil)
		return
	}

	var req dto.UpdateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	book, err := h.bookUsecase.UpdateBook(r.Context(), bookID, &req)
	if err != nil {
		switch err {
		case usecase.ErrBookNotFound:
			response.NotFound(w, "Book not found")
		case usecase.ErrAuthorNotFound:
			response.Error(w, http.StatusBadRequest, "One or more authors do not exist", nil)
		default:
			response.InternalServerError(w, "Failed to update book")
		}
		return
	}

	response.Success(w, http.StatusOK, "Book updated successfully", book)
}

func (h *BookHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	bookID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid book ID", nil)
		return
	}

	if err := h.bookUsecase.DeleteBook(r.Context(), bookID); err != nil {
		switch err {
		case usecase.ErrBookNotFound:
			response.NotFound(w, "Book not found")
		default:
			response.InternalServerError(w, "Failed to delete book")
		}
		return
	}

	response.Success(w, http.StatusOK, "Book deleted successfully", nil)
}

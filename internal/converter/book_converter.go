package converter

import (
	"go-library-management/internal/delivery/dto"
	"go-library-management/internal/domain/entity"
)

// BookToResponse converts a Book entity, with its authors, to BookResponse.
func BookToResponse(book *entity.Book) *dto.BookResponse {
	if book == nil {
		return nil
	}

	return &dto.BookResponse{
		ID:        book.ID,
		Name:      book.Name,
		Image:     book.Image,
		Publisher: book.Publisher,
		Inventory: book.Inventory,
		Authors:   AuthorsToResponses(book.Authors),
		CreatedAt: book.CreatedAt,
		UpdatedAt: book.UpdatedAt,
	}
}

func BooksToResponses(books []entity.Book) []dto.BookResponse {
	responses := make([]dto.BookResponse, len(books))
	for i, book := range books {
		responses[i] = *BookToResponse(&book)
	}
	return responses
}

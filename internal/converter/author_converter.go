package converter

import (
	"go-library-management/internal/delivery/dto"
	"go-library-management/internal/domain/entity"
)

func AuthorToResponse(author *entity.Author) *dto.AuthorResponse {
	if author == nil {
		return nil
	}

	return &dto.AuthorResponse{
		ID:     author.ID,
		Name:   author.Name,
		Gender: author.Gender,
		Email:  author.Email,
	}
}

func AuthorsToResponses(authors []entity.Author) []dto.AuthorResponse {
	responses := make([]dto.AuthorResponse, len(authors))
	for i, author := range authors {
		responses[i] = *AuthorToResponse(&author)
	}
	return responses
}

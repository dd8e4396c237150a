package converter

import (
	"go-library-management/internal/delivery/dto"
	"go-library-management/internal/domain/entity"

	"github.com/google/uuid"
)

// LoanToResponse converts a BookRequest entity to LoanResponse, nesting book
// and user detail when they are loaded.
func LoanToResponse(loan *entity.BookRequest) *dto.LoanResponse {
	if loan == nil {
		return nil
	}

	response := &dto.LoanResponse{
		ID:            loan.ID,
		Status:        string(loan.Status),
		RequestedDate: loan.RequestedDate,
		IssuedDate:    loan.IssuedDate,
		ReturnedDate:  loan.ReturnedDate,
	}

	if loan.Book.ID != 0 {
		response.Book = BookToResponse(&loan.Book)
	}
	if loan.User.ID != uuid.Nil {
		response.User = UserToResponse(&loan.User)
	}

	return response
}

func LoansToResponses(loans []entity.BookRequest) []dto.LoanResponse {
	responses := make([]dto.LoanResponse, len(loans))
	for i, loan := range loans {
		responses[i] = *LoanToResponse(&loan)
	}
	return responses
}

package converter

import (
	"go-library-management/internal/delivery/dto"
	"go-library-management/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Roles:     user.RoleNames(),
		CreatedAt: user.CreatedAt,
	}
}

// UsersToResponses converts a slice of User entities to UserResponse DTOs.
func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i, user := range users {
		responses[i] = *UserToResponse(&user)
	}
	return responses
}

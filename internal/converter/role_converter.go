package converter

import (
	"go-library-management/internal/delivery/dto"
	"go-library-management/internal/domain/entity"
)

func RoleToResponse(role *entity.Role) *dto.RoleResponse {
	if role == nil {
		return nil
	}

	return &dto.RoleResponse{
		ID:          role.ID,
		Name:        role.Name,
		Description: role.Description,
	}
}

func RolesToResponses(roles []entity.Role) []dto.RoleResponse {
	responses := make([]dto.RoleResponse, len(roles))
	for i, role := range roles {
		responses[i] = *RoleToResponse(&role)
	}
	return responses
}

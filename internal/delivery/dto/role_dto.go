package dto

// Request DTOs

type CreateRoleRequest struct {
	Name        string `json:"name" validate:"required,min=3,max=50"`
	Description string `json:"description" validate:"omitempty"`
}

type UpdateRoleRequest struct {
	Name        string `json:"name" validate:"omitempty,min=3,max=50"`
	Description string `json:"description" validate:"omitempty"`
}

// Response DTOs

type RoleResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type RoleListResponse struct {
	Roles []RoleResponse `json:"roles"`
	Total int            `json:"total"`
}

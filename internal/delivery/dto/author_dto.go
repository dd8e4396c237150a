package dto

// Request DTOs

type CreateAuthorRequest struct {
	Name   string `json:"name" validate:"required,max=30"`
	Gender string `json:"gender" validate:"omitempty,oneof=M F"`
	Email  string `json:"email" validate:"required,email,max=50"`
}

type UpdateAuthorRequest struct {
	Name   string `json:"name" validate:"omitempty,max=30"`
	Gender string `json:"gender" validate:"omitempty,oneof=M F"`
	Email  string `json:"email" validate:"omitempty,email,max=50"`
}

// Response DTOs

type AuthorResponse struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Gender string `json:"gender"`
	Email  string `json:"email"`
}

type AuthorListResponse struct {
	Authors []AuthorResponse `json:"authors"`
	Total   int              `json:"total"`
}

package dto

import "time"

// Request DTOs

type CreateBookRequest struct {
	Name      string `json:"name" validate:"required,max=50"`
	Publisher string `json:"publisher" validate:"required,max=50"`
	Image     string `json:"image" validate:"omitempty,max=255"`
	Inventory int    `json:"inventory" validate:"gte=0"`
	AuthorIDs []int  `json:"author_ids" validate:"required,min=1,dive,min=1"`
}

type UpdateBookRequest struct {
	Name      string `json:"name" validate:"omitempty,max=50"`
	Publisher string `json:"publisher" validate:"omitempty,max=50"`
	Image     string `json:"image" validate:"omitempty,max=255"`
	Inventory *int   `json:"inventory" validate:"omitempty,gte=0"`
	AuthorIDs []int  `json:"author_ids" validate:"omitempty,min=1,dive,min=1"`
}

// Response DTOs

type BookResponse struct {
	ID        int              `json:"id"`
	Name      string           `json:"name"`
	Image     string           `json:"image"`
	Publisher string           `json:"publisher"`
	Inventory int              `json:"inventory"`
	Authors   []AuthorResponse `json:"authors"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type BookListResponse struct {
	Books []BookResponse `json:"books"`
	Total int            `json:"total"`
}

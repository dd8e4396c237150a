package repository

import (
	"go-library-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookRequestRepository interface {
	Create(db *gorm.DB, request *entity.BookRequest) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.BookRequest, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.BookRequest, error)
	FindAll(db *gorm.DB) ([]entity.BookRequest, error)
	CountIssuedByUser(db *gorm.DB, userID uuid.UUID) (int64, error)
	TransitionStatus(db *gorm.DB, id uuid.UUID, from entity.RequestStatus, fields map[string]interface{}) (int64, error)
}

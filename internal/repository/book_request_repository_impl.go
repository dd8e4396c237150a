package repository

import (
	"errors"

	"go-library-management/internal/domain/entity"
	domainRepo "go-library-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bookRequestRepository struct{}

func NewBookRequestRepository() domainRepo.BookRequestRepository {
	return &bookRequestRepository{}
}

func (r *bookRequestRepository) Create(db *gorm.DB, request *entity.BookRequest) error {
	return db.Create(request).Error
}

func (r *bookRequestRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.BookRequest, error) {
	var request entity.BookRequest
	err := db.Preload("Book.Authors").Preload("User.Roles").Where("id = ?", id).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *bookRequestRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.BookRequest, error) {
	var requests []entity.BookRequest
	err := db.Preload("Book.Authors").Preload("User.Roles").
		Where("user_id = ?", userID).
		Order("requested_date DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *bookRequestRepository) FindAll(db *gorm.DB) ([]entity.BookRequest, error) {
	var requests []entity.BookRequest
	err := db.Preload("Book.Authors").Preload("User.Roles").
		Order("requested_date DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *bookRequestRepository) CountIssuedByUser(db *gorm.DB, userID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.BookRequest{}).
		Where("user_id = ? AND status = ?", userID, entity.RequestStatusIssued).
		Count(&count).Error
	return count, err
}

// TransitionStatus atomically applies fields ONLY while the loan is still in
// the expected source status. Returns affected rows: 1 = success, 0 = a
// concurrent transition won (prevents double-issue race).
func (r *bookRequestRepository) TransitionStatus(db *gorm.DB, id uuid.UUID, from entity.RequestStatus, fields map[string]interface{}) (int64, error) {
	result := db.Model(&entity.BookRequest{}).
		Where("id = ? AND status = ?", id, from).
		Updates(fields)
	return result.RowsAffected, result.Error
}

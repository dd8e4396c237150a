package repository

import (
	"errors"

	"go-library-management/internal/domain/entity"
	domainRepo "go-library-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ticketRepository struct{}

func NewTicketRepository() domainRepo.TicketRepository {
	return &ticketRepository{}
}

func (r *ticketRepository) Create(db *gorm.DB, ticket *entity.Ticket) error {
	return db.Create(ticket).Error
}

func (r *ticketRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Ticket, error) {
	var ticket entity.Ticket
	err := db.Preload("User.Roles").Where("id = ?", id).First(&ticket).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Ticket, error) {
	var tickets []entity.Ticket
	err := db.Preload("User.Roles").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tickets).Error
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *ticketRepository) FindAll(db *gorm.DB) ([]entity.Ticket, error) {
	var tickets []entity.Ticket
	err := db.Preload("User.Roles").
		Order("created_at DESC").
		Find(&tickets).Error
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *ticketRepository) Update(db *gorm.DB, ticket *entity.Ticket) error {
	return db.Save(ticket).Error
}

package repository

import (
	"go-library-management/internal/domain/entity"

	"gorm.io/gorm"
)

type AuthorRepository interface {
	Create(db *gorm.DB, author *entity.Author) error
	FindAll(db *gorm.DB) ([]entity.Author, error)
	FindByID(db *gorm.DB, id int) (*entity.Author, error)
	FindByIDs(db *gorm.DB, ids []int) ([]entity.Author, error)
	FindByName(db *gorm.DB, name string) (*entity.Author, error)
	Update(db *gorm.DB, author *entity.Author) error
	Delete(db *gorm.DB, id int) error
}

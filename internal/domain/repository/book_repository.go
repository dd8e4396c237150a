package repository

import (
	"go-library-management/internal/domain/entity"

	"gorm.io/gorm"
)

type BookRepository interface {
	Create(db *gorm.DB, book *entity.Book) error
	FindAll(db *gorm.DB, search string) ([]entity.Book, error)
	FindByID(db *gorm.DB, id int) (*entity.Book, error)
	Update(db *gorm.DB, book *entity.Book) error
	ReplaceAuthors(db *gorm.DB, book *entity.Book, authors []entity.Author) error
	Delete(db *gorm.DB, id int) error
	DecrementInventory(db *gorm.DB, id int) (int64, error)
	IncrementInventory(db *gorm.DB, id int) error
}

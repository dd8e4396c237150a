package repository

import (
	"errors"

	"go-library-management/internal/domain/entity"
	domainRepo "go-library-management/internal/domain/repository"

	"gorm.io/gorm"
)

type bookRepository struct{}

func NewBookRepository() domainRepo.BookRepository {
	return &bookRepository{}
}

func (r *bookRepository) Create(db *gorm.DB, book *entity.Book) error {
	return db.Create(book).Error
}

func (r *bookRepository) FindAll(db *gorm.DB, search string) ([]entity.Book, error) {
	var books []entity.Book
	query := db.Preload("Authors")
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}
	err := query.Order("name").Find(&books).Error
	if err != nil {
		return nil, err
	}
	return books, nil
}

func (r *bookRepository) FindByID(db *gorm.DB, id int) (*entity.Book, error) {
	var book entity.Book
	err := db.Preload("Authors").Where("id = ?", id).First(&book).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &book, nil
}

func (r *bookRepository) Update(db *gorm.DB, book *entity.Book) error {
	return db.Save(book).Error
}

func (r *bookRepository) ReplaceAuthors(db *gorm.DB, book *entity.Book, authors []entity.Author) error {
	return db.Model(book).Association("Authors").Replace(authors)
}

func (r *bookRepository) Delete(db *gorm.DB, id int) error {
	return db.Where("id = ?", id).Delete(&entity.Book{}).Error
}

// DecrementInventory atomically takes one copy off the shelf ONLY while stock
// remains. The relative update runs in the database, so two concurrent issues
// cannot both consume the last copy. Returns affected rows: 1 = success,
// 0 = no copies left.
func (r *bookRepository) DecrementInventory(db *gorm.DB, id int) (int64, error) {
	result := db.Model(&entity.Book{}).
		Where("id = ? AND inventory > 0", id).
		UpdateColumn("inventory", gorm.Expr("inventory - ?", 1))
	return result.RowsAffected, result.Error
}

// IncrementInventory atomically puts one copy back on the shelf.
func (r *bookRepository) IncrementInventory(db *gorm.DB, id int) error {
	return db.Model(&entity.Book{}).
		Where("id = ?", id).
		UpdateColumn("inventory", gorm.Expr("inventory + ?", 1)).Error
}

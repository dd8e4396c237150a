package repository

import (
	"errors"

	"go-library-management/internal/domain/entity"
	domainRepo "go-library-management/internal/domain/repository"

	"gorm.io/gorm"
)

type authorRepository struct{}

func NewAuthorRepository() domainRepo.AuthorRepository {
	return &authorRepository{}
}

func (r *authorRepository) Create(db *gorm.DB, author *entity.Author) error {
	return db.Create(author).Error
}

func (r *authorRepository) FindAll(db *gorm.DB) ([]entity.Author, error) {
	var authors []entity.Author
	err := db.Order("name").Find(&authors).Error
	if err != nil {
		return nil, err
	}
	return authors, nil
}

func (r *authorRepository) FindByID(db *gorm.DB, id int) (*entity.Author, error) {
	var author entity.Author
	err := db.Where("id = ?", id).First(&author).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &author, nil
}

func (r *authorRepository) FindByIDs(db *gorm.DB, ids []int) ([]entity.Author, error) {
	var authors []entity.Author
	err := db.Where("id IN ?", ids).Find(&authors).Error
	if err != nil {
		return nil, err
	}
	return authors, nil
}

func (r *authorRepository) FindByName(db *gorm.DB, name string) (*entity.Author, error) {
	var author entity.Author
	err := db.Where("name = ?", name).First(&author).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &author, nil
}

func (r *authorRepository) Update(db *gorm.DB, author *entity.Author) error {
	return db.Save(author).Error
}

func (r *authorRepository) Delete(db *gorm.DB, id int) error {
	return db.Where("id = ?", id).Delete(&entity.Author{}).Error
}
